package cmd

import (
	"github.com/spf13/cobra"

	"github.com/BertoldVdb/atflash/flash"
)

// blankCheckCmd represents the blank-check command
var blankCheckCmd = &cobra.Command{
	Use:   "blank-check",
	Short: "Check which sectors are erased",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, b, closer, err := openBank()
		if err != nil {
			return err
		}
		defer closer()

		if err := d.AutoProbe(b); err != nil {
			return err
		}

		if err := flash.EraseCheck(d, b); err != nil {
			return err
		}

		listSectors = true
		printBank(b)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(blankCheckCmd)
}
