package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BertoldVdb/atflash/artery"
	"github.com/BertoldVdb/atflash/flash"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print chip name, revision and flash size",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, b, closer, err := openBank()
		if err != nil {
			return err
		}
		defer closer()

		if err := flash.Info(d, b, os.Stdout); err != nil {
			return err
		}
		fmt.Println()

		/* The unique id is optional, older dumps may not contain it */
		if uid, err := artery.UniqueID(b.Target); err == nil {
			fmt.Println("Unique ID:", hex.EncodeToString(uid[:]))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
