package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BertoldVdb/atflash/flash"
)

var listSectors bool

func printBank(b *flash.Bank) {
	fmt.Printf("#0 : %s at 0x%08x, size 0x%08x, %d sectors\n", b.Name, b.Base(), b.Size(), b.NumSectors())
	if !listSectors {
		return
	}

	for i := 0; i < b.NumSectors(); i++ {
		m := b.Sector(i)
		fmt.Printf("\t#%3d: 0x%08x (0x%05x %dkB) %s, %s\n", i, m.Offset, m.Size, m.Size>>10, m.Erase, m.Protect)
	}
}

// probeCmd represents the probe command
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Identify the part and build its sector table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, b, closer, err := openBank()
		if err != nil {
			return err
		}
		defer closer()

		if err := d.Probe(b); err != nil {
			return err
		}

		printBank(b)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)

	probeCmd.Flags().BoolVarP(&listSectors, "sectors", "s", false, "list every sector")
}
