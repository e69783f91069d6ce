package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/BertoldVdb/atflash/artery"
	"github.com/BertoldVdb/atflash/flash"
	"github.com/BertoldVdb/atflash/image"
)

var imageBase string

func describeMismatch(b *flash.Bank, m image.Mismatch) string {
	text := fmt.Sprintf("0x%08x+0x%x: image crc %08x, flash crc %08x", m.Address, m.Length, m.Expected, m.Actual)

	first, last, err := b.SectorRange(m.Address, m.Length)
	if err != nil {
		return text
	}
	if first == last {
		return fmt.Sprintf("%s (sector %d)", text, first)
	}
	return fmt.Sprintf("%s (sectors %d-%d)", text, first, last)
}

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [image.hex|image.bin]",
	Short: "Compare flash contents with an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := parseAddress(imageBase)
		if err != nil {
			return err
		}

		img, err := image.Load(args[0], base)
		if err != nil {
			return err
		}

		d, b, closer, err := openBank()
		if err != nil {
			return err
		}
		defer closer()

		mismatches, err := image.Verify(d, b, img)
		if err != nil {
			return err
		}

		for _, m := range mismatches {
			color.Red("%s", describeMismatch(b, m))
		}
		if len(mismatches) > 0 {
			return errors.Errorf("%d of %d segments differ", len(mismatches), len(img.Segments))
		}

		color.Green("verified %d bytes", img.Size())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVarP(&imageBase, "base", "b", fmt.Sprintf("0x%08x", artery.FlashBase), "load address of raw binary images")
}
