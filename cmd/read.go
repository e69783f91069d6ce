package cmd

import (
	"os"

	"github.com/golang/glog"
	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/BertoldVdb/atflash/flash"
)

// readRange resolves the optional offset and length arguments against a
// probed bank and returns the sectors the range touches.
func readRange(b *flash.Bank, args []string) (uint32, uint32, error) {
	offset := uint32(0)
	if len(args) > 0 {
		var err error
		if offset, err = parseAddress(args[0]); err != nil {
			return 0, 0, err
		}
	}
	if offset > b.Size() {
		return 0, 0, errors.Annotatef(flash.ErrorOutOfBank, "offset 0x%x is past the end of the bank", offset)
	}

	length := b.Size() - offset
	if len(args) > 1 {
		var err error
		if length, err = parseAddress(args[1]); err != nil {
			return 0, 0, err
		}
	}
	if uint64(offset)+uint64(length) > uint64(b.Size()) {
		return 0, 0, errors.Annotatef(flash.ErrorOutOfBank, "0x%x+0x%x, bank is 0x%x bytes", offset, length, b.Size())
	}

	return offset, length, nil
}

// readCmd represents the read command
var readCmd = &cobra.Command{
	Use:   "read [outfile.bin] [offset] [length]",
	Short: "Read device flash contents",
	Long: `Read out the contents of the device's flash. Offset and length are
relative to the start of the bank; by default the whole bank is read.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, b, closer, err := openBank()
		if err != nil {
			return err
		}
		defer closer()

		if err := d.AutoProbe(b); err != nil {
			return err
		}

		offset, length, err := readRange(b, args[1:])
		if err != nil {
			return err
		}

		if length > 0 {
			first, last, err := b.SectorRange(b.Base()+offset, length)
			if err != nil {
				return err
			}
			glog.Infof("%s: reading sectors %d to %d", b.Name, first, last)
		}

		buf := make([]byte, length)
		if err := flash.Read(d, b, buf, offset); err != nil {
			return err
		}

		return errors.Trace(os.WriteFile(args[0], buf, 0644))
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
}
