package image

import (
	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/BertoldVdb/atflash/flash"
)

type Mismatch struct {
	Address  uint32
	Length   uint32
	Expected uint32
	Actual   uint32
}

// Verify reads every segment of img back from flash and compares
// checksums. The bank is probed first if needed.
func Verify(d flash.Driver, b *flash.Bank, img *Image) ([]Mismatch, error) {
	if err := d.AutoProbe(b); err != nil {
		return nil, errors.Trace(err)
	}

	for _, m := range img.Segments {
		if !b.Contains(m.Address, uint32(len(m.Data))) {
			return nil, errors.Annotatef(flash.ErrorOutOfBank, "segment 0x%08x+0x%x", m.Address, len(m.Data))
		}
	}

	var result []Mismatch
	for _, m := range img.Segments {
		data := make([]byte, len(m.Data))
		if err := flash.Read(d, b, data, m.Address-b.Base()); err != nil {
			return nil, errors.Trace(err)
		}

		expected := Checksum(m.Data)
		actual := Checksum(data)
		glog.V(1).Infof("0x%08x+0x%x: crc %08x, flash %08x", m.Address, len(m.Data), expected, actual)

		if expected != actual {
			result = append(result, Mismatch{
				Address:  m.Address,
				Length:   uint32(len(m.Data)),
				Expected: expected,
				Actual:   actual,
			})
		}
	}

	return result, nil
}
