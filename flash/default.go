package flash

import (
	"github.com/golang/glog"
	"github.com/juju/errors"
)

const (
	erasedValue = 0xFF

	/* Largest single transfer issued to the target */
	readChunkSize = 1024
)

// DefaultRead reads flash contents straight out of the target's memory
// map.
func DefaultRead(b *Bank, buf []byte, offset uint32) error {
	if !b.Probed() {
		return ErrorNotProbed
	}
	if uint64(offset)+uint64(len(buf)) > uint64(b.size) {
		return errors.Annotatef(ErrorOutOfBank, "offset 0x%x+0x%x", offset, len(buf))
	}

	addr := b.base + offset
	for len(buf) > 0 {
		chunk := buf
		if len(chunk) > readChunkSize {
			chunk = chunk[:readChunkSize]
		}

		n, err := b.Target.ReadMemory(addr, chunk)
		if err != nil {
			return errors.Annotatef(err, "flash read at 0x%08x", addr)
		}
		if n == 0 {
			return errors.Errorf("flash read at 0x%08x returned no data", addr)
		}

		addr += uint32(n)
		buf = buf[n:]
	}

	return nil
}

func isErased(data []byte) bool {
	for _, m := range data {
		if m != erasedValue {
			return false
		}
	}
	return true
}

// DefaultBlankCheck reads every sector back and records whether it is
// erased. Sectors after a failed read keep their previous state.
func DefaultBlankCheck(b *Bank) error {
	if !b.Probed() {
		return ErrorNotProbed
	}

	for i := range b.sectors {
		s := &b.sectors[i]

		data := make([]byte, s.Size)
		if err := DefaultRead(b, data, s.Offset); err != nil {
			return errors.Annotatef(err, "blank check of sector %d", i)
		}

		if isErased(data) {
			s.Erase = Erased
		} else {
			s.Erase = NotErased
		}
		glog.V(1).Infof("%s: sector %d %s", b.Name, i, s.Erase)
	}

	return nil
}
