package flash

import (
	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/BertoldVdb/atflash/target"
)

var (
	ErrorNotProbed     = errors.New("flash bank has not been probed")
	ErrorNotInProbe    = errors.New("flash bank is not being probed")
	ErrorOutOfBank     = errors.New("range is outside of the flash bank")
	ErrorInvalidLayout = errors.New("sector layout does not cover the bank")
)

// Bank is one contiguous flash array on a target. Its geometry is only
// valid once a driver has probed it; the sector table is owned by the bank
// and replaced as a whole on every successful probe.
type Bank struct {
	Name   string
	Target target.Target

	base    uint32
	size    uint32
	state   State
	sectors []Sector
}

func NewBank(name string, t target.Target) *Bank {
	return &Bank{
		Name:   name,
		Target: t,
	}
}

func (b *Bank) State() State {
	return b.state
}

func (b *Bank) Probed() bool {
	return b.state == Probed
}

func (b *Bank) Base() uint32 {
	return b.base
}

func (b *Bank) Size() uint32 {
	return b.size
}

func (b *Bank) NumSectors() int {
	return len(b.sectors)
}

// Sectors returns a copy of the sector table.
func (b *Bank) Sectors() []Sector {
	result := make([]Sector, len(b.sectors))
	copy(result, b.sectors)
	return result
}

// Sector returns sector i by value.
func (b *Bank) Sector(i int) Sector {
	return b.sectors[i]
}

// BeginProbe moves the bank into the Probing state. It is allowed from
// every state, so a failed probe can always be retried.
func (b *Bank) BeginProbe() {
	b.state = Probing
}

// Fail ends a probe attempt. Geometry and sectors from an earlier probe are
// left as they were.
func (b *Bank) Fail() {
	b.state = Failed
}

func validateLayout(size uint32, sectors []Sector) error {
	offset := uint64(0)
	for i, m := range sectors {
		if m.Size == 0 || uint64(m.Offset) != offset {
			return errors.Annotatef(ErrorInvalidLayout, "sector %d at 0x%x, expected 0x%x", i, m.Offset, offset)
		}
		offset += uint64(m.Size)
	}

	if offset != uint64(size) {
		return errors.Annotatef(ErrorInvalidLayout, "sectors cover %d bytes, bank is %d", offset, size)
	}
	return nil
}

// Install finishes a probe. The previous sector table is released and the
// new one attached in one step; on error nothing is changed except the
// state, which becomes Failed.
func (b *Bank) Install(base, size uint32, sectors []Sector) error {
	if b.state != Probing {
		return ErrorNotInProbe
	}

	if err := validateLayout(size, sectors); err != nil {
		b.Fail()
		return err
	}

	if b.sectors != nil {
		glog.V(1).Infof("%s: releasing %d sectors", b.Name, len(b.sectors))
	}
	b.sectors = nil

	b.base = base
	b.size = size
	b.sectors = sectors
	b.state = Probed

	glog.V(1).Infof("%s: allocated %d sectors", b.Name, len(sectors))
	return nil
}

// Contains reports whether [addr, addr+length) lies in the bank.
func (b *Bank) Contains(addr uint32, length uint32) bool {
	return addr >= b.base && uint64(addr)+uint64(length) <= uint64(b.base)+uint64(b.size)
}

// SectorRange maps an absolute address range onto the indexes of the first
// and last sector it touches.
func (b *Bank) SectorRange(addr uint32, length uint32) (int, int, error) {
	if !b.Probed() {
		return 0, 0, ErrorNotProbed
	}
	if length == 0 || !b.Contains(addr, length) {
		return 0, 0, errors.Annotatef(ErrorOutOfBank, "0x%08x+0x%x", addr, length)
	}

	start := addr - b.base
	end := start + length - 1

	first, last := -1, -1
	for i, m := range b.sectors {
		if first < 0 && start < m.Offset+m.Size {
			first = i
		}
		if end < m.Offset+m.Size {
			last = i
			break
		}
	}

	return first, last, nil
}
