package flash

import (
	"bytes"
	"errors"
	"testing"

	"github.com/BertoldVdb/atflash/target"
)

func probedBank(t *testing.T, mem *target.Memory, base, count, size uint32) *Bank {
	b := NewBank("test", mem)
	b.BeginProbe()
	if err := b.Install(base, count*size, UniformSectors(count, size)); err != nil {
		t.Fatal("Install failed:", err)
	}
	return b
}

func TestUniformSectors(t *testing.T) {
	sectors := UniformSectors(4, 2048)
	for i, m := range sectors {
		if m.Offset != uint32(i)*2048 || m.Size != 2048 {
			t.Errorf("Sector %d: offset %x size %d", i, m.Offset, m.Size)
		}
		if m.Erase != EraseUnknown || m.Protect != ProtectUnknown {
			t.Errorf("Sector %d: state not unknown", i)
		}
	}
}

func TestInstallLifecycle(t *testing.T) {
	b := NewBank("test", target.NewMemory())
	if b.State() != NotProbed || b.Probed() {
		t.Fatal("New bank is not in NotProbed")
	}

	if err := b.Install(0, 1024, UniformSectors(1, 1024)); err != ErrorNotInProbe {
		t.Error("Install outside of a probe accepted:", err)
	}

	b.BeginProbe()
	if b.State() != Probing {
		t.Error("BeginProbe did not enter Probing")
	}
	if err := b.Install(0x08000000, 4096, UniformSectors(4, 1024)); err != nil {
		t.Fatal(err)
	}
	if !b.Probed() || b.Base() != 0x08000000 || b.Size() != 4096 || b.NumSectors() != 4 {
		t.Fatal("Bank geometry not installed")
	}

	/* A second probe replaces everything */
	b.BeginProbe()
	if b.Probed() {
		t.Error("Bank still probed during a probe")
	}
	if err := b.Install(0x08000000, 8192, UniformSectors(4, 2048)); err != nil {
		t.Fatal(err)
	}
	for _, m := range b.Sectors() {
		if m.Size != 2048 {
			t.Error("Stale sector after re-probe:", m)
		}
	}
}

func TestInstallRejectsBadLayout(t *testing.T) {
	b := NewBank("test", target.NewMemory())
	b.BeginProbe()
	if err := b.Install(0, 4096, UniformSectors(4, 1024)); err != nil {
		t.Fatal(err)
	}

	layouts := [][]Sector{
		UniformSectors(3, 1024),
		{{Offset: 0, Size: 2048}, {Offset: 1024, Size: 2048}},
		{{Offset: 0, Size: 4096}, {Offset: 4096, Size: 0}},
		nil,
	}

	for i, layout := range layouts {
		b.BeginProbe()
		err := b.Install(0, 4096, layout)
		if !errors.Is(err, ErrorInvalidLayout) {
			t.Errorf("Layout %d accepted: %v", i, err)
		}
		if b.State() != Failed {
			t.Errorf("Layout %d: state %s", i, b.State())
		}
		if b.NumSectors() != 4 || b.Size() != 4096 {
			t.Errorf("Layout %d: previous table was modified", i)
		}
	}
}

func TestSectorsIsCopy(t *testing.T) {
	b := probedBank(t, target.NewMemory(), 0, 4, 1024)
	s := b.Sectors()
	s[0].Erase = Erased
	if b.Sector(0).Erase != EraseUnknown {
		t.Error("Sectors() exposes the table")
	}
}

func TestSectorRange(t *testing.T) {
	b := probedBank(t, target.NewMemory(), 0x08000000, 8, 1024)

	cases := []struct {
		addr, length uint32
		first, last  int
	}{
		{0x08000000, 1, 0, 0},
		{0x08000000, 1024, 0, 0},
		{0x08000000, 1025, 0, 1},
		{0x080003FF, 2, 0, 1},
		{0x08001C00, 1024, 7, 7},
		{0x08000000, 8192, 0, 7},
	}

	for _, c := range cases {
		first, last, err := b.SectorRange(c.addr, c.length)
		if err != nil || first != c.first || last != c.last {
			t.Errorf("SectorRange(%08x, %d): %d-%d %v", c.addr, c.length, first, last, err)
		}
	}

	if _, _, err := b.SectorRange(0x08001C00, 1025); !errors.Is(err, ErrorOutOfBank) {
		t.Error("Range past the end accepted:", err)
	}
	if _, _, err := b.SectorRange(0x07FFFFFF, 2); !errors.Is(err, ErrorOutOfBank) {
		t.Error("Range before the start accepted:", err)
	}
}

func TestDefaultRead(t *testing.T) {
	mem := target.NewMemory()
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i * 7)
	}
	mem.Poke(0x08000000, data)

	b := NewBank("test", mem)
	if err := DefaultRead(b, make([]byte, 4), 0); err != ErrorNotProbed {
		t.Error("Read of unprobed bank:", err)
	}

	b.BeginProbe()
	if err := b.Install(0x08000000, 4096, UniformSectors(4, 1024)); err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, 3000)
	if err := DefaultRead(b, buf, 100); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf, data[100:3100]) {
		t.Error("Read returned wrong data")
	}

	if err := DefaultRead(b, buf, 2000); !errors.Is(err, ErrorOutOfBank) {
		t.Error("Read past the end accepted:", err)
	}
}

func TestDefaultBlankCheck(t *testing.T) {
	mem := target.NewMemory()
	mem.Fill(0x08000000, 4096, 0xFF)
	mem.PokeU8(0x08000400+17, 0x00)

	b := probedBank(t, mem, 0x08000000, 4, 1024)
	if err := DefaultBlankCheck(b); err != nil {
		t.Fatal(err)
	}

	expected := []EraseState{Erased, NotErased, Erased, Erased}
	for i, m := range b.Sectors() {
		if m.Erase != expected[i] {
			t.Errorf("Sector %d: %s, expected %s", i, m.Erase, expected[i])
		}
		if m.Protect != ProtectUnknown {
			t.Errorf("Sector %d: protect state changed", i)
		}
	}

	fault := errors.New("link lost")
	mem.Fault(0x08000C00, fault)
	if err := DefaultBlankCheck(b); !errors.Is(err, fault) {
		t.Error("Read fault not reported:", err)
	}
}
