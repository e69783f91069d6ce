package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/BertoldVdb/atflash/chipdb"
	"github.com/BertoldVdb/atflash/flash"
	"github.com/BertoldVdb/atflash/image"
	"github.com/BertoldVdb/atflash/target"
)

func testBank(t *testing.T) *flash.Bank {
	b := flash.NewBank("test", target.NewMemory())
	b.BeginProbe()
	if err := b.Install(0x08000000, 4*2048, flash.UniformSectors(4, 2048)); err != nil {
		t.Fatal("Install failed:", err)
	}
	return b
}

func TestSelectChips(t *testing.T) {
	if m := selectChips(""); len(m) != len(chipdb.All()) {
		t.Errorf("Empty filter: %d!=%d", len(m), len(chipdb.All()))
	}

	/* Exact name wins over the longer aliases containing it */
	m := selectChips("at32f415rbt7")
	if len(m) != 1 || m[0].Name != "AT32F415RBT7" {
		t.Errorf("Exact match: %v", m)
	}

	m = selectChips("f415rbt7")
	if len(m) != 2 {
		t.Errorf("Substring match: %v", m)
	}
	for _, r := range m {
		if !strings.Contains(r.Name, "F415RBT7") {
			t.Errorf("Unexpected part: %s", r.Name)
		}
	}

	if m := selectChips("STM32"); len(m) != 0 {
		t.Errorf("Unknown name matched: %v", m)
	}
}

func TestReadRange(t *testing.T) {
	b := testBank(t)

	cases := []struct {
		args   []string
		offset uint32
		length uint32
		ok     bool
	}{
		{nil, 0, 8192, true},
		{[]string{"0x1000"}, 0x1000, 0x1000, true},
		{[]string{"0x800", "0x100"}, 0x800, 0x100, true},
		{[]string{"0x2000"}, 0x2000, 0, true},
		{[]string{"0", "0x2000"}, 0, 0x2000, true},
		{[]string{"0x2001"}, 0, 0, false},
		{[]string{"0", "0x2001"}, 0, 0, false},
		{[]string{"0", "0xFFFFFFFF"}, 0, 0, false},
		{[]string{"0x1000", "0xFFFFF000"}, 0, 0, false},
		{[]string{"start"}, 0, 0, false},
		{[]string{"0", "all"}, 0, 0, false},
	}

	for _, c := range cases {
		offset, length, err := readRange(b, c.args)
		if (err == nil) != c.ok {
			t.Errorf("%v: unexpected error state: %v", c.args, err)
			continue
		}
		if !c.ok {
			continue
		}
		if offset != c.offset || length != c.length {
			t.Errorf("%v: %x+%x!=%x+%x", c.args, offset, length, c.offset, c.length)
		}
	}

	if _, _, err := readRange(b, []string{"0", "0xFFFFFFFF"}); !errors.Is(err, flash.ErrorOutOfBank) {
		t.Error("Oversized length not reported as out of bank:", err)
	}
}

func TestDescribeMismatch(t *testing.T) {
	b := testBank(t)

	m := image.Mismatch{Address: 0x08000900, Length: 0x100, Expected: 1, Actual: 2}
	if s := describeMismatch(b, m); !strings.HasSuffix(s, "(sector 1)") {
		t.Error("Unexpected description:", s)
	}

	m = image.Mismatch{Address: 0x08000700, Length: 0x1000, Expected: 1, Actual: 2}
	if s := describeMismatch(b, m); !strings.HasSuffix(s, "(sectors 0-2)") {
		t.Error("Unexpected description:", s)
	}

	m = image.Mismatch{Address: 0x20000000, Length: 0x10, Expected: 1, Actual: 2}
	if s := describeMismatch(b, m); strings.Contains(s, "sector") {
		t.Error("Out of bank range described with sectors:", s)
	}
}
