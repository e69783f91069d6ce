package artery

import (
	"io"
	"testing"

	"github.com/juju/errors"

	"github.com/BertoldVdb/atflash/flash"
)

func TestAT32XAlwaysFails(t *testing.T) {
	mem := newTarget(0x70050346, 1024, 0)
	b := flash.NewBank("test", mem)
	d := AT32XDriver{}

	for i := 0; i < 2; i++ {
		if err := d.Probe(b); err != ErrorIdentificationUnsupported {
			t.Error("Probe:", err)
		}
		if err := d.AutoProbe(b); err != ErrorIdentificationUnsupported {
			t.Error("AutoProbe:", err)
		}
		if b.Probed() {
			t.Error("Bank probed")
		}
	}

	if mem.Reads != 0 {
		t.Error("Stub touched the target")
	}

	/* Even a bank probed by another driver is not accepted */
	if err := (Driver{}).Probe(b); err != nil {
		t.Fatal(err)
	}
	if err := d.AutoProbe(b); err != ErrorIdentificationUnsupported || b.Probed() {
		t.Error("AutoProbe short-circuited on a probed bank:", err)
	}
}

func TestAT32XCapabilities(t *testing.T) {
	b := flash.NewBank("test", newTarget(0x70050346, 1024, 0))
	d := AT32XDriver{}

	if err := flash.Info(d, b, io.Discard); !errors.IsNotSupported(err) {
		t.Error("Info:", err)
	}
	if err := flash.Erase(d, b, 0, 0); !errors.IsNotSupported(err) {
		t.Error("Erase:", err)
	}
	if err := flash.Write(d, b, []byte{0}, 0); !errors.IsNotSupported(err) {
		t.Error("Write:", err)
	}
}
