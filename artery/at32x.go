package artery

import (
	"github.com/golang/glog"

	"github.com/BertoldVdb/atflash/flash"
)

// AT32XDriver covers the AT32 lines whose identification registers are
// not known. Probing always fails.
type AT32XDriver struct{}

func (AT32XDriver) Name() string {
	return "artery_at32x"
}

func (AT32XDriver) Probe(b *flash.Bank) error {
	b.Fail()
	glog.Errorf("%s: %v", b.Name, ErrorIdentificationUnsupported)
	return ErrorIdentificationUnsupported
}

func (d AT32XDriver) AutoProbe(b *flash.Bank) error {
	return d.Probe(b)
}

func init() {
	flash.Register(AT32XDriver{})
}
