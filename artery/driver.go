package artery

import (
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/BertoldVdb/atflash/chipdb"
	"github.com/BertoldVdb/atflash/flash"
)

// Driver identifies AT32 parts and builds their sector table. It does not
// erase or program.
type Driver struct{}

func (Driver) Name() string {
	return "artery"
}

// Probe identifies the part behind b.Target and installs its sector table.
// A failed device ID read is returned annotated with the register address;
// errors.Is and errors.Cause still reach the reader's error, but the value
// returned is not the same one.
func (Driver) Probe(b *flash.Bank) error {
	if !b.Target.Examined() {
		glog.Errorf("%s: target not examined yet", b.Name)
		b.Fail()
		return ErrorTargetNotExamined
	}

	b.BeginProbe()

	id, err := Identify(b.Target)
	if err != nil {
		glog.Warningf("%s: %v", b.Name, err)
		b.Fail()
		return err
	}

	flashSize := id.FlashSizeKB << 10
	numSectors := flashSize / id.SectorSize
	if numSectors*id.SectorSize != flashSize {
		glog.Errorf("%s: total FLASH size does not match sector size times sectors count", b.Name)
		b.Fail()
		return &GeometryMismatchError{
			FlashSize:  flashSize,
			SectorSize: id.SectorSize,
		}
	}

	return errors.Trace(b.Install(FlashBase, flashSize, flash.UniformSectors(numSectors, id.SectorSize)))
}

func (d Driver) AutoProbe(b *flash.Bank) error {
	if b.Probed() {
		return nil
	}
	return d.Probe(b)
}

func revisionLetter(raw uint8) byte {
	return (raw>>4)&0x07 + 'A'
}

// Describe reads the identification registers again and formats a one
// line summary. The bank does not need to be probed and is not changed.
func (Driver) Describe(b *flash.Bank) (string, error) {
	t := b.Target

	deviceID, err := readDeviceID(t)
	if err != nil {
		return "", err
	}

	mask, err := t.ReadU8(RegMaskVersion)
	if err != nil {
		return "", errors.Annotatef(err, "cannot read mask version at 0x%08x", RegMaskVersion)
	}
	rev := revisionLetter(mask)

	kb, err := readFlashSize(t)
	if err != nil {
		return "", err
	}

	if chip, ok := chipdb.Lookup(deviceID); ok {
		return fmt.Sprintf("%s Rev. %c, %dkB FLASH", chip.Name, rev, kb), nil
	}
	return fmt.Sprintf("Unknown chip, Id: 0x%08x, Rev: %c, %dkB FLASH", deviceID, rev, kb), nil
}

func (d Driver) Info(b *flash.Bank, w io.Writer) error {
	s, err := d.Describe(b)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

func init() {
	flash.Register(Driver{})
}
