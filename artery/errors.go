package artery

import (
	"fmt"

	"github.com/juju/errors"
)

var (
	ErrorTargetNotExamined         = errors.New("target not examined yet")
	ErrorFlashSizeUnavailable      = errors.New("cannot read flash size")
	ErrorIdentificationUnsupported = errors.New("cannot identify target as a Artery AT32 family")
)

// GeometryMismatchError is returned when the flash size is not a whole
// number of sectors. Either the chip table is wrong or the part is not
// modelled correctly.
type GeometryMismatchError struct {
	FlashSize  uint32
	SectorSize uint32
}

func (e *GeometryMismatchError) Error() string {
	return fmt.Sprintf("flash size %d is not a multiple of the %d byte sector size", e.FlashSize, e.SectorSize)
}
