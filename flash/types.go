package flash

type EraseState int

const (
	EraseUnknown EraseState = iota
	Erased
	NotErased
)

func (e EraseState) String() string {
	switch e {
	case Erased:
		return "erased"
	case NotErased:
		return "not erased"
	default:
		return "erase state unknown"
	}
}

type ProtectState int

const (
	ProtectUnknown ProtectState = iota
	Protected
	Unprotected
)

func (p ProtectState) String() string {
	switch p {
	case Protected:
		return "protected"
	case Unprotected:
		return "not protected"
	default:
		return "protection state unknown"
	}
}

type Sector struct {
	Offset  uint32
	Size    uint32
	Erase   EraseState
	Protect ProtectState
}

// UniformSectors lays out count sectors of size bytes back to back, with
// unknown erase and protection state.
func UniformSectors(count, size uint32) []Sector {
	sectors := make([]Sector, count)
	for i := range sectors {
		sectors[i] = Sector{
			Offset: uint32(i) * size,
			Size:   size,
		}
	}
	return sectors
}

type State int

const (
	NotProbed State = iota
	Probing
	Probed
	Failed
)

func (s State) String() string {
	switch s {
	case NotProbed:
		return "not probed"
	case Probing:
		return "probing"
	case Probed:
		return "probed"
	case Failed:
		return "failed"
	}
	return "invalid"
}
