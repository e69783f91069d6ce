package image

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/juju/errors"
	"github.com/marcinbor85/gohex"
)

var (
	ErrorEmptyImage       = errors.New("image contains no data")
	ErrorOverlappingImage = errors.New("image segments overlap")
)

type Segment struct {
	Address uint32
	Data    []byte
}

func (s Segment) end() uint64 {
	return uint64(s.Address) + uint64(len(s.Data))
}

type Image struct {
	Segments []Segment
}

func newImage(segments []Segment) (*Image, error) {
	img := &Image{}
	for _, m := range segments {
		if len(m.Data) > 0 {
			img.Segments = append(img.Segments, m)
		}
	}

	if len(img.Segments) == 0 {
		return nil, ErrorEmptyImage
	}

	sort.Slice(img.Segments, func(i, j int) bool {
		return img.Segments[i].Address < img.Segments[j].Address
	})

	for i := 1; i < len(img.Segments); i++ {
		if img.Segments[i-1].end() > uint64(img.Segments[i].Address) {
			return nil, errors.Annotatef(ErrorOverlappingImage, "at 0x%08x", img.Segments[i].Address)
		}
	}

	return img, nil
}

// Size is the number of data bytes, not counting gaps between segments.
func (img *Image) Size() int {
	total := 0
	for _, m := range img.Segments {
		total += len(m.Data)
	}
	return total
}

// LoadBinary reads a raw image that starts at base.
func LoadBinary(r io.Reader, base uint32) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Trace(err)
	}

	if uint64(base)+uint64(len(data)) > 1<<32 {
		return nil, errors.Errorf("image of %d bytes does not fit at 0x%08x", len(data), base)
	}

	return newImage([]Segment{{Address: base, Data: data}})
}

// LoadHex reads an Intel HEX image. Every contiguous block becomes a
// segment.
func LoadHex(r io.Reader) (*Image, error) {
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(r); err != nil {
		return nil, errors.Annotate(err, "cannot parse Intel HEX")
	}

	var segments []Segment
	for _, m := range mem.GetDataSegments() {
		segments = append(segments, Segment{Address: m.Address, Data: m.Data})
	}

	return newImage(segments)
}

// Load picks the format from the file extension. base is only used for
// raw binaries.
func Load(path string, base uint32) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hex", ".ihx", ".ihex":
		return LoadHex(f)
	default:
		return LoadBinary(f, base)
	}
}
