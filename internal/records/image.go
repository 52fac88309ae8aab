package records

import (
	"fmt"

	"github.com/tinselkit/tinsel/internal/bio"
	"github.com/tinselkit/tinsel/internal/catalog"
)

// Image is one bitmap's fixed-width header: its dimensions, animation
// offset, run-length flag, and the handle to its pixel data.
type Image struct {
	Handle catalog.Handle

	Width, Height   uint16
	AniOffX, AniOffY uint16
	ImgBits         catalog.Handle
	IsRLE           uint16
	ColorFlags      uint16
}

// ParseImage decodes an Image header by resolving handle through mem.
func ParseImage(mem MemoryResolver, handle catalog.Handle) (Image, error) {
	data, err := mem.GetMemory(handle)
	if err != nil {
		return Image{}, fmt.Errorf("records: resolving image %#08x: %w", uint32(handle), err)
	}
	r := bio.NewReader(data)

	var img Image
	img.Handle = handle

	width, err1 := r.ReadU16()
	height, err2 := r.ReadU16()
	offX, err3 := r.ReadU16()
	offY, err4 := r.ReadU16()
	imgBits, err5 := r.ReadU32()
	isRLE, err6 := r.ReadU16()
	colorFlags, err7 := r.ReadU16()
	if err := firstErr(err1, err2, err3, err4, err5, err6, err7); err != nil {
		return Image{}, fmt.Errorf("records: decoding image %#08x: %w", uint32(handle), err)
	}

	img.Width = width
	img.Height = height
	img.AniOffX = offX
	img.AniOffY = offY
	img.ImgBits = catalog.Handle(imgBits)
	img.IsRLE = isRLE
	img.ColorFlags = colorFlags

	return img, nil
}
