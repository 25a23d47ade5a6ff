package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"life-ca/pkg/core"
)

// FillBinaryRGBA converts live/dead cell data into RGBA pixels in buf, which
// must hold 4*len(cells) bytes.
func FillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != core.Dead {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// GrayImage renders a snapshot as a grayscale image with every cell blown up
// to a scale×scale block. Scales below one are treated as one.
func GrayImage(s core.Snapshot, scale int) *image.Gray {
	src := s.Gray()
	if scale <= 1 {
		return src
	}
	n := s.Size() * scale
	dst := image.NewGray(image.Rect(0, 0, n, n))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
