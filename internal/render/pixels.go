package render

import "image/color"

// fillBinaryRGBA converts row-major cell states into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []bool, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, alive := range cells {
		base := i * 4
		if alive {
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

// PixelSize returns the image dimensions for a grid with the given bounds.
// Columns run along x and rows along y.
func PixelSize(width, height int) (w, h int) { return height, width }
