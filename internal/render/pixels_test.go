package render

import (
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []bool{true, false, false, true}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	off := color.RGBA{A: 255}

	fillBinaryRGBA(buf, cells, on, off)

	for i, alive := range cells {
		px := buf[i*4 : i*4+4]
		want := off
		if alive {
			want = on
		}
		if px[0] != want.R || px[1] != want.G || px[2] != want.B || px[3] != want.A {
			t.Fatalf("pixel %d = %v, want %v", i, px, want)
		}
	}
}

func TestPixelSize(t *testing.T) {
	w, h := PixelSize(3, 8)
	if w != 8 || h != 3 {
		t.Fatalf("PixelSize(3, 8) = %d,%d; rows should map to y", w, h)
	}
}
