package mandelbrot

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"path/filepath"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	pm, err := NewPixmap(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if pm.Width() != 4 || pm.Height() != 3 || len(pm.Data()) != 4*3*4 {
		t.Errorf("pixmap %dx%d with %d bytes", pm.Width(), pm.Height(), len(pm.Data()))
	}
	if _, err := NewPixmap(0, 3); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewPixmap(0, 3) error = %v", err)
	}
}

func TestPixmap_OverflowingSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"wraps to zero", 1 << 62, 4},
		{"max int", math.MaxInt, 1},
		{"both large", 1 << 32, 1 << 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPixmap(tt.width, tt.height); !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("NewPixmap(%d, %d) error = %v", tt.width, tt.height, err)
			}

			pm, _ := NewPixmap(2, 2)
			if err := pm.Resize(tt.width, tt.height); !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("Resize(%d, %d) error = %v", tt.width, tt.height, err)
			}
			if pm.Width() != 2 || pm.Height() != 2 || len(pm.Data()) != 16 {
				t.Errorf("failed Resize left pixmap %dx%d with %d bytes", pm.Width(), pm.Height(), len(pm.Data()))
			}
		})
	}
}

func TestPixmap_SetGetPixel(t *testing.T) {
	pm, _ := NewPixmap(2, 2)
	pm.SetPixel(1, 0, RGB(1, 0, 0))
	pm.SetPixel(5, 5, White) // ignored

	if got := pm.GetPixel(1, 0); got != RGB(1, 0, 0) {
		t.Errorf("GetPixel(1, 0) = %+v", got)
	}
	if got := pm.GetPixel(0, 0); got != Transparent {
		t.Errorf("GetPixel(0, 0) = %+v, want transparent", got)
	}
	if got := pm.GetPixel(-1, 0); got != Transparent {
		t.Errorf("out of bounds = %+v", got)
	}
}

func TestPixmap_Clear(t *testing.T) {
	pm, _ := NewPixmap(3, 3)
	pm.Clear(Black)
	for y := range 3 {
		for x := range 3 {
			if got := pm.GetPixel(x, y); got != Black {
				t.Fatalf("pixel (%d, %d) = %+v", x, y, got)
			}
		}
	}
}

func TestPixmap_Resize(t *testing.T) {
	pm, _ := NewPixmap(2, 2)
	data := pm.Data()
	if err := pm.Resize(2, 2); err != nil || &pm.Data()[0] != &data[0] {
		t.Error("same-size Resize reallocated")
	}
	if err := pm.Resize(5, 1); err != nil {
		t.Fatal(err)
	}
	if pm.Bounds().Dx() != 5 || pm.Bounds().Dy() != 1 || len(pm.Data()) != 20 {
		t.Errorf("Resize(5, 1) bounds = %v", pm.Bounds())
	}
	if err := pm.Resize(-1, 1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize(-1, 1) error = %v", err)
	}
}

func TestPixmap_EncodePNG(t *testing.T) {
	pm, _ := NewPixmap(3, 2)
	pm.SetPixel(2, 1, RGB(0, 1, 0))

	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != pm.Bounds() {
		t.Errorf("decoded bounds = %v", img.Bounds())
	}
	_, g, _, a := img.At(2, 1).RGBA()
	if g != 0xffff || a != 0xffff {
		t.Errorf("decoded pixel g=%x a=%x", g, a)
	}
}

func TestPixmap_SavePNG(t *testing.T) {
	pm, _ := NewPixmap(2, 2)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	if err := pm.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory succeeded")
	}
}
