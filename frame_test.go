package mandelbrot

import (
	"math"
	"testing"
)

func TestFrame_PointAtHome(t *testing.T) {
	f, err := NewFrame(200, 200, IdentityView(), DefaultHome, RGBA{})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name   string
		px, py float64
		want   complex128
	}{
		{"center", 100, 100, complex(-0.5, 0)},
		{"top-left", 0, 0, complex(-2, 1.5)},
		{"bottom-right", 200, 200, complex(1, -1.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.PointAt(tt.px, tt.py)
			if math.Abs(real(got-tt.want)) > 1e-12 || math.Abs(imag(got-tt.want)) > 1e-12 {
				t.Errorf("PointAt(%v, %v) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestFrame_PixelsAreSquare(t *testing.T) {
	for _, dims := range [][2]int{{1920, 1080}, {1080, 1920}, {640, 480}} {
		f, err := NewFrame(dims[0], dims[1], IdentityView(), DefaultHome, RGBA{})
		if err != nil {
			t.Fatal(err)
		}
		o := f.PointAt(10, 10)
		dx := f.PointAt(11, 10) - o
		dy := f.PointAt(10, 11) - o
		w, h := math.Abs(real(dx)), math.Abs(imag(dy))
		if math.Abs(w-h)/w > 1e-6 {
			t.Errorf("%dx%d: pixel is %v wide and %v tall", dims[0], dims[1], real(dx), imag(dy))
		}
	}
}

func TestFrame_ZoomShrinksPixels(t *testing.T) {
	view := IdentityView().Compose(ZoomIncrement(Pt(0, 0), 4))
	f, _ := NewFrame(100, 100, view, DefaultHome, RGBA{})
	g, _ := NewFrame(100, 100, IdentityView(), DefaultHome, RGBA{})

	zoomed := real(f.PointAt(1, 0) - f.PointAt(0, 0))
	home := real(g.PointAt(1, 0) - g.PointAt(0, 0))
	if math.Abs(home/zoomed-4) > 1e-9 {
		t.Errorf("pixel size ratio = %v, want 4", home/zoomed)
	}
	if f.Magnification() != 4 {
		t.Errorf("Magnification() = %v, want 4", f.Magnification())
	}
	if c := f.Center(); math.Abs(real(c)+0.5) > 1e-12 || math.Abs(imag(c)) > 1e-12 {
		t.Errorf("Center() = %v, want -0.5", c)
	}
}

func TestFrame_Shade(t *testing.T) {
	p := DefaultPalette()
	f, _ := NewFrame(100, 100, IdentityView(), DefaultHome, RGBA{})

	if got := f.Shade(50, 50, 100, p, Black); got != Black {
		t.Errorf("center of the set shaded %+v, want background", got)
	}

	px, py := 0.5, 0.5
	escaped, s := Evaluate(f.PointAt(px, py), 100)
	if !escaped {
		t.Fatal("corner should escape")
	}
	if got, want := f.Shade(px, py, 100, p, Black), p.ColorFor(s); got != want {
		t.Errorf("Shade = %+v, want %+v", got, want)
	}
}

func TestFrame_ShadeAppliesColorOffset(t *testing.T) {
	p := DefaultPalette()
	offset := RGBA{R: 0.1}
	f, _ := NewFrame(100, 100, IdentityView(), DefaultHome, offset)
	_, s := Evaluate(f.PointAt(0.5, 0.5), 100)
	want := p.ColorFor(s).AddWrapped(offset)
	if got := f.Shade(0.5, 0.5, 100, p, Black); got != want {
		t.Errorf("Shade = %+v, want %+v", got, want)
	}
}

func TestNewFrame_InvalidSize(t *testing.T) {
	if _, err := NewFrame(0, 10, IdentityView(), DefaultHome, RGBA{}); err == nil {
		t.Error("NewFrame(0, 10) succeeded")
	}
}

func TestHome_Matrix(t *testing.T) {
	h := Home{Center: complex(1, 2), Radius: 3}
	r := ViewFromMat4(h.Matrix()).Apply(Pt(1, -1))
	if r != Pt(4, -1) {
		t.Errorf("home maps (1, -1) to %v, want (4, -1)", r)
	}
}
