package main

import (
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/mandelbrot"
)

func TestParseCenter(t *testing.T) {
	tests := []struct {
		in      string
		want    complex128
		wantErr bool
	}{
		{"-0.5,0", complex(-0.5, 0), false},
		{" -0.743643 , 0.131825 ", complex(-0.743643, 0.131825), false},
		{"1e-3,-2", complex(0.001, -2), false},
		{"-0.5", 0, true},
		{"x,1", 0, true},
		{"1,y", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseCenter(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseCenter(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseCenter(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := parseLevel(in)
		if err != nil || got != want {
			t.Errorf("parseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := parseLevel("loud"); err == nil {
		t.Error("parseLevel(loud) succeeded")
	}
}

func TestFrameFor(t *testing.T) {
	cfg := &config{width: 80, height: 60}

	f, err := frameFor(cfg, &renderFlags{center: "-0.75,0.1", zoom: 8})
	if err != nil {
		t.Fatal(err)
	}
	c := f.Center()
	if math.Abs(real(c)+0.75) > 1e-9 || math.Abs(imag(c)-0.1) > 1e-9 {
		t.Errorf("Center() = %v, want (-0.75+0.1i)", c)
	}
	if math.Abs(f.Magnification()-8) > 1e-9 {
		t.Errorf("Magnification() = %v, want 8", f.Magnification())
	}

	if _, err := frameFor(cfg, &renderFlags{zoom: 0}); err == nil {
		t.Error("zero zoom accepted")
	}
	if _, err := frameFor(cfg, &renderFlags{center: "bad", zoom: 1}); err == nil {
		t.Error("bad center accepted")
	}
}

func TestHUDCaption(t *testing.T) {
	h, err := newHUD(12)
	if err != nil {
		t.Fatal(err)
	}
	f, err := mandelbrot.NewFrame(1920, 1080, mandelbrot.IdentityView(), mandelbrot.DefaultHome, mandelbrot.RGBA{})
	if err != nil {
		t.Fatal(err)
	}

	s := h.caption(f, false)
	if !strings.Contains(s, "zoom 1.00x") {
		t.Errorf("caption %q lacks the zoom", s)
	}
	if strings.Contains(s, "[auto]") {
		t.Errorf("caption %q marks auto-cycle", s)
	}
	if s := h.caption(f, true); !strings.HasSuffix(s, "[auto]") {
		t.Errorf("caption %q does not mark auto-cycle", s)
	}
}

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	cmd := mainCmd()
	cmd.SetArgs([]string{"render", "--width", "48", "--height", "32", "--limit", "40", "-o", out})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	file, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 32 {
		t.Errorf("image is %dx%d, want 48x32", b.Dx(), b.Dy())
	}
}

func TestRenderCommand_BadPalette(t *testing.T) {
	cmd := mainCmd()
	cmd.SetOut(new(strings.Builder))
	cmd.SetErr(new(strings.Builder))
	cmd.SetArgs([]string{"render", "--palette", filepath.Join(t.TempDir(), "missing.txt")})
	if err := cmd.Execute(); err == nil {
		t.Error("Execute() succeeded with a missing palette")
	}
}
