package main

import (
	"fmt"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/mandelbrot"
)

const hudPadding = 6

// hud draws a one-line caption with the view position over a frame.
type hud struct {
	face    text.Face
	printer *message.Printer
}

func newHUD(size float64) (*hud, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("hud font: %w", err)
	}
	return &hud{
		face:    src.Face(size),
		printer: message.NewPrinter(language.English),
	}, nil
}

func (h *hud) caption(f mandelbrot.Frame, autoCycle bool) string {
	c := f.Center()
	s := h.printer.Sprintf("zoom %.2fx  center %.6f%+.6fi  %dx%d",
		f.Magnification(), real(c), imag(c), f.Width, f.Height)
	if autoCycle {
		s += "  [auto]"
	}
	return s
}

func (h *hud) draw(dc *gg.Context, f mandelbrot.Frame, autoCycle bool) {
	s := h.caption(f, autoCycle)
	dc.SetFont(h.face)
	w, th := dc.MeasureString(s)
	y := float64(f.Height) - hudPadding

	dc.SetRGBA(0, 0, 0, 0.55)
	dc.DrawRectangle(0, y-th-hudPadding, w+2*hudPadding, th+2*hudPadding)
	_ = dc.Fill()

	dc.SetRGBA(1, 1, 1, 0.95)
	dc.DrawString(s, hudPadding, y)
}

// compose draws the rendered pixmap and, if h is not nil, the caption.
func compose(dc *gg.Context, pm *mandelbrot.Pixmap, f mandelbrot.Frame, h *hud, autoCycle bool) {
	dc.DrawImage(gg.ImageBufFromImage(pm), 0, 0)
	if h != nil {
		h.draw(dc, f, autoCycle)
	}
}
