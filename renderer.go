package mandelbrot

import (
	"context"
	"fmt"
	"time"

	"github.com/gogpu/mandelbrot/internal/parallel"
)

// Renderer evaluates frames into pixmaps on the CPU. Bands of rows are
// spread across a worker pool; every worker reads the same immutable Frame
// and Palette and writes its own rows.
//
// A Renderer is safe for concurrent use, but concurrent Render calls share
// the same workers.
type Renderer struct {
	palette *Palette
	opts    rendererOptions
	pool    *parallel.WorkerPool
}

// NewRenderer creates a renderer for the given palette.
func NewRenderer(palette *Palette, opts ...RendererOption) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		palette: palette,
		opts:    o,
		pool:    parallel.NewWorkerPool(o.workers),
	}
}

// Palette returns the palette the renderer colors with.
func (r *Renderer) Palette() *Palette {
	return r.palette
}

// IterationLimit returns the configured iteration bound.
func (r *Renderer) IterationLimit() int {
	return r.opts.limit
}

// Workers returns the number of render goroutines.
func (r *Renderer) Workers() int {
	return r.pool.Workers()
}

// Render fills dst with the image of frame. dst is resized to the frame
// size if needed. Once ctx is done no further bands are started and the
// context error is returned; dst then holds a partial image.
func (r *Renderer) Render(ctx context.Context, frame Frame, dst *Pixmap) error {
	if err := dst.Resize(frame.Width, frame.Height); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	start := time.Now()
	bands := parallel.Bands(frame.Height, r.opts.bandRows)
	err := r.pool.Run(ctx, len(bands), func(i int) {
		r.renderBand(frame, dst, bands[i])
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	Logger().Debug("mandelbrot: frame rendered",
		"width", frame.Width,
		"height", frame.Height,
		"version", frame.Version,
		"bands", len(bands),
		"elapsed", time.Since(start))
	return nil
}

func (r *Renderer) renderBand(frame Frame, dst *Pixmap, b parallel.Band) {
	for y := b.Y0; y < b.Y1; y++ {
		py := float64(y) + 0.5
		for x := 0; x < frame.Width; x++ {
			c := frame.Shade(float64(x)+0.5, py, r.opts.limit, r.palette, r.opts.background)
			dst.SetPixel(x, y, c)
		}
	}
}

// Close stops the worker pool.
func (r *Renderer) Close() {
	r.pool.Close()
}
