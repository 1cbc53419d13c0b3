package mandelbrot

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	r := mandelbrot.NewRenderer(palette,
//	    mandelbrot.WithWorkers(4),
//	    mandelbrot.WithIterationLimit(1000))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	workers    int
	limit      int
	background RGBA
	bandRows   int
}

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{
		workers:    0, // GOMAXPROCS
		limit:      DefaultIterationLimit,
		background: Black,
		bandRows:   0, // parallel.BandHeight
	}
}

// WithWorkers sets the number of render goroutines. Zero or negative means
// GOMAXPROCS.
func WithWorkers(n int) RendererOption {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithIterationLimit sets the escape-time iteration bound. Non-positive
// values keep the default.
func WithIterationLimit(limit int) RendererOption {
	return func(o *rendererOptions) {
		if limit > 0 {
			o.limit = limit
		}
	}
}

// WithBackground sets the color of points inside the set.
func WithBackground(c RGBA) RendererOption {
	return func(o *rendererOptions) {
		o.background = c
	}
}

// WithBandRows sets how many rows each unit of parallel work covers.
func WithBandRows(rows int) RendererOption {
	return func(o *rendererOptions) {
		o.bandRows = rows
	}
}
