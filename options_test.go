package mandelbrot

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.workers != 0 {
		t.Errorf("workers = %d, want 0", o.workers)
	}
	if o.limit != DefaultIterationLimit {
		t.Errorf("limit = %d, want %d", o.limit, DefaultIterationLimit)
	}
	if o.background != Black {
		t.Errorf("background = %+v, want black", o.background)
	}
}

func TestRendererOptions(t *testing.T) {
	tests := []struct {
		name  string
		opt   RendererOption
		check func(rendererOptions) bool
	}{
		{"workers", WithWorkers(6), func(o rendererOptions) bool { return o.workers == 6 }},
		{"limit", WithIterationLimit(1000), func(o rendererOptions) bool { return o.limit == 1000 }},
		{"zero limit ignored", WithIterationLimit(0), func(o rendererOptions) bool { return o.limit == DefaultIterationLimit }},
		{"background", WithBackground(White), func(o rendererOptions) bool { return o.background == White }},
		{"band rows", WithBandRows(16), func(o rendererOptions) bool { return o.bandRows == 16 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.opt(&o)
			if !tt.check(o) {
				t.Errorf("option not applied: %+v", o)
			}
		})
	}
}
