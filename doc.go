// Package mandelbrot is the navigation and evaluation core of an
// interactive Mandelbrot set explorer.
//
// # Overview
//
// Input events move a [ViewState]: pointer drags pan, scroll steps zoom by
// [ZoomFactor] about the cursor, and keys reset the view or shift the
// colors. All view changes are accumulated into one double precision
// [ViewTransform] by left multiplication, so hundreds of zoom steps keep the
// point under the cursor in place.
//
// Rendering reads an immutable [Frame] snapshot. Each pixel is mapped
// through the aspect [ResizeTransform], the inverse view and the [Home]
// placement to a complex number c, evaluated with [Evaluate], and colored
// through a cyclic [Palette].
//
// # Quick Start
//
//	state, _ := mandelbrot.NewViewState(800, 600, mandelbrot.DefaultHome)
//	state.ScrollAt(400, 300, 1) // zoom in about the window center
//
//	r := mandelbrot.NewRenderer(mandelbrot.DefaultPalette())
//	defer r.Close()
//
//	pm, _ := mandelbrot.NewPixmap(800, 600)
//	_ = r.Render(context.Background(), state.Snapshot(), pm)
//	_ = pm.SavePNG("mandelbrot.png")
//
// # Architecture
//
//   - Core: transforms, navigator, evaluator, palette (this package)
//   - kernel: WGSL program for the same evaluation on the GPU
//   - explorer: binds a gpucontext.EventSource to a ViewState
//   - cmd/mandel: window, headless render and websocket front ends
package mandelbrot
