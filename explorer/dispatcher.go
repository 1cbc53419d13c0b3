package explorer

import (
	"sync"

	"github.com/gogpu/gpucontext"
)

// Dispatcher is a gpucontext.EventSource fed by explicit calls instead of a
// window. Hosts without a native window (the websocket server, tests)
// register an Explorer on it and push events with the Emit methods.
//
// Each On method replaces the previously registered handler.
type Dispatcher struct {
	gpucontext.NullEventSource

	mu         sync.RWMutex
	keyPress   func(gpucontext.Key, gpucontext.Modifiers)
	mouseMove  func(float64, float64)
	mousePress func(gpucontext.MouseButton, float64, float64)
	mouseUp    func(gpucontext.MouseButton, float64, float64)
	scroll     func(float64, float64)
	resize     func(int, int)
}

var _ gpucontext.EventSource = (*Dispatcher)(nil)

// OnKeyPress implements gpucontext.EventSource.
func (d *Dispatcher) OnKeyPress(fn func(gpucontext.Key, gpucontext.Modifiers)) {
	d.mu.Lock()
	d.keyPress = fn
	d.mu.Unlock()
}

// OnMouseMove implements gpucontext.EventSource.
func (d *Dispatcher) OnMouseMove(fn func(x, y float64)) {
	d.mu.Lock()
	d.mouseMove = fn
	d.mu.Unlock()
}

// OnMousePress implements gpucontext.EventSource.
func (d *Dispatcher) OnMousePress(fn func(gpucontext.MouseButton, float64, float64)) {
	d.mu.Lock()
	d.mousePress = fn
	d.mu.Unlock()
}

// OnMouseRelease implements gpucontext.EventSource.
func (d *Dispatcher) OnMouseRelease(fn func(gpucontext.MouseButton, float64, float64)) {
	d.mu.Lock()
	d.mouseUp = fn
	d.mu.Unlock()
}

// OnScroll implements gpucontext.EventSource.
func (d *Dispatcher) OnScroll(fn func(dx, dy float64)) {
	d.mu.Lock()
	d.scroll = fn
	d.mu.Unlock()
}

// OnResize implements gpucontext.EventSource.
func (d *Dispatcher) OnResize(fn func(width, height int)) {
	d.mu.Lock()
	d.resize = fn
	d.mu.Unlock()
}

// EmitKeyPress delivers a key press.
func (d *Dispatcher) EmitKeyPress(k gpucontext.Key, mods gpucontext.Modifiers) {
	d.mu.RLock()
	fn := d.keyPress
	d.mu.RUnlock()
	if fn != nil {
		fn(k, mods)
	}
}

// EmitMouseMove delivers pointer motion in pixels.
func (d *Dispatcher) EmitMouseMove(x, y float64) {
	d.mu.RLock()
	fn := d.mouseMove
	d.mu.RUnlock()
	if fn != nil {
		fn(x, y)
	}
}

// EmitMousePress delivers a button press.
func (d *Dispatcher) EmitMousePress(b gpucontext.MouseButton, x, y float64) {
	d.mu.RLock()
	fn := d.mousePress
	d.mu.RUnlock()
	if fn != nil {
		fn(b, x, y)
	}
}

// EmitMouseRelease delivers a button release.
func (d *Dispatcher) EmitMouseRelease(b gpucontext.MouseButton, x, y float64) {
	d.mu.RLock()
	fn := d.mouseUp
	d.mu.RUnlock()
	if fn != nil {
		fn(b, x, y)
	}
}

// EmitScroll delivers a scroll step.
func (d *Dispatcher) EmitScroll(dx, dy float64) {
	d.mu.RLock()
	fn := d.scroll
	d.mu.RUnlock()
	if fn != nil {
		fn(dx, dy)
	}
}

// EmitResize delivers a window resize.
func (d *Dispatcher) EmitResize(w, h int) {
	d.mu.RLock()
	fn := d.resize
	d.mu.RUnlock()
	if fn != nil {
		fn(w, h)
	}
}
