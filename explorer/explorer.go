// Package explorer drives a mandelbrot.ViewState from a gpucontext event
// source: pointer drags pan, scroll zooms about the cursor, and keys reset
// the view, shift the colors or quit.
package explorer

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/mandelbrot"
)

// Action is something a key can trigger.
type Action int

// Actions.
const (
	ActionNone Action = iota
	ActionResetView
	ActionResetColor
	ActionIncrementRed
	ActionIncrementGreen
	ActionIncrementBlue
	ActionToggleAutoCycle
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:            "none",
	ActionResetView:       "reset-view",
	ActionResetColor:      "reset-color",
	ActionIncrementRed:    "increment-red",
	ActionIncrementGreen:  "increment-green",
	ActionIncrementBlue:   "increment-blue",
	ActionToggleAutoCycle: "toggle-auto-cycle",
	ActionQuit:            "quit",
}

// String returns the action name.
func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Keymap binds keys to actions.
type Keymap map[gpucontext.Key]Action

// DefaultKeymap returns the standard bindings: Z resets the view, R resets
// the colors, 1/2/3 step the red/green/blue offset, C toggles color
// cycling and Escape quits.
func DefaultKeymap() Keymap {
	return Keymap{
		gpucontext.KeyZ:      ActionResetView,
		gpucontext.KeyR:      ActionResetColor,
		gpucontext.Key1:      ActionIncrementRed,
		gpucontext.Key2:      ActionIncrementGreen,
		gpucontext.Key3:      ActionIncrementBlue,
		gpucontext.KeyC:      ActionToggleAutoCycle,
		gpucontext.KeyEscape: ActionQuit,
	}
}

// Explorer connects input events to a view state.
type Explorer struct {
	state *mandelbrot.ViewState
	opts  options

	quit     atomic.Bool
	quitOnce sync.Once
}

// Bind registers handlers on src that drive state. Handlers run on the
// goroutine that delivers events.
func Bind(src gpucontext.EventSource, state *mandelbrot.ViewState, opts ...Option) *Explorer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Explorer{state: state, opts: o}

	src.OnResize(func(w, h int) {
		e.notify(e.state.Resize(w, h), "resize", "width", w, "height", h)
	})
	src.OnMouseMove(func(x, y float64) {
		e.notify(e.state.PointerMove(x, y), "pan", "x", x, "y", y)
	})
	src.OnMousePress(func(b gpucontext.MouseButton, x, y float64) {
		if b == e.opts.dragButton {
			e.state.PointerDown(x, y)
		}
	})
	src.OnMouseRelease(func(b gpucontext.MouseButton, x, y float64) {
		if b == e.opts.dragButton {
			e.state.PointerUp(x, y)
		}
	})
	src.OnScroll(func(_, dy float64) {
		e.notify(e.state.Scroll(dy), "zoom", "dy", dy)
	})
	src.OnKeyPress(func(k gpucontext.Key, _ gpucontext.Modifiers) {
		e.HandleKey(k)
	})

	mandelbrot.Logger().Debug("explorer: bound", "keys", len(o.keymap))
	return e
}

// State returns the driven view state.
func (e *Explorer) State() *mandelbrot.ViewState {
	return e.state
}

// HandleKey runs the action bound to k. Unbound keys are ignored.
func (e *Explorer) HandleKey(k gpucontext.Key) bool {
	a, ok := e.opts.keymap[k]
	if !ok {
		return false
	}
	return e.Do(a)
}

// Do runs an action and reports whether the image changed.
func (e *Explorer) Do(a Action) bool {
	var changed bool
	switch a {
	case ActionResetView:
		changed = e.state.ResetView()
	case ActionResetColor:
		changed = e.state.ResetColor()
	case ActionIncrementRed:
		changed = e.state.IncrementColor(mandelbrot.ChannelRed)
	case ActionIncrementGreen:
		changed = e.state.IncrementColor(mandelbrot.ChannelGreen)
	case ActionIncrementBlue:
		changed = e.state.IncrementColor(mandelbrot.ChannelBlue)
	case ActionToggleAutoCycle:
		on := e.state.ToggleAutoCycle()
		mandelbrot.Logger().Debug("explorer: auto-cycle", "on", on)
		changed = true
	case ActionQuit:
		e.Quit()
	default:
		return false
	}
	e.notify(changed, a.String())
	return changed
}

// Quit marks the explorer done and calls the quit callback once.
func (e *Explorer) Quit() {
	e.quitOnce.Do(func() {
		e.quit.Store(true)
		mandelbrot.Logger().Info("explorer: quit requested")
		if e.opts.onQuit != nil {
			e.opts.onQuit()
		}
	})
}

// Done reports whether quit was requested.
func (e *Explorer) Done() bool {
	return e.quit.Load()
}

func (e *Explorer) notify(changed bool, what string, args ...any) {
	if !changed {
		return
	}
	mandelbrot.Logger().Debug("explorer: "+what, args...)
	if e.opts.onChange != nil {
		e.opts.onChange()
	}
}
