package explorer

import "github.com/gogpu/gpucontext"

// Option configures an Explorer.
type Option func(*options)

type options struct {
	keymap     Keymap
	dragButton gpucontext.MouseButton
	onChange   func()
	onQuit     func()
}

func defaultOptions() options {
	return options{
		keymap:     DefaultKeymap(),
		dragButton: gpucontext.MouseButtonLeft,
	}
}

// WithKeymap replaces the key bindings.
func WithKeymap(k Keymap) Option {
	return func(o *options) {
		o.keymap = k
	}
}

// WithDragButton sets the button that starts a pan.
func WithDragButton(b gpucontext.MouseButton) Option {
	return func(o *options) {
		o.dragButton = b
	}
}

// OnChange registers a callback run after every event that changed the
// image, typically to request a redraw.
func OnChange(fn func()) Option {
	return func(o *options) {
		o.onChange = fn
	}
}

// OnQuit registers a callback run once when the quit key is pressed.
func OnQuit(fn func()) Option {
	return func(o *options) {
		o.onQuit = fn
	}
}
