package mandelbrot

import (
	"sync"
	"time"
)

// ViewState is the explorer state driven by input events: the navigator,
// the cursor, the move mode and the color state. All methods are safe for
// concurrent use. Each mutating method reports whether the rendered image
// changed; renderers read consistent values through Snapshot.
type ViewState struct {
	mu sync.Mutex

	width, height int
	resize        ResizeTransform
	home          Home

	nav      Navigator
	color    ColorState
	cursor   Point
	hasCur   bool
	moveMode bool
	version  uint64
}

// NewViewState creates a state for a window of the given size at the home
// view.
func NewViewState(width, height int, home Home) (*ViewState, error) {
	r, err := ComputeResizeTransform(width, height)
	if err != nil {
		return nil, err
	}
	return &ViewState{
		width:  width,
		height: height,
		resize: r,
		home:   home,
		nav:    Navigator{view: IdentityView()},
	}, nil
}

// Size returns the current window size.
func (s *ViewState) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// Version is incremented on every change that affects the image.
func (s *ViewState) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Snapshot returns an immutable frame of the current state.
func (s *ViewState) Snapshot() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := NewFrame(s.width, s.height, s.nav.View(), s.home, s.color.Base())
	if err != nil {
		// width and height are validated on every write.
		panic(err)
	}
	f.Version = s.version
	return f
}

// Resize recomputes the aspect transform. Non-positive sizes are ignored.
func (s *ViewState) Resize(width, height int) bool {
	r, err := ComputeResizeTransform(width, height)
	if err != nil {
		Logger().Warn("mandelbrot: ignoring resize", "width", width, "height", height)
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if width == s.width && height == s.height {
		return false
	}
	s.width, s.height, s.resize = width, height, r
	s.changed()
	return true
}

// PointerMove refreshes the cursor and, in move mode, pans the view by the
// distance the cursor travelled. Duplicate samples change nothing.
func (s *ViewState) PointerMove(px, py float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.toPlane(px, py)
	prev, had := s.cursor, s.hasCur
	s.cursor, s.hasCur = p, true
	if !s.moveMode || !had {
		return false
	}
	if !s.nav.Pan(p.Sub(prev)) {
		return false
	}
	s.changed()
	return true
}

// PointerDown enters move mode.
func (s *ViewState) PointerDown(px, py float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor, s.hasCur = s.toPlane(px, py), true
	s.moveMode = true
}

// PointerUp leaves move mode.
func (s *ViewState) PointerUp(px, py float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor, s.hasCur = s.toPlane(px, py), true
	s.moveMode = false
}

// Moving reports whether move mode is active.
func (s *ViewState) Moving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moveMode
}

// Scroll zooms about the last known cursor position: in for positive dy,
// out for negative dy. Without a cursor the anchor is the window center.
// Zero dy is ignored.
func (s *ViewState) Scroll(dy float64) bool {
	if dy == 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.Zoom(s.cursor, dy > 0)
	s.changed()
	return true
}

// ScrollAt moves the cursor to (px, py) and then zooms about it.
func (s *ViewState) ScrollAt(px, py, dy float64) bool {
	s.mu.Lock()
	s.cursor, s.hasCur = s.toPlane(px, py), true
	s.mu.Unlock()
	return s.Scroll(dy)
}

// ResetView returns to the home view.
func (s *ViewState) ResetView() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nav.View().IsIdentity() {
		return false
	}
	s.nav.Reset()
	s.changed()
	return true
}

// SetView replaces the accumulated transform.
func (s *ViewState) SetView(v ViewTransform) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.view = v
	s.changed()
}

// ResetColor zeroes the color offset and stops auto-cycling.
func (s *ViewState) ResetColor() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.color.Base() != RGBA{} || s.color.AutoCycle()
	s.color.Reset()
	if changed {
		s.changed()
	}
	return changed
}

// IncrementColor steps one channel of the color offset.
func (s *ViewState) IncrementColor(ch Channel) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.color.Increment(ch) {
		return false
	}
	s.changed()
	return true
}

// ToggleAutoCycle flips auto-cycling and returns the new setting. The
// version moves so that status readers see the switch immediately.
func (s *ViewState) ToggleAutoCycle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	on := s.color.ToggleAutoCycle()
	s.changed()
	return on
}

// AutoCycle reports whether auto-cycling is on.
func (s *ViewState) AutoCycle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.color.AutoCycle()
}

// Tick advances time-driven state by dt.
func (s *ViewState) Tick(dt time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.color.Tick(dt) {
		return false
	}
	s.changed()
	return true
}

// toPlane maps a pixel to the visible plane. Callers hold mu.
func (s *ViewState) toPlane(px, py float64) Point {
	return s.resize.Unapply(MapCursorToPlane(px, py, s.width, s.height))
}

func (s *ViewState) changed() {
	s.version++
}
