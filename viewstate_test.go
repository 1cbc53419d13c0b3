package mandelbrot

import (
	"math"
	"sync"
	"testing"
	"time"
)

func newTestState(t *testing.T, w, h int) *ViewState {
	t.Helper()
	s, err := NewViewState(w, h, DefaultHome)
	if err != nil {
		t.Fatalf("NewViewState() error = %v", err)
	}
	return s
}

func TestNewViewState_Invalid(t *testing.T) {
	if _, err := NewViewState(0, 100, DefaultHome); err == nil {
		t.Error("NewViewState(0, 100) succeeded")
	}
}

func TestViewState_DragPans(t *testing.T) {
	s := newTestState(t, 200, 200)
	before := s.Snapshot().PointAt(100, 100)

	s.PointerDown(100, 100)
	if !s.PointerMove(150, 120) {
		t.Fatal("drag reported no change")
	}
	s.PointerUp(150, 120)

	// The point that was under the cursor moved with it.
	after := s.Snapshot().PointAt(150, 120)
	if math.Abs(real(after-before)) > 1e-12 || math.Abs(imag(after-before)) > 1e-12 {
		t.Errorf("dragged point is %v, want %v", after, before)
	}
}

func TestViewState_MoveWithoutDrag(t *testing.T) {
	s := newTestState(t, 200, 200)
	v := s.Version()
	if s.PointerMove(10, 10) || s.PointerMove(50, 70) {
		t.Error("motion outside move mode reported a change")
	}
	if s.Version() != v {
		t.Error("motion outside move mode bumped the version")
	}
}

func TestViewState_DuplicateMotion(t *testing.T) {
	s := newTestState(t, 200, 200)
	s.PointerDown(20, 20)
	if s.PointerMove(20, 20) {
		t.Error("duplicate motion sample reported a change")
	}
	if !s.Moving() {
		t.Error("Moving() = false during drag")
	}
	s.PointerUp(20, 20)
	if s.Moving() {
		t.Error("Moving() = true after PointerUp")
	}
}

func TestViewState_ScrollZoomsAboutCursor(t *testing.T) {
	s := newTestState(t, 300, 200)
	s.PointerMove(60, 150)
	before := s.Snapshot().PointAt(60, 150)

	for range 10 {
		if !s.Scroll(1) {
			t.Fatal("Scroll(1) reported no change")
		}
	}
	f := s.Snapshot()
	after := f.PointAt(60, 150)
	if math.Abs(real(after-before)) > 1e-12 || math.Abs(imag(after-before)) > 1e-12 {
		t.Errorf("point under cursor moved from %v to %v", before, after)
	}
	if want := math.Pow(ZoomFactor, 10); math.Abs(f.Magnification()-want) > 1e-12 {
		t.Errorf("Magnification() = %v, want %v", f.Magnification(), want)
	}
}

func TestViewState_ScrollDirection(t *testing.T) {
	s := newTestState(t, 100, 100)
	s.Scroll(-3)
	if got := s.Snapshot().Magnification(); got >= 1 {
		t.Errorf("negative scroll gave magnification %v, want < 1", got)
	}
}

func TestViewState_ScrollZero(t *testing.T) {
	s := newTestState(t, 100, 100)
	if s.Scroll(0) {
		t.Error("Scroll(0) reported a change")
	}
	if s.Version() != 0 {
		t.Errorf("Version() = %d, want 0", s.Version())
	}
}

func TestViewState_ScrollAt(t *testing.T) {
	s := newTestState(t, 100, 100)
	before := s.Snapshot().PointAt(25, 75)
	s.ScrollAt(25, 75, 1)
	after := s.Snapshot().PointAt(25, 75)
	if math.Abs(real(after-before)) > 1e-12 || math.Abs(imag(after-before)) > 1e-12 {
		t.Errorf("ScrollAt anchor moved from %v to %v", before, after)
	}
}

func TestViewState_Resize(t *testing.T) {
	s := newTestState(t, 100, 100)
	if !s.Resize(1920, 1080) {
		t.Fatal("Resize reported no change")
	}
	if w, h := s.Size(); w != 1920 || h != 1080 {
		t.Errorf("Size() = %dx%d", w, h)
	}
	if s.Resize(1920, 1080) {
		t.Error("same size reported a change")
	}
	if s.Resize(0, 1080) || s.Resize(1920, -1) {
		t.Error("invalid size reported a change")
	}
	if w, h := s.Size(); w != 1920 || h != 1080 {
		t.Errorf("invalid resize changed size to %dx%d", w, h)
	}
	f := s.Snapshot()
	if f.Resize.ScaleY() <= 1 {
		t.Errorf("snapshot resize = %v", f.Resize.Mat4())
	}
}

func TestViewState_ResizeKeepsView(t *testing.T) {
	s := newTestState(t, 100, 100)
	s.ScrollAt(10, 10, 1)
	view := s.Snapshot().View
	s.Resize(400, 100)
	if s.Snapshot().View != view {
		t.Error("resize modified the view transform")
	}
}

func TestViewState_ResetView(t *testing.T) {
	s := newTestState(t, 100, 100)
	if s.ResetView() {
		t.Error("ResetView at home reported a change")
	}
	s.Scroll(1)
	if !s.ResetView() {
		t.Error("ResetView reported no change")
	}
	if !s.Snapshot().View.IsIdentity() {
		t.Error("view not identity after reset")
	}
}

func TestViewState_Colors(t *testing.T) {
	s := newTestState(t, 100, 100)
	if s.ResetColor() {
		t.Error("ResetColor with zero offset reported a change")
	}
	s.IncrementColor(ChannelGreen)
	if got := s.Snapshot().Color; got.G != ColorStep {
		t.Errorf("Color = %+v", got)
	}
	v := s.Version()
	if !s.ToggleAutoCycle() || !s.AutoCycle() {
		t.Error("auto-cycle not enabled")
	}
	if s.Version() != v+1 {
		t.Errorf("Version() = %d after toggling auto-cycle, want %d", s.Version(), v+1)
	}
	if !s.Tick(AutoCycleInterval) {
		t.Error("Tick reported no change with auto-cycle on")
	}
	if !s.ResetColor() {
		t.Error("ResetColor reported no change")
	}
	if s.AutoCycle() {
		t.Error("ResetColor did not stop auto-cycle")
	}
	if s.Tick(time.Second) {
		t.Error("Tick changed color after reset")
	}
}

func TestViewState_VersionAndSnapshot(t *testing.T) {
	s := newTestState(t, 100, 100)
	s.Scroll(1)
	s.IncrementColor(ChannelRed)
	f := s.Snapshot()
	if f.Version != 2 || s.Version() != 2 {
		t.Errorf("version = %d/%d, want 2", f.Version, s.Version())
	}

	s.Scroll(1)
	if f.Magnification() != ZoomFactor {
		t.Error("snapshot changed after a later event")
	}
}

func TestViewState_SetView(t *testing.T) {
	s := newTestState(t, 100, 100)
	v := ViewAt(DefaultHome, complex(0.25, 0), 10)
	s.SetView(v)
	if s.Snapshot().View != v {
		t.Error("SetView not reflected in snapshot")
	}
}

func TestViewState_Concurrent(t *testing.T) {
	s := newTestState(t, 200, 200)
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := range 200 {
			s.ScrollAt(float64(i%200), 50, 1)
		}
	}()
	go func() {
		defer wg.Done()
		s.PointerDown(0, 0)
		for i := range 200 {
			s.PointerMove(float64(i), float64(i))
		}
		s.PointerUp(0, 0)
	}()
	go func() {
		defer wg.Done()
		for range 200 {
			f := s.Snapshot()
			if f.Width != 200 {
				t.Errorf("snapshot width = %d", f.Width)
				return
			}
		}
	}()
	wg.Wait()
}
