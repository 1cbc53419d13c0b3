package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/mandelbrot"
	"github.com/gogpu/mandelbrot/explorer"
)

type session struct {
	conn     *websocket.Conn
	renderer *mandelbrot.Renderer
	opts     options

	state    *mandelbrot.ViewState
	events   *explorer.Dispatcher
	explorer *explorer.Explorer
	pixmap   *mandelbrot.Pixmap
	sent     uint64
	hasSent  bool
}

func newSession(c *websocket.Conn, r *mandelbrot.Renderer, o options) (*session, error) {
	state, err := mandelbrot.NewViewState(o.width, o.height, o.home)
	if err != nil {
		return nil, err
	}
	pm, err := mandelbrot.NewPixmap(o.width, o.height)
	if err != nil {
		return nil, err
	}
	d := &explorer.Dispatcher{}
	return &session{
		conn:     c,
		renderer: r,
		opts:     o,
		state:    state,
		events:   d,
		explorer: explorer.Bind(d, state),
		pixmap:   pm,
	}, nil
}

// run pumps events into the explorer and sends a frame whenever the state
// version moves. Consecutive events that arrive while a frame is being
// rendered are applied before the next frame.
func (s *session) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan Event, 16)
	readErr := make(chan error, 1)
	go func() {
		for {
			var ev Event
			if err := wsjson.Read(ctx, s.conn, &ev); err != nil {
				readErr <- err
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(mandelbrot.AutoCycleInterval)
	defer ticker.Stop()
	last := time.Now()

	if err := s.flush(ctx); err != nil {
		return err
	}
	for {
		select {
		case ev := <-events:
			if err := s.apply(ev); err != nil {
				mandelbrot.Logger().Debug("remote: bad event", "err", err)
			}
		drain:
			for {
				select {
				case ev := <-events:
					if err := s.apply(ev); err != nil {
						mandelbrot.Logger().Debug("remote: bad event", "err", err)
					}
				default:
					break drain
				}
			}
		case now := <-ticker.C:
			s.state.Tick(now.Sub(last))
			last = now
		case err := <-readErr:
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return nil
			}
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("read event: %w", err)
		case <-ctx.Done():
			return nil
		}

		if s.explorer.Done() {
			return s.conn.Close(websocket.StatusNormalClosure, "quit")
		}
		if err := s.flush(ctx); err != nil {
			return err
		}
	}
}

// apply feeds one client event to the dispatcher.
func (s *session) apply(ev Event) error {
	switch ev.Type {
	case EventResize:
		if ev.Width <= 0 || ev.Height <= 0 || ev.Width > s.opts.maxPixels/ev.Height {
			return fmt.Errorf("canvas %dx%d is empty or exceeds %d pixels", ev.Width, ev.Height, s.opts.maxPixels)
		}
		s.events.EmitResize(ev.Width, ev.Height)
	case EventMove:
		s.events.EmitMouseMove(ev.X, ev.Y)
	case EventDown:
		s.events.EmitMousePress(gpucontext.MouseButton(ev.Button), ev.X, ev.Y)
	case EventUp:
		s.events.EmitMouseRelease(gpucontext.MouseButton(ev.Button), ev.X, ev.Y)
	case EventScroll:
		s.events.EmitMouseMove(ev.X, ev.Y)
		s.events.EmitScroll(0, ev.DY)
	case EventKey:
		k, err := ParseKey(ev.Key)
		if err != nil {
			return err
		}
		s.events.EmitKeyPress(k, 0)
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	return nil
}

// flush renders and sends the current frame if it has not been sent yet.
func (s *session) flush(ctx context.Context) error {
	frame := s.state.Snapshot()
	if s.hasSent && frame.Version == s.sent {
		return nil
	}
	if err := s.renderer.Render(ctx, frame, s.pixmap); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := s.pixmap.EncodePNG(&buf); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	c := frame.Center()
	st := Status{
		Type:          "frame",
		Version:       frame.Version,
		Width:         frame.Width,
		Height:        frame.Height,
		Magnification: frame.Magnification(),
		Center:        [2]float64{real(c), imag(c)},
		AutoCycle:     s.state.AutoCycle(),
	}
	if err := wsjson.Write(ctx, s.conn, st); err != nil {
		return fmt.Errorf("write status: %w", err)
	}
	if err := s.conn.Write(ctx, websocket.MessageBinary, buf.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	s.sent, s.hasSent = frame.Version, true
	return nil
}
