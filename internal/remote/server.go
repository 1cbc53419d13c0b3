package remote

import (
	"net/http"
	"sync/atomic"

	"github.com/coder/websocket"

	"github.com/gogpu/mandelbrot"
)

// Option configures a Server.
type Option func(*options)

type options struct {
	width, height int
	maxPixels     int
	home          mandelbrot.Home
	origins       []string
}

func defaultOptions() options {
	return options{
		width:     640,
		height:    480,
		maxPixels: 1920 * 1080,
		home:      mandelbrot.DefaultHome,
	}
}

// WithSize sets the canvas size a session starts with.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithMaxPixels caps the canvas area a client may request by resizing.
func WithMaxPixels(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxPixels = n
		}
	}
}

// WithHome sets the home view of new sessions.
func WithHome(h mandelbrot.Home) Option {
	return func(o *options) {
		o.home = h
	}
}

// WithOriginPatterns sets the origins allowed to connect from a browser.
func WithOriginPatterns(patterns ...string) Option {
	return func(o *options) {
		o.origins = patterns
	}
}

// Server is an http.Handler that runs one explorer session per websocket
// connection. Sessions share the renderer's worker pool.
type Server struct {
	renderer *mandelbrot.Renderer
	opts     options
	active   atomic.Int64
}

// NewServer creates a server rendering with r.
func NewServer(r *mandelbrot.Renderer, opts ...Option) *Server {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Server{renderer: r, opts: o}
}

// Sessions returns the number of open sessions.
func (s *Server) Sessions() int {
	return int(s.active.Load())
}

// ServeHTTP upgrades the request and runs a session until the client
// leaves or presses the quit key.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.opts.origins,
	})
	if err != nil {
		mandelbrot.Logger().Warn("remote: accept", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer func() {
		_ = c.CloseNow()
	}()

	sess, err := newSession(c, s.renderer, s.opts)
	if err != nil {
		mandelbrot.Logger().Warn("remote: new session", "err", err)
		_ = c.Close(websocket.StatusInternalError, "session setup failed")
		return
	}

	s.active.Add(1)
	defer s.active.Add(-1)
	log := mandelbrot.Logger().With("remote", r.RemoteAddr)
	log.Info("remote: session opened")

	if err := sess.run(r.Context()); err != nil {
		log.Warn("remote: session ended", "err", err)
		return
	}
	log.Info("remote: session closed")
}
