// Command mandel explores the Mandelbrot set.
//
// Usage:
//
//	mandel view                      open an interactive window
//	mandel render -o out.png         render one frame headlessly
//	mandel serve --addr :8080        serve the explorer over a websocket
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/mandelbrot"
)

// config holds the flags shared by every subcommand.
type config struct {
	palette  string
	limit    int
	workers  int
	width    int
	height   int
	logLevel string
}

func mainCmd() *cobra.Command {
	cfg := &config{}
	cmd := &cobra.Command{
		Use:          "mandel",
		Short:        "Explore the Mandelbrot set",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseLevel(cfg.logLevel)
			if err != nil {
				return err
			}
			mandelbrot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.palette, "palette", "", "palette file with 16 r,g,b lines (default: built-in)")
	flags.IntVar(&cfg.limit, "limit", mandelbrot.DefaultIterationLimit, "iteration limit")
	flags.IntVar(&cfg.workers, "workers", 0, "render workers (0 = GOMAXPROCS)")
	flags.IntVar(&cfg.width, "width", 800, "canvas width in pixels")
	flags.IntVar(&cfg.height, "height", 600, "canvas height in pixels")
	flags.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	cmd.AddCommand(viewCmd(cfg), renderCmd(cfg), serveCmd(cfg))
	return cmd
}

// renderer builds the CPU renderer from the shared flags.
func (c *config) renderer() (*mandelbrot.Renderer, error) {
	p := mandelbrot.DefaultPalette()
	if c.palette != "" {
		var err error
		if p, err = mandelbrot.LoadPaletteFile(c.palette); err != nil {
			return nil, err
		}
	}
	if c.width <= 0 || c.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", mandelbrot.ErrInvalidDimensions, c.width, c.height)
	}
	return mandelbrot.NewRenderer(p,
		mandelbrot.WithIterationLimit(c.limit),
		mandelbrot.WithWorkers(c.workers),
	), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// parseCenter parses "re,im" into a complex number.
func parseCenter(s string) (complex128, error) {
	re, im, ok := strings.Cut(s, ",")
	if !ok {
		return 0, fmt.Errorf("center %q: want re,im", s)
	}
	r, err := strconv.ParseFloat(strings.TrimSpace(re), 64)
	if err != nil {
		return 0, fmt.Errorf("center %q: %w", s, err)
	}
	i, err := strconv.ParseFloat(strings.TrimSpace(im), 64)
	if err != nil {
		return 0, fmt.Errorf("center %q: %w", s, err)
	}
	return complex(r, i), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// cobra has already printed the error.
		stop()
		os.Exit(1)
	}
}
