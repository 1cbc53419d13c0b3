package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/gg"

	"github.com/gogpu/mandelbrot"
)

type renderFlags struct {
	output string
	center string
	zoom   float64
	hud    bool
}

func renderCmd(cfg *config) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame to a PNG file",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, cfg, f)
		},
	}
	cmd.Flags().StringVarP(&f.output, "output", "o", "mandelbrot.png", "output PNG path")
	cmd.Flags().StringVar(&f.center, "center", "", "view center as re,im (default: home view)")
	cmd.Flags().Float64Var(&f.zoom, "zoom", 1, "magnification relative to the home view")
	cmd.Flags().BoolVar(&f.hud, "hud", false, "draw the position caption")
	return cmd
}

// frameFor builds the frame described by the render flags.
func frameFor(cfg *config, f *renderFlags) (mandelbrot.Frame, error) {
	if f.zoom <= 0 {
		return mandelbrot.Frame{}, fmt.Errorf("zoom must be positive, got %v", f.zoom)
	}
	home := mandelbrot.DefaultHome
	center := home.Center
	if f.center != "" {
		var err error
		if center, err = parseCenter(f.center); err != nil {
			return mandelbrot.Frame{}, err
		}
	}
	view := mandelbrot.ViewAt(home, center, f.zoom)
	return mandelbrot.NewFrame(cfg.width, cfg.height, view, home, mandelbrot.RGBA{})
}

func runRender(cmd *cobra.Command, cfg *config, f *renderFlags) error {
	frame, err := frameFor(cfg, f)
	if err != nil {
		return err
	}
	r, err := cfg.renderer()
	if err != nil {
		return err
	}
	defer r.Close()

	pm, err := mandelbrot.NewPixmap(frame.Width, frame.Height)
	if err != nil {
		return err
	}
	if err := r.Render(cmd.Context(), frame, pm); err != nil {
		return err
	}

	if !f.hud {
		return pm.SavePNG(f.output)
	}

	h, err := newHUD(14)
	if err != nil {
		return err
	}
	dc := gg.NewContext(frame.Width, frame.Height)
	defer func() { _ = dc.Close() }()
	compose(dc, pm, frame, h, false)
	if err := dc.SavePNG(f.output); err != nil {
		return fmt.Errorf("save %s: %w", f.output, err)
	}
	mandelbrot.Logger().Info("render: saved", "path", f.output, "caption", h.caption(frame, false))
	return nil
}
