package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"

	"github.com/gogpu/mandelbrot"
	"github.com/gogpu/mandelbrot/explorer"
	"github.com/gogpu/mandelbrot/kernel"
)

func viewCmd(cfg *config) *cobra.Command {
	var showHUD bool
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open an interactive window",
		Long: `Open an interactive window.

Scroll to zoom about the cursor, drag with the left button to pan.
Keys: Z reset view, R reset colors, 1/2/3 shift red/green/blue,
C toggle color cycling, Escape quit.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runView(cmd, cfg, showHUD)
		},
	}
	cmd.Flags().BoolVar(&showHUD, "hud", true, "show the position caption")
	return cmd
}

func runView(cmd *cobra.Command, cfg *config, showHUD bool) error {
	log := mandelbrot.Logger()

	// The shader program is validated up front so that a bad iteration
	// limit fails before a window opens.
	prog, err := kernel.Compile(cfg.limit)
	if err != nil {
		return err
	}
	layout := prog.Layout()
	log.Info("view: kernel ready", "entries", prog.EntryPoints(), "bindings", len(layout.Entries), "words", len(prog.Words()))

	r, err := cfg.renderer()
	if err != nil {
		return err
	}
	defer r.Close()

	state, err := mandelbrot.NewViewState(cfg.width, cfg.height, mandelbrot.DefaultHome)
	if err != nil {
		return err
	}
	pm, err := mandelbrot.NewPixmap(cfg.width, cfg.height)
	if err != nil {
		return err
	}
	var h *hud
	if showHUD {
		if h, err = newHUD(14); err != nil {
			return err
		}
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle("Mandelbrot").
		WithSize(cfg.width, cfg.height).
		WithContinuousRender(true))

	explorer.Bind(app.EventSource(), state, explorer.OnQuit(func() { app.Quit() }))

	var (
		canvas  *ggcanvas.Canvas
		drawn   uint64
		painted bool
		last    = time.Now()
	)
	app.OnDraw(func(dc *gogpu.Context) {
		now := time.Now()
		state.Tick(now.Sub(last))
		last = now

		w, ht := dc.Width(), dc.Height()
		if w <= 0 || ht <= 0 {
			return
		}
		state.Resize(w, ht)

		if canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			if canvas, err = ggcanvas.New(provider, w, ht); err != nil {
				log.Error("view: create canvas", "err", err)
				app.Quit()
				return
			}
		}
		if cw, ch := canvas.Size(); cw != w || ch != ht {
			if err := canvas.Resize(w, ht); err != nil {
				log.Warn("view: resize canvas", "err", err)
			}
			painted = false
		}

		frame := state.Snapshot()
		if !painted || frame.Version != drawn {
			if err := r.Render(cmd.Context(), frame, pm); err != nil {
				log.Error("view: render", "err", err)
				return
			}
			auto := state.AutoCycle()
			if err := canvas.Draw(func(cc *gg.Context) {
				compose(cc, pm, frame, h, auto)
			}); err != nil {
				log.Warn("view: draw", "err", err)
			}
			drawn, painted = frame.Version, true
		}

		if err := canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
			log.Warn("view: present", "err", err)
		}
	})

	app.OnClose(func() {
		if canvas != nil {
			_ = canvas.Close()
		}
	})

	go func() {
		<-cmd.Context().Done()
		app.Quit()
	}()

	return app.Run()
}
