package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/mandelbrot"
	"github.com/gogpu/mandelbrot/internal/remote"
)

func serveCmd(cfg *config) *cobra.Command {
	var (
		addr    string
		origins []string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the explorer over a websocket at /ws",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cfg, addr, origins)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")
	cmd.Flags().StringSliceVar(&origins, "origin", nil, "extra browser origins allowed to connect")
	return cmd
}

func runServe(ctx context.Context, cfg *config, addr string, origins []string) error {
	r, err := cfg.renderer()
	if err != nil {
		return err
	}
	defer r.Close()

	mux := http.NewServeMux()
	mux.Handle("/ws", remote.NewServer(r,
		remote.WithSize(cfg.width, cfg.height),
		remote.WithOriginPatterns(origins...),
	))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	log := mandelbrot.Logger()
	log.Info("serve: listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info("serve: stopped")
	return nil
}
