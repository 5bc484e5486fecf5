package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/milkyway-arcade/internal/platform/watch"
)

// startWatch serves the spectator feed on addr. An empty addr disables it
// and returns a nil hub.
func startWatch(addr string, logger *log.Logger) (*watch.Hub, func()) {
	if addr == "" {
		return nil, func() {}
	}

	hub := watch.NewHub(logger.WithPrefix("watch"))
	go hub.Run()

	srv := &http.Server{
		Addr:              addr,
		Handler:           hub.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("spectator server failed", "addr", addr, "err", err)
		}
	}()
	logger.Info("spectator feed listening", "addr", addr, "path", "/ws?game=<id>")

	return hub, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
		hub.Close()
	}
}
