// Package http_server wraps net/http.Server with the timeout/context
// wiring pkg/http/server.go expects (Config read from viper,
// New building a server bound to ctx's cancellation), on the plain
// net/http idiom: there is no dedicated HTTP server-lifecycle library
// pulled in here.
package http_server

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Config holds the listener port and request timeouts, read from viper by
// the caller (pkg/http/server.go).
type Config struct {
	Port    int
	Timeout time.Duration
}

// New builds an *http.Server bound to config, shutting down gracefully
// when ctx is canceled.
func New(ctx context.Context, handler http.Handler, config Config) *http.Server {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.Port),
		Handler:      handler,
		ReadTimeout:  config.Timeout,
		WriteTimeout: config.Timeout,
		IdleTimeout:  config.Timeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	return srv
}
