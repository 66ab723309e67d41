// Package statsview serves live charts of the Go runtime statistics, such
// as heap usage and goroutine count, over HTTP.
package statsview

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/retroenv/retrogolib/log"
)

// DefaultAddress is the listen address of the stats server.
const DefaultAddress = "localhost:12600"

const path = "/debug/statsview"

// Server serves the stats page until its context is cancelled.
type Server struct {
	logger  *log.Logger
	address string
}

// New returns a stats server listening on the given address.
func New(logger *log.Logger, address string) *Server {
	return &Server{
		logger:  logger,
		address: address,
	}
}

// URL returns the address of the stats page.
func (s *Server) URL() string {
	return "http://" + s.address + path
}

// Launch starts the server on a new goroutine and shuts it down once ctx is
// done. The returned channel is closed after the server stopped.
func (s *Server) Launch(ctx context.Context) <-chan struct{} {
	// the viewer configuration is package global
	viewer.SetConfiguration(viewer.WithAddr(s.address))
	mgr := statsview.New()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := mgr.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Warn("Stats server stopped", log.Err(err))
		}
	}()
	go func() {
		<-ctx.Done()
		mgr.Stop()
	}()

	s.logger.Info("Stats server available", log.String("url", s.URL()))
	return done
}
