package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fantasy-stats-web/logging"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

type FantasyStatsHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
	logger    *logging.Logger
}

func NewFantasyStatsHttpServer(router *Router, muxRouter *mux.Router, addr string) *FantasyStatsHttpServer {
	return &FantasyStatsHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
		logger:    logging.For("FantasyStatsHttpServer"),
	}
}

// Run serves until ctx is done and gives in-flight requests shutdownTimeout
// to finish.
func (s *FantasyStatsHttpServer) Run(ctx context.Context) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start the server in a goroutine so it doesn't block
	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}
	s.logger.Info("Shutting down the server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.logger.Info("Server exiting")
	return nil
}
