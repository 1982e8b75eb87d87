package main

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func (a *sharerApp) startServer() error {
	a.info("Start server(s)...")
	// Load router
	a.reloadRouter()
	// Set basic middlewares
	h := headAsGetHandler(a.d)
	if a.cfg.Server.Logging {
		if err := a.initHTTPLog(); err != nil {
			return err
		}
		h = a.logMiddleware(h)
	}
	// Start server
	s := &http.Server{
		Addr:              ":" + strconv.Itoa(a.cfg.Server.Port),
		Handler:           h,
		ReadHeaderTimeout: 1 * time.Minute,
		ReadTimeout:       5 * time.Minute,
		WriteTimeout:      5 * time.Minute,
	}
	a.shutdown.Add(a.shutdownServer(s, "main server"))
	listener, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	a.info("Server listening", zap.String("address", listener.Addr().String()))
	go func() {
		if err := s.Serve(listener); err != nil && err != http.ErrServerClosed {
			a.error("Server failed", zap.Error(err))
			a.shutdown.ShutdownAndWait()
		}
	}()
	return nil
}

func (a *sharerApp) shutdownServer(s *http.Server, name string) func() {
	return func() {
		toc, c := context.WithTimeout(context.Background(), 5*time.Second)
		defer c()
		if err := s.Shutdown(toc); err != nil {
			a.error("Error on server shutdown", zap.String("server", name), zap.Error(err))
		}
		a.info("Stopped server", zap.String("server", name))
	}
}

func (a *sharerApp) reloadRouter() {
	a.d = a.buildRouter()
}

const (
	sharePath = "/share"
	pingPath  = "/ping"
)

func (a *sharerApp) buildRouter() http.Handler {
	r := chi.NewMux()

	// Basic middleware
	r.Use(fixHTTPHandler)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	// Health check
	r.Get(pingPath, servePing)

	// Share links
	r.Route(sharePath, a.shareRouter)

	r.NotFound(serve404)
	r.MethodNotAllowed(serveNotAllowed)

	return r
}
