// Package serve hosts the workspace over plain HTTP for the browser editor.
// The editor loads ES modules, manifests, and the registry directly from
// disk paths, so the server's whole job is static files plus the CORS and
// content-type headers browsers demand.
package serve

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Server is a static file server over one directory.
type Server struct {
	Addr string
	Dir  string
	Log  *slog.Logger
}

// New creates a Server. A nil logger discards request logs.
func New(addr, dir string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{Addr: addr, Dir: dir, Log: log}
}

// Handler returns the HTTP handler: a file server wrapped with CORS headers,
// a text/javascript content type for .js files (ES-module loading fails on
// the default type in some browsers), and request logging.
func (s *Server) Handler() http.Handler {
	files := http.FileServer(http.Dir(s.Dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		if strings.HasSuffix(r.URL.Path, ".js") {
			h.Set("Content-Type", "text/javascript")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		files.ServeHTTP(w, r)
		s.Log.Info("request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr, "duration", time.Since(start))
	})
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.Addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.Log.Info("serving workspace", "addr", s.Addr, "dir", s.Dir)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
