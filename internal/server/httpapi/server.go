package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/campusauth/internal/logging"
)

// maxBodyBytes caps how much of a request body a router will read.
const maxBodyBytes = 1 << 20

// routerFunc is the transport-independent router contract shared by the
// three entry points.
type routerFunc func(ctx context.Context, body []byte) Response

// HTTPServer binds the entry points to POST routes and answers OPTIONS
// preflight with the fixed CORS headers.
type HTTPServer struct {
	address string
	logger  logging.Logger
	signup  *SignupHandler
	login   *LoginHandler
	reset   *ResetHandler
}

func NewHTTPServer(a string, l logging.Logger, signup *SignupHandler, login *LoginHandler, reset *ResetHandler) (*HTTPServer, error) {
	return &HTTPServer{
		address: a,
		logger:  l.With("module", "http_server"),
		signup:  signup,
		login:   login,
		reset:   reset,
	}, nil
}

func (s *HTTPServer) route(handle routerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for k, v := range corsHeaders() {
			w.Header().Set(k, v)
		}

		switch r.Method {
		case http.MethodOptions:
			w.WriteHeader(http.StatusNoContent)
			return
		case http.MethodPost:
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		resp := handle(r.Context(), body)

		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.StatusCode)
		_, _ = io.WriteString(w, resp.Body)
	}
}

func (s *HTTPServer) Run(ctx context.Context) error {

	mux := http.NewServeMux()
	mux.HandleFunc("/users", s.route(s.signup.Handle))
	mux.HandleFunc("/auth/login", s.route(s.login.Handle))
	mux.HandleFunc("/auth/reset", s.route(s.reset.Handle))

	srv := &http.Server{
		Addr:         s.address,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
