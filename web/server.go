package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const shutdownTimeout = 5 * time.Second

type contextKey string

const requestIDKey contextKey = "journey.request_id"

// ServerOptions configures the board HTTP server.
type ServerOptions struct {
	Handler http.Handler
	Logger  *log.Logger
}

// Server hosts a board handler behind request-id, logging, and recovery
// middleware.
type Server struct {
	handler http.Handler
	logger  *log.Logger
}

// NewServer wraps opts.Handler for serving.
func NewServer(opts ServerOptions) (*Server, error) {
	if opts.Handler == nil {
		return nil, fmt.Errorf("handler is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "journey: ", log.LstdFlags)
	}
	return &Server{handler: opts.Handler, logger: logger}, nil
}

// Handler returns the wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.withRequestID(s.logRequests(s.recoverHandler(s.handler)))
}

// Serve listens on addr until the listener fails or an interrupt arrives.
func (s *Server) Serve(addr string) error {
	server := &http.Server{
		Addr:     addr,
		Handler:  s.Handler(),
		ErrorLog: s.logger,
	}

	listenErrs := make(chan error, 1)
	go func() {
		listenErrs <- server.ListenAndServe()
	}()
	s.logf("serving board at %s", ResolveBaseURL(addr))

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	select {
	case err := <-listenErrs:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logf("server stopped: %v", err)
			return err
		}
		return nil
	case <-interrupts:
		s.logf("interrupt received, shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		shutdownErr := server.Shutdown(shutdownCtx)
		cancel()
		listenErr := <-listenErrs
		if errors.Is(listenErr, http.ErrServerClosed) {
			listenErr = nil
		}
		return errors.Join(shutdownErr, listenErr)
	}
}

// ResolveAddr returns the listen address for addr, or for port when addr is
// blank. A bare port number listens on the loopback interface.
func ResolveAddr(addr string, port int) (string, error) {
	if strings.TrimSpace(addr) != "" {
		return normalizeAddr(addr)
	}
	if port <= 0 || port > 65535 {
		return "", fmt.Errorf("port out of range: %d", port)
	}
	return fmt.Sprintf("127.0.0.1:%d", port), nil
}

func normalizeAddr(addr string) (string, error) {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		return "", fmt.Errorf("address is required")
	}
	if strings.Contains(trimmed, ":") {
		return trimmed, nil
	}
	port, err := strconv.Atoi(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid port %q", trimmed)
	}
	if port <= 0 || port > 65535 {
		return "", fmt.Errorf("port out of range: %d", port)
	}
	return fmt.Sprintf("127.0.0.1:%d", port), nil
}

// ResolveBaseURL returns the URL a browser on this machine would use for addr.
func ResolveBaseURL(addr string) string {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return strings.TrimRight(trimmed, "/")
	}
	host := trimmed
	if strings.HasPrefix(host, ":") {
		host = "127.0.0.1" + host
	}
	if strings.HasPrefix(host, "0.0.0.0:") {
		host = "127.0.0.1:" + strings.TrimPrefix(host, "0.0.0.0:")
	}
	return "http://" + host
}

// RequestIDFromContext returns the request id assigned by the server.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get("X-Request-Id"))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		writer := &responseTracker{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(writer, r)
		s.logf("%s %s %s %d %s", RequestIDFromContext(r.Context()), r.Method, r.URL.Path, writer.status, time.Since(start).Round(time.Millisecond))
	})
}

func (s *Server) recoverHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writer := &responseTracker{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			if recovered := recover(); recovered != nil {
				s.logf("%s panic handling request %s %s: %v\n%s", RequestIDFromContext(r.Context()), r.Method, r.URL.Path, recovered, debug.Stack())
				if writer.wroteHeader {
					return
				}
				if strings.HasSuffix(r.URL.Path, ".json") {
					writeJSON(writer, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
					return
				}
				http.Error(writer, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(writer, r)
	})
}

func (s *Server) logf(format string, args ...any) {
	if s == nil || s.logger == nil {
		return
	}
	s.logger.Printf(format, args...)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(payload)
}

type responseTracker struct {
	http.ResponseWriter
	wroteHeader bool
	status      int
}

func (w *responseTracker) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
	}
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseTracker) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(data)
}
