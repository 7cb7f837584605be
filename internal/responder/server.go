// Package responder serves the example pages shown in the documentation:
// a static HTML page on GET / and a JSON status on GET /api/status.
package responder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	Container       = "Nova"
	StatusRunning   = "running"
	shutdownTimeout = 5 * time.Second
)

// Status is the body of GET /api/status.
type Status struct {
	Status    string  `json:"status"`
	Runtime   string  `json:"runtime"`
	Container string  `json:"container"`
	Uptime    float64 `json:"uptime"`
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>{{.Title}}</title>
    <style>
        body {
            font-family: 'Inter', sans-serif;
            background: linear-gradient(135deg, {{.From}} 0%, {{.To}} 100%);
            color: white;
            display: flex;
            justify-content: center;
            align-items: center;
            height: 100vh;
            margin: 0;
        }
        .container {
            text-align: center;
            background: rgba(255, 255, 255, 0.1);
            padding: 3rem;
            border-radius: 20px;
            backdrop-filter: blur(10px);
        }
        h1 { font-size: 3rem; margin-bottom: 1rem; }
        p { font-size: 1.2rem; }
    </style>
</head>
<body>
    <div class="container">
        <h1>{{.Heading}}</h1>
        <p>{{.Tagline}}</p>
        <p>Startup time: <strong>{{.Startup}}</strong></p>
    </div>
</body>
</html>
`))

type Server struct {
	profile Profile
	addr    string
	log     *zap.Logger
	start   time.Time
	now     func() time.Time
	page    []byte
}

// New builds a server for profile. An empty addr listens on the profile's
// port.
func New(profile Profile, addr string, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if addr == "" {
		addr = fmt.Sprintf(":%d", profile.Port)
	}
	var buf bytes.Buffer
	data := struct {
		Profile
		From, To template.CSS
	}{profile, template.CSS(profile.Gradient[0]), template.CSS(profile.Gradient[1])}
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return &Server{
		profile: profile,
		addr:    addr,
		log:     log.With(zap.String("profile", profile.Name)),
		start:   time.Now(),
		now:     time.Now,
		page:    buf.Bytes(),
	}, nil
}

func (s *Server) Addr() string { return s.addr }

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	return s.logRequests(mux)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(s.page)
}

func (s *Server) status() Status {
	uptime := s.now().Sub(s.start).Seconds()
	if uptime < 0 {
		uptime = 0
	}
	return Status{
		Status:    StatusRunning,
		Runtime:   s.profile.Runtime,
		Container: Container,
		Uptime:    uptime,
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.status()); err != nil {
		s.log.Warn("encode status", zap.Error(err))
	}
}

// Run listens on the configured address until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts on ln until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", ln.Addr().String()), zap.String("runtime", s.profile.Runtime))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("server stopped")
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.code),
			zap.Duration("elapsed", time.Since(start)))
	})
}
