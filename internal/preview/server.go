// Package preview serves the active document to the system browser. The
// server binds a loopback ephemeral port and always serves the most
// recently rendered HTML page.
package preview

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/AlexK-Notable/mdview/internal/logger"
)

type Server struct {
	mu  sync.RWMutex
	doc string
	srv *http.Server
	url string
	log logger.Logger
}

func NewServer(log logger.Logger) *Server {
	return &Server{log: log}
}

// SetDocument replaces the page served at /. Safe to call whether or not
// the server has started.
func (s *Server) SetDocument(html string) {
	s.mu.Lock()
	s.doc = html
	s.mu.Unlock()
}

// Start binds a loopback port and begins serving. Calling Start on a
// running server returns its existing URL.
func (s *Server) Start() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		return s.url, nil
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleDocument)

	s.srv = &http.Server{
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}
	s.url = fmt.Sprintf("http://%s/", ln.Addr().String())

	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.log.Error("PreviewServer", err, nil)
		}
	}()

	s.log.Info("PreviewServer", "serving preview", map[string]interface{}{
		"url": s.url,
	})
	return s.url, nil
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.mu.RLock()
	doc := s.doc
	s.mu.RUnlock()

	if doc == "" {
		http.Error(w, "no document open", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	fmt.Fprint(w, doc)
}

// URL returns the serving address, empty until Start succeeds.
func (s *Server) URL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.url
}

// Shutdown stops the server if it is running.
func (s *Server) Shutdown() {
	s.mu.Lock()
	srv := s.srv
	s.srv = nil
	s.url = ""
	s.mu.Unlock()

	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.log.Warning("PreviewServer", "shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// OpenURL launches the system browser at the given address.
func OpenURL(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
