package preview

import (
	"io"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/AlexK-Notable/mdview/internal/logger"
)

func testLogger() logger.Logger {
	return logger.NewZerolog(os.Stderr, zerolog.Disabled)
}

func TestServeDocument(t *testing.T) {
	s := NewServer(testLogger())
	defer s.Shutdown()

	s.SetDocument("<html><body><h1>notes</h1></body></html>")

	url, err := s.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), "<h1>notes</h1>") {
		t.Errorf("body missing document content: %q", body)
	}
}

func TestServeNoDocument(t *testing.T) {
	s := NewServer(testLogger())
	defer s.Shutdown()

	url, err := s.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestSetDocumentReplaces(t *testing.T) {
	s := NewServer(testLogger())
	defer s.Shutdown()

	s.SetDocument("<p>first</p>")
	url, err := s.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	s.SetDocument("<p>second</p>")

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if !strings.Contains(string(body), "second") {
		t.Errorf("body = %q, want replaced document", body)
	}
}

func TestStartIdempotent(t *testing.T) {
	s := NewServer(testLogger())
	defer s.Shutdown()

	first, err := s.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	second, err := s.Start()
	if err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if first != second {
		t.Errorf("Start returned %q then %q, want same URL", first, second)
	}
}

func TestShutdownClearsURL(t *testing.T) {
	s := NewServer(testLogger())

	if _, err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Shutdown()

	if got := s.URL(); got != "" {
		t.Errorf("URL after Shutdown = %q, want empty", got)
	}
}
