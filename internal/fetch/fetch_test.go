package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestGetDocument(t *testing.T) {
	var gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`<html><body><div class="scorebox">here</div></body></html>`))
	}))
	defer srv.Close()

	c := NewClient(0, zap.NewNop())
	doc, err := c.GetDocument(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if gotUserAgent != UserAgent {
		t.Errorf("expected User-Agent %q, got %q", UserAgent, gotUserAgent)
	}
	if els := doc.Select("div.scorebox"); len(els) != 1 {
		t.Errorf("expected parsed document with 1 scorebox div, got %d", len(els))
	}
}

func TestGetDocumentNotFoundIsPermanent(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(0, zap.NewNop())
	if _, err := c.GetDocument(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 404 response")
	}
	if requests != 1 {
		t.Errorf("expected a 404 not to be retried, got %d requests", requests)
	}
}

func TestGetDocumentCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(0.001, zap.NewNop()) // limiter forces a wait the context interrupts
	if _, err := c.GetDocument(ctx, srv.URL); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestDailyIndexURL(t *testing.T) {
	day := time.Date(2023, time.October, 4, 0, 0, 0, 0, time.UTC)
	want := "https://www.basketball-reference.com/boxscores/?month=10&day=04&year=2023"
	if got := DailyIndexURL(day); got != want {
		t.Errorf("DailyIndexURL = %q, expected %q", got, want)
	}
}
