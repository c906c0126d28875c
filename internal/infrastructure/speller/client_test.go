package speller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Check_CleanText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("text"); got != "correct text" {
			t.Fatalf("unexpected text field: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := NewClient(Config{URL: srv.URL})
	entries, err := client.Check(context.Background(), "correct text")
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestClient_Check_FlaggedText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"word":"helo","pos":0,"s":["hello"]}]`))
	}))
	defer srv.Close()

	client := NewClient(Config{URL: srv.URL})
	entries, err := client.Check(context.Background(), "helo")
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].Word != "helo" || len(entries[0].Suggestions) != 1 || entries[0].Suggestions[0] != "hello" {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}

func TestClient_Check_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(Config{URL: srv.URL})
	if _, err := client.Check(context.Background(), "text"); err == nil {
		t.Fatalf("expected error on 500 response")
	}
}

func TestClient_Check_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not-json"))
	}))
	defer srv.Close()

	client := NewClient(Config{URL: srv.URL})
	if _, err := client.Check(context.Background(), "text"); err == nil {
		t.Fatalf("expected error on malformed body")
	}
}

func TestClient_Check_Timeout(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer srv.Close()
	defer close(blocked)

	client := NewClient(Config{URL: srv.URL, Timeout: 50 * time.Millisecond})
	start := time.Now()
	_, err := client.Check(context.Background(), "text")
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if time.Since(start) > time.Second {
		t.Fatalf("timeout not bounded")
	}
}
