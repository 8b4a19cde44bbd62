package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRestyTransportGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("expected GET, got %s", r.Method)
		}
		if got := r.URL.Query().Get("timeInterval"); got != "all" {
			t.Fatalf("missing query param, got %q", got)
		}
		if got := r.Header.Get("X-Test"); got != "1" {
			t.Fatalf("missing header, got %q", got)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tr := NewRestyTransport(2 * time.Second)
	resp, err := tr.Get(context.Background(), srv.URL,
		map[string]string{"timeInterval": "all"},
		map[string]string{"X-Test": "1"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode())
	}
	if string(resp.Body()) != `{"ok":true}` {
		t.Fatalf("body = %q", resp.Body())
	}
}

func TestRestyTransportPostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Fatalf("content type = %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"id":7}` {
			t.Fatalf("body = %q", body)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tr := NewRestyTransport(2 * time.Second)
	if _, err := tr.Post(context.Background(), srv.URL, map[string]int{"id": 7}, nil, nil); err != nil {
		t.Fatalf("Post: %v", err)
	}
}

func TestRestyTransportReturnsResponseOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	tr := NewRestyTransport(time.Second)
	resp, err := tr.Get(context.Background(), srv.URL, nil, nil)
	if err != nil {
		t.Fatalf("transport should not fail on 401: %v", err)
	}
	if resp.StatusCode() != http.StatusUnauthorized {
		t.Fatalf("status = %d", resp.StatusCode())
	}
}

func TestRestyTransportPostFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		file, header, err := r.FormFile("csvFile")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		if header.Filename != "readings.csv" {
			t.Fatalf("filename = %q", header.Filename)
		}
		data, _ := io.ReadAll(file)
		if string(data) != "ts,kwh\n" {
			t.Fatalf("file contents = %q", data)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tr := NewRestyTransport(2 * time.Second)
	_, err := tr.PostFile(context.Background(), srv.URL, "csvFile", "readings.csv",
		strings.NewReader("ts,kwh\n"), nil, nil)
	if err != nil {
		t.Fatalf("PostFile: %v", err)
	}
}
