package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/wattgrid-hq/wattgrid-client/pkg/httpclient"
)

func TestSubmitNewMeterReadings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/fileProcessing/7" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("token"); got != "tok" {
			t.Fatalf("token header = %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		files := r.MultipartForm.File["csvFile"]
		if len(files) != 1 {
			t.Fatalf("expected one csvFile part, got %d", len(files))
		}
		if extra := len(r.MultipartForm.Value) + len(r.MultipartForm.File) - 1; extra != 0 {
			t.Fatalf("expected no fields besides csvFile, got %d extra", extra)
		}
		file, err := files[0].Open()
		if err != nil {
			t.Fatalf("open part: %v", err)
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		if string(data) != "ts,kwh\n1,2\n" {
			t.Fatalf("file contents = %q", data)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, httpclient.NewRestyTransport(2*time.Second), staticTokens{token: "tok"}, nil)
	err := c.SubmitNewMeterReadings(context.Background(), 7, "week.csv", strings.NewReader("ts,kwh\n1,2\n"))
	if err != nil {
		t.Fatalf("SubmitNewMeterReadings: %v", err)
	}
}

func TestSubmitNewMeterReadingsFailsOnBadStatus(t *testing.T) {
	tr := &fakeTransport{status: 400, body: []byte("bad csv")}
	c := New("http://backend", tr, staticTokens{token: "tok"}, nil)

	err := c.SubmitNewMeterReadings(context.Background(), 7, "week.csv", strings.NewReader("x"))
	if err == nil {
		t.Fatalf("expected error on 400")
	}
	if tr.calls[0].field != "csvFile" {
		t.Fatalf("field = %q", tr.calls[0].field)
	}
}
