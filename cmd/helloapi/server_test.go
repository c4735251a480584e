//go:build !tinygo

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/portal/fetch"
	"portal/portal/message"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func get(t *testing.T, s *server, path string) message.Message {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s status = %d, want 200", path, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("GET %s content type = %q", path, ct)
	}
	m, err := message.Decode(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("GET %s decode: %v (body %q)", path, err, rec.Body.String())
	}
	return m
}

func TestHello(t *testing.T) {
	m := get(t, newServer(defaultClicks), fetch.PathHello)
	if m.Text != "Hello, PyPortal!" {
		t.Fatalf("text = %q", m.Text)
	}
	if !m.HasColor || m.Packed() != 0x07E0 {
		t.Fatalf("color = %#04x (has %v), want 0x07e0", m.Packed(), m.HasColor)
	}
}

func TestClickRotates(t *testing.T) {
	s := newServer([]reply{
		{text: "one", color: "#FF0000"},
		{text: "n=%d"},
	})
	want := []string{"one", "n=2", "one", "n=4"}
	for i, w := range want {
		m := get(t, s, fetch.PathClick)
		if m.Text != w {
			t.Fatalf("click %d text = %q, want %q", i+1, m.Text, w)
		}
		if m.HasColor != (i%2 == 0) {
			t.Fatalf("click %d HasColor = %v", i+1, m.HasColor)
		}
	}
}

func TestClickWithoutRotation(t *testing.T) {
	s := newServer(nil)
	if m := get(t, s, fetch.PathClick); m.Text != "Click 1" {
		t.Fatalf("text = %q, want %q", m.Text, "Click 1")
	}
}

func TestUnknownPath(t *testing.T) {
	rec := httptest.NewRecorder()
	newServer(nil).router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestFetchClientAgainstServer(t *testing.T) {
	srv := httptest.NewServer(newServer(defaultClicks).router)
	defer srv.Close()

	c := fetch.New(srv.Client(), srv.URL)
	m, err := c.Get(context.Background(), fetch.PathClick)
	if err != nil {
		t.Fatalf("Get() err = %v", err)
	}
	if m.Text != "Clicked!" || m.Packed() != 0xF800 {
		t.Fatalf("Get() = %q %#04x, want %q 0xf800", m.Text, m.Packed(), "Clicked!")
	}
}
