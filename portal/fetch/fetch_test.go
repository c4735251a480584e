package fetch

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/portal/message"
)

func TestGetDecodesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != PathHello {
			t.Errorf("path = %s, want %s", r.URL.Path, PathHello)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"message":"Hi","color":"#FF0000"}`)
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL+"/")
	m, err := c.Get(context.Background(), PathHello)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if m.Text != "Hi" || m.Packed() != 0xF800 {
		t.Fatalf("Get() = %+v, want Hi/0xf800", m)
	}
}

func TestGetStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(srv.Client(), srv.URL).Get(context.Background(), PathClick)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("Get() err = %v, want *StatusError", err)
	}
	if se.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("StatusCode = %d, want %d", se.StatusCode, http.StatusServiceUnavailable)
	}
}

func TestGetMissingMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"text":"wrong key"}`)
	}))
	defer srv.Close()

	_, err := New(srv.Client(), srv.URL).Get(context.Background(), PathHello)
	if !errors.Is(err, message.ErrMissingMessage) {
		t.Fatalf("Get() err = %v, want ErrMissingMessage", err)
	}
}

type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

type stubDoer struct {
	status int
	body   *trackingBody
	err    error
	reqs   []*http.Request
}

func (d *stubDoer) Do(req *http.Request) (*http.Response, error) {
	d.reqs = append(d.reqs, req)
	if d.err != nil {
		return nil, d.err
	}
	return &http.Response{StatusCode: d.status, Body: d.body}, nil
}

func TestRawClosesBody(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"ok", http.StatusOK, `{"message":"x"}`},
		{"bad status", http.StatusNotFound, `missing`},
		{"bad json", http.StatusOK, `{`},
	}
	for _, tt := range tests {
		body := &trackingBody{Reader: bytes.NewBufferString(tt.body)}
		d := &stubDoer{status: tt.status, body: body}
		_, _ = New(d, "http://portal.invalid").Get(context.Background(), PathHello)
		if !body.closed {
			t.Fatalf("%s: body not closed", tt.name)
		}
	}
}

func TestGetTransportError(t *testing.T) {
	boom := errors.New("radio off")
	d := &stubDoer{err: boom}
	_, err := New(d, "http://portal.invalid").Get(context.Background(), PathClick)
	if !errors.Is(err, boom) {
		t.Fatalf("Get() err = %v, want %v", err, boom)
	}
	if len(d.reqs) != 1 {
		t.Fatalf("requests = %d, want 1", len(d.reqs))
	}
	if got := d.reqs[0].URL.String(); got != "http://portal.invalid/api/click" {
		t.Fatalf("URL = %s", got)
	}
}
