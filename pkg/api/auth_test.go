package api

import (
	"context"
	"errors"
	"testing"
)

func TestLoginExtractsToken(t *testing.T) {
	tr := &fakeTransport{body: []byte(`{"token":"abc123"}`)}
	c := New("http://backend", tr, nil, nil)

	token, err := c.Login(context.Background(), "admin@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "abc123" {
		t.Fatalf("token = %q, want abc123", token)
	}
	call := tr.calls[0]
	if call.method != "POST" || call.url != "http://backend/api/login/" {
		t.Fatalf("unexpected dispatch: %s %s", call.method, call.url)
	}
	body, ok := call.body.(loginRequest)
	if !ok || body.Email != "admin@example.com" || body.Password != "hunter2" {
		t.Fatalf("unexpected body: %#v", call.body)
	}
}

func TestCheckTokenValid(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		want    bool
		wantErr bool
	}{
		{name: "200 success true", status: 200, body: `{"success":true}`, want: true},
		{name: "200 success false", status: 200, body: `{"success":false}`, want: false},
		{name: "401 is a negative verdict", status: 401, body: `{"success":false}`, want: false},
		{name: "403 is a negative verdict", status: 403, body: `{}`, want: false},
		{name: "401 with a non-JSON payload is still a negative verdict", status: 401, body: "<html>unauthorized</html>", want: false},
		{name: "500 fails", status: 500, body: "boom", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := &fakeTransport{status: tc.status, body: []byte(tc.body)}
			c := New("http://backend", tr, staticTokens{token: "tok"}, nil)

			valid, err := c.CheckTokenValid(context.Background())
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for status %d", tc.status)
				}
				var statusErr *StatusError
				if !errors.As(err, &statusErr) {
					t.Fatalf("expected StatusError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CheckTokenValid: %v", err)
			}
			if valid != tc.want {
				t.Fatalf("valid = %v, want %v", valid, tc.want)
			}
		})
	}
}

func TestCheckTokenValidSendsTokenInBody(t *testing.T) {
	tr := &fakeTransport{body: []byte(`{"success":true}`)}
	c := New("http://backend", tr, staticTokens{token: "tok-body"}, nil)

	if _, err := c.CheckTokenValid(context.Background()); err != nil {
		t.Fatalf("CheckTokenValid: %v", err)
	}
	call := tr.calls[0]
	if call.url != "http://backend/api/verification/" {
		t.Fatalf("url = %q", call.url)
	}
	// The probe predates header injection: the token travels in the body.
	if call.headers["token"] != "" {
		t.Fatalf("probe must not inject the token header, got %q", call.headers["token"])
	}
	body, ok := call.body.(verificationRequest)
	if !ok || body.Token != "tok-body" {
		t.Fatalf("unexpected body: %#v", call.body)
	}
}
