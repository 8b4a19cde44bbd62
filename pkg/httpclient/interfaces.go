package httpclient

import (
	"context"
	"io"
)

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Transport abstracts HTTP calls so callers can inject mocks or different
// transports. Each method performs exactly one network round trip; params
// become the query string and headers are sent as-is.
type Transport interface {
	Get(ctx context.Context, url string, params, headers map[string]string) (Response, error)
	Post(ctx context.Context, url string, body any, params, headers map[string]string) (Response, error)
	Put(ctx context.Context, url string, body any, params, headers map[string]string) (Response, error)
	// PostFile issues a multipart/form-data POST carrying file under the
	// given form field, with no other fields.
	PostFile(ctx context.Context, url, field, filename string, file io.Reader, params, headers map[string]string) (Response, error)
}
