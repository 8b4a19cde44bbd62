package httpclient

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyTransport adapts resty.Client to the httpclient.Transport interface.
type RestyTransport struct {
	client *resty.Client
}

// NewRestyTransport creates a new RestyTransport with the specified timeout.
func NewRestyTransport(timeout time.Duration) *RestyTransport {
	c := resty.New()
	c.SetTimeout(timeout)
	return &RestyTransport{client: c}
}

// Get performs an HTTP GET request with the specified context, URL, query
// params, and headers.
func (t *RestyTransport) Get(ctx context.Context, url string, params, headers map[string]string) (Response, error) {
	resp, err := t.request(ctx, params, headers).Get(url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// Post performs an HTTP POST request. A non-nil body is serialized as JSON.
func (t *RestyTransport) Post(ctx context.Context, url string, body any, params, headers map[string]string) (Response, error) {
	return t.send(ctx, http.MethodPost, url, body, params, headers)
}

// Put performs an HTTP PUT request. A non-nil body is serialized as JSON.
func (t *RestyTransport) Put(ctx context.Context, url string, body any, params, headers map[string]string) (Response, error) {
	return t.send(ctx, http.MethodPut, url, body, params, headers)
}

// PostFile performs a multipart/form-data POST with file as the only field.
func (t *RestyTransport) PostFile(ctx context.Context, url, field, filename string, file io.Reader, params, headers map[string]string) (Response, error) {
	req := t.request(ctx, params, headers)
	req.SetFileReader(field, filename, file)
	resp, err := req.Post(url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

func (t *RestyTransport) send(ctx context.Context, method, url string, body any, params, headers map[string]string) (Response, error) {
	req := t.request(ctx, params, headers)
	if body != nil {
		req.SetBody(body)
		req.SetHeader("Content-Type", "application/json")
	}
	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

func (t *RestyTransport) request(ctx context.Context, params, headers map[string]string) *resty.Request {
	req := t.client.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	return req
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }
