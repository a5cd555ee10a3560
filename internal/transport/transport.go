package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"

	"github.com/pterm/pterm"
)

// ErrTransport marks failures that happened before a usable response
// arrived: dial errors, cancelled contexts, unreadable or non-JSON bodies.
var ErrTransport = errors.New("transport error")

// Response is a completed request with a JSON body.
type Response struct {
	Status int
	Body   json.RawMessage
}

// Callback receives the outcome of one request. Exactly one of err and
// resp is non-nil.
type Callback func(err error, resp *Response)

type Options struct {
	Method   string
	URL      string
	Data     Params
	Callback Callback
}

// Transport issues a request and reports back through Options.Callback.
// Send never blocks on the network.
type Transport interface {
	Send(ctx context.Context, opts Options)
}

// check it meets the interface
var _ Transport = &HTTPTransport{}

type HTTPTransport struct {
	client *http.Client
	logger *pterm.Logger
	wg     sync.WaitGroup
}

type Option func(*HTTPTransport)

func WithHTTPClient(client *http.Client) Option {
	return func(t *HTTPTransport) {
		if client != nil {
			t.client = client
		}
	}
}

func WithLogger(logger *pterm.Logger) Option {
	return func(t *HTTPTransport) {
		if logger != nil {
			t.logger = logger
		}
	}
}

func NewHTTPTransport(opts ...Option) *HTTPTransport {
	t := &HTTPTransport{
		client: &http.Client{},
		logger: pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *HTTPTransport) Send(ctx context.Context, opts Options) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		resp, err := t.do(ctx, opts)
		if err != nil {
			t.logger.Debug("request failed", t.logger.Args("method", opts.Method, "url", opts.URL, "error", err))
		}
		if opts.Callback != nil {
			opts.Callback(err, resp)
		}
	}()
}

// Wait blocks until every request sent so far has delivered its callback.
func (t *HTTPTransport) Wait() {
	t.wg.Wait()
}

func (t *HTTPTransport) do(ctx context.Context, opts Options) (*Response, error) {
	method := strings.ToUpper(opts.Method)
	if method == "" {
		method = http.MethodGet
	}

	req, err := newRequest(ctx, method, opts.URL, opts.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, method, opts.URL, err)
	}
	req.Header.Set("Accept", "application/json")

	t.logger.Trace("sending request", t.logger.Args("method", method, "url", req.URL.String()))

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, method, opts.URL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response of %s %s: %v", ErrTransport, method, opts.URL, err)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s %s: response is not JSON (status %d)", ErrTransport, method, opts.URL, resp.StatusCode)
	}

	return &Response{Status: resp.StatusCode, Body: body}, nil
}

func newRequest(ctx context.Context, method, rawURL string, data Params) (*http.Request, error) {
	if IsReadMethod(method) {
		return http.NewRequestWithContext(ctx, method, BuildURL(rawURL, data), nil)
	}

	body, contentType, err := encodeMultipart(data)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	return req, nil
}

func encodeMultipart(data Params) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, param := range data {
		if err := w.WriteField(param.Key, param.Value); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %q: %w", param.Key, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close form body: %w", err)
	}

	return buf, w.FormDataContentType(), nil
}
