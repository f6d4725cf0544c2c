package deepl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/deepl/throttle"
)

const (
	serverURL     = "https://api.deepl.com/v2"
	freeServerURL = "https://api-free.deepl.com/v2"

	// freeKeySuffix marks authentication keys issued for the free tier,
	// which is served from a separate host.
	freeKeySuffix = ":fx"

	tracerName = "github.com/adamwoolhether/deepl"
)

// API is the shared client handle. It holds the authentication key and the
// underlying *http.Client; every endpoint call borrows it and it is safe
// for concurrent use.
type API struct {
	authKey string
	base    *url.URL
	c       *http.Client
	logger  *slog.Logger
	tracer  trace.Tracer
}

// New creates an API handle for the given authentication key.
// Keys ending in ":fx" are routed to the free-tier host.
func New(authKey string, optFns ...Option) (*API, error) {
	if authKey == "" {
		return nil, errors.New("auth key must not be empty")
	}

	api := &API{
		authKey: authKey,
		c:       &http.Client{},
		logger:  slog.Default(),
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	rawServer := serverURL
	if strings.HasSuffix(authKey, freeKeySuffix) {
		rawServer = freeServerURL
	}
	if opts.server != "" {
		rawServer = opts.server
	}

	base, err := url.Parse(rawServer)
	if err != nil {
		return nil, fmt.Errorf("parsing server url: %w", err)
	}
	api.base = base

	if opts.client != nil {
		api.c = opts.client
	}

	if opts.logger != nil {
		api.logger = opts.logger
	}

	if opts.timeout != nil {
		api.c.Timeout = *opts.timeout
	}

	if opts.noFollowRedirects {
		api.c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		transport = opts.rt
	case opts.client != nil && opts.client.Transport != nil:
		transport = opts.client.Transport
	default:
		transport = http.DefaultTransport
	}
	if opts.userAgent != "" {
		transport = userAgent{value: opts.userAgent, base: transport}
	}
	if opts.throttle != nil {
		rt, err := throttle.NewRoundTripper(opts.throttle.RPS, opts.throttle.Burst, func() *slog.Logger { return api.logger }, transport)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		transport = rt
	}
	api.c.Transport = transport

	tp := opts.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	api.tracer = tp.Tracer(tracerName)

	return api, nil
}

// endpoint joins path elements onto the resolved base URL.
func (api *API) endpoint(elem ...string) *url.URL {
	return api.base.JoinPath(elem...)
}

// newRequest builds an authenticated request against the API server.
// Every request carries a generated X-Request-ID for log correlation.
func (api *API) newRequest(ctx context.Context, method string, reqURL *url.URL, contentType string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("instantiating request: %w", err)
	}

	req.Header.Set("Authorization", "DeepL-Auth-Key "+api.authKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rid := uuid.NewString()
	req.Header.Set("X-Request-ID", rid)
	api.logger.Debug("sending request", "method", method, "path", reqURL.Path, "request_id", rid)

	return req, nil
}

// do fires the request and decodes a successful JSON response into dst.
// Non-200 responses are translated into the package's error taxonomy.
func (api *API) do(req *http.Request, dst any) error {
	resp, err := api.c.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}

	discardBody := true
	defer func() {
		if discardBody {
			if _, err := io.Copy(io.Discard, resp.Body); err != nil {
				api.logger.Error("failed to discard unused body", "error", err)
			}
		}
		if err := resp.Body.Close(); err != nil {
			api.logger.Error("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return api.errorFrom(resp)
	}

	if dst != nil {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			discardBody = false
			return &InvalidResponseError{Detail: fmt.Sprintf("decoding body: %v", err)}
		}
	}

	return nil
}

// postForm submits a urlencoded form to path and decodes the JSON response.
func postForm[R any](ctx context.Context, api *API, path string, form url.Values) (*R, error) {
	req, err := api.newRequest(ctx, http.MethodPost, api.endpoint(path), "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	var result R
	if err := api.do(req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// upload submits a multipart form carrying a single file part named "file"
// plus the given fields, and decodes the JSON response.
func upload[R any](ctx context.Context, api *API, path string, fields map[string]string, fileName string, contents []byte) (*R, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("writing form field %s: %w", k, err)
		}
	}

	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("creating file part: %w", err)
	}
	if _, err := part.Write(contents); err != nil {
		return nil, fmt.Errorf("writing file part: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := api.newRequest(ctx, http.MethodPost, api.endpoint(path), w.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}

	var result R
	if err := api.do(req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// userAgent is an http.RoundTripper, enabling a persistent User-Agent header.
type userAgent struct {
	value string
	base  http.RoundTripper
}

func (ua userAgent) RoundTrip(r *http.Request) (*http.Response, error) {
	cpy := r.Clone(r.Context())
	cpy.Header.Set("User-Agent", ua.value)
	return ua.base.RoundTrip(cpy)
}
