// Package apiclient is the single HTTP door every resource service goes
// through: it attaches the session token, serializes query parameters,
// decodes the response envelope, and sorts failures into application errors
// (server answered success:false) and transport errors (no usable answer).
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartlinkhq/admin-console/internal/config"
	"github.com/heartlinkhq/admin-console/internal/session"
	"github.com/heartlinkhq/admin-console/pkg/errors"
	"github.com/heartlinkhq/admin-console/pkg/httputil"
	"github.com/heartlinkhq/admin-console/pkg/logger"
	"github.com/heartlinkhq/admin-console/pkg/metrics"
)

// Params is a flat query-parameter map. Empty values are dropped at encode
// time so the wire never carries "?status=&page=".
type Params map[string]string

// Encode serializes params to a query string, omitting empty values.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	values := url.Values{}
	for key, val := range p {
		if strings.TrimSpace(val) == "" {
			continue
		}
		values.Set(key, val)
	}
	return values.Encode()
}

type contextKey int

const idempotencyKeyContext contextKey = iota

// WithIdempotencyKey stores the key every mutating request issued under the
// returned context will carry as its Idempotency-Key header.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, idempotencyKeyContext, key)
}

// IdempotencyKeyFrom returns the key stored by WithIdempotencyKey, or empty.
func IdempotencyKeyFrom(ctx context.Context) string {
	key, _ := ctx.Value(idempotencyKeyContext).(string)
	return key
}

// Client issues requests against the backend API.
type Client struct {
	baseURL  string
	mediaURL string
	http     *http.Client
	session  *session.Store
	limiter  *rate.Limiter
	metrics  *metrics.Metrics
	log      *logger.Logger
}

// New builds a client from configuration. The session store may be nil for
// unauthenticated use; metrics may be nil to disable instrumentation.
func New(cfg *config.ClientConfig, sess *session.Store, m *metrics.Metrics, log *logger.Logger) *Client {
	if log == nil {
		log = logger.NewLogger(nil)
	}
	perSecond := cfg.RatePerSecond
	if perSecond <= 0 {
		perSecond = 20
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = int(perSecond) * 2
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.APIURL, "/"),
		mediaURL: strings.TrimRight(cfg.MediaURL, "/"),
		http:     &http.Client{Timeout: cfg.RequestTimeout},
		session:  sess,
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		metrics:  m,
		log:      log.WithComponent("apiclient"),
	}
}

// MediaURL resolves a stored media path to an absolute URL.
func (c *Client) MediaURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.mediaURL + "/" + strings.TrimLeft(path, "/")
}

// Get issues a GET and unmarshals the envelope's data into out.
func (c *Client) Get(ctx context.Context, path string, params Params, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, params Params, body, out interface{}) error {
	resource := resourceOf(path)
	if c.metrics != nil {
		c.metrics.RequestsTotal.WithLabelValues(resource, method).Inc()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return c.fail(resource, method, errors.NewTransport(err))
	}

	fullURL := c.baseURL + path
	if query := params.Encode(); query != "" {
		fullURL += "?" + query
	}

	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return c.fail(resource, method, errors.NewInternal(err))
		}
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return c.fail(resource, method, errors.NewInternal(err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if method != http.MethodGet {
		if key := IdempotencyKeyFrom(ctx); key != "" {
			req.Header.Set("Idempotency-Key", key)
		}
	}

	if c.session != nil {
		if token, err := c.session.Token(); err == nil {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if c.metrics != nil {
		c.metrics.RequestLatency.WithLabelValues(resource, method).Observe(time.Since(started).Seconds())
	}
	if err != nil {
		return c.fail(resource, method, errors.NewTransport(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(resource, method, errors.NewTransport(err))
	}

	var envelope httputil.Response
	if err := json.Unmarshal(raw, &envelope); err != nil {
		// A non-2xx with no parseable envelope is a transport failure,
		// not an application error.
		return c.fail(resource, method, errors.NewTransport(
			fmt.Errorf("status %d: %w", resp.StatusCode, err)))
	}

	if !envelope.Success {
		// Server-paginated endpoints may answer with a bare
		// {data, pagination} body carrying no success flag at all.
		// Hand that shape to the caller whole.
		if resp.StatusCode < http.StatusBadRequest && isPagedBody(raw) {
			if out != nil {
				if err := json.Unmarshal(raw, out); err != nil {
					return c.fail(resource, method, errors.NewTransport(err))
				}
			}
			return nil
		}
		message := envelope.Message
		if message == "" {
			message = envelope.Error
		}
		c.log.Debug("request rejected", "resource", resource, "method", method, "message", message)
		if resp.StatusCode == http.StatusUnauthorized {
			return c.fail(resource, method, &errors.AppError{Code: errors.ErrUnauthorized, Message: messageOrDefault(message)})
		}
		return c.fail(resource, method, errors.NewApplication(message))
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return c.fail(resource, method, errors.NewTransport(err))
		}
	}
	return nil
}

func (c *Client) fail(resource, method string, err *errors.AppError) error {
	if c.metrics != nil {
		kind := "application"
		if errors.IsTransport(err) {
			kind = "transport"
		}
		c.metrics.RequestErrors.WithLabelValues(resource, method, kind).Inc()
	}
	return err
}

func messageOrDefault(message string) string {
	if message == "" {
		return "unauthorized"
	}
	return message
}

// isPagedBody reports whether a body is a bare server-paginated list:
// data plus pagination keys, with no success flag.
func isPagedBody(raw []byte) bool {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return false
	}
	if _, ok := keys["success"]; ok {
		return false
	}
	_, hasData := keys["data"]
	_, hasPagination := keys["pagination"]
	return hasData && hasPagination
}

// resourceOf extracts the first path segment for metric labels, keeping
// cardinality bounded regardless of ids in the path.
func resourceOf(path string) string {
	trimmed := strings.TrimLeft(path, "/")
	if idx := strings.IndexByte(trimmed, '/'); idx > 0 {
		return trimmed[:idx]
	}
	if trimmed == "" {
		return "root"
	}
	return trimmed
}
