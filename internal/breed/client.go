package breed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rs/xid"
	"github.com/tidwall/gjson"
	"github.com/yildizm/breedview/internal/logger"
)

// maxBodySize caps how much of a response is read; a breed with every image
// listed is still well under this.
const maxBodySize = 4 << 20

// Lookup resolves a breed name to image URLs.
type Lookup interface {
	Images(ctx context.Context, name string) ([]string, error)
}

// Client talks to the dog image API
type Client struct {
	config  *Config
	client  *http.Client
	baseURL *url.URL
	log     *logger.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the default transport-tuned client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a new lookup client
func NewClient(config *Config, opts ...Option) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(strings.TrimRight(config.BaseURL, "/"))
	if err != nil {
		return nil, NewConfigurationError("base_url", "invalid base URL: "+err.Error())
	}

	c := &Client{
		config:  config,
		client:  newHTTPClient(config.Timeout),
		baseURL: baseURL,
		log:     logger.New("breed", nil),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.TLSHandshakeTimeout = 7 * time.Second
	transport.ResponseHeaderTimeout = timeout
	transport.IdleConnTimeout = 5 * time.Minute

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// Images returns every image URL the service lists for name, in service order.
// The name is lower-cased and otherwise passed through untouched, so
// sub-breeds such as "hound/afghan" work.
func (c *Client) Images(ctx context.Context, name string) ([]string, error) {
	key := strings.ToLower(name)
	endpoint := c.baseURL.JoinPath("breed", key, "images")

	result, err := c.get(ctx, endpoint.String(), key)
	if err != nil {
		return nil, err
	}

	message := result.Get("message")
	if !message.IsArray() {
		return nil, NewLookupError(ErrTypeDecode, "expected a list of image URLs", key)
	}

	images := make([]string, 0, len(message.Array()))
	message.ForEach(func(_, value gjson.Result) bool {
		images = append(images, value.String())
		return true
	})

	return images, nil
}

// Breeds returns every known breed, with sub-breeds as "breed/sub", sorted.
func (c *Client) Breeds(ctx context.Context) ([]string, error) {
	endpoint := c.baseURL.JoinPath("breeds", "list", "all")

	result, err := c.get(ctx, endpoint.String(), "")
	if err != nil {
		return nil, err
	}

	message := result.Get("message")
	if !message.IsObject() {
		return nil, NewLookupError(ErrTypeDecode, "expected a breed map", "")
	}

	var breeds []string
	message.ForEach(func(key, subs gjson.Result) bool {
		breeds = append(breeds, key.String())
		subs.ForEach(func(_, sub gjson.Result) bool {
			breeds = append(breeds, key.String()+"/"+sub.String())
			return true
		})
		return true
	})
	sort.Strings(breeds)

	return breeds, nil
}

// get performs the request and returns the decoded envelope once its status
// field reports success.
func (c *Client) get(ctx context.Context, endpoint, breed string) (gjson.Result, error) {
	requestID := xid.New().String()
	start := time.Now()

	c.log.DebugWithFields("request", []logger.Field{
		logger.F("request_id", requestID),
		logger.F("url", endpoint),
	})

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return gjson.Result{}, NewLookupErrorWithCause(ErrTypeInternal, "failed to create request", breed, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.config.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return gjson.Result{}, classifyTransportError(err, breed)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Debug("failed to close response body: %v", err)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return gjson.Result{}, classifyTransportError(err, breed)
	}

	c.log.DebugWithFields("response", []logger.Field{
		logger.F("request_id", requestID),
		logger.F("status", resp.StatusCode),
		logger.Duration(time.Since(start)),
	})

	// Unknown breeds come back as 404 with an error envelope, so the body is
	// inspected before the HTTP status.
	if !gjson.ValidBytes(body) {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			le := NewLookupError(ErrTypeStatus, fmt.Sprintf("request failed with status %d", resp.StatusCode), breed)
			le.StatusCode = resp.StatusCode
			return gjson.Result{}, le
		}
		return gjson.Result{}, NewLookupError(ErrTypeDecode, "response is not valid JSON", breed)
	}

	result := gjson.ParseBytes(body)
	switch status := result.Get("status").String(); status {
	case "success":
		return result, nil
	case "error":
		message := result.Get("message").String()
		if message == "" {
			message = NotFoundMessage
		}
		le := NewLookupError(ErrTypeNotFound, message, breed)
		le.StatusCode = resp.StatusCode
		return gjson.Result{}, le
	default:
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			le := NewLookupError(ErrTypeStatus, fmt.Sprintf("request failed with status %d", resp.StatusCode), breed)
			le.StatusCode = resp.StatusCode
			return gjson.Result{}, le
		}
		return gjson.Result{}, NewLookupError(ErrTypeDecode, fmt.Sprintf("unexpected response status %q", status), breed)
	}
}

func classifyTransportError(err error, breed string) *LookupError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return NewLookupErrorWithCause(ErrTypeTimeout, "request timed out", breed, err)
	}
	return NewLookupErrorWithCause(ErrTypeNetwork, "request failed", breed, err)
}
