package dealer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/qyinm/cartui/types"
	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

const (
	// DefaultBaseURL is the public dealership service.
	DefaultBaseURL = "https://dealership.naman.zip"

	catalogPath = "/cars/sort"
	detailPath  = "/car/{id}"
	userAgent   = "cartui/1.0 (+https://github.com/qyinm/cartui)"
)

// User-facing failure messages. Transport and status failures collapse to these.
const (
	MsgCatalogFailed = "Failed to fetch cars data"
	MsgDetailFailed  = "Failed to fetch car details"
)

// FetchError is returned for any failed read against the dealership service.
// Error() yields only the user-facing message; the cause is kept for logs.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string { return e.Message }

func (e *FetchError) Unwrap() error { return e.Err }

// Options configures a Client.
type Options struct {
	BaseURL string
	// Timeout bounds a single request. Zero means no timeout.
	Timeout time.Duration
	// RequestsPerSecond paces outgoing requests. Zero disables pacing.
	RequestsPerSecond int
}

// Client implements types.CarSource over the dealership's JSON endpoints.
// It holds no cache: every call is a fresh request.
type Client struct {
	http *resty.Client
	rl   ratelimit.Limiter
}

// Compile-time interface check
var _ types.CarSource = (*Client)(nil)

// New creates a Client. A single attempt is made per call.
func New(opts Options) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}

	rl := ratelimit.NewUnlimited()
	if opts.RequestsPerSecond > 0 {
		rl = ratelimit.New(opts.RequestsPerSecond)
	}

	return &Client{http: httpClient, rl: rl}
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.http.Close()
}

// GetCatalog fetches every car, sorted by ascending price.
func (c *Client) GetCatalog(ctx context.Context) ([]types.Car, error) {
	body, err := c.get(ctx, c.http.R().
		SetQueryParams(map[string]string{
			"key":       "price",
			"direction": "asc",
		}), catalogPath)
	if err != nil {
		return nil, &FetchError{Message: MsgCatalogFailed, Err: err}
	}

	cars, err := ParseCatalog(body)
	if err != nil {
		return nil, &FetchError{Message: MsgCatalogFailed, Err: fmt.Errorf("parse catalog: %w", err)}
	}

	log.WithField("count", len(cars)).Debug("catalog fetched")
	return cars, nil
}

// GetCarDetail fetches the full record for one car.
func (c *Client) GetCarDetail(ctx context.Context, id string) (types.CarDetail, error) {
	body, err := c.get(ctx, c.http.R().SetPathParam("id", id), detailPath)
	if err != nil {
		return types.CarDetail{}, &FetchError{Message: MsgDetailFailed, Err: err}
	}

	detail, err := ParseCarDetail(body)
	if err != nil {
		return types.CarDetail{}, &FetchError{Message: MsgDetailFailed, Err: fmt.Errorf("parse car detail: %w", err)}
	}

	log.WithField("id", id).Debug("car detail fetched")
	return detail, nil
}

func (c *Client) get(ctx context.Context, req *resty.Request, path string) ([]byte, error) {
	c.rl.Take()

	resp, err := req.SetContext(ctx).Get(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("request failed")
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}

	if !resp.IsSuccess() {
		log.WithFields(log.Fields{
			"path":   path,
			"status": resp.StatusCode(),
		}).Warn("unexpected status")
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	return []byte(resp.String()), nil
}
