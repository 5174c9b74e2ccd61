package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/dkoosis/thundery/internal/version"
)

// DefaultEndpoint is the OpenWeatherMap current-weather API.
const DefaultEndpoint = "https://api.openweathermap.org/data/2.5/weather"

// StatusError is returned when the provider answers with a non-2xx
// status. The response body is not inspected.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("weather provider returned status %d", e.StatusCode)
}

// Client fetches current weather from the provider.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the provider URL (without query string).
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Client. Without options it calls DefaultEndpoint
// through http.DefaultClient, which has no timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint:   DefaultEndpoint,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch performs a single GET for city and returns the decoded JSON body.
// Numbers in the result are json.Number values.
func (c *Client) Fetch(ctx context.Context, city, units, apiKey string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(city, units, apiKey), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var doc any
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return doc, nil
}

// requestURL substitutes the three parameters verbatim, then re-encodes
// the query so characters that cannot travel raw in a request line
// (spaces, non-ASCII) are escaped. Separators inside the values are not
// protected.
func (c *Client) requestURL(city, units, apiKey string) string {
	raw := fmt.Sprintf("%s?q=%s&units=%s&APPID=%s", c.endpoint, city, units, apiKey)
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if q, err := url.ParseQuery(u.RawQuery); err == nil {
		u.RawQuery = q.Encode()
	}
	return u.String()
}
