package ibge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/cidades/internal/catalog"
	"github.com/muurk/cidades/internal/logging"
	"github.com/muurk/cidades/internal/version"
)

const (
	// DefaultBaseURL is the root of the IBGE localities API
	DefaultBaseURL = "https://servicodados.ibge.gov.br/api/v1/localidades"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second

	// maxBodySize caps response bodies; the largest state payload is well below it
	maxBodySize = 32 << 20
)

// Client talks to the IBGE localities API
type Client struct {
	// BaseURL is the API root without trailing slash
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// UserAgent is sent with every request
	UserAgent string
}

// NewClient creates a client for baseURL. A zero timeout disables the
// client-side deadline.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		UserAgent:  "cidades/" + version.Version,
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// SanitizeStateCode trims spaces, upper-cases code and truncates it to two
// characters.
func SanitizeStateCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	r := []rune(code)
	if len(r) > catalog.StateCodeLength {
		r = r[:catalog.StateCodeLength]
	}
	return string(r)
}

// StatesURL returns the endpoint listing every state
func (c *Client) StatesURL() string {
	return c.BaseURL + "/estados?orderBy=nome"
}

// CitiesURL returns the endpoint listing the districts of a state
func (c *Client) CitiesURL(code string) string {
	return fmt.Sprintf("%s/estados/%s/distritos", c.BaseURL, SanitizeStateCode(code))
}

// FetchStates retrieves every state. The service orders by name but
// callers should not rely on it.
func (c *Client) FetchStates(ctx context.Context) ([]catalog.State, error) {
	endpoint := c.StatesURL()

	var entries []stateResponse
	if err := c.getJSON(ctx, endpoint, &entries); err != nil {
		return nil, err
	}

	states, err := toStates(entries)
	if err != nil {
		return nil, NewParseError("invalid states payload", endpoint, err)
	}
	return states, nil
}

// FetchCities retrieves the cities of the state identified by code, in the
// order the service returns them.
func (c *Client) FetchCities(ctx context.Context, code string) ([]catalog.City, error) {
	if len([]rune(SanitizeStateCode(code))) != catalog.StateCodeLength {
		return nil, NewValidationError(fmt.Sprintf("invalid state code %q", code))
	}
	endpoint := c.CitiesURL(code)

	var entries []districtResponse
	if err := c.getJSON(ctx, endpoint, &entries); err != nil {
		return nil, err
	}

	cities, err := toCities(entries)
	if err != nil {
		return nil, NewParseError("invalid cities payload", endpoint, err)
	}
	return cities, nil
}

// getJSON performs a GET and decodes the JSON body into out
func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return NewNetworkError("failed to create GET request", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return NewNetworkError("GET request failed", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	logging.Debug("IBGE response",
		zap.String("url", endpoint),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return NewHTTPError(resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return NewNetworkError("failed to read response body", endpoint, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return NewParseError("failed to parse JSON response", endpoint, err)
	}

	return nil
}
