// api/http_client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"fantasy-stats-web/logging"
)

const defaultTimeout = 10 * time.Second

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
	logger     *logging.Logger
}

// RequestOptions describes one request. A nil *RequestOptions is a plain GET.
type RequestOptions struct {
	Method  string
	Headers map[string]string
	Body    interface{}
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string) *HTTPClient {
	return NewHTTPClientWithTimeout(baseURL, defaultTimeout)
}

// NewHTTPClientWithTimeout creates an HTTPClient whose requests give up after
// timeout. The client keeps cookies so CSRF tokens set by the backend are sent
// back on later requests.
func NewHTTPClientWithTimeout(baseURL string, timeout time.Duration) *HTTPClient {
	jar, _ := cookiejar.New(nil)
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		logger: logging.For("safeFetch"),
	}
}

// SafeFetch requests endpoint and classifies the response. A recognized
// (status, code) pair is returned as a redirect Outcome and is never retried.
// Network errors, unparsable bodies and other non-2xx statuses are retried up
// to retryCount additional times; the last failure is returned as a
// *FetchError.
func (c *HTTPClient) SafeFetch(ctx context.Context, endpoint string, opts *RequestOptions, verbose bool, retryCount int) (*Outcome, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}
	if retryCount < 0 {
		retryCount = 0
	}

	var payload []byte
	if opts.Body != nil {
		b, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body for %s: %w", endpoint, err)
		}
		payload = b
	}

	var lastErr *FetchError
	maxAttempts := retryCount + 1
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if verbose {
			c.logger.Info("Attempt %d for endpoint: %s (method=%s)", attempt, endpoint, methodOf(opts))
		}

		outcome, ferr := c.attempt(ctx, endpoint, opts, payload, verbose)
		if ferr == nil {
			if verbose {
				c.logger.Info("Attempt %d for %s finished: %s (status %d)", attempt, endpoint, outcome.Kind, outcome.StatusCode)
			}
			return outcome, nil
		}

		ferr.Attempts = attempt
		lastErr = ferr
		if verbose {
			c.logger.Warn("Attempt %d for %s failed: %v", attempt, endpoint, ferr)
		}
		if ctx.Err() != nil {
			break
		}
		if verbose && attempt < maxAttempts {
			c.logger.Info("Retrying %s...", endpoint)
		}
	}

	if verbose {
		c.logger.Error("All %d attempts for %s failed", lastErr.Attempts, endpoint)
	}
	return nil, lastErr
}

func (c *HTTPClient) attempt(ctx context.Context, endpoint string, opts *RequestOptions, payload []byte, verbose bool) (*Outcome, *FetchError) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, methodOf(opts), c.BaseURL+endpoint, body)
	if err != nil {
		return nil, &FetchError{Kind: FailureNetwork, Endpoint: endpoint, Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: FailureNetwork, Endpoint: endpoint, Cause: err}
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &FetchError{Kind: FailureNetwork, Endpoint: endpoint, StatusCode: res.StatusCode, Cause: err}
	}

	var parsed interface{}
	if err := json.Unmarshal(resBody, &parsed); err != nil {
		return nil, &FetchError{Kind: FailureParse, Endpoint: endpoint, StatusCode: res.StatusCode, Cause: err}
	}
	bodyMap, _ := parsed.(map[string]interface{})
	if verbose {
		c.logger.Debug("Data code for %s: %v", endpoint, bodyMap["code"])
	}

	if path := MatchRedirect(res.StatusCode, bodyMap); path != "" {
		return &Outcome{Kind: OutcomeRedirect, StatusCode: res.StatusCode, RedirectPath: path}, nil
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		message, _ := bodyMap["message"].(string)
		return nil, &FetchError{
			Kind:       FailureHTTP,
			Endpoint:   endpoint,
			StatusCode: res.StatusCode,
			Message:    message,
			Body:       bodyMap,
		}
	}

	return &Outcome{Kind: OutcomeSuccess, StatusCode: res.StatusCode, Payload: json.RawMessage(resBody)}, nil
}

// Cookie returns the value of a cookie the backend set on BaseURL, or "".
func (c *HTTPClient) Cookie(name string) string {
	if c.HTTPClient.Jar == nil {
		return ""
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return ""
	}
	for _, cookie := range c.HTTPClient.Jar.Cookies(u) {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

func methodOf(opts *RequestOptions) string {
	if opts == nil || opts.Method == "" {
		return http.MethodGet
	}
	return opts.Method
}
