package practicum

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const maxAnswerSize = 1 << 20 // 1MB

// connection pooling limits; the bot talks to a single host on a slow cadence
const (
	defaultMaxIdleConns    = 2
	defaultIdleConnTimeout = 90 * time.Second
)

// Client fetches homework statuses from one fixed endpoint with one fixed
// token. It applies a per-request timeout via context and limits answer
// bodies to 1MB.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	timeout    time.Duration
}

// NewClient creates a [Client] for the given endpoint and OAuth token.
// timeout bounds each request issued by [Client.Fetch]; it must be positive.
func NewClient(endpoint, token string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			// no global timeout - each Fetch applies its own via context
			Transport: &http.Transport{
				MaxIdleConns:    defaultMaxIdleConns,
				IdleConnTimeout: defaultIdleConnTimeout,
			},
		},
		endpoint: endpoint,
		token:    token,
		timeout:  timeout,
	}
}

// Fetch requests every homework whose status changed since the from cursor
// (seconds since epoch) and returns the validated answer.
//
// The error, when non-nil, is one of the package error types:
// [*ConnectionError] when no HTTP response arrived, [*ServerError] on a
// non-200 status, and the [ParseAnswer] errors for body problems.
func (c *Client) Fetch(ctx context.Context, from int64) (*Answer, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &ConnectionError{Endpoint: c.endpoint, From: from, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	query := req.URL.Query()
	query.Set("from_date", strconv.FormatInt(from, 10))
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{Endpoint: c.endpoint, From: from, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &ServerError{Endpoint: c.endpoint, From: from, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAnswerSize))
	if err != nil {
		return nil, &ConnectionError{Endpoint: c.endpoint, From: from, Err: fmt.Errorf("read body: %w", err)}
	}

	return ParseAnswer(body)
}

// Close releases idle connections in the client's pool. The client remains
// usable afterwards; new connections are established as needed.
func (c *Client) Close() {
	if c == nil || c.httpClient == nil {
		return
	}
	if transport, ok := c.httpClient.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
}
