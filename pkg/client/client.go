// Package client is the remote access layer for the BloodLink API: a typed
// HTTP client in two configurations, one anonymous and one attaching a
// bearer credential, sharing a single transport and circuit breaker.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// ErrNoSession is returned when an authenticated operation is attempted
// without a bearer token. No network call is made.
var ErrNoSession = errors.New("no active session")

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Count-based write acknowledgments. A zero count is a no-op outcome, not
// an error; Applied reports whether the write changed anything.

type UpdateResult struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

func (r UpdateResult) Applied() bool { return r.ModifiedCount > 0 }

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

func (r DeleteResult) Applied() bool { return r.DeletedCount > 0 }

type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

func (r InsertResult) Applied() bool { return r.InsertedID != "" }

type Client struct {
	baseURL string
	httpc   *http.Client
	token   string
	cb      *gobreaker.CircuitBreaker
}

// New builds the anonymous client.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "bloodlink-api",
			MaxRequests: 3,
			Interval:    10 * time.Second,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
	}
}

// WithToken returns an authenticated view of the client. Transport and
// breaker state are shared with the anonymous client.
func (c *Client) WithToken(token string) *Client {
	dup := *c
	dup.token = token
	return &dup
}

func (c *Client) requireSession() error {
	if c.token == "" {
		return ErrNoSession
	}
	return nil
}

type rawResponse struct {
	status int
	body   []byte
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}

	res, err := c.cb.Execute(func() (interface{}, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, u, reader)
		if err != nil {
			return nil, err
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpc.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		// Server-side failures count against the breaker; client-side
		// rejections (4xx) do not.
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
		}
		return &rawResponse{status: resp.StatusCode, body: data}, nil
	})
	if err != nil {
		return err
	}

	raw := res.(*rawResponse)
	if raw.status >= http.StatusBadRequest {
		return &APIError{Status: raw.status, Message: errorMessage(raw.body)}
	}
	if out != nil && len(raw.body) > 0 {
		return json.Unmarshal(raw.body, out)
	}
	return nil
}

func errorMessage(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(body))
}
