// Package client is a Go client for the shipment tracker HTTP API.
//
// A Client carries its base URL and, after WithToken, the bearer token it
// sends on every call. There is no package-level state.
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
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

// HTTPDoer executes HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures a Client.
type Config struct {
	// BaseURL is the API root, e.g. "http://localhost:8080".
	BaseURL string
	// HTTPClient defaults to an *http.Client with a 30s timeout.
	HTTPClient HTTPDoer
	// Retries is how many times a GET is retried after a network error or
	// a 502/503/504. Writes are never retried.
	Retries int
}

// Client calls the API. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    HTTPDoer
	retries uint64
	token   string
}

const retryBase = 200 * time.Millisecond

var errGateway = errors.New("client: gateway unavailable")

// New returns a Client for cfg.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("client.New: BaseURL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("client.New: %w", err)
	}
	h := cfg.HTTPClient
	if h == nil {
		h = &http.Client{Timeout: 30 * time.Second}
	}
	retries := max(cfg.Retries, 0)
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    h,
		retries: uint64(retries),
	}, nil
}

// WithToken returns a copy of c that authenticates as token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	// Status is the envelope status, "fail" or "error".
	Status  string
	Message string
	Errors  []string
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("api: %d %s: %s", e.StatusCode, e.Message, strings.Join(e.Errors, "; "))
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// envelope is the shape of every JSON response body.
type envelope struct {
	Status     string          `json:"status"`
	Token      string          `json:"token"`
	Results    int             `json:"results"`
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination"`
	Message    string          `json:"message"`
	Errors     []string        `json:"errors"`
}

type sessionData struct {
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type shipmentData struct {
	Shipment Shipment `json:"shipment"`
}

type shipmentsData struct {
	Shipments []Shipment `json:"shipments"`
}

// Register creates an account and returns its first session.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (Session, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/register", nil, req)
	if err != nil {
		return Session{}, err
	}
	return decodeSession(env)
}

// Login starts a session. login may be a username or an email address.
func (c *Client) Login(ctx context.Context, login, password string) (Session, error) {
	body := map[string]string{"username": login, "password": password}
	env, err := c.do(ctx, http.MethodPost, "/auth/login", nil, body)
	if err != nil {
		return Session{}, err
	}
	return decodeSession(env)
}

func decodeSession(env envelope) (Session, error) {
	var d sessionData
	if err := json.Unmarshal(env.Data, &d); err != nil {
		return Session{}, fmt.Errorf("client: decode session: %w", err)
	}
	return Session{Token: env.Token, ExpiresAt: d.ExpiresAt, User: d.User}, nil
}

// CreateShipment creates a shipment owned by the authenticated user.
func (c *Client) CreateShipment(ctx context.Context, in ShipmentInput) (Shipment, error) {
	env, err := c.do(ctx, http.MethodPost, "/shipments", nil, in)
	if err != nil {
		return Shipment{}, err
	}
	return decodeShipment(env)
}

// GetShipment fetches one shipment.
func (c *Client) GetShipment(ctx context.Context, id uuid.UUID) (Shipment, error) {
	env, err := c.do(ctx, http.MethodGet, "/shipments/"+id.String(), nil, nil)
	if err != nil {
		return Shipment{}, err
	}
	return decodeShipment(env)
}

// UpdateShipment changes the fields set in in.
func (c *Client) UpdateShipment(ctx context.Context, id uuid.UUID, in ShipmentInput) (Shipment, error) {
	env, err := c.do(ctx, http.MethodPut, "/shipments/"+id.String(), nil, in)
	if err != nil {
		return Shipment{}, err
	}
	return decodeShipment(env)
}

// DeleteShipment removes one shipment.
func (c *Client) DeleteShipment(ctx context.Context, id uuid.UUID) error {
	_, err := c.do(ctx, http.MethodDelete, "/shipments/"+id.String(), nil, nil)
	return err
}

func decodeShipment(env envelope) (Shipment, error) {
	var d shipmentData
	if err := json.Unmarshal(env.Data, &d); err != nil {
		return Shipment{}, fmt.Errorf("client: decode shipment: %w", err)
	}
	return d.Shipment, nil
}

// ListShipments fetches one page of the authenticated user's shipments.
func (c *Client) ListShipments(ctx context.Context, opts ListOptions) (ShipmentPage, error) {
	q := url.Values{}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.IsFragile != nil {
		q.Set("isFragile", strconv.FormatBool(*opts.IsFragile))
	}
	if opts.SortBy != "" {
		q.Set("sortBy", opts.SortBy)
	}

	env, err := c.do(ctx, http.MethodGet, "/shipments", q, nil)
	if err != nil {
		return ShipmentPage{}, err
	}
	var d shipmentsData
	if err := json.Unmarshal(env.Data, &d); err != nil {
		return ShipmentPage{}, fmt.Errorf("client: decode shipments: %w", err)
	}
	page := ShipmentPage{Shipments: d.Shipments, Results: env.Results}
	if env.Pagination != nil {
		page.Pagination = *env.Pagination
	}
	return page, nil
}

// Health reports server liveness and database reachability.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	resp, err := c.send(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return h, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return h, readAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return h, fmt.Errorf("client: decode health: %w", err)
	}
	return h, nil
}

// do sends a request and decodes the envelope of a 2xx response.
// A 204 yields a zero envelope.
func (c *Client) do(ctx context.Context, method, path string, q url.Values, body any) (envelope, error) {
	resp, err := c.send(ctx, method, path, q, body)
	if err != nil {
		return envelope{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return envelope{}, readAPIError(resp)
	}
	if resp.StatusCode == http.StatusNoContent {
		return envelope{}, nil
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return envelope{}, fmt.Errorf("client: decode response: %w", err)
	}
	return env, nil
}

// send builds and executes the request. GETs are retried with
// exponential backoff on network errors and gateway statuses.
func (c *Client) send(ctx context.Context, method, path string, q url.Values, body any) (*http.Response, error) {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("client: encode request: %w", err)
		}
		payload = b
	}
	target := c.baseURL + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	attempt := func(ctx context.Context) (*http.Response, error) {
		var r io.Reader
		if payload != nil {
			r = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, target, r)
		if err != nil {
			return nil, fmt.Errorf("client: build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("client: %s %s: %w", method, path, err)
		}
		return resp, nil
	}

	if method != http.MethodGet || c.retries == 0 {
		return attempt(ctx)
	}

	var resp *http.Response
	backoff := retry.WithMaxRetries(c.retries, retry.NewExponential(retryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if resp != nil {
			drain(resp)
			resp = nil
		}
		r, err := attempt(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			return retry.RetryableError(err)
		}
		resp = r
		switch r.StatusCode {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return retry.RetryableError(errGateway)
		}
		return nil
	})
	if err != nil {
		if resp != nil {
			// Out of retries on a gateway status: the caller reads the last response.
			if errors.Is(err, errGateway) {
				return resp, nil
			}
			drain(resp)
		}
		return nil, err
	}
	return resp, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// readAPIError turns a non-2xx response into an *APIError. Bodies that are
// not an envelope still yield the status code.
func readAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}
	var env envelope
	if json.Unmarshal(b, &env) == nil {
		if env.Status != "" {
			apiErr.Status = env.Status
		}
		if env.Message != "" {
			apiErr.Message = env.Message
		}
		apiErr.Errors = env.Errors
	}
	return apiErr
}
