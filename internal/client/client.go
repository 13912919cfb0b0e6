// Package client implements a client for the loan tracker API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Error is returned for all responses with a status other than 2xx.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

type Option func(*Client)

// WithHTTPClient sets the http.Client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithToken sends token as bearer token with every request.
func WithToken(token string) Option {
	return func(client *Client) {
		client.token = token
	}
}

// New returns a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := c.do(ctx, http.MethodGet, "/categories", nil, &categories)
	return categories, err
}

func (c *Client) Statuses(ctx context.Context) ([]Status, error) {
	var statuses []Status
	err := c.do(ctx, http.MethodGet, "/statuses", nil, &statuses)
	return statuses, err
}

// Loans returns all loans, newest first.
func (c *Client) Loans(ctx context.Context) ([]Loan, error) {
	var loans []Loan
	err := c.do(ctx, http.MethodGet, "/loans", nil, &loans)
	return loans, err
}

func (c *Client) Loan(ctx context.Context, id uuid.UUID) (Loan, error) {
	var loan Loan
	err := c.do(ctx, http.MethodGet, "/loans/"+id.String(), nil, &loan)
	return loan, err
}

func (c *Client) CreateLoan(ctx context.Context, input LoanInput) (Loan, error) {
	var loan Loan
	err := c.do(ctx, http.MethodPost, "/loans", input, &loan)
	return loan, err
}

// UpdateLoan overwrites all fields of the loan with the values in input.
func (c *Client) UpdateLoan(ctx context.Context, id uuid.UUID, input LoanInput) (Loan, error) {
	var loan Loan
	err := c.do(ctx, http.MethodPut, "/loans/"+id.String(), input, &loan)
	return loan, err
}

func (c *Client) DeleteLoan(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/loans/"+id.String(), nil, nil)
}

// do sends a request and decodes the response body into out, if set.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	log.Debug().Str("method", method).Str("url", req.URL.String()).Msg("API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("could not decode response of %s %s: %w", method, path, err)
	}

	return nil
}

// newError reads the error message of the API from the response, if any.
func newError(resp *http.Response) *Error {
	e := &Error{Status: resp.StatusCode}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		e.Message = body.Error
	}

	return e
}
