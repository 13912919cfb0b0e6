// Package supabase implements a session.Provider backed by the Supabase
// auth service.
package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/loan-tracker/backend/internal/session"
	"github.com/rs/zerolog/log"
)

// OAuthProvider is the identity provider users sign in with.
const OAuthProvider = "google"

// Error is returned when the auth service responds with an unexpected status.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("auth request failed with status %d", e.Status)
	}
	return fmt.Sprintf("auth request failed with status %d: %s", e.Status, e.Message)
}

type Provider struct {
	url        string
	apiKey     string
	token      string
	httpClient *http.Client
}

type Option func(*Provider)

// WithHTTPClient sets the http.Client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = c
	}
}

// WithAccessToken sets the access token of the current session.
func WithAccessToken(token string) Option {
	return func(p *Provider) {
		p.token = token
	}
}

// New returns a provider for the Supabase project at projectURL,
// authenticating with the anonymous apiKey of the project.
func New(projectURL, apiKey string, opts ...Option) *Provider {
	p := &Provider{
		url:        strings.TrimSuffix(projectURL, "/"),
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// user is the user object of the auth service.
type user struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		FullName  string `json:"full_name"`
		Name      string `json:"name"`
		AvatarURL string `json:"avatar_url"`
	} `json:"user_metadata"`
}

// User returns the user of the access token.
//
// Without a token or with a token the service rejects, nobody is signed in.
func (p *Provider) User(ctx context.Context) (*session.User, error) {
	if p.token == "" {
		return nil, nil
	}

	resp, err := p.do(ctx, http.MethodGet, "/auth/v1/user")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		log.Debug().Int("status", resp.StatusCode).Msg("Access token rejected")
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newError(resp)
	}

	var u user
	err = json.NewDecoder(resp.Body).Decode(&u)
	if err != nil {
		return nil, fmt.Errorf("could not decode user: %w", err)
	}

	name := u.UserMetadata.FullName
	if name == "" {
		name = u.UserMetadata.Name
	}

	return &session.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      name,
		AvatarURL: u.UserMetadata.AvatarURL,
	}, nil
}

// SignInURL returns the URL that starts the OAuth flow.
func (p *Provider) SignInURL(redirectTo string) string {
	query := url.Values{}
	query.Set("provider", OAuthProvider)
	if redirectTo != "" {
		query.Set("redirect_to", redirectTo)
	}

	return fmt.Sprintf("%s/auth/v1/authorize?%s", p.url, query.Encode())
}

// SignOut revokes the access token.
func (p *Provider) SignOut(ctx context.Context) error {
	if p.token == "" {
		return nil
	}

	resp, err := p.do(ctx, http.MethodPost, "/auth/v1/logout")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// An expired token has no session left to end
	if resp.StatusCode == http.StatusUnauthorized {
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp)
	}

	return nil
}

func (p *Provider) do(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, p.url+path, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	req.Header.Set("apikey", p.apiKey)
	req.Header.Set("Authorization", "Bearer "+p.token)
	req.Header.Set("Accept", "application/json")

	log.Debug().Str("method", method).Str("url", req.URL.String()).Msg("Auth request")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	return resp, nil
}

// newError reads the message of the auth service from the response.
// Depending on the endpoint, it is in one of several fields.
func newError(resp *http.Response) *Error {
	e := &Error{Status: resp.StatusCode}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return e
	}

	var body struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
	}
	if json.Unmarshal(b, &body) != nil {
		return e
	}

	for _, m := range []string{body.Msg, body.Message, body.ErrorDescription} {
		if m != "" {
			e.Message = m
			break
		}
	}

	return e
}
