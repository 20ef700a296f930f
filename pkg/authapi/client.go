package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/springmovies/webclient/pkg/logger"
	"github.com/springmovies/webclient/pkg/requestid"
)

const maxErrorBody = 4 << 10

// Client calls the remote auth API.
type Client struct {
	baseURL   *url.URL
	timeout   time.Duration
	transport http.RoundTripper
	limiter   *rate.Limiter
	log       *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTransport sets the base transport. Request IDs are always forwarded.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		if rt != nil {
			c.transport = &requestid.Transport{Base: rt}
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a Client for cfg.
func New(cfg Config, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errors.Join(ErrInvalidBaseURL, err)
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	c := &Client{
		baseURL:   base,
		timeout:   cfg.Timeout,
		transport: &requestid.Transport{Base: http.DefaultTransport},
		limiter:   rate.NewLimiter(limit, max(cfg.RateBurst, 1)),
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SignUp registers a new account.
func (c *Client) SignUp(ctx context.Context, creds Credentials) (User, error) {
	var out userEnvelope
	err := c.do(ctx, http.MethodPost, "/sign-up", "", credentialsEnvelope{Credentials: creds}, &out)
	return out.User, err
}

// SignIn exchanges credentials for the user and its bearer token.
func (c *Client) SignIn(ctx context.Context, creds Credentials) (User, error) {
	creds.PasswordConfirmation = ""
	var out userEnvelope
	err := c.do(ctx, http.MethodPost, "/sign-in", "", credentialsEnvelope{Credentials: creds}, &out)
	return out.User, err
}

// SignOut revokes token.
func (c *Client) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return ErrMissingToken
	}
	return c.do(ctx, http.MethodDelete, "/sign-out", token, nil, nil)
}

// ChangePassword replaces the password of the user owning token.
func (c *Client) ChangePassword(ctx context.Context, token string, pw Passwords) error {
	if token == "" {
		return ErrMissingToken
	}
	return c.do(ctx, http.MethodPatch, "/change-password", token, passwordsEnvelope{Passwords: pw}, nil)
}

// httpClient returns a client that authenticates with token when it is set.
func (c *Client) httpClient(token string) *http.Client {
	rt := c.transport
	if token != "" {
		rt = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   c.transport,
		}
	}
	return &http.Client{Transport: rt, Timeout: c.timeout}
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Join(ErrRateLimited, err)
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient(token).Do(req)
	if err != nil {
		return errors.Join(ErrTransport, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "auth api call",
		logger.Component("authapi"),
		slog.String("method", method),
		slog.String("path", path),
		logger.StatusCode(resp.StatusCode),
		logger.Duration(time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: readMessage(resp.Body)}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(ErrDecode, err)
	}
	return nil
}

// readMessage pulls a human readable explanation out of an error body.
func readMessage(r io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	var payload struct {
		Message string `json:"message"`
		Name    string `json:"name"`
	}
	if json.Unmarshal(data, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		return payload.Name
	}
	return strings.TrimSpace(string(data))
}
