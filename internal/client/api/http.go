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
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/memoclub/memocli/internal/client/models"
)

// response is the service's envelope: every JSON body wraps its payload
// in a "data" field.
type response[T any] struct {
	Data T `json:"data"`
}

// HTTPClient talks to the memo service over its JSON API. The session
// cookie set at sign-in lives in the client's cookie jar; an optional
// bearer access token is sent when configured.
type HTTPClient struct {
	baseURL     string
	httpc       *http.Client
	accessToken string
}

// NewHTTPClient builds a client for the given base URL, e.g.
// "https://memo.example.com". The timeout bounds each request.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "create cookie jar")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errors.Wrapf(err, "parse base url %q", baseURL)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

// SetAccessToken configures a bearer token sent on every request.
func (c *HTTPClient) SetAccessToken(token string) {
	c.accessToken = token
}

// SessionExpired reports whether the configured access token carries an
// exp claim in the past. Tokens without an exp claim (or no token at all)
// are not considered expired; the signature is deliberately not checked —
// this is a local heads-up, not a verification.
func (c *HTTPClient) SessionExpired() bool {
	return tokenExpired(c.accessToken, time.Now())
}

func (c *HTTPClient) GetMyselfUser(ctx context.Context) (*models.User, error) {
	var out response[*models.User]
	err := c.do(ctx, http.MethodGet, "/api/user/me", nil, &out)
	if errors.Is(err, ErrUnauthorized) {
		// Not signed in is a state, not a failure.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *HTTPClient) GetUserById(ctx context.Context, id int) (*models.User, error) {
	var out response[*models.User]
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/user/%d", id), nil, &out)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *HTTPClient) PatchUser(ctx context.Context, patch models.UserPatch) (*models.User, error) {
	var out response[*models.User]
	path := fmt.Sprintf("/api/user/%d", patch.ID)
	if err := c.do(ctx, http.MethodPatch, path, patch, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *HTTPClient) UpsertUserSetting(ctx context.Context, upsert models.UserSettingUpsert) error {
	var out response[json.RawMessage]
	return c.do(ctx, http.MethodPost, "/api/user/setting", upsert, &out)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, del models.UserDelete) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/user/%d", del.ID), nil, nil)
}

func (c *HTTPClient) SignIn(ctx context.Context, username, password string) (*models.User, error) {
	body := map[string]string{"username": username, "password": password}
	var out response[*models.User]
	if err := c.do(ctx, http.MethodPost, "/api/auth/signin", body, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *HTTPClient) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/signout", nil, nil)
}

func (c *HTTPClient) GetSystemStatus(ctx context.Context) (*models.SystemStatus, error) {
	var out response[*models.SystemStatus]
	if err := c.do(ctx, http.MethodGet, "/api/status", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *HTTPClient) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.code, e.body)
}

func isNotFound(err error) bool {
	var se *statusError
	return errors.As(err, &se) && se.code == http.StatusNotFound
}

// do performs one request/response cycle: encodes in as JSON (when
// non-nil), sends it with a fresh request id, and decodes the body into
// out (when non-nil). Non-2xx statuses become errors; 401 maps to
// ErrUnauthorized and connection failures to ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errors.Wrapf(err, "marshal %s %s request", method, path)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrapf(err, "build %s %s request", method, path)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errors.Wrapf(ErrUnavailable, "%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read %s %s response", method, path)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return errors.Wrapf(ErrUnauthorized, "%s %s", method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Wrapf(&statusError{code: resp.StatusCode, body: strings.TrimSpace(string(raw))}, "%s %s", method, path)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return errors.Wrapf(err, "unmarshal %s %s response", method, path)
		}
	}
	return nil
}
