// Package notify sends out-of-band credential-rotation signals to an
// external endpoint. Callers fire these best-effort: the service layer
// runs them detached and discards the result, so a failed notification
// can never break the mutation that triggered it.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// Sender posts credential-rotation notifications.
type Sender interface {
	// OpenAPIRotated signals that a user's open-API token changed.
	OpenAPIRotated(ctx context.Context, oldOpenAPI, newOpenAPI string) error
	// PasswordChanged signals a password change alongside the current token.
	PasswordChanged(ctx context.Context, openAPI, password string) error
}

// Notifier is the HTTP Sender. An empty endpoint disables it: both calls
// become no-ops, which keeps the patch path quiet on installations that
// have no rotation webhook.
type Notifier struct {
	endpoint string
	httpc    *http.Client
}

func New(endpoint string, timeout time.Duration) *Notifier {
	return &Notifier{
		endpoint: endpoint,
		httpc:    &http.Client{Timeout: timeout},
	}
}

func (n *Notifier) OpenAPIRotated(ctx context.Context, oldOpenAPI, newOpenAPI string) error {
	return n.post(ctx, "/renewopenapi", map[string]string{
		"oldOpenApi": oldOpenAPI,
		"newOpenApi": newOpenAPI,
	})
}

func (n *Notifier) PasswordChanged(ctx context.Context, openAPI, password string) error {
	return n.post(ctx, "/renewpassword", map[string]string{
		"openApi":  openAPI,
		"password": password,
	})
}

func (n *Notifier) post(ctx context.Context, path string, payload map[string]string) error {
	if n.endpoint == "" {
		return nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshal notification")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint+path, bytes.NewReader(raw))
	if err != nil {
		return errors.Wrap(err, "build notification request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpc.Do(req)
	if err != nil {
		return errors.Wrap(err, "post notification")
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Errorf("notification endpoint returned %d", resp.StatusCode)
	}
	return nil
}
