package suggestion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/brightfieldschool/site/internal/platform/timeouts"
)

// Relay submits suggestions to the external processing endpoint with a
// single multipart POST carrying exactly the email and message fields.
//
// The endpoint is opaque: no authentication is sent and the response body is
// never read. Only transport success or failure is observed, so a delivered
// write whose confirmation was blocked upstream is indistinguishable from a
// write that never arrived. That ambiguity is deliberate and must not be
// papered over with retries or read-backs.
type Relay struct {
	endpoint string
	client   *http.Client
}

// NewRelay builds a relay for the given endpoint URL. A nil client gets a
// default with the shared relay timeout.
func NewRelay(endpoint string, client *http.Client) (*Relay, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, errors.New("suggestion: relay endpoint is required")
	}
	if client == nil {
		client = &http.Client{Timeout: timeouts.SuggestionRelay}
	}
	return &Relay{endpoint: endpoint, client: client}, nil
}

// Submit posts one suggestion. Any transport error is a failure; any
// received HTTP response counts as success regardless of status code.
func (r *Relay) Submit(ctx context.Context, email, message string) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("email", email); err != nil {
		return fmt.Errorf("encode email field: %w", err)
	}
	if err := writer.WriteField("message", message); err != nil {
		return fmt.Errorf("encode message field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, &body)
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("post suggestion: %w", err)
	}
	// Drain so the connection can be reused; the payload itself is ignored.
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}
