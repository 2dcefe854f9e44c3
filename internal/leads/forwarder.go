package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/faisalchaudhry-debug/HSM-dermatology/pkg/logging"
)

// FormPayload is the CRM webhook body for booking form submissions.
type FormPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Treatment string `json:"treatment"`
	Location  string `json:"location"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
}

// AgentPayload is the CRM webhook body for leads captured by the voice
// agent. The treatment interest carries the conversation mode rather
// than a booking label.
type AgentPayload struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Location          string `json:"location"`
	TreatmentInterest string `json:"treatment_interest"`
	Source            string `json:"source"`
	Timestamp         string `json:"timestamp"`
}

// Forwarder delivers lead payloads to CRM webhook endpoints.
type Forwarder struct {
	client *http.Client
	logger *logging.Logger
}

// NewForwarder builds a forwarder with the given delivery timeout.
func NewForwarder(timeout time.Duration, logger *logging.Logger) *Forwarder {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Forwarder{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Forward POSTs the payload as JSON. Any non-2xx response counts as a
// delivery failure.
func (f *Forwarder) Forward(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Error("webhook delivery failed", "error", err)
		return fmt.Errorf("%w: %v", ErrWebhookFailed, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Error("webhook rejected lead", "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrWebhookFailed, resp.StatusCode)
	}
	return nil
}

// webhookTimestamp formats submission times the way the CRM expects.
func webhookTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
