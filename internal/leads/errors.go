package leads

import "errors"

var (
	// ErrSubmitInFlight is returned when a submission is attempted while
	// another one is still pending for the same form.
	ErrSubmitInFlight = errors.New("leads: submission already in flight")

	// ErrWebhookFailed is returned when the CRM webhook rejects or never
	// receives the lead.
	ErrWebhookFailed = errors.New("leads: webhook delivery failed")

	// ErrUnknownLocation is returned for submissions against a location
	// the clinic does not operate in.
	ErrUnknownLocation = errors.New("leads: unknown location")
)

// ValidationError describes a rejected form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
