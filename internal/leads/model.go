package leads

import (
	"strings"
	"time"

	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/registry"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/treatment"
)

// Lead is a captured enquiry, stored after it has been forwarded to the
// clinic's CRM webhook.
type Lead struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Phone     string              `json:"phone"`
	Treatment string              `json:"treatment"`
	Location  registry.LocationID `json:"location"`
	Source    string              `json:"source"`
	CreatedAt time.Time           `json:"createdAt"`
}

// Lead sources, mirrored in the CRM payloads.
const (
	SourceWebsiteForm = "Website Form"
	SourceVoiceAgent  = "Voice Agent"
)

// SubmitRequest carries the booking form fields. PageTreatment is the
// label the form was pre-selected to on the page it was embedded in;
// analytics attribution keys off it rather than the submitted value.
type SubmitRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Treatment     string `json:"treatment"`
	PageTreatment string `json:"pageTreatment,omitempty"`
}

// SubmitResponse is returned on a successful submission. The form
// snapshot lets the widget render the post-submit state without
// tracking it client-side.
type SubmitResponse struct {
	Status      string       `json:"status"`
	CalendarURL string       `json:"calendarUrl"`
	Form        FormSnapshot `json:"form"`
}

// PageLabel returns the treatment the page's form was pre-selected to,
// falling back to the default booking label when the widget sent
// nothing usable.
func (r *SubmitRequest) PageLabel() string {
	label := strings.TrimSpace(r.PageTreatment)
	if !treatment.IsBookingOption(label) {
		return treatment.DefaultBookingLabel
	}
	return label
}

// Validate normalizes the request and reports the first problem found.
func (r *SubmitRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Treatment = strings.TrimSpace(r.Treatment)

	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if !strings.Contains(r.Email, "@") {
		return &ValidationError{Field: "email", Message: "email is invalid"}
	}
	if r.Phone == "" {
		return &ValidationError{Field: "phone", Message: "phone is required"}
	}
	if r.Treatment == "" {
		r.Treatment = treatment.DefaultBookingLabel
	}
	if !treatment.IsBookingOption(r.Treatment) {
		return &ValidationError{Field: "treatment", Message: "unknown treatment"}
	}
	r.PageTreatment = r.PageLabel()
	return nil
}
