package leads

import (
	"context"
	"errors"
	"sync"

	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/registry"
)

// FormState tracks where a booking form is in its submission lifecycle.
type FormState string

const (
	FormIdle       FormState = "idle"
	FormSubmitting FormState = "submitting"
	FormSuccess    FormState = "success"
	FormError      FormState = "error"
)

// FormSnapshot is a point-in-time view of a form controller, safe to
// serialize for the widget.
type FormSnapshot struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Treatment    string    `json:"treatment"`
	State        FormState `json:"state"`
	Error        string    `json:"error,omitempty"`
	CalendarOpen bool      `json:"calendarOpen"`
}

// Controller drives one visitor's booking form: it holds the field
// values, enforces single-flight submission, and opens the booking
// calendar after a successful capture.
type Controller struct {
	svc              *Service
	location         registry.LocationID
	initialTreatment string

	mu           sync.Mutex
	name         string
	email        string
	phone        string
	treatment    string
	state        FormState
	errMsg       string
	calendarOpen bool
}

// NewController builds a form pre-selected to the treatment of the page
// it is embedded on.
func NewController(svc *Service, loc registry.LocationID, initialTreatment string) *Controller {
	return &Controller{
		svc:              svc,
		location:         loc,
		initialTreatment: initialTreatment,
		treatment:        initialTreatment,
		state:            FormIdle,
	}
}

// SetName through SetTreatment update fields. Edits while a submission
// is in flight are ignored so the submitted values stay consistent.
func (c *Controller) SetName(v string)  { c.setField(&c.name, v) }
func (c *Controller) SetEmail(v string) { c.setField(&c.email, v) }
func (c *Controller) SetPhone(v string) { c.setField(&c.phone, v) }

func (c *Controller) SetTreatment(v string) { c.setField(&c.treatment, v) }

func (c *Controller) setField(field *string, v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == FormSubmitting {
		return
	}
	*field = v
	// Edits after a result clear it and return the form to idle.
	if c.state == FormSuccess || c.state == FormError {
		c.state = FormIdle
		c.errMsg = ""
	}
}

// Submit sends the current fields through the lead service. Exactly one
// submission may run at a time; concurrent calls fail fast with
// ErrSubmitInFlight. On success the contact fields clear, the treatment
// reverts to the page's default, and the booking calendar opens.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state == FormSubmitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	c.state = FormSubmitting
	c.errMsg = ""
	req := SubmitRequest{
		Name:          c.name,
		Email:         c.email,
		Phone:         c.phone,
		Treatment:     c.treatment,
		PageTreatment: c.initialTreatment,
	}
	c.mu.Unlock()

	_, err := c.svc.SubmitForm(ctx, c.location, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = FormError
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.errMsg = verr.Message
		} else {
			c.errMsg = "Something went wrong. Please try again or call us."
		}
		return err
	}

	c.name = ""
	c.email = ""
	c.phone = ""
	c.treatment = c.initialTreatment
	c.state = FormSuccess
	c.calendarOpen = true
	return nil
}

// CloseCalendar dismisses the booking calendar popup.
func (c *Controller) CloseCalendar() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calendarOpen = false
}

// OpenCalendar shows the booking calendar without a form submission,
// used when the voice agent walks a caller to the calendar directly.
func (c *Controller) OpenCalendar() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calendarOpen = true
}

// Snapshot returns the current form view.
func (c *Controller) Snapshot() FormSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return FormSnapshot{
		Name:         c.name,
		Email:        c.email,
		Phone:        c.phone,
		Treatment:    c.treatment,
		State:        c.state,
		Error:        c.errMsg,
		CalendarOpen: c.calendarOpen,
	}
}
