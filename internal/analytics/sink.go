package analytics

import (
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/registry"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/treatment"
)

// Event is a marketing analytics record emitted on successful lead
// submissions.
type Event struct {
	Event         string `json:"event"`
	FormLocation  string `json:"formLocation"`
	FormTreatment string `json:"formTreatment"`
	FormClass     string `json:"formClass"`
}

// EventFormSubmit is the event name for booking form submissions.
const EventFormSubmit = "form_submit"

// FormSubmit builds the event recorded when a booking form submission
// succeeds. The treatment field carries what the visitor actually
// submitted, while the form class is derived from the label the page's
// form was pre-selected to, so campaign attribution stays tied to the
// landing page even when the visitor changes the dropdown.
func FormSubmit(loc registry.LocationID, submitted, pageLabel string) Event {
	return Event{
		Event:         EventFormSubmit,
		FormLocation:  loc.String(),
		FormTreatment: submitted,
		FormClass:     FormClass(loc, pageLabel),
	}
}

// FormClass derives the attribution class for a location/treatment pair.
func FormClass(loc registry.LocationID, label string) string {
	return "space-y-4 space-y-4-" + treatment.LabelSlug(label) + "-" + loc.String()
}

// Sink receives analytics events. Implementations must not block the
// caller; delivery is best effort.
type Sink interface {
	Push(event Event)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Push(Event) {}
