package registry

import (
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/treatment"
)

// LocationID identifies a clinic location.
type LocationID string

const (
	London  LocationID = "london"
	Glasgow LocationID = "glasgow"
)

func (id LocationID) String() string { return string(id) }

// ParseLocationID validates a location slug from a URL.
func ParseLocationID(s string) (LocationID, bool) {
	switch LocationID(s) {
	case London:
		return London, true
	case Glasgow:
		return Glasgow, true
	}
	return "", false
}

// Doctor is one member of a clinic's medical team.
type Doctor struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Review is a patient testimonial shown on clinic pages.
type Review struct {
	Name    string `json:"name"`
	Date    string `json:"date"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// Webhooks holds the per-location CRM endpoints. Form webhooks are
// keyed by booking label, agent webhooks by treatment key.
type Webhooks struct {
	Form  map[string]string
	Agent map[treatment.Key]string
}

// Location is the full static profile of one clinic.
type Location struct {
	ID           LocationID `json:"id"`
	City         string     `json:"city"`
	ClinicName   string     `json:"clinicName"`
	Address      string     `json:"address"`
	Phone        string     `json:"phone"`
	WhatsApp     string     `json:"whatsapp"`
	MapEmbedURL  string     `json:"mapEmbedUrl"`
	HeroTitle    string     `json:"heroTitle"`
	HeroSubtitle string     `json:"heroSubtitle"`
	Doctors      []Doctor   `json:"doctors"`
	Reviews      []Review   `json:"reviews"`
	Webhooks     Webhooks   `json:"-"`
}

// Registry is the read-only catalog of clinic locations. All lookups
// are safe for concurrent use because the data never mutates.
type Registry struct {
	locations map[LocationID]*Location
	order     []LocationID
	// defaultFormWebhook is the last-resort CRM endpoint used when a
	// location has no entry for a booking label and no entry for the
	// default label either.
	defaultFormWebhook string
}

// New builds the registry with the built-in London and Glasgow clinics.
// defaultFormWebhook may be empty, in which case the built-in fallback
// endpoint is used.
func New(defaultFormWebhook string) *Registry {
	return NewWithLocations(builtinLocations(), defaultFormWebhook)
}

// NewWithLocations builds a registry from an explicit location set.
// Tests use this to point webhooks at local servers.
func NewWithLocations(locations []Location, defaultFormWebhook string) *Registry {
	if defaultFormWebhook == "" {
		defaultFormWebhook = builtinDefaultFormWebhook
	}
	r := &Registry{
		locations:          make(map[LocationID]*Location),
		defaultFormWebhook: defaultFormWebhook,
	}
	for _, loc := range locations {
		loc := loc
		r.locations[loc.ID] = &loc
		r.order = append(r.order, loc.ID)
	}
	return r
}

// Get returns the location profile for id.
func (r *Registry) Get(id LocationID) (*Location, bool) {
	loc, ok := r.locations[id]
	return loc, ok
}

// All returns the locations in registration order.
func (r *Registry) All() []*Location {
	out := make([]*Location, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.locations[id])
	}
	return out
}

// FormWebhook resolves the CRM endpoint for a booking form submission.
// Missing labels fall back to the default booking label's endpoint,
// then to the registry-wide default. The second return reports whether
// a fallback was taken.
func (r *Registry) FormWebhook(id LocationID, label string) (string, bool) {
	loc, ok := r.locations[id]
	if !ok {
		return r.defaultFormWebhook, true
	}
	if url, ok := loc.Webhooks.Form[label]; ok {
		return url, false
	}
	if url, ok := loc.Webhooks.Form[treatment.DefaultBookingLabel]; ok {
		return url, true
	}
	return r.defaultFormWebhook, true
}

// AgentWebhook resolves the CRM endpoint for a voice agent lead.
// Unknown treatment keys fall back to the location's general endpoint.
// The second return reports whether a fallback was taken.
func (r *Registry) AgentWebhook(id LocationID, key treatment.Key) (string, bool) {
	loc, ok := r.locations[id]
	if !ok {
		return "", true
	}
	if url, ok := loc.Webhooks.Agent[key]; ok {
		return url, false
	}
	return loc.Webhooks.Agent[treatment.General], true
}
