// Package site serves the page payloads the clinic frontends render:
// the landing location selector and the per-treatment clinic pages.
package site

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/content"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/observability/metrics"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/registry"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/treatment"
	"github.com/faisalchaudhry-debug/HSM-dermatology/pkg/logging"
)

// LocationSummary is the landing page's view of one clinic.
type LocationSummary struct {
	ID           registry.LocationID `json:"id"`
	City         string              `json:"city"`
	ClinicName   string              `json:"clinicName"`
	Address      string              `json:"address"`
	Phone        string              `json:"phone"`
	HeroTitle    string              `json:"heroTitle"`
	HeroSubtitle string              `json:"heroSubtitle"`
	Path         string              `json:"path"`
}

// PageView is the fully resolved payload for one clinic treatment page.
type PageView struct {
	Location       *registry.Location      `json:"location"`
	Treatment      string                  `json:"treatment"`
	Page           treatment.PageConfig    `json:"page"`
	FAQs           []content.FAQ           `json:"faqs"`
	Gallery        []content.GalleryCase   `json:"gallery"`
	Comparison     content.Comparison      `json:"comparison"`
	FinancePlans   []content.FinancePlan   `json:"financePlans"`
	VideoURL       string                  `json:"videoUrl,omitempty"`
	EmergencyGuide *content.EmergencyGuide `json:"emergencyGuide,omitempty"`
	BookingLabel   string                  `json:"bookingLabel"`
	BookingOptions []string                `json:"bookingOptions"`
	CalendarURL    string                  `json:"calendarUrl"`
	VoicePath      string                  `json:"voicePath"`
}

// Handler serves landing and clinic page payloads.
type Handler struct {
	registry    *registry.Registry
	calendarURL string
	metrics     *metrics.PageMetrics
	logger      *logging.Logger
}

func NewHandler(reg *registry.Registry, calendarURL string, m *metrics.PageMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		registry:    reg,
		calendarURL: calendarURL,
		metrics:     m,
		logger:      logger,
	}
}

// GET /
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	locations := h.registry.All()
	summaries := make([]LocationSummary, 0, len(locations))
	for _, loc := range locations {
		summaries = append(summaries, LocationSummary{
			ID:           loc.ID,
			City:         loc.City,
			ClinicName:   loc.ClinicName,
			Address:      loc.Address,
			Phone:        loc.Phone,
			HeroTitle:    loc.HeroTitle,
			HeroSubtitle: loc.HeroSubtitle,
			Path:         "/" + loc.ID.String(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"locations": summaries})
}

// Page serves GET /{location} and GET /{location}/*. The wildcard is
// classified into a treatment; requests off the canonical path for
// that treatment redirect to it.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	loc, ok := registry.ParseLocationID(chi.URLParam(r, "location"))
	if !ok {
		// Unknown top-level paths land back on the location selector.
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	clinic, ok := h.registry.Get(loc)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	key := treatment.ClassifyPath(r.URL.Path)
	canonical := treatment.CanonicalPath(key, loc.String())
	if strings.TrimSuffix(r.URL.Path, "/") != canonical {
		h.metrics.ObserveRedirect(loc.String())
		http.Redirect(w, r, canonical, http.StatusFound)
		return
	}

	view := h.buildPage(clinic, key)
	h.metrics.ObserveView(loc.String(), key.String())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

func (h *Handler) buildPage(clinic *registry.Location, key treatment.Key) PageView {
	view := PageView{
		Location:       clinic,
		Treatment:      key.String(),
		Page:           treatment.Resolve(key, clinic.City),
		FAQs:           content.FAQs(key),
		Gallery:        content.Gallery(key),
		Comparison:     content.Compare(key),
		FinancePlans:   content.FinancePlans(),
		VideoURL:       content.VideoURL(key),
		BookingLabel:   treatment.BookingLabel(key, clinic.ID.String()),
		BookingOptions: treatment.BookingOptions(),
		CalendarURL:    h.calendarURL,
		VoicePath:      "/" + clinic.ID.String() + "/voice",
	}
	if key == treatment.Cyst || key == treatment.Ganglion {
		guide := content.CystEmergencyGuide()
		view.EmergencyGuide = &guide
	}
	return view
}
