package leads

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/registry"
	"github.com/faisalchaudhry-debug/HSM-dermatology/pkg/logging"
)

// Handler serves the booking form submission endpoint and the admin
// lead dashboard.
type Handler struct {
	svc         *Service
	calendarURL string
	logger      *logging.Logger
}

func NewHandler(svc *Service, calendarURL string, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{svc: svc, calendarURL: calendarURL, logger: logger}
}

// POST /{location}/leads
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	loc, ok := registry.ParseLocationID(chi.URLParam(r, "location"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown location")
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	// Each submission runs through a form controller pre-selected to the
	// page's treatment, so field resets and the calendar popup follow
	// the same lifecycle the widget renders.
	ctl := NewController(h.svc, loc, req.PageLabel())
	ctl.SetName(req.Name)
	ctl.SetEmail(req.Email)
	ctl.SetPhone(req.Phone)
	if req.Treatment != "" {
		ctl.SetTreatment(req.Treatment)
	}

	if err := ctl.Submit(r.Context()); err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, verr.Message)
		case errors.Is(err, ErrWebhookFailed):
			writeError(w, http.StatusBadGateway, "could not deliver your request, please call us")
		case errors.Is(err, ErrUnknownLocation):
			writeError(w, http.StatusNotFound, "unknown location")
		default:
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SubmitResponse{
		Status:      "success",
		CalendarURL: h.calendarURL,
		Form:        ctl.Snapshot(),
	})
}

// GET /admin/leads
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		list []*Lead
		err  error
	)
	if q := r.URL.Query().Get("location"); q != "" {
		loc, ok := registry.ParseLocationID(q)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown location")
			return
		}
		list, err = h.svc.ListByLocation(r.Context(), loc)
	} else {
		list, err = h.svc.List(r.Context())
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"lastUpdated": time.Now().UTC(),
		"leads":       list,
	})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "error",
		"message": msg,
	})
}
