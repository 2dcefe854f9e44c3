package leads

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/analytics"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/registry"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/treatment"
	"github.com/faisalchaudhry-debug/HSM-dermatology/pkg/logging"
)

func testLogger() *logging.Logger {
	return logging.NewWithWriter("error", io.Discard)
}

// capturingWebhook records every payload it receives.
type capturingWebhook struct {
	mu       sync.Mutex
	payloads []map[string]any
	status   int
}

func (c *capturingWebhook) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		json.NewDecoder(r.Body).Decode(&payload)
		c.mu.Lock()
		c.payloads = append(c.payloads, payload)
		c.mu.Unlock()
		status := c.status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
	}
}

func (c *capturingWebhook) last(t *testing.T) map[string]any {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.payloads) == 0 {
		t.Fatal("webhook received no payloads")
	}
	return c.payloads[len(c.payloads)-1]
}

func testRegistry(formURL, agentURL string) *registry.Registry {
	locs := []registry.Location{
		{
			ID:   registry.London,
			City: "London",
			Webhooks: registry.Webhooks{
				Form: map[string]string{
					"Warts Removal": formURL,
					"Cyst Removal":  formURL,
				},
				Agent: map[treatment.Key]string{
					treatment.General: agentURL,
				},
			},
		},
	}
	return registry.NewWithLocations(locs, formURL)
}

func newTestService(t *testing.T, hook *capturingWebhook) (*Service, *InMemoryRepository, *analytics.MemorySink) {
	t.Helper()
	srv := httptest.NewServer(hook.handler())
	t.Cleanup(srv.Close)

	reg := testRegistry(srv.URL, srv.URL)
	repo := NewInMemoryRepository()
	sink := analytics.NewMemorySink(16, testLogger())
	t.Cleanup(sink.Close)
	fwd := NewForwarder(5*time.Second, testLogger())
	return NewService(reg, fwd, repo, sink, nil, testLogger()), repo, sink
}

func TestSubmitFormForwardsPayload(t *testing.T) {
	hook := &capturingWebhook{}
	svc, repo, _ := newTestService(t, hook)

	lead, err := svc.SubmitForm(context.Background(), registry.London, SubmitRequest{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "07700900000",
		Treatment: "Cyst Removal",
	})
	if err != nil {
		t.Fatalf("SubmitForm: %v", err)
	}
	if lead.Source != SourceWebsiteForm {
		t.Errorf("source = %q", lead.Source)
	}

	payload := hook.last(t)
	if payload["treatment"] != "Cyst Removal" || payload["location"] != "london" {
		t.Errorf("unexpected payload: %v", payload)
	}
	if payload["source"] != "Website Form" {
		t.Errorf("source = %v", payload["source"])
	}
	ts, _ := payload["timestamp"].(string)
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", ts, err)
	}

	stored, _ := repo.List(context.Background())
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored lead, got %d", len(stored))
	}
}

func TestSubmitFormEmitsAnalytics(t *testing.T) {
	hook := &capturingWebhook{}
	svc, _, sink := newTestService(t, hook)

	_, err := svc.SubmitForm(context.Background(), registry.London, SubmitRequest{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "07700900000",
		Treatment: "Warts Removal",
	})
	if err != nil {
		t.Fatalf("SubmitForm: %v", err)
	}

	deadline := time.After(time.Second)
	for {
		events := sink.Events()
		if len(events) == 1 {
			if events[0].FormClass != "space-y-4 space-y-4-warts-removal-london" {
				t.Errorf("formClass = %q", events[0].FormClass)
			}
			return
		}
		select {
		case <-deadline:
			t.Fatalf("expected 1 analytics event, got %d", len(events))
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestSubmitFormValidation(t *testing.T) {
	hook := &capturingWebhook{}
	svc, repo, _ := newTestService(t, hook)

	cases := []struct {
		name  string
		req   SubmitRequest
		field string
	}{
		{"missing name", SubmitRequest{Email: "a@b.c", Phone: "1"}, "name"},
		{"missing email", SubmitRequest{Name: "A", Phone: "1"}, "email"},
		{"bad email", SubmitRequest{Name: "A", Email: "nope", Phone: "1"}, "email"},
		{"missing phone", SubmitRequest{Name: "A", Email: "a@b.c"}, "phone"},
		{"bad treatment", SubmitRequest{Name: "A", Email: "a@b.c", Phone: "1", Treatment: "Liposuction"}, "treatment"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SubmitForm(context.Background(), registry.London, tc.req)
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Errorf("field = %q, want %q", verr.Field, tc.field)
			}
		})
	}

	stored, _ := repo.List(context.Background())
	if len(stored) != 0 {
		t.Errorf("invalid submissions must not be stored, got %d", len(stored))
	}
}

func TestSubmitFormEmptyTreatmentDefaults(t *testing.T) {
	hook := &capturingWebhook{}
	svc, _, _ := newTestService(t, hook)

	lead, err := svc.SubmitForm(context.Background(), registry.London, SubmitRequest{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "07700900000",
	})
	if err != nil {
		t.Fatalf("SubmitForm: %v", err)
	}
	if lead.Treatment != treatment.DefaultBookingLabel {
		t.Errorf("treatment = %q, want %q", lead.Treatment, treatment.DefaultBookingLabel)
	}
}

func TestSubmitFormWebhookFailure(t *testing.T) {
	hook := &capturingWebhook{status: http.StatusInternalServerError}
	svc, repo, sink := newTestService(t, hook)

	_, err := svc.SubmitForm(context.Background(), registry.London, SubmitRequest{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "07700900000",
		Treatment: "Warts Removal",
	})
	if err == nil {
		t.Fatal("expected error on webhook failure")
	}

	stored, _ := repo.List(context.Background())
	if len(stored) != 0 {
		t.Errorf("failed submissions must not be stored, got %d", len(stored))
	}
	if events := sink.Events(); len(events) != 0 {
		t.Errorf("failed submissions must not emit analytics, got %d", len(events))
	}
}

func TestSubmitAgentLead(t *testing.T) {
	hook := &capturingWebhook{}
	svc, repo, _ := newTestService(t, hook)

	err := svc.SubmitAgentLead(context.Background(), registry.London, treatment.Verruca,
		"John Doe", "john@example.com", "07700900001")
	if err != nil {
		t.Fatalf("SubmitAgentLead: %v", err)
	}

	payload := hook.last(t)
	if payload["treatment_interest"] != "verruca" {
		t.Errorf("treatment_interest = %v", payload["treatment_interest"])
	}
	if payload["source"] != "Voice Agent" {
		t.Errorf("source = %v", payload["source"])
	}

	stored, _ := repo.List(context.Background())
	if len(stored) != 1 || stored[0].Source != SourceVoiceAgent {
		t.Fatalf("unexpected stored leads: %+v", stored)
	}
}

func TestControllerLifecycle(t *testing.T) {
	hook := &capturingWebhook{}
	svc, _, _ := newTestService(t, hook)

	c := NewController(svc, registry.London, "Cyst Removal")
	snap := c.Snapshot()
	if snap.State != FormIdle || snap.Treatment != "Cyst Removal" {
		t.Fatalf("fresh controller: %+v", snap)
	}

	c.SetName("Jane Doe")
	c.SetEmail("jane@example.com")
	c.SetPhone("07700900000")
	c.SetTreatment("Warts Removal")

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	snap = c.Snapshot()
	if snap.State != FormSuccess {
		t.Errorf("state = %q", snap.State)
	}
	if !snap.CalendarOpen {
		t.Error("calendar should open after success")
	}
	if snap.Name != "" || snap.Email != "" || snap.Phone != "" {
		t.Errorf("contact fields should reset: %+v", snap)
	}
	if snap.Treatment != "Cyst Removal" {
		t.Errorf("treatment should revert to page default, got %q", snap.Treatment)
	}

	c.CloseCalendar()
	if c.Snapshot().CalendarOpen {
		t.Error("calendar should close")
	}
}

func TestControllerErrorState(t *testing.T) {
	hook := &capturingWebhook{status: http.StatusBadGateway}
	svc, _, _ := newTestService(t, hook)

	c := NewController(svc, registry.London, "Warts Removal")
	c.SetName("Jane Doe")
	c.SetEmail("jane@example.com")
	c.SetPhone("07700900000")

	if err := c.Submit(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	snap := c.Snapshot()
	if snap.State != FormError || snap.Error == "" {
		t.Errorf("expected error state with message: %+v", snap)
	}
	// Fields survive a failed submission so the visitor can retry.
	if snap.Name != "Jane Doe" {
		t.Errorf("fields must survive failure: %+v", snap)
	}

	// Editing a field clears the error.
	c.SetPhone("07700900099")
	if s := c.Snapshot(); s.State != FormIdle || s.Error != "" {
		t.Errorf("edit should clear error: %+v", s)
	}
}

func TestControllerSingleFlight(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	reg := testRegistry(srv.URL, srv.URL)
	repo := NewInMemoryRepository()
	fwd := NewForwarder(5*time.Second, testLogger())
	svc := NewService(reg, fwd, repo, nil, nil, testLogger())

	c := NewController(svc, registry.London, "Warts Removal")
	c.SetName("Jane Doe")
	c.SetEmail("jane@example.com")
	c.SetPhone("07700900000")

	firstDone := make(chan error, 1)
	go func() { firstDone <- c.Submit(context.Background()) }()

	// Wait until the first submission is in flight.
	deadline := time.After(time.Second)
	for c.Snapshot().State != FormSubmitting {
		select {
		case <-deadline:
			t.Fatal("first submission never started")
		case <-time.After(5 * time.Millisecond):
		}
	}

	if err := c.Submit(context.Background()); err != ErrSubmitInFlight {
		t.Errorf("second submit = %v, want ErrSubmitInFlight", err)
	}

	close(release)
	if err := <-firstDone; err != nil {
		t.Errorf("first submit failed: %v", err)
	}
}

func TestHandlerSubmit(t *testing.T) {
	hook := &capturingWebhook{}
	svc, _, _ := newTestService(t, hook)
	h := NewHandler(svc, "https://calendar.example/bookings", testLogger())

	r := chi.NewRouter()
	r.Post("/{location}/leads", h.Submit)

	body := `{"name":"Jane Doe","email":"jane@example.com","phone":"07700900000","treatment":"Warts Removal"}`
	req := httptest.NewRequest(http.MethodPost, "/london/leads", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp SubmitResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("status = %q", resp.Status)
	}
	if resp.CalendarURL != "https://calendar.example/bookings" {
		t.Errorf("calendarUrl = %q", resp.CalendarURL)
	}
	if resp.Form.State != FormSuccess || !resp.Form.CalendarOpen {
		t.Errorf("form should be in success state with calendar open: %+v", resp.Form)
	}
	if resp.Form.Name != "" || resp.Form.Email != "" || resp.Form.Phone != "" {
		t.Errorf("contact fields should reset after success: %+v", resp.Form)
	}
}

func TestHandlerSubmitFollowsPageTreatment(t *testing.T) {
	hook := &capturingWebhook{}
	svc, _, sink := newTestService(t, hook)
	h := NewHandler(svc, "", testLogger())

	r := chi.NewRouter()
	r.Post("/{location}/leads", h.Submit)

	// Submitted from the cyst page with the dropdown switched to warts.
	body := `{"name":"Jane Doe","email":"jane@example.com","phone":"07700900000",
		"treatment":"Warts Removal","pageTreatment":"Cyst Removal"}`
	req := httptest.NewRequest(http.MethodPost, "/london/leads", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp SubmitResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Form.Treatment != "Cyst Removal" {
		t.Errorf("form should revert to the page treatment, got %q", resp.Form.Treatment)
	}

	deadline := time.After(time.Second)
	for {
		events := sink.Events()
		if len(events) == 1 {
			if events[0].FormTreatment != "Warts Removal" {
				t.Errorf("formTreatment = %q", events[0].FormTreatment)
			}
			if events[0].FormClass != "space-y-4 space-y-4-cyst-removal-london" {
				t.Errorf("formClass = %q", events[0].FormClass)
			}
			return
		}
		select {
		case <-deadline:
			t.Fatalf("expected 1 analytics event, got %d", len(events))
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestHandlerSubmitRejectsBadLocation(t *testing.T) {
	hook := &capturingWebhook{}
	svc, _, _ := newTestService(t, hook)
	h := NewHandler(svc, "", testLogger())

	r := chi.NewRouter()
	r.Post("/{location}/leads", h.Submit)

	req := httptest.NewRequest(http.MethodPost, "/manchester/leads", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandlerSubmitValidationError(t *testing.T) {
	hook := &capturingWebhook{}
	svc, _, _ := newTestService(t, hook)
	h := NewHandler(svc, "", testLogger())

	r := chi.NewRouter()
	r.Post("/{location}/leads", h.Submit)

	req := httptest.NewRequest(http.MethodPost, "/london/leads", strings.NewReader(`{"name":"A"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerSubmitWebhookDown(t *testing.T) {
	hook := &capturingWebhook{status: http.StatusServiceUnavailable}
	svc, _, _ := newTestService(t, hook)
	h := NewHandler(svc, "", testLogger())

	r := chi.NewRouter()
	r.Post("/{location}/leads", h.Submit)

	body := `{"name":"Jane Doe","email":"jane@example.com","phone":"07700900000"}`
	req := httptest.NewRequest(http.MethodPost, "/london/leads", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestHandlerList(t *testing.T) {
	hook := &capturingWebhook{}
	svc, repo, _ := newTestService(t, hook)
	h := NewHandler(svc, "", testLogger())

	repo.Create(context.Background(), &Lead{
		Name: "A", Location: registry.London, Source: SourceWebsiteForm,
		CreatedAt: time.Now().Add(-time.Hour),
	})
	repo.Create(context.Background(), &Lead{
		Name: "B", Location: registry.Glasgow, Source: SourceVoiceAgent,
		CreatedAt: time.Now(),
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/leads", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	var resp struct {
		Leads []Lead `json:"leads"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.Leads) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(resp.Leads))
	}
	if resp.Leads[0].Name != "B" {
		t.Errorf("newest lead should come first, got %q", resp.Leads[0].Name)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/leads?location=london", nil)
	rec = httptest.NewRecorder()
	h.List(rec, req)
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.Leads) != 1 || resp.Leads[0].Name != "A" {
		t.Errorf("location filter failed: %+v", resp.Leads)
	}
}
