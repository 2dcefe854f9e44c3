package leads

import (
	"context"
	"time"

	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/analytics"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/observability/metrics"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/registry"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/treatment"
	"github.com/faisalchaudhry-debug/HSM-dermatology/pkg/logging"
)

// Service resolves webhook routing, forwards leads to the CRM, and
// records successful captures.
type Service struct {
	registry  *registry.Registry
	forwarder *Forwarder
	repo      Repository
	sink      analytics.Sink
	metrics   *metrics.LeadMetrics
	logger    *logging.Logger
}

func NewService(reg *registry.Registry, fwd *Forwarder, repo Repository, sink analytics.Sink, m *metrics.LeadMetrics, logger *logging.Logger) *Service {
	if sink == nil {
		sink = analytics.NopSink{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		registry:  reg,
		forwarder: fwd,
		repo:      repo,
		sink:      sink,
		metrics:   m,
		logger:    logger,
	}
}

// SubmitForm validates a booking form submission, forwards it to the
// CRM endpoint for its location and treatment, and stores the lead.
// The lead is only stored and counted once the webhook accepts it.
func (s *Service) SubmitForm(ctx context.Context, loc registry.LocationID, req SubmitRequest) (*Lead, error) {
	if _, ok := s.registry.Get(loc); !ok {
		return nil, ErrUnknownLocation
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	url, fellBack := s.registry.FormWebhook(loc, req.Treatment)
	if fellBack {
		s.logger.Warn("no dedicated form webhook, using fallback",
			"location", loc, "treatment", req.Treatment)
		s.metrics.ObserveFallback(loc.String(), SourceWebsiteForm)
	}

	now := time.Now()
	payload := FormPayload{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Treatment: req.Treatment,
		Location:  loc.String(),
		Source:    SourceWebsiteForm,
		Timestamp: webhookTimestamp(now),
	}

	start := time.Now()
	err := s.forwarder.Forward(ctx, url, payload)
	s.metrics.ObserveWebhookLatency(loc.String(), time.Since(start).Seconds())
	if err != nil {
		s.metrics.ObserveSubmission(loc.String(), SourceWebsiteForm, "error")
		return nil, err
	}

	lead := &Lead{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Treatment: req.Treatment,
		Location:  loc,
		Source:    SourceWebsiteForm,
		CreatedAt: now.UTC(),
	}
	if err := s.repo.Create(ctx, lead); err != nil {
		// The CRM already has the lead; losing the local copy is not
		// worth failing the submission over.
		s.logger.Error("failed to store lead", "error", err)
	}

	s.sink.Push(analytics.FormSubmit(loc, req.Treatment, req.PageTreatment))
	s.metrics.ObserveSubmission(loc.String(), SourceWebsiteForm, "success")
	s.logger.Info("lead forwarded", "location", loc, "treatment", req.Treatment)
	return lead, nil
}

// SubmitAgentLead forwards a lead captured mid-conversation by the
// voice agent. The webhook is resolved by conversation mode, falling
// back to the general endpoint when the mode has no dedicated one.
func (s *Service) SubmitAgentLead(ctx context.Context, loc registry.LocationID, mode treatment.Key, name, email, phone string) error {
	url, fellBack := s.registry.AgentWebhook(loc, mode)
	if url == "" {
		return ErrUnknownLocation
	}
	if fellBack {
		s.logger.Warn("no dedicated agent webhook, using general",
			"location", loc, "mode", mode)
		s.metrics.ObserveFallback(loc.String(), SourceVoiceAgent)
	}

	now := time.Now()
	payload := AgentPayload{
		Name:              name,
		Email:             email,
		Phone:             phone,
		Location:          loc.String(),
		TreatmentInterest: mode.String(),
		Source:            SourceVoiceAgent,
		Timestamp:         webhookTimestamp(now),
	}

	start := time.Now()
	err := s.forwarder.Forward(ctx, url, payload)
	s.metrics.ObserveWebhookLatency(loc.String(), time.Since(start).Seconds())
	if err != nil {
		s.metrics.ObserveSubmission(loc.String(), SourceVoiceAgent, "error")
		return err
	}

	lead := &Lead{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Treatment: treatment.BookingLabel(mode, loc.String()),
		Location:  loc,
		Source:    SourceVoiceAgent,
		CreatedAt: now.UTC(),
	}
	if err := s.repo.Create(ctx, lead); err != nil {
		s.logger.Error("failed to store agent lead", "error", err)
	}

	s.metrics.ObserveSubmission(loc.String(), SourceVoiceAgent, "success")
	s.logger.Info("agent lead forwarded", "location", loc, "mode", mode)
	return nil
}

// List returns stored leads, newest first.
func (s *Service) List(ctx context.Context) ([]*Lead, error) {
	return s.repo.List(ctx)
}

// ListByLocation returns stored leads for one clinic, newest first.
func (s *Service) ListByLocation(ctx context.Context, loc registry.LocationID) ([]*Lead, error) {
	return s.repo.ListByLocation(ctx, loc)
}
