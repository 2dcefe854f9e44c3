package metrics

import "github.com/prometheus/client_golang/prometheus"

// LeadMetrics exposes counters/histograms for lead capture flows.
type LeadMetrics struct {
	submissionsTotal *prometheus.CounterVec
	webhookLatency   *prometheus.HistogramVec
	fallbacksTotal   *prometheus.CounterVec
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hsm",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Total lead submissions by source and outcome",
		}, []string{"location", "source", "status"}),
		webhookLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hsm",
			Subsystem: "leads",
			Name:      "webhook_latency_seconds",
			Help:      "Latency of CRM webhook delivery",
			Buckets:   prometheus.DefBuckets,
		}, []string{"location"}),
		fallbacksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hsm",
			Subsystem: "leads",
			Name:      "webhook_fallbacks_total",
			Help:      "Submissions routed through a fallback webhook",
		}, []string{"location", "source"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.webhookLatency, m.fallbacksTotal)
	return m
}

func (m *LeadMetrics) ObserveSubmission(location, source, status string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(location, source, status).Inc()
}

func (m *LeadMetrics) ObserveWebhookLatency(location string, seconds float64) {
	if m == nil {
		return
	}
	m.webhookLatency.WithLabelValues(location).Observe(seconds)
}

func (m *LeadMetrics) ObserveFallback(location, source string) {
	if m == nil {
		return
	}
	m.fallbacksTotal.WithLabelValues(location, source).Inc()
}

// PageMetrics exposes counters for page configuration lookups.
type PageMetrics struct {
	viewsTotal     *prometheus.CounterVec
	redirectsTotal *prometheus.CounterVec
}

func NewPageMetrics(reg prometheus.Registerer) *PageMetrics {
	m := &PageMetrics{
		viewsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hsm",
			Subsystem: "site",
			Name:      "page_views_total",
			Help:      "Total page payloads served by location and treatment",
		}, []string{"location", "treatment"}),
		redirectsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hsm",
			Subsystem: "site",
			Name:      "canonical_redirects_total",
			Help:      "Total redirects issued to canonical treatment paths",
		}, []string{"location"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.viewsTotal, m.redirectsTotal)
	return m
}

func (m *PageMetrics) ObserveView(location, treatment string) {
	if m == nil {
		return
	}
	m.viewsTotal.WithLabelValues(location, treatment).Inc()
}

func (m *PageMetrics) ObserveRedirect(location string) {
	if m == nil {
		return
	}
	m.redirectsTotal.WithLabelValues(location).Inc()
}

// VoiceMetrics exposes counters/histograms for voice agent sessions.
type VoiceMetrics struct {
	sessionsTotal    *prometheus.CounterVec
	toolCallsTotal   *prometheus.CounterVec
	sessionDuration  *prometheus.HistogramVec
	interruptedTotal *prometheus.CounterVec
	activeSessions   prometheus.Gauge
	framesTotal      *prometheus.CounterVec
}

func NewVoiceMetrics(reg prometheus.Registerer) *VoiceMetrics {
	m := &VoiceMetrics{
		sessionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hsm",
			Subsystem: "voice",
			Name:      "sessions_total",
			Help:      "Total voice sessions by mode and outcome",
		}, []string{"mode", "status"}),
		toolCallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hsm",
			Subsystem: "voice",
			Name:      "tool_calls_total",
			Help:      "Total tool invocations requested by the agent",
		}, []string{"tool", "status"}),
		sessionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hsm",
			Subsystem: "voice",
			Name:      "session_duration_seconds",
			Help:      "Duration of voice sessions",
			Buckets:   []float64{5, 15, 30, 60, 120, 300, 600},
		}, []string{"mode"}),
		interruptedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hsm",
			Subsystem: "voice",
			Name:      "interruptions_total",
			Help:      "Total barge-in interruptions",
		}, []string{"mode"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hsm",
			Subsystem: "voice",
			Name:      "active_sessions",
			Help:      "Voice sessions currently connected upstream",
		}),
		framesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hsm",
			Subsystem: "voice",
			Name:      "audio_frames_total",
			Help:      "Audio frames bridged by direction (in = mic, out = playback)",
		}, []string{"direction"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.sessionsTotal, m.toolCallsTotal, m.sessionDuration, m.interruptedTotal, m.activeSessions, m.framesTotal)
	return m
}

func (m *VoiceMetrics) ObserveSession(mode, status string) {
	if m == nil {
		return
	}
	m.sessionsTotal.WithLabelValues(mode, status).Inc()
}

func (m *VoiceMetrics) ObserveToolCall(tool, status string) {
	if m == nil {
		return
	}
	m.toolCallsTotal.WithLabelValues(tool, status).Inc()
}

func (m *VoiceMetrics) ObserveSessionDuration(mode string, seconds float64) {
	if m == nil {
		return
	}
	m.sessionDuration.WithLabelValues(mode).Observe(seconds)
}

func (m *VoiceMetrics) ObserveInterruption(mode string) {
	if m == nil {
		return
	}
	m.interruptedTotal.WithLabelValues(mode).Inc()
}

func (m *VoiceMetrics) SessionOpened() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

func (m *VoiceMetrics) SessionClosed() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}

func (m *VoiceMetrics) ObserveFrame(direction string) {
	if m == nil {
		return
	}
	m.framesTotal.WithLabelValues(direction).Inc()
}
