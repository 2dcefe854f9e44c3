package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestLeadMetricsObserve(t *testing.T) {
	m := NewLeadMetrics(prometheus.NewRegistry())
	m.ObserveSubmission("london", "Website Form", "success")
	m.ObserveSubmission("glasgow", "Voice Agent", "error")
	m.ObserveWebhookLatency("london", 0.5)
	m.ObserveFallback("glasgow", "Website Form")
}

func TestPageMetricsObserve(t *testing.T) {
	m := NewPageMetrics(prometheus.NewRegistry())
	m.ObserveView("london", "verruca")
	m.ObserveRedirect("glasgow")
}

func TestVoiceMetricsObserve(t *testing.T) {
	m := NewVoiceMetrics(prometheus.NewRegistry())
	m.ObserveSession("general", "completed")
	m.ObserveToolCall("submitLeadToWebhook", "success")
	m.ObserveSessionDuration("general", 42)
	m.ObserveInterruption("general")
	m.SessionOpened()
	m.ObserveFrame("in")
	m.ObserveFrame("out")
	m.SessionClosed()
}

func TestMetricsNilSafe(t *testing.T) {
	var l *LeadMetrics
	l.ObserveSubmission("london", "Website Form", "success")
	l.ObserveWebhookLatency("london", 0.1)
	l.ObserveFallback("london", "Website Form")

	var p *PageMetrics
	p.ObserveView("london", "general")
	p.ObserveRedirect("london")

	var v *VoiceMetrics
	v.ObserveSession("general", "completed")
	v.ObserveToolCall("scrollToSection", "success")
	v.ObserveSessionDuration("general", 1)
	v.ObserveInterruption("general")
	v.SessionOpened()
	v.ObserveFrame("in")
	v.SessionClosed()
}
