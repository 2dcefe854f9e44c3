package voice

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/net/websocket"

	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/observability/metrics"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/registry"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/treatment"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/voice/live"
	"github.com/faisalchaudhry-debug/HSM-dermatology/pkg/logging"
)

// InboundMessage is what the widget sends.
type InboundMessage struct {
	Type  string `json:"type"` // "start", "audio", "ack", "stop", "ping"
	Mode  string `json:"mode,omitempty"`
	Data  string `json:"data,omitempty"` // base64 float32 mic frame
	ID    string `json:"id,omitempty"`   // scroll call being acked
	Found bool   `json:"found,omitempty"`
}

// OutboundMessage is what we send to the widget.
type OutboundMessage struct {
	Type     string  `json:"type"` // "ready", "audio", "talking", "interrupted", "scroll", "navigate", "calendar", "error", "pong"
	ID       string  `json:"id,omitempty"`
	Data     string  `json:"data,omitempty"` // base64 PCM16 playback frame
	Start    float64 `json:"start,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Section  string  `json:"section,omitempty"`
	Page     string  `json:"page,omitempty"`
	Path     string  `json:"path,omitempty"`
	Talking  bool    `json:"talking"`
	Message  string  `json:"message,omitempty"`
}

// Handler serves the voice widget WebSocket endpoint.
type Handler struct {
	registry *registry.Registry
	leads    LeadSubmitter
	dial     Dialer
	model    string
	metrics  *metrics.VoiceMetrics
	logger   *logging.Logger
}

// HandlerConfig wires the voice endpoint.
type HandlerConfig struct {
	Registry *registry.Registry
	Leads    LeadSubmitter
	Model    string
	APIKey   string
	Endpoint string // empty for the production Live endpoint
	Dial     Dialer // overrides APIKey/Endpoint when set; tests use this
	Metrics  *metrics.VoiceMetrics
	Logger   *logging.Logger
}

func NewHandler(cfg HandlerConfig) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	dial := cfg.Dial
	if dial == nil {
		endpoint, apiKey := cfg.Endpoint, cfg.APIKey
		dial = func(ctx context.Context) (Upstream, error) {
			return live.Dial(ctx, endpoint, apiKey)
		}
	}
	return &Handler{
		registry: cfg.Registry,
		leads:    cfg.Leads,
		dial:     dial,
		model:    cfg.Model,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
	}
}

// HandleWebSocket upgrades to WebSocket and runs the widget protocol.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, r)
	}).ServeHTTP(w, r)
}

func (h *Handler) serveWS(conn *websocket.Conn, r *http.Request) {
	loc, ok := registry.ParseLocationID(chi.URLParam(r, "location"))
	if !ok {
		_ = websocket.JSON.Send(conn, OutboundMessage{Type: "error", Message: "unknown location"})
		return
	}
	clinic, ok := h.registry.Get(loc)
	if !ok {
		_ = websocket.JSON.Send(conn, OutboundMessage{Type: "error", Message: "unknown location"})
		return
	}

	send := func(msg OutboundMessage) {
		_ = websocket.JSON.Send(conn, msg)
	}

	var session *Session
	defer func() {
		if session != nil {
			session.Stop()
		}
	}()

	h.logger.Info("voice: connection opened", "location", loc)

	for {
		var msg InboundMessage
		if err := websocket.JSON.Receive(conn, &msg); err != nil {
			h.logger.Debug("voice: connection closed", "location", loc, "error", err)
			return
		}

		switch msg.Type {
		case "ping":
			send(OutboundMessage{Type: "pong"})

		case "start":
			mode, known := treatment.Parse(msg.Mode)
			if !known {
				// Unrecognized modes fall back to the general agent.
				h.logger.Warn("voice: unknown mode, using general", "mode", msg.Mode)
			}
			if session != nil {
				session.Stop()
			}
			session = NewSession(SessionConfig{
				Location: loc,
				City:     clinic.City,
				Mode:     mode,
				Model:    h.model,
				Dial:     h.dial,
				Leads:    h.leads,
				Send:     send,
				Metrics:  h.metrics,
				Logger:   h.logger,
			})
			if err := session.Start(r.Context()); err != nil {
				h.logger.Error("voice: session start failed", "error", err, "location", loc)
			}

		case "audio":
			if session != nil {
				session.HandleAudio(msg.Data)
			}

		case "ack":
			if session != nil {
				session.AckScroll(msg.ID, msg.Found)
			}

		case "stop":
			if session != nil {
				session.Stop()
				session = nil
			}
		}
	}
}
