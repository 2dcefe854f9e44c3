package voice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/observability/metrics"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/registry"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/treatment"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/voice/live"
	"github.com/faisalchaudhry-debug/HSM-dermatology/pkg/logging"
)

// Upstream is the Live API connection as the session sees it.
type Upstream interface {
	Send(live.ClientMessage) error
	Receive() (*live.ServerMessage, error)
	Close() error
}

// Dialer opens an upstream connection.
type Dialer func(ctx context.Context) (Upstream, error)

// LeadSubmitter forwards leads captured mid-conversation.
type LeadSubmitter interface {
	SubmitAgentLead(ctx context.Context, loc registry.LocationID, mode treatment.Key, name, email, phone string) error
}

// State is the session lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateConnecting State = "connecting"
	StateActive     State = "active"
)

// ErrNotIdle is returned when Start is called on a running session.
var ErrNotIdle = errors.New("voice: session already started")

// SessionConfig wires one widget conversation.
type SessionConfig struct {
	Location registry.LocationID
	City     string // display name used in the persona prompt
	Mode     treatment.Key
	Model    string
	Dial     Dialer
	Leads    LeadSubmitter
	Send     func(OutboundMessage)
	Clock    Clock
	Metrics  *metrics.VoiceMetrics
	Logger   *logging.Logger
}

// Session bridges one widget connection to one Live API session: mic
// audio up, scheduled playback frames down, tool calls executed
// against the page and the lead pipeline.
//
// A generation counter guards against late upstream events: Stop bumps
// the generation, and anything tagged with an older generation is
// discarded. This keeps a slow Receive from resurrecting a session the
// visitor already ended.
type Session struct {
	cfg     SessionConfig
	profile Profile
	sched   *Scheduler
	disp    *Dispatcher
	clock   Clock
	logger  *logging.Logger

	mu       sync.Mutex
	state    State
	gen      int
	upstream Upstream
	started  time.Time
	talking  bool
	frameSeq int
	releases map[string]*time.Timer
}

func NewSession(cfg SessionConfig) *Session {
	if cfg.Clock == nil {
		cfg.Clock = NewWallClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	s := &Session{
		cfg:      cfg,
		profile:  ProfileFor(cfg.Mode),
		clock:    cfg.Clock,
		logger:   cfg.Logger,
		state:    StateIdle,
		releases: make(map[string]*time.Timer),
	}
	s.sched = NewScheduler(cfg.Clock)
	s.disp = NewDispatcher(s, s.sendToolResponse, cfg.Metrics, cfg.Logger)
	return s
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start dials upstream and performs the setup handshake. The session
// becomes active once the server confirms setup, at which point the
// widget receives a ready message.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return ErrNotIdle
	}
	s.state = StateConnecting
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	up, err := s.cfg.Dial(ctx)
	if err != nil {
		s.mu.Lock()
		if s.gen == gen {
			s.state = StateIdle
		}
		s.mu.Unlock()
		s.cfg.Metrics.ObserveSession(s.profile.Mode.String(), "connect_error")
		s.cfg.Send(OutboundMessage{Type: "error", Message: "Could not connect to the voice service."})
		return fmt.Errorf("dial upstream: %w", err)
	}

	setup := live.ClientMessage{Setup: &live.Setup{
		Model: s.cfg.Model,
		GenerationConfig: &live.GenerationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &live.SpeechConfig{
				VoiceConfig: &live.VoiceConfig{
					PrebuiltVoiceConfig: &live.PrebuiltVoiceConfig{VoiceName: s.profile.Voice},
				},
			},
		},
		SystemInstruction: &live.Content{
			Parts: []live.Part{{Text: s.profile.SystemInstruction(s.cfg.City)}},
		},
		Tools: Declarations(),
	}}
	if err := up.Send(setup); err != nil {
		up.Close()
		s.mu.Lock()
		if s.gen == gen {
			s.state = StateIdle
		}
		s.mu.Unlock()
		s.cfg.Metrics.ObserveSession(s.profile.Mode.String(), "connect_error")
		s.cfg.Send(OutboundMessage{Type: "error", Message: "Could not connect to the voice service."})
		return fmt.Errorf("send setup: %w", err)
	}

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		up.Close()
		return nil
	}
	s.upstream = up
	s.started = time.Now()
	s.mu.Unlock()

	s.cfg.Metrics.SessionOpened()
	go s.readLoop(gen, up)
	return nil
}

// HandleAudio forwards one widget microphone frame upstream.
func (s *Session) HandleAudio(data string) {
	s.mu.Lock()
	up := s.upstream
	active := s.state == StateActive
	s.mu.Unlock()
	if !active || up == nil {
		return
	}

	samples, err := DecodeWidgetFrame(data)
	if err != nil {
		s.logger.Debug("dropping malformed mic frame", "error", err)
		return
	}
	msg := live.ClientMessage{RealtimeInput: &live.RealtimeInput{
		MediaChunks: []live.Blob{MicBlob(samples)},
	}}
	if err := up.Send(msg); err != nil {
		s.logger.Debug("mic frame send failed", "error", err)
		return
	}
	s.cfg.Metrics.ObserveFrame("in")
}

// AckScroll passes the widget's scroll verdict to the dispatcher.
func (s *Session) AckScroll(callID string, found bool) {
	s.disp.AckScroll(callID, found)
}

// Stop tears the session down. Safe to call at any time; late upstream
// events after a stop are discarded.
func (s *Session) Stop() {
	s.teardown("stopped", "")
}

func (s *Session) teardown(status, widgetErr string) {
	s.mu.Lock()
	if s.state == StateIdle {
		s.mu.Unlock()
		return
	}
	s.gen++
	up := s.upstream
	s.upstream = nil
	s.state = StateIdle
	s.talking = false
	started := s.started
	for id, t := range s.releases {
		t.Stop()
		delete(s.releases, id)
	}
	s.mu.Unlock()

	s.disp.CancelPending()
	s.sched.Interrupt()
	if up != nil {
		up.Close()
		s.cfg.Metrics.SessionClosed()
	}

	if widgetErr != "" {
		s.cfg.Send(OutboundMessage{Type: "error", Message: widgetErr})
	}
	s.cfg.Metrics.ObserveSession(s.profile.Mode.String(), status)
	if !started.IsZero() {
		s.cfg.Metrics.ObserveSessionDuration(s.profile.Mode.String(), time.Since(started).Seconds())
	}
	s.logger.Info("voice session ended", "mode", s.profile.Mode, "status", status)
}

func (s *Session) readLoop(gen int, up Upstream) {
	for {
		msg, err := up.Receive()
		if err != nil {
			s.mu.Lock()
			stale := s.gen != gen
			s.mu.Unlock()
			if stale {
				return
			}
			s.logger.Warn("upstream closed", "error", err)
			s.teardown("upstream_closed", "Connection lost. Please try again.")
			return
		}
		if s.stale(gen) {
			return
		}
		s.handleServerMessage(gen, msg)
	}
}

func (s *Session) stale(gen int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen != gen
}

func (s *Session) handleServerMessage(gen int, msg *live.ServerMessage) {
	if msg.SetupComplete != nil {
		s.mu.Lock()
		if s.gen == gen && s.state == StateConnecting {
			s.state = StateActive
		}
		s.mu.Unlock()
		s.cfg.Metrics.ObserveSession(s.profile.Mode.String(), "started")
		s.cfg.Send(OutboundMessage{Type: "ready"})
		return
	}

	if msg.ToolCall != nil {
		for _, fc := range msg.ToolCall.FunctionCalls {
			s.disp.Dispatch(context.Background(), fc)
		}
	}

	if sc := msg.ServerContent; sc != nil {
		if sc.ModelTurn != nil {
			for _, part := range sc.ModelTurn.Parts {
				if part.InlineData != nil && part.InlineData.Data != "" {
					s.playFrame(gen, part.InlineData.Data)
				}
			}
		}
		if sc.Interrupted {
			s.interrupt(gen)
		}
	}
}

// playFrame schedules one model audio frame for gapless playback and
// forwards it to the widget with its start offset.
func (s *Session) playFrame(gen int, data string) {
	samples, err := DecodeModelFrame(data)
	if err != nil {
		s.logger.Warn("dropping malformed model frame", "error", err)
		return
	}
	duration := FrameDuration(len(samples), OutputSampleRate)

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return
	}
	s.frameSeq++
	id := fmt.Sprintf("frame-%d", s.frameSeq)
	start := s.sched.Schedule(id, duration)
	wasTalking := s.talking
	s.talking = true
	delay := time.Duration((start + duration - s.clock.Now()) * float64(time.Second))
	if delay < 0 {
		delay = 0
	}
	s.releases[id] = time.AfterFunc(delay, func() { s.releaseFrame(gen, id) })
	s.mu.Unlock()

	s.cfg.Metrics.ObserveFrame("out")
	if !wasTalking {
		s.cfg.Send(OutboundMessage{Type: "talking", Talking: true})
	}
	s.cfg.Send(OutboundMessage{
		Type:     "audio",
		ID:       id,
		Data:     data,
		Start:    start,
		Duration: duration,
	})
}

// releaseFrame marks a frame's playback window as elapsed. When the
// last one drains the agent stops talking.
func (s *Session) releaseFrame(gen int, id string) {
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return
	}
	delete(s.releases, id)
	remaining := s.sched.Release(id)
	stopped := remaining == 0 && s.talking
	if stopped {
		s.talking = false
	}
	s.mu.Unlock()

	if stopped {
		s.cfg.Send(OutboundMessage{Type: "talking", Talking: false})
	}
}

// interrupt handles barge-in: everything queued stops immediately and
// the playback cursor resets.
func (s *Session) interrupt(gen int) {
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return
	}
	for id, t := range s.releases {
		t.Stop()
		delete(s.releases, id)
	}
	wasTalking := s.talking
	s.talking = false
	s.mu.Unlock()

	s.sched.Interrupt()
	s.cfg.Metrics.ObserveInterruption(s.profile.Mode.String())
	s.cfg.Send(OutboundMessage{Type: "interrupted"})
	if wasTalking {
		s.cfg.Send(OutboundMessage{Type: "talking", Talking: false})
	}
}

func (s *Session) sendToolResponse(resp live.FunctionResponse) {
	s.mu.Lock()
	up := s.upstream
	s.mu.Unlock()
	if up == nil {
		return
	}
	msg := live.ClientMessage{ToolResponse: &live.ToolResponse{
		FunctionResponses: []live.FunctionResponse{resp},
	}}
	if err := up.Send(msg); err != nil {
		s.logger.Debug("tool response send failed", "error", err)
	}
}

// Effects implementation: tool side effects surface as widget events.

func (s *Session) ScrollTo(sectionID, callID string) {
	s.cfg.Send(OutboundMessage{Type: "scroll", Section: sectionID, ID: callID})
}

func (s *Session) NavigateTo(page treatment.Key) {
	s.cfg.Send(OutboundMessage{
		Type: "navigate",
		Page: page.String(),
		Path: treatment.CanonicalPath(page, s.cfg.Location.String()),
	})
}

func (s *Session) OpenCalendar() {
	s.cfg.Send(OutboundMessage{Type: "calendar"})
}

func (s *Session) SubmitLead(ctx context.Context, name, email, phone string) error {
	return s.cfg.Leads.SubmitAgentLead(ctx, s.cfg.Location, s.profile.Mode, name, email, phone)
}
