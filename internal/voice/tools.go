package voice

import (
	"context"
	"sync"
	"time"

	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/observability/metrics"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/treatment"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/voice/live"
	"github.com/faisalchaudhry-debug/HSM-dermatology/pkg/logging"
)

// Tool names exposed to the Live session.
const (
	ToolScrollToSection = "scrollToSection"
	ToolNavigateToPage  = "navigateToPage"
	ToolSubmitLead      = "submitLeadToWebhook"
	ToolOpenCalendar    = "openCalendarPopup"
)

// sectionIDs are the page anchors the agent may scroll to.
var sectionIDs = []string{"treatments", "gallery", "reviews", "financing", "team", "faq", "booking-section"}

// pageIDs are the pages the agent may navigate to. Ganglion is
// deliberately absent; it is reached only by direct link.
var pageIDs = []string{"general", "verruca", "genital", "skintag", "analskintag", "mole", "cyst", "lipoma"}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Declarations builds the tool schema advertised in the Live setup
// message.
func Declarations() []live.Tool {
	return []live.Tool{{
		FunctionDeclarations: []live.FunctionDeclaration{
			{
				Name:        ToolScrollToSection,
				Description: "Scrolls the page to a specific section to guide the user's attention. Use this when discussing relevant topics.",
				Parameters: &live.Schema{
					Type: "OBJECT",
					Properties: map[string]*live.Schema{
						"sectionId": {
							Type:        "STRING",
							Description: "The ID of the section to scroll to",
							Enum:        sectionIDs,
						},
					},
					Required: []string{"sectionId"},
				},
			},
			{
				Name:        ToolNavigateToPage,
				Description: "Navigates to a different treatment page when the user asks about a different condition. Use for navigating between wart types (general/verruca/genital), skin condition types (skintag/analskintag/mole), or surgical types (cyst/lipoma).",
				Parameters: &live.Schema{
					Type: "OBJECT",
					Properties: map[string]*live.Schema{
						"pageId": {
							Type:        "STRING",
							Description: "The page to navigate to: general (hand/face/body warts), verruca (plantar warts on feet), genital (genital warts), skintag (regular skin tags), analskintag (anal skin tags), mole (mole removal/checks), cyst (cyst removal), lipoma (lipoma removal)",
							Enum:        pageIDs,
						},
					},
					Required: []string{"pageId"},
				},
			},
			{
				Name:        ToolSubmitLead,
				Description: "Submits the collected lead information (name, email, phone) to book a consultation. Use this after verifying all contact details with the user.",
				Parameters: &live.Schema{
					Type: "OBJECT",
					Properties: map[string]*live.Schema{
						"name":  {Type: "STRING", Description: "The full name of the patient"},
						"email": {Type: "STRING", Description: "The email address of the patient"},
						"phone": {Type: "STRING", Description: "The phone number of the patient"},
					},
					Required: []string{"name", "email", "phone"},
				},
			},
			{
				Name:        ToolOpenCalendar,
				Description: "Opens the calendar popup so the user can book a convenient time slot immediately. Use this IMMEDIATELY after submitting the lead.",
				Parameters: &live.Schema{
					Type:       "OBJECT",
					Properties: map[string]*live.Schema{},
				},
			},
		},
	}}
}

// scrollAckTimeout bounds how long a scroll call may wait for the
// widget to confirm the section exists.
const scrollAckTimeout = 3 * time.Second

// Effects are the side effects a tool call can have on the page and
// the lead pipeline. The session implements them.
type Effects interface {
	ScrollTo(sectionID, callID string)
	NavigateTo(page treatment.Key)
	OpenCalendar()
	SubmitLead(ctx context.Context, name, email, phone string) error
}

// Dispatcher executes tool calls from the Live session. Every call
// receives exactly one function response, keyed by its call ID; scroll
// calls resolve asynchronously once the widget reports whether the
// section exists.
type Dispatcher struct {
	effects Effects
	respond func(live.FunctionResponse)
	metrics *metrics.VoiceMetrics
	logger  *logging.Logger

	mu      sync.Mutex
	pending map[string]pendingScroll // keyed by scroll call ID
}

type pendingScroll struct {
	sectionID string
	deadline  *time.Timer
}

func NewDispatcher(effects Effects, respond func(live.FunctionResponse), m *metrics.VoiceMetrics, logger *logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Default()
	}
	return &Dispatcher{
		effects: effects,
		respond: respond,
		metrics: m,
		logger:  logger,
		pending: make(map[string]pendingScroll),
	}
}

// Dispatch handles one function call.
func (d *Dispatcher) Dispatch(ctx context.Context, call live.FunctionCall) {
	switch call.Name {
	case ToolScrollToSection:
		d.dispatchScroll(call)
	case ToolNavigateToPage:
		d.dispatchNavigate(call)
	case ToolSubmitLead:
		d.dispatchSubmit(ctx, call)
	case ToolOpenCalendar:
		d.effects.OpenCalendar()
		d.finish(call, "success", map[string]any{"success": true})
	default:
		d.logger.Warn("unknown tool call", "tool", call.Name)
		d.finish(call, "unknown", map[string]any{"success": false, "message": "unknown tool"})
	}
}

func (d *Dispatcher) dispatchScroll(call live.FunctionCall) {
	sectionID, _ := call.Args["sectionId"].(string)
	if !contains(sectionIDs, sectionID) {
		d.finish(call, "invalid", map[string]any{"success": false, "sectionId": sectionID})
		return
	}

	// The widget owns the DOM, so it confirms whether the section
	// exists. The response waits for its ack, bounded by a deadline.
	d.mu.Lock()
	d.pending[call.ID] = pendingScroll{
		sectionID: sectionID,
		deadline: time.AfterFunc(scrollAckTimeout, func() {
			d.AckScroll(call.ID, false)
		}),
	}
	d.mu.Unlock()

	d.effects.ScrollTo(sectionID, call.ID)
}

// AckScroll resolves a pending scroll call with the widget's verdict.
// Late or duplicate acks are ignored.
func (d *Dispatcher) AckScroll(callID string, found bool) {
	d.mu.Lock()
	p, ok := d.pending[callID]
	if ok {
		delete(d.pending, callID)
	}
	d.mu.Unlock()
	if !ok {
		return
	}
	p.deadline.Stop()

	status := "success"
	if !found {
		status = "error"
	}
	d.metrics.ObserveToolCall(ToolScrollToSection, status)
	d.respond(live.FunctionResponse{
		ID:       callID,
		Name:     ToolScrollToSection,
		Response: map[string]any{"success": found, "sectionId": p.sectionID},
	})
}

func (d *Dispatcher) dispatchNavigate(call live.FunctionCall) {
	pageID, _ := call.Args["pageId"].(string)
	if !contains(pageIDs, pageID) {
		d.finish(call, "invalid", map[string]any{"success": false, "pageId": pageID})
		return
	}
	key, _ := treatment.Parse(pageID)
	d.effects.NavigateTo(key)
	d.finish(call, "success", map[string]any{"success": true, "pageId": pageID})
}

func (d *Dispatcher) dispatchSubmit(ctx context.Context, call live.FunctionCall) {
	name, _ := call.Args["name"].(string)
	email, _ := call.Args["email"].(string)
	phone, _ := call.Args["phone"].(string)
	if name == "" || email == "" || phone == "" {
		d.finish(call, "invalid", map[string]any{"success": false, "message": "missing contact details"})
		return
	}

	if err := d.effects.SubmitLead(ctx, name, email, phone); err != nil {
		d.logger.Error("agent lead submission failed", "error", err)
		d.finish(call, "error", map[string]any{"success": false, "message": "Failed to submit lead"})
		return
	}
	d.finish(call, "success", map[string]any{"success": true, "message": "Lead submitted successfully"})
}

// CancelPending drops pending scroll deadlines at session teardown.
func (d *Dispatcher) CancelPending() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for id, p := range d.pending {
		p.deadline.Stop()
		delete(d.pending, id)
	}
}

func (d *Dispatcher) finish(call live.FunctionCall, status string, response map[string]any) {
	d.metrics.ObserveToolCall(call.Name, status)
	d.respond(live.FunctionResponse{
		ID:       call.ID,
		Name:     call.Name,
		Response: response,
	})
}
