package registry

import (
	"strings"
	"testing"

	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/treatment"
)

func TestParseLocationID(t *testing.T) {
	if id, ok := ParseLocationID("london"); !ok || id != London {
		t.Errorf("ParseLocationID(london) = %s, %v", id, ok)
	}
	if id, ok := ParseLocationID("glasgow"); !ok || id != Glasgow {
		t.Errorf("ParseLocationID(glasgow) = %s, %v", id, ok)
	}
	if _, ok := ParseLocationID("edinburgh"); ok {
		t.Error("expected edinburgh to be rejected")
	}
}

func TestGetAndAll(t *testing.T) {
	r := New("")
	locs := r.All()
	if len(locs) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(locs))
	}
	ldn, ok := r.Get(London)
	if !ok {
		t.Fatal("london missing")
	}
	if ldn.City != "London" || ldn.Phone != "020 4536 6000" {
		t.Errorf("unexpected london profile: %+v", ldn)
	}
	gla, ok := r.Get(Glasgow)
	if !ok {
		t.Fatal("glasgow missing")
	}
	if gla.Phone != "0141 488 8985" {
		t.Errorf("unexpected glasgow phone: %s", gla.Phone)
	}
	if len(ldn.Doctors) != 3 || len(gla.Doctors) != 3 {
		t.Error("each clinic should list 3 doctors")
	}
	if len(ldn.Reviews) != 4 {
		t.Errorf("expected 4 reviews, got %d", len(ldn.Reviews))
	}
}

func TestFormWebhookDirectHit(t *testing.T) {
	r := New("")
	url, fellBack := r.FormWebhook(London, "Mole Removal")
	if fellBack {
		t.Error("did not expect fallback for a known label")
	}
	if !strings.HasSuffix(url, "hSY3FKpJzscKFlQD9S7u") {
		t.Errorf("unexpected url %s", url)
	}
}

// Glasgow has no ganglion form endpoint, so the label resolves through
// the default booking label's endpoint.
func TestFormWebhookLabelFallback(t *testing.T) {
	r := New("")
	url, fellBack := r.FormWebhook(Glasgow, "Ganglion Cyst Removal")
	if !fellBack {
		t.Error("expected fallback for glasgow ganglion label")
	}
	want, _ := r.FormWebhook(Glasgow, treatment.DefaultBookingLabel)
	if url != want {
		t.Errorf("expected default-label endpoint, got %s", url)
	}
}

func TestFormWebhookUnknownLocation(t *testing.T) {
	r := New("https://example.test/hook")
	url, fellBack := r.FormWebhook("nowhere", "Mole Removal")
	if !fellBack || url != "https://example.test/hook" {
		t.Errorf("expected registry default, got %s (%v)", url, fellBack)
	}
}

func TestAgentWebhookFallsBackToGeneral(t *testing.T) {
	r := New("")
	direct, fellBack := r.AgentWebhook(London, treatment.Cyst)
	if fellBack || direct == "" {
		t.Errorf("expected direct hit for london cyst, got %s (%v)", direct, fellBack)
	}
	general, _ := r.AgentWebhook(London, treatment.General)
	got, fellBack := r.AgentWebhook(London, treatment.Key("unknown"))
	if !fellBack || got != general {
		t.Errorf("expected general fallback, got %s (%v)", got, fellBack)
	}
}

func TestEveryAgentKeyResolves(t *testing.T) {
	r := New("")
	for _, loc := range []LocationID{London, Glasgow} {
		for _, k := range treatment.All() {
			url, _ := r.AgentWebhook(loc, k)
			if url == "" {
				t.Errorf("no agent webhook for %s/%s", loc, k)
			}
		}
	}
}

func TestEveryBookingLabelResolves(t *testing.T) {
	r := New("")
	for _, loc := range []LocationID{London, Glasgow} {
		for _, k := range treatment.All() {
			label := treatment.BookingLabel(k, loc.String())
			url, _ := r.FormWebhook(loc, label)
			if url == "" {
				t.Errorf("no form webhook for %s/%q", loc, label)
			}
		}
	}
}
