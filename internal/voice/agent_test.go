package voice

import (
	"strings"
	"testing"

	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/treatment"
)

func TestGreetingExactOpening(t *testing.T) {
	cases := map[treatment.Key]string{
		treatment.General:     "warts treatment",
		treatment.Genital:     "genital warts",
		treatment.Verruca:     "verruca",
		treatment.SkinTag:     "skin tag",
		treatment.AnalSkinTag: "anal skin tag",
		treatment.Cyst:        "cyst removal",
		treatment.Lipoma:      "lipoma removal",
		treatment.Mole:        "mole removal",
		treatment.Ganglion:    "ganglion cyst",
	}
	for mode, concern := range cases {
		want := "Welcome to Harley Street Medics, this is Sarah how can i help you with your " + concern + " concern."
		if got := ProfileFor(mode).Greeting(); got != want {
			t.Errorf("%s greeting = %q, want %q", mode, got, want)
		}
	}
}

func TestProfileVoices(t *testing.T) {
	for _, mode := range treatment.All() {
		p := ProfileFor(mode)
		want := voiceZephyr
		if mode == treatment.Genital || mode == treatment.AnalSkinTag {
			want = voiceKore
		}
		if p.Voice != want {
			t.Errorf("%s voice = %q, want %q", mode, p.Voice, want)
		}
	}
}

func TestProfileNavTargets(t *testing.T) {
	cases := map[treatment.Key][]treatment.Key{
		treatment.General:     {treatment.Verruca, treatment.Genital},
		treatment.Genital:     {treatment.General, treatment.Verruca},
		treatment.Verruca:     {treatment.General, treatment.Genital},
		treatment.SkinTag:     {treatment.AnalSkinTag, treatment.Mole},
		treatment.AnalSkinTag: {treatment.SkinTag, treatment.Mole},
		treatment.Cyst:        {treatment.Lipoma},
		treatment.Lipoma:      {treatment.Cyst},
		treatment.Mole:        {treatment.SkinTag, treatment.AnalSkinTag},
		treatment.Ganglion:    nil,
	}
	for mode, want := range cases {
		got := ProfileFor(mode).NavTargets()
		if len(got) != len(want) {
			t.Errorf("%s nav targets = %v, want %v", mode, got, want)
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s nav targets = %v, want %v", mode, got, want)
				break
			}
		}
	}
}

func TestSystemInstructionContents(t *testing.T) {
	for _, mode := range treatment.All() {
		p := ProfileFor(mode)
		instr := p.SystemInstruction("Glasgow")

		if !strings.Contains(instr, p.Greeting()) {
			t.Errorf("%s instruction missing greeting", mode)
		}
		if !strings.Contains(instr, "Glasgow") {
			t.Errorf("%s instruction missing city", mode)
		}
		if !strings.Contains(instr, "IMPORTANT - BOOKING FLOW:") {
			t.Errorf("%s instruction missing booking flow", mode)
		}
		if !strings.Contains(instr, "openCalendarPopup") {
			t.Errorf("%s instruction missing calendar step", mode)
		}

		hasNav := strings.Contains(instr, "IMPORTANT - PAGE NAVIGATION:")
		if (mode == treatment.Ganglion) == hasNav {
			t.Errorf("%s navigation guidance presence = %v", mode, hasNav)
		}

		hasScroll := strings.Contains(instr, "IMPORTANT - SECTION SCROLLING:")
		if (mode == treatment.General) != hasScroll {
			t.Errorf("%s scroll guidance presence = %v", mode, hasScroll)
		}
	}
}

func TestProfileForUnknownModeFallsBack(t *testing.T) {
	p := ProfileFor(treatment.Key("liposuction"))
	if p.Mode != treatment.General {
		t.Errorf("fallback profile mode = %q, want general", p.Mode)
	}
}

func TestDeclarationsCoverTools(t *testing.T) {
	tools := Declarations()
	if len(tools) != 1 {
		t.Fatalf("expected 1 tool group, got %d", len(tools))
	}
	names := map[string]bool{}
	for _, fd := range tools[0].FunctionDeclarations {
		names[fd.Name] = true
	}
	for _, want := range []string{ToolScrollToSection, ToolNavigateToPage, ToolSubmitLead, ToolOpenCalendar} {
		if !names[want] {
			t.Errorf("missing tool declaration %q", want)
		}
	}

	for _, fd := range tools[0].FunctionDeclarations {
		if fd.Name != ToolNavigateToPage {
			continue
		}
		enum := fd.Parameters.Properties["pageId"].Enum
		for _, page := range enum {
			if page == "ganglion" {
				t.Error("ganglion must not be a navigation target")
			}
		}
		if len(enum) != 8 {
			t.Errorf("expected 8 navigable pages, got %d", len(enum))
		}
	}
}
