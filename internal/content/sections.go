package content

import "github.com/faisalchaudhry-debug/HSM-dermatology/internal/treatment"

// FinancePlan describes one payment option.
type FinancePlan struct {
	Provider string `json:"provider"`
	Plan     string `json:"plan"`
	Detail   string `json:"detail"`
	Badge    string `json:"badge"`
}

// FinancePlans lists the available payment options, identical for all
// pages and locations.
func FinancePlans() []FinancePlan {
	return []FinancePlan{
		{
			Provider: "Klarna.",
			Plan:     "Pay in 3",
			Detail:   "Spread the cost of your treatment over 3 interest-free instalments. No fees, no interest.",
			Badge:    "0% Interest",
		},
		{
			Provider: "Clearpay",
			Plan:     "Pay in 4",
			Detail:   "Shop now and pay over 6 weeks. 4 equal payments, due every 2 weeks.",
			Badge:    "Always Interest Free",
		},
		{
			Provider: "Ideal 4 Finance",
			Plan:     "Medical Loans",
			Detail:   "Flexible loans for treatments over £500. Competitive rates and fast decisions.",
			Badge:    "Apply in Minutes",
		},
	}
}

var videoURLs = map[treatment.Key]string{
	treatment.General:     "https://www.youtube.com/embed/ZXB52Sk8eDQ",
	treatment.Verruca:     "https://www.youtube.com/embed/ZXB52Sk8eDQ",
	treatment.Genital:     "https://www.youtube.com/embed/ZXB52Sk8eDQ",
	treatment.AnalSkinTag: "https://www.youtube.com/embed/zJoGopbaTs8",
	treatment.Lipoma:      "https://www.youtube.com/embed/rhafhEm7iiM",
}

// VideoURL returns the procedure video for a page, or empty when the
// page does not show one (skin tags, cysts, moles and ganglions).
func VideoURL(k treatment.Key) string {
	return videoURLs[k]
}

// Comparison contrasts NHS and private care for a treatment page.
type Comparison struct {
	Title   string         `json:"title"`
	NHS     ComparisonSide `json:"nhs"`
	Private ComparisonSide `json:"private"`
}

// ComparisonSide is one column of the comparison.
type ComparisonSide struct {
	Method string `json:"method"`
	Issue  string `json:"issue"`
	Time   string `json:"time"`
	Result string `json:"result"`
}

// Compare returns the NHS-vs-private comparison for a treatment page.
// Anal skin tags share the skin tag comparison and ganglions share the
// cyst comparison, mirroring the page grouping.
func Compare(k treatment.Key) Comparison {
	switch k {
	case treatment.AnalSkinTag:
		k = treatment.SkinTag
	case treatment.Ganglion:
		k = treatment.Cyst
	}
	switch k {
	case treatment.Verruca:
		return Comparison{
			Title: "The Treatment Gap: Verrucas",
			NHS: ComparisonSide{
				Method: "Liquid Nitrogen (Cryo) & Creams",
				Issue:  "Often fails to penetrate thick plantar skin.",
				Time:   "Months of painful repeat freeze sessions.",
				Result: "High recurrence rate due to deep roots remaining.",
			},
			Private: ComparisonSide{
				Method: "Deep-Pulse Laser",
				Issue:  "Penetrates callus to destroy root blood supply.",
				Time:   "Often cleared in 1-2 sessions.",
				Result: "Prevention Protocol sterilizes area to stop regrowth.",
			},
		}
	case treatment.Genital:
		return Comparison{
			Title: "The Treatment Gap: Sensitive Care",
			NHS: ComparisonSide{
				Method: "Topical Acids or Freezing",
				Issue:  "Can be painful and cause irritation to sensitive skin.",
				Time:   "Long waiting lists at sexual health clinics.",
				Result: "Stressful, drawn-out process with visual reminders.",
			},
			Private: ComparisonSide{
				Method: "CO2 Surgical Laser",
				Issue:  "Instant vaporization with minimal contact.",
				Time:   "Same-day appointment. Immediate removal.",
				Result: "Discreet, fast healing, and peace of mind.",
			},
		}
	case treatment.SkinTag:
		return Comparison{
			Title: "The Treatment Gap: Skin Tags",
			NHS: ComparisonSide{
				Method: "Home Remedies / DIY Kits",
				Issue:  "High risk of infection and scarring.",
				Time:   "Weeks of failed attempts.",
				Result: "Often leaves stalk or causes bleeding.",
			},
			Private: ComparisonSide{
				Method: "Signature Laser / Excision",
				Issue:  "Instant removal with sterile technique.",
				Time:   "Gone in minutes.",
				Result: "Smooth, blemish-free finish.",
			},
		}
	case treatment.Mole:
		return Comparison{
			Title: "The Treatment Gap: Moles",
			NHS: ComparisonSide{
				Method: "Strictly Medical Necessity",
				Issue:  "Benign moles are considered cosmetic and NOT treated.",
				Time:   "No appointment for cosmetic concerns.",
				Result: "Patients often left with visible moles affecting confidence.",
			},
			Private: ComparisonSide{
				Method: "Signature Laser or Surgical Excision",
				Issue:  "Immediate removal for Any Mole.",
				Time:   "Same Day / Next Day Appointments.",
				Result: "Scar-free potential & Histology for peace of mind.",
			},
		}
	case treatment.Cyst:
		return Comparison{
			Title: "The Treatment Gap: Cysts",
			NHS: ComparisonSide{
				Method: "Standard GP Care",
				Issue:  "Benign lumps often ignored.",
				Time:   "Antibiotics offered, but no removal.",
				Result: "Recurrent inflammation and infection risk.",
			},
			Private: ComparisonSide{
				Method: "Surgical Excision",
				Issue:  "Complete removal of sac & histology.",
				Time:   "Immediate relief and cosmetic closure.",
				Result: "Permanent removal and peace of mind.",
			},
		}
	default:
		return Comparison{
			Title: "The Treatment Gap: Warts",
			NHS: ComparisonSide{
				Method: "Standard Cryotherapy",
				Issue:  "Generalized approach ('Wait and See').",
				Time:   "Referral waits can take months.",
				Result: "Multi-session treatments with risk of scarring.",
			},
			Private: ComparisonSide{
				Method: "CO2 Surgical Laser",
				Issue:  "Aesthetic-focused removal preserving healthy skin.",
				Time:   "Walk in with warts, walk out without them.",
				Result: "Root destruction prevents future outbreaks.",
			},
		}
	}
}

// GuideItem is one instruction in the inflamed cyst emergency guide.
type GuideItem struct {
	Heading string `json:"heading"`
	Text    string `json:"text"`
}

// EmergencyGuide holds the do/don't guidance shown on cyst pages.
type EmergencyGuide struct {
	Title string      `json:"title"`
	Do    []GuideItem `json:"do"`
	Dont  []GuideItem `json:"dont"`
}

// CystEmergencyGuide returns the guidance shown when a cyst is
// suddenly inflamed. Only cyst and ganglion pages include it.
func CystEmergencyGuide() EmergencyGuide {
	return EmergencyGuide{
		Title: "Cyst Suddenly Inflamed?",
		Do: []GuideItem{
			{Heading: "Cold Compress Only.", Text: "Apply ice (wrapped in cloth) for 10-15 mins. This constricts vessels and reduces thumping pain."},
			{Heading: "Anti-Inflammatories.", Text: "Ibuprofen (if safe for you) helps halt the inflammatory cascade internally."},
			{Heading: "Emergency Kenalog.", Text: "The gold standard. A steroid injection can flatten a cyst in 24 hours."},
		},
		Dont: []GuideItem{
			{Heading: "NEVER Squeeze.", Text: "The sac walls are fragile. Squeezing ruptures the cyst inwards, spreading bacteria deep into tissue."},
			{Heading: "NO Hot Compresses.", Text: "Heat increases blood flow, which feeds the inflammation and swelling."},
			{Heading: "Avoid Home Remedies.", Text: "Tea tree oil or cider vinegar can burn inflamed skin, making surgery harder later."},
		},
	}
}
