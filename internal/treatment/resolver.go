package treatment

import "fmt"

// Point is one highlighted fact in the "what is" panel of a page.
type Point struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Option describes one of the treatment methods offered on a page.
type Option struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PageConfig carries all presentational copy for a treatment page.
// City-specific strings are interpolated at resolve time.
type PageConfig struct {
	Title        string   `json:"title"`
	Highlight    string   `json:"highlight"`
	Subtitle     string   `json:"subtitle"`
	Price        string   `json:"price"`
	Label        string   `json:"label"`
	WhatIsTitle  string   `json:"whatIsTitle"`
	WhatIsDesc   string   `json:"whatIsDesc"`
	WhatIsPoints []Point  `json:"whatIsPoints"`
	Treatments   []Option `json:"treatments"`
	Group        string   `json:"group"`
	Simulation   string   `json:"simulation"`
	HeroImage    string   `json:"heroImage"`
}

// Group names for the page selector shown above the hero.
const (
	GroupWarts    = "warts"
	GroupCosmetic = "cosmetic"
	GroupSurgical = "surgical"
)

// GroupFor returns which selector group a treatment page belongs to.
func GroupFor(k Key) string {
	switch k {
	case SkinTag, AnalSkinTag, Mole:
		return GroupCosmetic
	case Cyst, Lipoma, Ganglion:
		return GroupSurgical
	default:
		return GroupWarts
	}
}

const imageBase = "https://images-strategyguys.netlify.app/harleystreemedics-image-source-main/"

var heroImages = map[Key]string{
	General:     imageBase + "warts%201.jpg",
	Verruca:     imageBase + "verruca%201.jpg",
	Genital:     imageBase + "genital%20warts%201.jpg",
	SkinTag:     imageBase + "skin%20tags%201.jpeg",
	AnalSkinTag: imageBase + "skin%20tags%201.jpeg",
	Cyst:        imageBase + "cyst%201.jpg",
	Lipoma:      imageBase + "cyst%201.jpg",
	Mole:        imageBase + "mole%201.jpg",
	Ganglion:    imageBase + "ganglion%20cyst%201.jpg",
}

var simulations = map[Key]string{
	General:     "general",
	Verruca:     "verruca",
	Genital:     "genital",
	SkinTag:     "skintag",
	AnalSkinTag: "skintag",
	Cyst:        "cyst",
	Lipoma:      "lipoma",
	Mole:        "mole",
	Ganglion:    "cyst",
}

// Resolve builds the page configuration for a treatment page in the
// given city ("London" or "Glasgow").
func Resolve(k Key, city string) PageConfig {
	cfg := resolveCopy(k, city)
	cfg.Group = GroupFor(k)
	cfg.Simulation = simulations[k]
	cfg.HeroImage = heroImages[k]
	return cfg
}

func resolveCopy(k Key, city string) PageConfig {
	switch k {
	case Ganglion:
		return PageConfig{
			Title:       "Ganglion Cyst Removal",
			Highlight:   "Surgical Solution",
			Subtitle:    fmt.Sprintf("Expert removal of Ganglion Cysts in %s. We offer precise aspiration and surgical excision to relieve pain and restore function.", city),
			Price:       "£495",
			Label:       fmt.Sprintf("%s's Ganglion Cyst Specialists", city),
			WhatIsTitle: "What is a Ganglion Cyst?",
			WhatIsDesc:  "Ganglion cysts are fluid-filled lumps that most commonly develop along the tendons or joints of your wrists or hands. They are non-cancerous but can cause pain or limit movement.",
			WhatIsPoints: []Point{
				{Label: "Fluid-Filled", Text: "Contains a thick, jelly-like fluid (synovial fluid)."},
				{Label: "Location", Text: "Commonly appear on the back of the wrist of hand."},
				{Label: "Treatment", Text: "Surgical removal is recommended for persistent or painful cysts."},
			},
			Treatments: []Option{
				{Title: "Surgical Excision", Description: "The most effective method. Removing the cyst and its root (stalk) to minimize recurrence."},
				{Title: "Aspiration", Description: "Draining the fluid from the cyst with a needle. Less invasive but higher chance of recurrence."},
				{Title: "Clinical Assessment", Description: "Thorough examination to confirm diagnosis and plan the best removal approach."},
			},
		}
	case Mole:
		return PageConfig{
			Title:       "Mole Removal &",
			Highlight:   "Melanoma Checks",
			Subtitle:    fmt.Sprintf("Worried about a mole? We offer %s's most advanced mole removal and checking services. From signature laser removal to surgical excision and ABCDE assessments.", city),
			Price:       "£250",
			Label:       fmt.Sprintf("Expert Mole Removal %s", city),
			WhatIsTitle: "Safe & Minimal Scarring",
			WhatIsDesc:  "We prioritize two things: Your safety (ruling out melanoma) and your confidence (minimal scarring). Our signature laser technique achieves both for benign moles.",
			WhatIsPoints: []Point{
				{Label: "Safety First", Text: "Every mole is assessed for ABCD warning signs before removal."},
				{Label: "Minimal Scarring", Text: "Our laser vaporizes the mole without cutting, leaving smooth skin."},
				{Label: "Histology", Text: "We can send any tissue for lab testing if required."},
			},
			Treatments: []Option{
				{Title: "Signature Laser Removal", Description: "The aesthetic gold standard. Precise vaporization for a scar-free finish."},
				{Title: "Surgical Excision", Description: "Complete removal for deep or recurring moles with stitches."},
				{Title: "Melanoma Check", Description: "Comprehensive skin assessment by a specialist doctor."},
			},
		}
	case Lipoma:
		return PageConfig{
			Title:       "Quick & Painless",
			Highlight:   "Lipoma Removal",
			Subtitle:    fmt.Sprintf("Looking for a discreet and effective way to remove a lipoma in %s? We offer state-of-the-art removal services using the latest techniques to ensure optimal results.", city),
			Price:       "£495",
			Label:       fmt.Sprintf("%s's Premier Lipoma Clinic", city),
			WhatIsTitle: "What are lipomas?",
			WhatIsDesc:  "Lipomas are small, fatty lumps that grow under the skin. They are usually harmless and painless, but they can be bothersome if they are large or in a visible location.",
			WhatIsPoints: []Point{
				{Label: "Fatty Tissue", Text: "Lipomas are composed of fat cells and feel soft and doughy to the touch."},
				{Label: "Location", Text: "They typically occur on the upper body, arms, shoulders, and neck."},
				{Label: "Symptoms", Text: "Lipomas are usually painless and don't cause any other symptoms."},
			},
			Treatments: []Option{
				{Title: "Surgical Lipoma Removal", Description: "Advanced techniques for larger or deeper lipomas to minimize discomfort and scarring."},
				{Title: "Specialized Fat Dissolving Injection", Description: "Non-surgical alternative to dissolve fat cells within small lipomas gradually."},
				{Title: "Clinical Assessment", Description: "Comprehensive diagnosis by expert plastic surgeons to ensure the best course of action."},
			},
		}
	case Cyst:
		return PageConfig{
			Title:       "Specialist Cyst Removal",
			Highlight:   "Surgical Excellence",
			Subtitle:    "Review by Expert Doctors. Surgical excision of Sebaceous & Epidermoid cysts with minimal scarring and expert closure.",
			Price:       "£495",
			Label:       "The UK's Leading Cyst Removal Clinics",
			WhatIsTitle: "What are Cysts?",
			WhatIsDesc:  "Sebaceous and Epidermoid cysts represent the most common types of cysts. These are closed sacs found under the skin filled with cheese-like keratin.",
			WhatIsPoints: []Point{
				{Label: "The Sac", Text: "Crucial: The entire sac must be removed to prevent regrowth."},
				{Label: "Inflammation", Text: "Red, angry cysts may need anti-inflammatory injections first."},
				{Label: "Expertise", Text: "Requires surgical precision to avoid infection and scarring."},
			},
			Treatments: []Option{
				{Title: "Surgical Excision", Description: "Complete removal of the cyst and sac under local anesthetic. Best for permanent removal."},
				{Title: "Kenalog Injection", Description: "Specialized anti-inflammatory injection to reduce inflammation in angry, red cysts."},
				{Title: "Clinical Assessment", Description: "Expert diagnosis to confirm the nature of the lump (Lipoma vs Cyst) before treatment."},
			},
		}
	case AnalSkinTag:
		return PageConfig{
			Title:       "Unleash Comfort and",
			Highlight:   "Confidence",
			Subtitle:    fmt.Sprintf("Are you tired of the discomfort and self-consciousness caused by anal skin tags? Harley Street Medics offers safe, effective, and discreet solutions in %s.", city),
			Price:       "£495",
			Label:       fmt.Sprintf("Expert Anal Skin Tag Removal %s", city),
			WhatIsTitle: "Discreet Anal Care",
			WhatIsDesc:  "Anal skin tags are harmless but can cause significant irritation. Our clinic provides a professional, private environment for removal.",
			WhatIsPoints: []Point{
				{Label: "Privacy", Text: "100% confidential clinical environment."},
				{Label: "Relief", Text: "Wave goodbye to irritation and reclaim your freedom."},
				{Label: "Precision", Text: "Focused laser energy for sensitive tissue."},
			},
			Treatments: []Option{
				{Title: "CO2 Surgical Laser", Description: "Precision technology that vaporizes the tag with zero contact and minimal bleeding."},
				{Title: "Clinical Excision", Description: "Surgical removal for larger tags using precise instruments under local anesthesia."},
				{Title: "Aftercare Support", Description: "Comprehensive recovery plan to ensure fast healing and maximum comfort."},
			},
		}
	case SkinTag:
		return PageConfig{
			Title:       "Say Goodbye to Skin Tags",
			Highlight:   "Expert Removal",
			Subtitle:    "Struggling with unsightly skin tags? Experience safe, effective, and tailored removal with our revolutionary CO2 Surgical Laser Treatment.",
			Price:       "£199",
			Label:       fmt.Sprintf("Skin Tag Removal %s", city),
			WhatIsTitle: "Skin Tag Insights",
			WhatIsDesc:  "Skin tags are common, harmless growths but can be annoying. Our CO2 Surgical Laser is the gold standard for your skin type.",
			WhatIsPoints: []Point{
				{Label: "Fast", Text: "Most sessions take just minutes."},
				{Label: "Painless", Text: "Virtually no discomfort during or after."},
				{Label: "No Downtime", Text: "Get back to your routine immediately."},
			},
			Treatments: []Option{
				{Title: "CO2 Surgical Laser", Description: "Rapid removal with pinpoint accuracy, leaving the surrounding skin untouched."},
				{Title: "Cryotherapy", Description: "Quick freezing of the skin tag to remove it with minimal discomfort."},
				{Title: "Clinical Excision", Description: "Precise surgical removal for larger tags to ensure smooth results."},
			},
		}
	case Verruca:
		return PageConfig{
			Title:       "Step Towards",
			Highlight:   "Pain-Free Living",
			Subtitle:    fmt.Sprintf("Harley Street Medics specializes in advanced, non-surgical verruca removal in %s. Our treatments focus on stopping recurrence so you can walk comfortably again.", city),
			Price:       "£149",
			Label:       "Advanced Non-Surgical Verruca Removal",
			WhatIsTitle: "What are Verrucas?",
			WhatIsDesc:  "Ever noticed a rough, raised bump on your foot? You might have a verruca. Verrucas are plantar warts caused by the HPV virus. Because of walking pressure, they grow inward and can cause significant pain with every step.",
			WhatIsPoints: []Point{
				{Label: "Cause", Text: "Strains of the human papillomavirus (HPV) that thrive in moist environments."},
				{Label: "Appearance", Text: "Rough surfaces, often with tiny black dots (clotted blood vessels)."},
				{Label: "Impact", Text: "Can cause severe discomfort when walking; highly contagious via direct contact."},
			},
			Treatments: []Option{
				{Title: "Electrocautery", Description: "Precisely burning away plantar warts with targeted heat. Ideal for thicker, more established verrucas."},
				{Title: "Clinical Cryotherapy", Description: "Extreme cold freezes the tissue, causing the verruca to die off. Quick sessions with noticeable relief."},
				{Title: "Surgical Excision", Description: "Reserved for specific cases where verrucas are large or unresponsive to other treatments."},
			},
		}
	case Genital:
		return PageConfig{
			Title:       "Find Relief and Restore",
			Highlight:   "Confidence",
			Subtitle:    fmt.Sprintf("Are Genital Warts causing discomfort? Harley Street Medics offers expert, discreet removal services in %s with total confidentiality.", city),
			Price:       "£149",
			Label:       "Private & Confidential Genital Care",
			WhatIsTitle: "Understanding Genital Warts",
			WhatIsDesc:  "Genital warts require specialized care. We offer same-day appointments and laser options not always available on the NHS.",
			WhatIsPoints: []Point{
				{Label: "Confidential", Text: "Private assessment from senior dermatologists."},
				{Label: "Efficient", Text: "Rapid removal in a professional setting."},
				{Label: "Comfort", Text: "Gentle techniques for delicate skin."},
			},
			Treatments: []Option{
				{Title: "CO2 Surgical Laser", Description: "State-of-the-art vaporization for sensitive areas with rapid recovery."},
				{Title: "Cryotherapy", Description: "Controlled freezing treatment to manage and remove genital lesions effectively."},
				{Title: "Dermatological Review", Description: "Ongoing support to monitor viral activity and ensure complete clearance."},
			},
		}
	default:
		return PageConfig{
			Title:       "CO2 Surgical Laser Wart Removal",
			Highlight:   "Stops Reoccurrence",
			Subtitle:    "Experience the ultimate solution against stubborn warts. Our advanced laser technology not only removes warts effectively but targets the root cause to prevent them from coming back.",
			Price:       "£149",
			Label:       fmt.Sprintf("%s's Leading Dermatology Clinic • 4.9/5 Google Rating", city),
			WhatIsTitle: "What are Warts?",
			WhatIsDesc:  "Warts are benign epidermal proliferations caused by the Human Papillomavirus (HPV). The virus infects the basal layer of the epidermis, causing rapid cell division (hyperkeratosis) and forming a protective protein shell that evades the immune system.",
			WhatIsPoints: []Point{
				{Label: "Viral Mechanism", Text: "HPV hijacks keratinocyte DNA, forcing cells to replicate uncontrolled."},
				{Label: "Structure", Text: "Hyperkeratosis creates the rough, thickened 'cauliflower' texture."},
				{Label: "Persistence", Text: "The virus creates a low-inflammation environment to remain undetected by immunity."},
			},
			Treatments: []Option{
				{Title: "CO2 Surgical Laser", Description: "Precision technology that targets and destroys tissue while minimizing damage to surrounding skin."},
				{Title: "Laser Prevention", Description: "Addresses the viral cause to provide long-term protection and peace of mind."},
				{Title: "Clinical Cryotherapy", Description: "Fast and effective freezing for various types of warts on hands and face."},
			},
		}
	}
}
