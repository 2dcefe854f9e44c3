package content

import "github.com/faisalchaudhry-debug/HSM-dermatology/internal/treatment"

// FAQ is a question and answer shown on treatment pages.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQs returns the question set for a treatment page. Pages without a
// dedicated set share the general wart questions.
func FAQs(k treatment.Key) []FAQ {
	switch k {
	case treatment.Mole:
		return moleFAQs
	case treatment.Lipoma:
		return lipomaFAQs
	case treatment.Cyst:
		return cystFAQs
	case treatment.AnalSkinTag:
		return analSkinTagFAQs
	case treatment.Genital:
		return genitalFAQs
	case treatment.Verruca:
		return verrucaFAQs
	case treatment.SkinTag:
		return skinTagFAQs
	default:
		return generalFAQs
	}
}

var generalFAQs = []FAQ{
	{
		Question: "Where can I find professional wart removal near me in London?",
		Answer:   "Harley Street Medics is conveniently located in London city center. We are the leading clinic for 'wart removal near me', serving patients from across London and surrounding areas with advanced laser treatments.",
	},
	{
		Question: "Why choose Harley Street Medics for wart removal in London?",
		Answer:   "We offer London's most advanced wart removal treatments, including our Signature Laser Clearance and Prevention Program. Unlike home remedies, our medical-grade procedures are designed to completely eliminate warts and prevent reoccurrence.",
	},
	{
		Question: "What are warts and verrucas, and what causes them?",
		Answer:   "Warts and verrucas are bacterial skin growths caused by the human papillomavirus (HPV). Our London clinic treats all types, including common warts, plantar warts (verrucas), and filiform warts.",
	},
	{
		Question: "How does laser wart removal work?",
		Answer:   "Our specialized laser targets the blood supply feeding the wart, destroying the virus at its root. This makes it one of the most effective methods for wart removal in London, with high success rates.",
	},
	{
		Question: "How much does wart removal cost in the UK?",
		Answer:   "Costs vary depending on the method. At our London clinic, professional wart removal starts from £149. We offer transparent pricing for all our standard and advanced laser options.",
	},
}

var genitalFAQs = []FAQ{
	{
		Question: "Is genital wart removal confidential?",
		Answer:   "Absolutely. We understand the sensitive nature of genital warts. Our London clinic provides a strictly confidential, non-judgmental environment for genital wart removal, prioritizing your privacy and comfort.",
	},
	{
		Question: "What is the best treatment for genital wart removal?",
		Answer:   "We recommend our Precision Mucosal Laser for genital wart removal. It is designed for sensitive skin, offering a fast, effective, and minimally invasive solution to clear warts without causing extensive damage to healthy tissue.",
	},
	{
		Question: "Can I get same-day genital wart removal in London?",
		Answer:   "Yes, we often offer same-day consultations and treatments. If you are looking for 'genital wart removal near me' or in London, contact us immediately to check availability for urgent care.",
	},
	{
		Question: "Does the treatment prevent genital warts from coming back?",
		Answer:   "Our Signature Laser treatment includes a Prevention Protocol that targets the viral reservoir in the surrounding skin, significantly reducing the risk of recurrence compared to standard freezing creams.",
	},
}

var verrucaFAQs = []FAQ{
	{
		Question: "What is the most effective verruca removal in London?",
		Answer:   "For stubborn verrucas that resist over-the-counter treatments, our Deep-Pulse Laser Therapy is generally considered the most effective verruca removal option in London. It penetrates deep into the plantar skin to destroy the root.",
	},
	{
		Question: "What is the difference between a wart and a verruca?",
		Answer:   "A verruca is simply a wart found on the sole of the foot. They are often flatter and more painful due to walking pressure. Our verruca removal London services are specifically tailored to treat these deep-rooted growths.",
	},
	{
		Question: "Is verruca removal painful?",
		Answer:   "Deep verrucas can be tender, but we use local anesthesia for our surgical and deep laser treatments to ensure your verruca removal experience is as comfortable as possible.",
	},
	{
		Question: "Do you treat children for verruca removal?",
		Answer:   "Yes, we treat patients of all ages. If you are looking for verruca removal near me for your child, our team is experienced in providing gentle, effective care for younger patients.",
	},
}

var skinTagFAQs = []FAQ{
	{
		Question: "Where can I get expert skin tag removal near me in London?",
		Answer:   "Harley Street Medics offers premium skin tag removal at our London city center clinic. We use advanced laser technology for 'near me' convenience with world-class results.",
	},
	{
		Question: "How much does skin tag removal cost in London?",
		Answer:   "Our skin tag removal in London starts from £150. We offer clear, transparent pricing and a free initial consultation to assess your needs.",
	},
	{
		Question: "Is laser skin tag removal better than freezing?",
		Answer:   "Yes, our Signature Laser treatment is generally superior to freezing (cryotherapy) for skin tags, as it instantly vaporizes the stalk with minimal risk of scarring or pigmentation changes.",
	},
	{
		Question: "Can I get same-day skin tag removal in London?",
		Answer:   "Yes, we prioritize 'same day skin tag removal' appointments. You can often have your consultation and treatment in a single 30-minute visit.",
	},
}

var analSkinTagFAQs = []FAQ{
	{
		Question: "Is anal skin tag removal painful?",
		Answer:   "We use local anesthesia to ensuring the procedure is completely pain-free. Post-procedure discomfort is minimal and manageable.",
	},
	{
		Question: "How long is the recovery for anal skin tag removal?",
		Answer:   "Most patients return to normal activities within 24-48 hours. Complete healing takes 1-2 weeks.",
	},
	{
		Question: "Is the consultation confidential?",
		Answer:   "Absolutely. We provide a discreet, non-judgmental environment for all our patients.",
	},
}

var cystFAQs = []FAQ{
	{
		Question: "Where can I find cyst removal near me in London?",
		Answer:   "Harley Street Medics is centrally located in London, making us the top choice for 'cyst removal near me'. Our clinic offers same-day diagnosis and removal for sebaceous and epidermoid cysts.",
	},
	{
		Question: "Who is the best doctor for cyst removal in London?",
		Answer:   "Our clinic is led by top-tier dermatologists and plastic surgeons, including Dr. Mehdi. We are widely considered the best doctors for cyst removal due to our scar-minimizing surgical techniques and complete sac removal guarantee.",
	},
	{
		Question: "How much does cyst removal cost in London?",
		Answer:   "Private cyst removal at our London clinic starts from £350. This includes surgical excision, local anesthesia, and follow-up care. We provide a fixed-price quote during your free consultation.",
	},
	{
		Question: "Can I get cyst removal on the NHS?",
		Answer:   "The NHS considers most cysts cosmetic and rarely funds their removal unless infected or causing significant pain. Waiting lists can be over 18 months. Our private service offers immediate removal with no wait times.",
	},
	{
		Question: "Do you remove the cyst sac?",
		Answer:   "Yes. Simply popping a cyst leaves the sac behind, leading to regrowth. Our surgical excision completely removes the cyst sac (capsule) to ensure it does not come back.",
	},
}

var lipomaFAQs = []FAQ{
	{
		Question: "How are lipomas removed?",
		Answer:   "Lipomas are removed via a small incision under local anesthesia. The fatty lump is essentially popped out and the skin sutured.",
	},
	{
		Question: "Is lipoma removal covered by insurance?",
		Answer:   "We are a private clinic, but many insurance providers do cover lipoma removal. We can provide invoices for your claim.",
	},
	{
		Question: "What are lipoma dissolving injections?",
		Answer:   "For suitable candidates, we can inject a fat-dissolving solution into small lipomas. This leads to gradual shrinkage and potentially the complete elimination of the lump without surgery.",
	},
	{
		Question: "Is there downtime after lipoma removal?",
		Answer:   "Most patients return to their normal activities within a few days. Surgical excision may require keeping the area clean, while injections have practically zero downtime.",
	},
	{
		Question: "How much does lipoma removal cost?",
		Answer:   "Pricing at our London clinic starts from £495, which covers the assessment and the procedure itself.",
	},
}

var moleFAQs = []FAQ{
	{
		Question: "How much does mole removal cost in London?",
		Answer:   "Our mole removal starts from £250. This depends on the method (Laser, Shave, or Excision). We offer a free initial consultation to give you an exact quote.",
	},
	{
		Question: "Is laser mole removal safe?",
		Answer:   "Yes, our Signature Laser technique is extremely safe and precise. It is ideal for benign moles where cosmetic result is the priority as it leaves minimal to no scarring.",
	},
	{
		Question: "Do you offer melanoma checks?",
		Answer:   "Yes, we provide comprehensive mole checks. If a mole looks suspicious (ABCD criteria), we can perform a biopsy or histopathology to rule out melanoma or other skin cancers.",
	},
	{
		Question: "Will there be a scar after mole removal?",
		Answer:   "Our goal is always minimal scarring. Laser removal typically leaves the best cosmetic result. Surgical excision will leave a small linear scar, which fades significantly over time.",
	},
	{
		Question: "Can I get mole removal on the NHS?",
		Answer:   "The NHS generally does not remove benign moles for cosmetic reasons. We offer immediate private removal for any mole that is bothering you.",
	},
}
