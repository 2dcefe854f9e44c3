package registry

import (
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/treatment"
)

const hookBase = "https://services.leadconnectorhq.com/hooks/Q7V3TZrLpPnz6GYN6Qyt/webhook-trigger/"

// builtinDefaultFormWebhook is the last-resort lead endpoint.
const builtinDefaultFormWebhook = hookBase + "NjrTANqQtrgMk7FyXx2X"

func builtinLocations() []Location {
	return []Location{
		{
			ID:           London,
			City:         "London",
			ClinicName:   "Harley Street Medics London",
			Address:      "1-5 Portpool Ln, London EC1N 7UU, United Kingdom",
			Phone:        "020 4536 6000",
			WhatsApp:     "020 4536 6000",
			MapEmbedURL:  "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d2482.577590769762!2d-0.1144842235292171!3d51.5209651718164!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x48761b0b8241008f%3A0x81b5e10acd58ba8d!2sHarley%20Street%20Medics!5e0!3m2!1sen!2s!4v1767320927198!5m2!1sen!2s",
			HeroTitle:    "Wart Removal London",
			HeroSubtitle: "Worried about a mole? We offer London's most advanced mole removal and checking services.",
			Doctors: []Doctor{
				{
					Name:        "Dr. Mehdi",
					Title:       "Board Certified Plastic Surgeon",
					Description: "A double board-certified plastic surgeon with over 20 years of experience in complex reconstructive and aesthetic procedures. Expert in scar-free excision.",
					Image:       "https://images-strategyguys.netlify.app/harley-street-wellness-main/dr%20mehdi.webp",
				},
				{
					Name:        "Dr. Ayda Soltanzadeh",
					Title:       "Board Certified Dermatologist",
					Description: "Specialist in laser dermatology and skin pathology. Dr. Soltanzadeh combines medical precision with aesthetic care to treat stubborn verrucas and warts.",
					Image:       "https://images-strategyguys.netlify.app/harley-street-wellness-main/dr.%20ayda%20soltanzadeh.webp",
				},
				{
					Name:        "Dr. Humera Faisal",
					Title:       "Board Certified Dermatologist",
					Description: "Renowned for his work in dermatological surgery and mucosal treatments. Dedicated to providing discreet and effective care for sensitive conditions.",
					Image:       "https://images-strategyguys.netlify.app/harley-street-wellness-main/dr%20humera%201.webp",
				},
			},
			Reviews: sharedReviews("London"),
			Webhooks: Webhooks{
				Form: map[string]string{
					"Warts Removal":         hookBase + "zpa5nc8IINTWoZzB6azW",
					"Genital Warts Removal": hookBase + "913esX2WbVIxPTLPcdeU",
					"Verruca Removal":       hookBase + "pJYCVhM1TGW7MjcLxMNO",
					"Skin Tag Removal":      hookBase + "xqSdhHHkIenm59SffD9Z",
					"Anal Skin Tag Removal": hookBase + "ZGmLJjneN1ehPfCsdSWX",
					"Mole Removal":          hookBase + "hSY3FKpJzscKFlQD9S7u",
					"Cyst Removal":          hookBase + "NTlpN1cCkg5OkWEnfuUr",
					"Lipoma Removal":        hookBase + "TzbLHg71GNgTqEHBcXUV",
					"Ganglion Cyst Removal": hookBase + "XW3C7S0D1u15VVdbfWXH",
				},
				Agent: map[treatment.Key]string{
					treatment.General:     hookBase + "s9XBN0fmOz7Kt9GIG351",
					treatment.Verruca:     hookBase + "mid8AoAJD7kab7s7DdGE",
					treatment.Genital:     hookBase + "e3bUpVvCkQRnwsEkod1D",
					treatment.SkinTag:     hookBase + "DsNJdfhPgE2GiGFJSgN2",
					treatment.AnalSkinTag: hookBase + "J6DViWpi9H1p22PGKoZ2",
					treatment.Mole:        hookBase + "Lq2G7TEQf3i75n6aN7gy",
					treatment.Cyst:        hookBase + "YNzqONrdDUjoe1ICerah",
					treatment.Lipoma:      hookBase + "9ZEgACXOAeLL3lLYgTLQ",
					treatment.Ganglion:    hookBase + "GlBsKPoMIk0SnLWfkGgR",
				},
			},
		},
		{
			ID:           Glasgow,
			City:         "Glasgow",
			ClinicName:   "Harley Street Medics Glasgow",
			Address:      "Glasgow Day Surgery Centre, 154 Clyde Street, G1 4EX",
			Phone:        "0141 488 8985",
			WhatsApp:     "0141 488 8985",
			MapEmbedURL:  "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d2239.4366323065437!2d-4.2521816!3d55.8550905!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x4888473b07208639%3A0x1ad5dc1b4f68112e!2sHarley%20Street%20Medics!5e0!3m2!1sen!2s!4v1767254106397!5m2!1sen!2s",
			HeroTitle:    "Wart Removal Glasgow",
			HeroSubtitle: "Worried about a mole? We offer Glasgow's most advanced mole removal and checking services.",
			Doctors: []Doctor{
				{
					Name:        "Dr. Khalil Al-Nakib",
					Title:       "Board Certified Plastic Surgeon",
					Description: "A double board-certified plastic surgeon with over 20 years of experience in complex reconstructive and aesthetic procedures. Expert in scar-free excision.",
					Image:       "https://images-strategyguys.netlify.app/harley-street-wellness-main/dr%20khalil%20al%20nakib.webp",
				},
				{
					Name:        "Dr. Ayda Soltanzadeh",
					Title:       "Board Certified Dermatologist",
					Description: "Specialist in laser dermatology and skin pathology. Dr. Soltanzadeh combines medical precision with aesthetic care to treat stubborn verrucas and warts.",
					Image:       "https://images-strategyguys.netlify.app/harley-street-wellness-main/dr.%20ayda%20soltanzadeh.webp",
				},
				{
					Name:        "Dr. Ala Sakr",
					Title:       "Board Certified Dermatologist",
					Description: "Renowned for his work in dermatological surgery and mucosal treatments. Dedicated to providing discreet and effective care for sensitive conditions.",
					Image:       "https://images-strategyguys.netlify.app/harley-street-wellness-main/dr%20ala%20sakr.webp",
				},
			},
			Reviews: sharedReviews("Glasgow"),
			Webhooks: Webhooks{
				// Glasgow has no dedicated ganglion form endpoint; ganglion
				// bookings resolve through the cyst label instead.
				Form: map[string]string{
					"Warts Removal":         hookBase + "NjrTANqQtrgMk7FyXx2X",
					"Genital Warts Removal": hookBase + "h6fxPwa5piIH0nhtjcVL",
					"Verruca Removal":       hookBase + "qTRCmMTmmvzZWsThuw5L",
					"Skin Tag Removal":      hookBase + "HeWOt7r5X1B5E6APai83",
					"Anal Skin Tag Removal": hookBase + "a3clwZfVL8GHNBWQ8RYY",
					"Mole Removal":          hookBase + "j84CHeM7wLGsGYPiwqc5",
					"Cyst Removal":          hookBase + "jppMj42SGxI5wfxqQrjq",
					"Lipoma Removal":        hookBase + "sgx33cQ13RCHVE2JLVBS",
				},
				Agent: map[treatment.Key]string{
					treatment.General:     hookBase + "31f48350-76cc-4bd6-8703-c5e964609b5c",
					treatment.Genital:     hookBase + "3a8532fb-dc6b-4ad1-91b1-b7e82899e74f",
					treatment.Verruca:     hookBase + "b7874daf-9057-4220-be5d-d6a2da87146c",
					treatment.Mole:        hookBase + "2368349d-bfa7-4a1c-9a26-8498c3c3985b",
					treatment.SkinTag:     hookBase + "e40236e4-67ea-4590-84dd-8fb375feeeed",
					treatment.AnalSkinTag: hookBase + "de0b4ae1-b049-41bf-92d4-474f15e25b12",
					treatment.Cyst:        hookBase + "170377de-64c0-4591-bd2f-37ada1ec4559",
					treatment.Lipoma:      hookBase + "be7b91bc-c243-4f56-8db2-358c97744b29",
					treatment.Ganglion:    hookBase + "GlBsKPoMIk0SnLWfkGgR",
				},
			},
		},
	}
}

func sharedReviews(city string) []Review {
	return []Review{
		{
			Name:    "Phillip MacDonald",
			Date:    "1 year ago",
			Content: "The team at the surgery are great. This is my second trip and would highly recommend anyone else to see the team here. Professional, meticulous, friendly and welcoming.",
			Rating:  5,
		},
		{
			Name:    "Roisin Mackenzie",
			Date:    "1 year ago",
			Content: "Excellent service from the Harley Street team in " + city + " for 2 cyst removals. All staff were friendly and welcoming including surgeon (Dr Kabeya) and Fraser. Procedure was painfree. Stitches healed up really well and I'm really happy with how it looks.",
			Rating:  5,
		},
		{
			Name:    "Steve Rudland",
			Date:    "1 year ago",
			Content: "Excellent service. Very skilled surgeon. No fuss. Very efficient admin and no price creep.",
			Rating:  5,
		},
		{
			Name:    "Kathryn McVey",
			Date:    "1 year ago",
			Content: "Absolutely blown away with the service. Could not recommend Harley Street Medics enough! They were super kind and supportive from beginning to end.",
			Rating:  5,
		},
	}
}
