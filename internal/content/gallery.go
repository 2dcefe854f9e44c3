package content

import (
	"fmt"

	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/treatment"
)

// GalleryCase is one before/after comparison shown in the results
// section.
type GalleryCase struct {
	Before string `json:"before"`
	After  string `json:"after"`
	Label  string `json:"label"`
}

const galleryBase = "https://images-strategyguys.netlify.app/harleystreemedics-image-source-main/"

var galleries = map[treatment.Key][]GalleryCase{
	treatment.General: {
		{Before: galleryBase + "warts%201%20before.webp", After: galleryBase + "warts%201%20after.webp", Label: "Deep Stalk Removal"},
		{Before: galleryBase + "warts%202%20before.webp", After: galleryBase + "warts%202%20after.webp", Label: "Laser Vaporization"},
	},
	treatment.Verruca: {
		{Before: galleryBase + "verruca%20before%20(1).webp", After: galleryBase + "verruca%20after%20(2).webp", Label: "Targeted Laser Removal"},
		{Before: galleryBase + "moasic%20wart%20before.webp", After: galleryBase + "moasic%20after.webp", Label: "Mosaic Verruca Clearance"},
	},
	treatment.Genital: {
		{Before: galleryBase + "genital%20warts%201%20before.webp", After: galleryBase + "genital%20warts%201%20after.webp", Label: "Complex Viral Clearance"},
		{Before: galleryBase + "genital%20warts%202%20before.webp", After: galleryBase + "genital%20warts%202%20after.webp", Label: "Laser Vaporization"},
	},
	treatment.SkinTag: {
		{Before: galleryBase + "skin%20taf%20before.webp", After: galleryBase + "skin%20tag%20after.webp", Label: "Deep Stalk Removal"},
		{Before: galleryBase + "skin%20tag%201%20before.webp", After: galleryBase + "skin%20tag%201%20after.webp", Label: "Laser Vaporization"},
	},
	treatment.Mole: {
		{Before: galleryBase + "mole%20removal%20case%2001%20before.webp", After: galleryBase + "mole%20removal%20case%20after%2001.webp", Label: "Cosmetic Laser Removal"},
		{Before: galleryBase + "mole%20removal%20case%2002%20before.webp", After: galleryBase + "mole%20removal%20case02%20after.webp", Label: "Surgical Excision Result"},
	},
	treatment.Cyst: {
		{Before: galleryBase + "cyst%20before%20sclap.webp", After: galleryBase + "cyst%20after%20sclap.webp", Label: "Scalp Reconstruction"},
		{Before: galleryBase + "cyst%20before.webp", After: galleryBase + "cyst%20face%20after.webp", Label: "Facial Excision"},
	},
}

// Gallery returns the before/after cases for a treatment page. Pages
// without their own photo set share a neighbour's (lipoma shows cyst
// surgery, anal skin tags show skin tag results); ganglion has no
// clinical photos yet and falls back to seeded placeholders.
func Gallery(k treatment.Key) []GalleryCase {
	switch k {
	case treatment.Lipoma:
		return galleries[treatment.Cyst]
	case treatment.AnalSkinTag:
		return galleries[treatment.SkinTag]
	}
	if cases, ok := galleries[k]; ok {
		return cases
	}
	return []GalleryCase{
		{
			Before: fmt.Sprintf("https://picsum.photos/seed/%s-before1/600/600?grayscale", k),
			After:  fmt.Sprintf("https://picsum.photos/seed/%s-after1/600/600", k),
			Label:  "Deep Stalk Removal",
		},
		{
			Before: fmt.Sprintf("https://picsum.photos/seed/%s-before2/600/600?grayscale", k),
			After:  fmt.Sprintf("https://picsum.photos/seed/%s-after2/600/600", k),
			Label:  "Laser Vaporization",
		},
	}
}
