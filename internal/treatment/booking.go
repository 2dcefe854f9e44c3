package treatment

import "strings"

// DefaultBookingLabel is the form option used when no more specific
// label applies, and the fallback for webhook lookups.
const DefaultBookingLabel = "Warts Removal"

// BookingLabel returns the booking form option preselected for a
// treatment page. Glasgow has no dedicated ganglion service, so its
// ganglion page books under the cyst label.
func BookingLabel(k Key, location string) string {
	switch k {
	case Ganglion:
		if location == "london" {
			return "Ganglion Cyst Removal"
		}
		return "Cyst Removal"
	case Mole:
		return "Mole Removal"
	case Lipoma:
		return "Lipoma Removal"
	case Cyst:
		return "Cyst Removal"
	case AnalSkinTag:
		return "Anal Skin Tag Removal"
	case SkinTag:
		return "Skin Tag Removal"
	case Verruca:
		return "Verruca Removal"
	case Genital:
		return "Genital Warts Removal"
	default:
		return DefaultBookingLabel
	}
}

// BookingOptions lists every selectable treatment on the booking form.
func BookingOptions() []string {
	return []string{
		"Warts Removal",
		"Verruca Removal",
		"Genital Warts Removal",
		"Skin Tag Removal",
		"Anal Skin Tag Removal",
		"Cyst Removal",
		"Lipoma Removal",
		"Mole Removal",
		"Ganglion Cyst Removal",
	}
}

// IsBookingOption reports whether label is a known booking form option.
func IsBookingOption(label string) bool {
	for _, opt := range BookingOptions() {
		if opt == label {
			return true
		}
	}
	return false
}

// LabelSlug lowercases a booking label and replaces spaces with hyphens,
// producing the per-treatment suffix used in analytics form classes.
func LabelSlug(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "-")
}
