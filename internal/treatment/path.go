package treatment

import "strings"

// pathRules classify a request path by substring. Order matters:
// "anal" must win over "skin-tag", and "ganglion" must be tested
// before "cyst" because the ganglion path contains "cyst".
var pathRules = []struct {
	substr string
	key    Key
}{
	{"verruca", Verruca},
	{"genital", Genital},
	{"anal", AnalSkinTag},
	{"skin-tag", SkinTag},
	{"ganglion", Ganglion},
	{"cyst", Cyst},
	{"lipoma", Lipoma},
	{"mole", Mole},
}

// ClassifyPath maps a URL path to the treatment page it addresses.
// Unrecognised paths fall back to General.
func ClassifyPath(path string) Key {
	for _, rule := range pathRules {
		if strings.Contains(path, rule.substr) {
			return rule.key
		}
	}
	return General
}

var subPaths = map[Key]string{
	General:     "",
	Verruca:     "/verruca-removal",
	Genital:     "/genital-warts",
	SkinTag:     "/skin-tag-removal",
	AnalSkinTag: "/anal-skin-tags",
	Cyst:        "/cyst-removal",
	Lipoma:      "/lipoma-removal",
	Mole:        "/mole-removal",
	Ganglion:    "/ganglion-cyst",
}

// CanonicalPath returns the canonical URL path for a treatment page
// under the given location slug ("london" or "glasgow").
func CanonicalPath(k Key, location string) string {
	return "/" + location + subPaths[k]
}

// SubPath returns the canonical subpath for a treatment page, empty for General.
func SubPath(k Key) string {
	return subPaths[k]
}
