package treatment

// Key identifies one of the clinic's treatment pages.
type Key string

const (
	General     Key = "general"
	Verruca     Key = "verruca"
	Genital     Key = "genital"
	SkinTag     Key = "skintag"
	AnalSkinTag Key = "analskintag"
	Cyst        Key = "cyst"
	Lipoma      Key = "lipoma"
	Mole        Key = "mole"
	Ganglion    Key = "ganglion"
)

// All returns every treatment key in display order.
func All() []Key {
	return []Key{General, Verruca, Genital, SkinTag, AnalSkinTag, Cyst, Lipoma, Mole, Ganglion}
}

// Parse returns the key matching s, or General and false when unknown.
func Parse(s string) (Key, bool) {
	k := Key(s)
	switch k {
	case General, Verruca, Genital, SkinTag, AnalSkinTag, Cyst, Lipoma, Mole, Ganglion:
		return k, true
	}
	return General, false
}

func (k Key) String() string { return string(k) }
