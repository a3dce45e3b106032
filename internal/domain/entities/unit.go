package entities

// Unit is one recognized unit symbol within a quantity kind.
type Unit struct {
	// Symbol is the canonical spelling, e.g. "ft²" or "lb/cu ft".
	Symbol string `json:"symbol"`
	// Name is the singular English name, e.g. "square foot".
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
	// ToBase converts one of this unit into the kind's base unit.
	ToBase float64 `json:"to_base"`
}

// IsZero reports whether u is the zero Unit.
func (u Unit) IsZero() bool {
	return u.Symbol == "" && u.Kind == 0
}
