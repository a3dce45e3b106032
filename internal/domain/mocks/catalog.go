package mocks

import (
	"github.com/ersonp/buildcalc/internal/domain/entities"
)

// Catalog is a mock implementation of ports.UnitCatalog.
type Catalog struct {
	UnitsByKind map[entities.Kind][]entities.Unit
	Direct      map[string]float64 // keyed "from->to"

	LookupCallCount int
	DirectCallCount int
}

// NewCatalog creates an empty mock Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		UnitsByKind: make(map[entities.Kind][]entities.Unit),
		Direct:      make(map[string]float64),
	}
}

// AddUnit registers a unit.
func (m *Catalog) AddUnit(kind entities.Kind, symbol string, toBase float64) *Catalog {
	m.UnitsByKind[kind] = append(m.UnitsByKind[kind], entities.Unit{
		Symbol: symbol,
		Name:   symbol,
		Kind:   kind,
		ToBase: toBase,
	})
	return m
}

// AddDirect registers a one-way direct factor.
func (m *Catalog) AddDirect(from, to string, factor float64) *Catalog {
	m.Direct[from+"->"+to] = factor
	return m
}

// Lookup resolves a symbol by exact match.
func (m *Catalog) Lookup(kind entities.Kind, symbol string) (entities.Unit, error) {
	m.LookupCallCount++
	for _, u := range m.UnitsByKind[kind] {
		if u.Symbol == symbol {
			return u, nil
		}
	}
	return entities.Unit{}, &entities.UnknownUnitError{Kind: kind, Symbol: symbol}
}

// DirectFactor returns a registered direct factor.
func (m *Catalog) DirectFactor(_ entities.Kind, from, to string) (float64, bool) {
	m.DirectCallCount++
	f, ok := m.Direct[from+"->"+to]
	return f, ok
}

// Units lists the units of a kind.
func (m *Catalog) Units(kind entities.Kind) []entities.Unit {
	return m.UnitsByKind[kind]
}
