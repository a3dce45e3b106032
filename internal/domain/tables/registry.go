package tables

import (
	"github.com/ersonp/buildcalc/internal/domain/entities"
)

// Registry holds one table per quantity kind and implements ports.UnitCatalog.
type Registry struct {
	tables map[entities.Kind]*Table
}

var defaultRegistry = NewRegistry(lengthTable, areaTable, volumeTable, angleTable, massTable, densityTable)

// Default returns the process-wide registry of built-in tables.
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry builds a registry from tables. A later table replaces an
// earlier one of the same kind.
func NewRegistry(tables ...*Table) *Registry {
	r := &Registry{tables: make(map[entities.Kind]*Table, len(tables))}
	for _, t := range tables {
		r.tables[t.Kind()] = t
	}
	return r
}

// Table returns the table of a kind.
func (r *Registry) Table(kind entities.Kind) (*Table, bool) {
	t, ok := r.tables[kind]
	return t, ok
}

// Lookup resolves a symbol for a kind.
func (r *Registry) Lookup(kind entities.Kind, symbol string) (entities.Unit, error) {
	t, ok := r.tables[kind]
	if !ok {
		return entities.Unit{}, &entities.UnknownUnitError{Kind: kind, Symbol: symbol}
	}
	u, ok := t.Lookup(symbol)
	if !ok {
		return entities.Unit{}, &entities.UnknownUnitError{Kind: kind, Symbol: symbol}
	}
	return u, nil
}

// DirectFactor returns the pairwise factor between two canonical symbols.
func (r *Registry) DirectFactor(kind entities.Kind, from, to string) (float64, bool) {
	t, ok := r.tables[kind]
	if !ok {
		return 0, false
	}
	return t.Direct(from, to)
}

// Units lists the units of a kind, or nil for an unknown kind.
func (r *Registry) Units(kind entities.Kind) []entities.Unit {
	t, ok := r.tables[kind]
	if !ok {
		return nil
	}
	return t.Units()
}
