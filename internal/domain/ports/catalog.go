package ports

import "github.com/ersonp/buildcalc/internal/domain/entities"

// UnitCatalog resolves unit symbols and conversion factors for each
// quantity kind.
type UnitCatalog interface {
	// Lookup resolves a symbol, or one of its aliases, to its canonical unit.
	// It returns an *entities.UnknownUnitError if the kind does not recognize it.
	Lookup(kind entities.Kind, symbol string) (entities.Unit, error)

	// DirectFactor returns the pairwise factor between two canonical symbols,
	// if one is registered.
	DirectFactor(kind entities.Kind, from, to string) (float64, bool)

	// Units lists the units of a kind in table order.
	Units(kind entities.Kind) []entities.Unit
}
