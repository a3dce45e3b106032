// Package tables holds the conversion factor tables for every quantity kind.
// Tables are built once at package initialization and never mutated.
package tables

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ersonp/buildcalc/internal/domain/entities"
)

// Table is the conversion table of one quantity kind.
type Table struct {
	kind    entities.Kind
	base    string
	units   []entities.Unit
	index   map[string]int
	aliases map[string]string
	direct  map[string]map[string]float64
}

// unitDef is the literal form used by the per-kind table files.
type unitDef struct {
	symbol string
	name   string
	toBase float64
}

// pairDef declares a direct factor: one from equals factor to.
type pairDef struct {
	from   string
	to     string
	factor float64
}

// normalize folds compatibility characters so that "m³" and "m3" share a key.
func normalize(symbol string) string {
	return norm.NFKC.String(strings.TrimSpace(symbol))
}

// newTable builds and validates a table. It panics on an invalid definition
// since tables are compile-time data.
func newTable(kind entities.Kind, base string, defs []unitDef, pairs []pairDef, aliases map[string]string) *Table {
	t := &Table{
		kind:    kind,
		base:    base,
		units:   make([]entities.Unit, 0, len(defs)),
		index:   make(map[string]int, len(defs)),
		aliases: make(map[string]string, len(aliases)),
		direct:  make(map[string]map[string]float64),
	}

	for _, d := range defs {
		key := normalize(d.symbol)
		if _, dup := t.index[key]; dup {
			panic(fmt.Sprintf("tables: duplicate %s unit %q", kind, d.symbol))
		}
		if !validFactor(d.toBase) {
			panic(fmt.Sprintf("tables: %s unit %q has invalid factor %v", kind, d.symbol, d.toBase))
		}
		t.index[key] = len(t.units)
		t.units = append(t.units, entities.Unit{
			Symbol: d.symbol,
			Name:   d.name,
			Kind:   kind,
			ToBase: d.toBase,
		})
	}

	baseUnit, ok := t.find(base)
	if !ok || baseUnit.ToBase != 1 {
		panic(fmt.Sprintf("tables: %s base unit %q must exist with factor 1", kind, base))
	}

	for alias, target := range aliases {
		u, ok := t.find(target)
		if !ok {
			panic(fmt.Sprintf("tables: %s alias %q targets unknown unit %q", kind, alias, target))
		}
		key := normalize(alias)
		if _, clash := t.index[key]; clash {
			continue
		}
		t.aliases[key] = u.Symbol
	}

	// Explicit pairs win over derived reverses, so register reverses first.
	for _, p := range pairs {
		t.mustUnit(p.from)
		t.mustUnit(p.to)
		if !validFactor(p.factor) {
			panic(fmt.Sprintf("tables: %s pair %s->%s has invalid factor %v", kind, p.from, p.to, p.factor))
		}
		t.setDirect(p.to, p.from, 1/p.factor)
	}
	for _, p := range pairs {
		t.setDirect(p.from, p.to, p.factor)
	}

	return t
}

func validFactor(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func (t *Table) mustUnit(symbol string) {
	if _, ok := t.find(symbol); !ok {
		panic(fmt.Sprintf("tables: %s pair references unknown unit %q", t.kind, symbol))
	}
}

func (t *Table) setDirect(from, to string, factor float64) {
	row, ok := t.direct[from]
	if !ok {
		row = make(map[string]float64)
		t.direct[from] = row
	}
	row[to] = factor
}

// find resolves a canonical symbol only.
func (t *Table) find(symbol string) (entities.Unit, bool) {
	if i, ok := t.index[normalize(symbol)]; ok {
		return t.units[i], true
	}
	return entities.Unit{}, false
}

// Kind returns the quantity kind of the table.
func (t *Table) Kind() entities.Kind {
	return t.kind
}

// Base returns the canonical symbol of the base unit.
func (t *Table) Base() string {
	return t.base
}

// Lookup resolves a symbol or alias to its canonical unit.
func (t *Table) Lookup(symbol string) (entities.Unit, bool) {
	if u, ok := t.find(symbol); ok {
		return u, true
	}
	if target, ok := t.aliases[normalize(symbol)]; ok {
		return t.find(target)
	}
	return entities.Unit{}, false
}

// Direct returns the registered pairwise factor between canonical symbols.
func (t *Table) Direct(from, to string) (float64, bool) {
	f, ok := t.direct[from][to]
	return f, ok
}

// Units returns a copy of the units in declaration order.
func (t *Table) Units() []entities.Unit {
	out := make([]entities.Unit, len(t.units))
	copy(out, t.units)
	return out
}

// Aliases returns alias -> canonical symbol, keyed by normalized alias.
func (t *Table) Aliases() map[string]string {
	out := make(map[string]string, len(t.aliases))
	for k, v := range t.aliases {
		out[k] = v
	}
	return out
}

// Pairs returns every registered direct factor, including derived reverses.
func (t *Table) Pairs() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(t.direct))
	for from, row := range t.direct {
		cp := make(map[string]float64, len(row))
		for to, f := range row {
			cp[to] = f
		}
		out[from] = cp
	}
	return out
}
