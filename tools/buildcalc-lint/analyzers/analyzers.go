// Package analyzers provides all custom static analyzers for buildcalc.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/ersonp/buildcalc/tools/buildcalc-lint/analyzers/factorliteral"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		factorliteral.Analyzer,
	}
}
