// Package factorliteral detects unit conversion factors hard-coded outside
// the unit tables.
package factorliteral

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer reports multiplications and divisions by well-known conversion
// factors outside packages named tables.
var Analyzer = &analysis.Analyzer{
	Name:     "factorliteral",
	Doc:      "detects conversion factor literals used in arithmetic outside the unit tables",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var knownFactors = map[float64]string{
	0.0254:       "m per in",
	2.54:         "cm per in",
	25.4:         "mm per in",
	0.3048:       "m per ft",
	3.28084:      "ft per m",
	0.9144:       "m per yd",
	1609.344:     "m per mi",
	5280:         "ft per mi",
	0.09290304:   "m² per ft²",
	10.7639:      "ft² per m²",
	43560:        "ft² per ac",
	4046.8564224: "m² per ac",
	1728:         "in³ per ft³",
	0.0283168:    "m³ per ft³",
	35.3147:      "ft³ per m³",
	0.764555:     "m³ per yd³",
	3.785411784:  "L per gal",
	0.45359237:   "kg per lb",
	2.20462:      "lb per kg",
	453.59237:    "g per lb",
	16.0185:      "kg/m³ per lb/ft³",
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Path() == "tables" || strings.HasSuffix(pass.Pkg.Path(), "/tables") {
		return nil, nil
	}

	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.BinaryExpr)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		expr := n.(*ast.BinaryExpr)
		if expr.Op != token.MUL && expr.Op != token.QUO {
			return
		}
		if strings.HasSuffix(pass.Fset.Position(expr.Pos()).Filename, "_test.go") {
			return
		}

		for _, operand := range []ast.Expr{expr.X, expr.Y} {
			lit, ok := operand.(*ast.BasicLit)
			if !ok || (lit.Kind != token.FLOAT && lit.Kind != token.INT) {
				continue
			}
			v, err := strconv.ParseFloat(strings.ReplaceAll(lit.Value, "_", ""), 64)
			if err != nil {
				continue
			}
			if name, ok := knownFactors[v]; ok {
				pass.Reportf(lit.Pos(),
					"conversion factor literal %s (%s) - look the units up in the tables instead",
					lit.Value, name)
			}
		}
	})

	return nil, nil
}
