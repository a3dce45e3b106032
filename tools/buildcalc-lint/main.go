// buildcalc-lint is a custom static analyzer for buildcalc conversion code.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ersonp/buildcalc/tools/buildcalc-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
