package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ersonp/buildcalc/internal/domain/tables"
)

const relTolerance = 1e-9

func newTestConversionService() *ConversionService {
	return NewConversionService(tables.Default())
}

// assertClose compares with a relative tolerance, falling back to an
// absolute one near zero.
func assertClose(t *testing.T, expected, actual float64, msgAndArgs ...interface{}) {
	t.Helper()
	diff := math.Abs(expected - actual)
	scale := math.Max(math.Abs(expected), math.Abs(actual))
	if scale < 1e-12 {
		assert.LessOrEqual(t, diff, 1e-12, msgAndArgs...)
		return
	}
	assert.LessOrEqual(t, diff/scale, relTolerance, msgAndArgs...)
}
