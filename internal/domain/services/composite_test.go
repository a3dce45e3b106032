package services

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/buildcalc/internal/domain/entities"
)

func TestConversionService_ToComposite(t *testing.T) {
	service := newTestConversionService()

	tests := []struct {
		name     string
		value    float64
		from     string
		scheme   entities.CompositeKind
		expected entities.Composite
	}{
		{name: "meters to m-cm", value: 1.5, from: "m", scheme: entities.CompositeMetersCentimeters, expected: entities.Composite{Whole: 1, Fraction: 50}},
		{name: "feet to ft-in", value: 5.5, from: "ft", scheme: entities.CompositeFeetInches, expected: entities.Composite{Whole: 5, Fraction: 6}},
		{name: "inches to ft-in", value: 66, from: "in", scheme: entities.CompositeFeetInches, expected: entities.Composite{Whole: 5, Fraction: 6}},
		{name: "zero", value: 0, from: "cm", scheme: entities.CompositeFeetInches, expected: entities.Composite{}},
		{name: "no carry near a whole unit", value: 0.999999, from: "m", scheme: entities.CompositeMetersCentimeters, expected: entities.Composite{Whole: 0, Fraction: 99.9999}},
		{name: "negative floors downward", value: -1.5, from: "ft", scheme: entities.CompositeFeetInches, expected: entities.Composite{Whole: -2, Fraction: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.ToComposite(tt.value, tt.from, tt.scheme)
			require.NoError(t, err)
			assert.Equal(t, tt.expected.Whole, result.Whole)
			assert.InDelta(t, tt.expected.Fraction, result.Fraction, 1e-9)
			assert.GreaterOrEqual(t, result.Fraction, 0.0)
			assert.Less(t, result.Fraction, tt.scheme.MinorPerMajor())
		})
	}
}

func TestConversionService_FromComposite(t *testing.T) {
	service := newTestConversionService()

	result, err := service.FromComposite(5, 6, entities.CompositeFeetInches, "in")
	require.NoError(t, err)
	assert.Equal(t, 66.0, result)

	result, err = service.FromComposite(1, 50, entities.CompositeMetersCentimeters, "mm")
	require.NoError(t, err)
	assert.Equal(t, 1500.0, result)

	result, err = service.FromComposite(6, 0, entities.CompositeFeetInches, "m")
	require.NoError(t, err)
	assert.InDelta(t, 1.8288, result, 1e-12)
}

func TestConversionService_FromComposite_UnnormalizedFraction(t *testing.T) {
	service := newTestConversionService()

	result, err := service.FromComposite(1, 18, entities.CompositeFeetInches, "ft")
	require.NoError(t, err)
	assert.Equal(t, 2.5, result)
}

func TestConversionService_CompositeRoundTrip(t *testing.T) {
	service := newTestConversionService()

	for _, scheme := range entities.CompositeKinds() {
		for _, u := range service.Units(entities.KindLength) {
			for _, v := range []float64{0, 1, 2.5, 1000, 0.0001} {
				c, err := service.ToComposite(v, u.Symbol, scheme)
				require.NoError(t, err)
				back, err := service.FromComposite(c.Whole, c.Fraction, scheme, u.Symbol)
				require.NoError(t, err)
				assertClose(t, v, back, "%s via %s: %v", u.Symbol, scheme, v)
			}
		}
	}
}

func TestConversionService_BetweenComposites(t *testing.T) {
	service := newTestConversionService()

	t.Run("same scheme is identity even when unnormalized", func(t *testing.T) {
		result, err := service.BetweenComposites(1, 12, entities.CompositeFeetInches, entities.CompositeFeetInches)
		require.NoError(t, err)
		assert.Equal(t, entities.Composite{Whole: 1, Fraction: 12}, result)
	})

	t.Run("feet-inches to meters-centimeters", func(t *testing.T) {
		result, err := service.BetweenComposites(6, 0, entities.CompositeFeetInches, entities.CompositeMetersCentimeters)
		require.NoError(t, err)
		assert.Equal(t, 1.0, result.Whole)
		assert.InDelta(t, 82.88, result.Fraction, 1e-9)
	})

	t.Run("unnormalized fraction is recomputed from the flat value", func(t *testing.T) {
		result, err := service.BetweenComposites(0, 12, entities.CompositeFeetInches, entities.CompositeMetersCentimeters)
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.Whole)
		assert.InDelta(t, 30.48, result.Fraction, 1e-9)
	})

	t.Run("repeated switching does not drift", func(t *testing.T) {
		c := entities.Composite{Whole: 5, Fraction: 7.25}
		for i := 0; i < 50; i++ {
			m, err := service.BetweenComposites(c.Whole, c.Fraction, entities.CompositeFeetInches, entities.CompositeMetersCentimeters)
			require.NoError(t, err)
			c, err = service.BetweenComposites(m.Whole, m.Fraction, entities.CompositeMetersCentimeters, entities.CompositeFeetInches)
			require.NoError(t, err)
		}
		assert.Equal(t, 5.0, c.Whole)
		assert.InDelta(t, 7.25, c.Fraction, 1e-9)
	})
}

func TestConversionService_Composite_Errors(t *testing.T) {
	service := newTestConversionService()

	_, err := service.ToComposite(1, "m", entities.CompositeKind("yd-ft"))
	assert.True(t, errors.Is(err, entities.ErrUnknownComposite))

	_, err = service.FromComposite(1, 0, entities.CompositeKind(""), "m")
	assert.True(t, errors.Is(err, entities.ErrUnknownComposite))

	_, err = service.BetweenComposites(1, 0, entities.CompositeFeetInches, entities.CompositeKind("x"))
	assert.True(t, errors.Is(err, entities.ErrUnknownComposite))

	_, err = service.ToComposite(1, "kg", entities.CompositeFeetInches)
	assert.True(t, errors.Is(err, entities.ErrUnknownUnit))

	_, err = service.FromComposite(math.NaN(), 0, entities.CompositeFeetInches, "m")
	assert.True(t, errors.Is(err, entities.ErrInvalidNumber))

	_, err = service.BetweenComposites(1, math.Inf(1), entities.CompositeFeetInches, entities.CompositeMetersCentimeters)
	assert.True(t, errors.Is(err, entities.ErrInvalidNumber))
}
