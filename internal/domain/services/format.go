package services

import (
	"math"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// NonFinitePlaceholder is what FormatNumber renders for NaN and ±Inf.
const NonFinitePlaceholder = ""

const maxFractionDigitsLimit = 20

// FormatOptions controls FormatNumber.
type FormatOptions struct {
	MinimumFractionDigits int  `json:"min_fraction_digits" yaml:"min_fraction_digits"`
	MaximumFractionDigits int  `json:"max_fraction_digits" yaml:"max_fraction_digits"`
	UseCommas             bool `json:"use_commas" yaml:"use_commas"`
}

// DefaultFormatOptions returns the display defaults: up to 4 decimals,
// no forced decimals, thousands separators on.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		MinimumFractionDigits: 0,
		MaximumFractionDigits: 4,
		UseCommas:             true,
	}
}

// normalized clamps digit counts to 0..20 and keeps min <= max.
func (o FormatOptions) normalized() FormatOptions {
	o.MinimumFractionDigits = clampDigits(o.MinimumFractionDigits)
	o.MaximumFractionDigits = clampDigits(o.MaximumFractionDigits)
	if o.MinimumFractionDigits > o.MaximumFractionDigits {
		o.MaximumFractionDigits = o.MinimumFractionDigits
	}
	return o
}

func clampDigits(n int) int {
	switch {
	case n < 0:
		return 0
	case n > maxFractionDigitsLimit:
		return maxFractionDigitsLimit
	default:
		return n
	}
}

// FormatNumber renders value for display. It never panics and never
// renders "-0".
func FormatNumber(value float64, opts FormatOptions) string {
	if !isFinite(value) {
		return NonFinitePlaceholder
	}
	opts = opts.normalized()

	if opts.UseCommas {
		return formatGrouped(value, opts)
	}
	return formatAdaptive(value, opts)
}

// formatGrouped rounds half away from zero at the maximum digit, trims
// trailing zeros down to the minimum and groups thousands.
func formatGrouped(value float64, opts FormatOptions) string {
	d := decimal.NewFromFloat(value).Round(int32(opts.MaximumFractionDigits))

	intPart, fracPart := splitFixed(d.Abs().StringFixed(int32(opts.MaximumFractionDigits)))
	for len(fracPart) > opts.MinimumFractionDigits && strings.HasSuffix(fracPart, "0") {
		fracPart = fracPart[:len(fracPart)-1]
	}

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(intPart))
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// formatAdaptive picks decimal places by magnitude and strips trailing zeros.
func formatAdaptive(value float64, opts FormatOptions) string {
	places := adaptivePlaces(value, opts.MaximumFractionDigits)

	d := decimal.NewFromFloat(value).Round(int32(places))
	if d.IsZero() {
		return "0"
	}

	s := d.StringFixed(int32(places))
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

func adaptivePlaces(value float64, maxDigits int) int {
	abs := math.Abs(value)
	switch {
	case abs < 0.001:
		return 8
	case abs < 0.1:
		return 6
	case abs > 1000:
		return 2
	default:
		return maxDigits
	}
}

func splitFixed(s string) (string, string) {
	intPart, fracPart, _ := strings.Cut(s, ".")
	return intPart, fracPart
}

func groupThousands(digits string) string {
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return digits
	}
	return humanize.BigComma(n)
}
