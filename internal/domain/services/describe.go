package services

import (
	"strings"

	"github.com/gertd/go-pluralize"

	"github.com/ersonp/buildcalc/internal/domain/entities"
)

var pluralizer = pluralize.NewClient()

// DescribeQuantity renders a value with its unit name, e.g. "12 inches".
func DescribeQuantity(value float64, unit entities.Unit, opts FormatOptions) string {
	formatted := FormatNumber(value, opts)
	if formatted == NonFinitePlaceholder {
		return NonFinitePlaceholder
	}
	if formatted == "1" {
		return formatted + " " + unit.Name
	}
	return formatted + " " + PluralUnitName(unit.Name)
}

// PluralUnitName pluralizes the head noun of a unit name:
// "square foot" -> "square feet", "pound per cubic foot" -> "pounds per cubic foot".
func PluralUnitName(name string) string {
	head, tail := name, ""
	if i := strings.Index(name, " per "); i >= 0 {
		head, tail = name[:i], name[i:]
	}

	prefix, word := "", head
	if i := strings.LastIndex(head, " "); i >= 0 {
		prefix, word = head[:i+1], head[i+1:]
	}
	return prefix + pluralizer.Plural(word) + tail
}
