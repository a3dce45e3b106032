package tables

import "github.com/ersonp/buildcalc/internal/domain/entities"

// Exact international definitions, in meters.
const (
	meterPerInch = 0.0254
	meterPerFoot = 0.3048
	meterPerYard = 0.9144
	meterPerMile = 1609.344
)

var lengthTable = newTable(entities.KindLength, "m",
	[]unitDef{
		{"mm", "millimeter", 0.001},
		{"cm", "centimeter", 0.01},
		{"m", "meter", 1},
		{"km", "kilometer", 1000},
		{"in", "inch", meterPerInch},
		{"ft", "foot", meterPerFoot},
		{"yd", "yard", meterPerYard},
		{"mi", "mile", meterPerMile},
	},
	[]pairDef{
		{"ft", "in", 12},
		{"yd", "ft", 3},
		{"yd", "in", 36},
		{"mi", "ft", 5280},
		{"mi", "yd", 1760},
		{"in", "cm", 2.54},
		{"in", "mm", 25.4},
		{"m", "cm", 100},
		{"m", "mm", 1000},
		{"cm", "mm", 10},
		{"km", "m", 1000},
	},
	map[string]string{
		"″":      "in",
		"\"":     "in",
		"inch":   "in",
		"inches": "in",
		"′":      "ft",
		"'":      "ft",
		"foot":   "ft",
		"feet":   "ft",
		"yard":   "yd",
		"yards":  "yd",
		"mile":   "mi",
		"miles":  "mi",
		"meter":  "m",
		"meters": "m",
		"metre":  "m",
		"metres": "m",
	},
)
