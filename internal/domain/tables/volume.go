package tables

import "github.com/ersonp/buildcalc/internal/domain/entities"

const (
	cubicMeterPerCubicInch = meterPerInch * meterPerInch * meterPerInch
	cubicMeterPerCubicFoot = meterPerFoot * meterPerFoot * meterPerFoot
	cubicMeterPerCubicYard = meterPerYard * meterPerYard * meterPerYard
	// US liquid gallon, defined as 231 cubic inches.
	cubicMeterPerGallon = 231 * cubicMeterPerCubicInch
)

var volumeTable = newTable(entities.KindVolume, "m³",
	[]unitDef{
		{"mm³", "cubic millimeter", 1e-9},
		{"cm³", "cubic centimeter", 1e-6},
		{"dm³", "cubic decimeter", 0.001},
		{"m³", "cubic meter", 1},
		{"cu in", "cubic inch", cubicMeterPerCubicInch},
		{"cu ft", "cubic foot", cubicMeterPerCubicFoot},
		{"cu yd", "cubic yard", cubicMeterPerCubicYard},
		{"gal", "US gallon", cubicMeterPerGallon},
		{"L", "liter", 0.001},
		{"mL", "milliliter", 1e-6},
	},
	[]pairDef{
		{"m³", "L", 1000},
		{"L", "mL", 1000},
		{"dm³", "L", 1},
		{"cm³", "mL", 1},
		{"cu yd", "cu ft", 27},
		{"cu ft", "cu in", 1728},
		{"gal", "cu in", 231},
	},
	map[string]string{
		"in³":   "cu in",
		"ft³":   "cu ft",
		"yd³":   "cu yd",
		"cf":    "cu ft",
		"cy":    "cu yd",
		"l":     "L",
		"ml":    "mL",
		"cc":    "cm³",
		"liter": "L",
		"litre": "L",
		"gallon": "gal",
	},
)
