package tables

import "github.com/ersonp/buildcalc/internal/domain/entities"

const (
	sqMeterPerAcre = 4046.8564224
	sqFeetPerAcre  = 43560
)

var areaTable = newTable(entities.KindArea, "m²",
	[]unitDef{
		{"mm²", "square millimeter", 1e-6},
		{"cm²", "square centimeter", 1e-4},
		{"dm²", "square decimeter", 0.01},
		{"m²", "square meter", 1},
		{"km²", "square kilometer", 1e6},
		{"in²", "square inch", meterPerInch * meterPerInch},
		{"ft²", "square foot", meterPerFoot * meterPerFoot},
		{"yd²", "square yard", meterPerYard * meterPerYard},
		{"mi²", "square mile", meterPerMile * meterPerMile},
		{"ac", "acre", sqMeterPerAcre},
		{"ha", "hectare", 10000},
		{"a", "are", 100},
	},
	[]pairDef{
		{"ft²", "in²", 144},
		{"yd²", "ft²", 9},
		{"yd²", "in²", 1296},
		{"ac", "ft²", sqFeetPerAcre},
		{"mi²", "ac", 640},
		{"ha", "m²", 10000},
		{"ha", "a", 100},
		{"m²", "cm²", 10000},
		{"m²", "ft²", 1 / (meterPerFoot * meterPerFoot)},
		{"km²", "ha", 100},
	},
	map[string]string{
		"sq mm": "mm²",
		"sq cm": "cm²",
		"sq m":  "m²",
		"sq km": "km²",
		"sq in": "in²",
		"sq ft": "ft²",
		"sq yd": "yd²",
		"sq mi": "mi²",
		"sqft":  "ft²",
		"acre":  "ac",
		"acres": "ac",
	},
)
