package tables

import "github.com/ersonp/buildcalc/internal/domain/entities"

var densityTable = newTable(entities.KindDensity, "kg/m³",
	[]unitDef{
		{"kg/m³", "kilogram per cubic meter", 1},
		{"t/m³", "metric ton per cubic meter", 1000},
		{"g/cm³", "gram per cubic centimeter", 1000},
		{"lb/cu ft", "pound per cubic foot", kilogramPerPound / cubicMeterPerCubicFoot},
		{"lb/cu yd", "pound per cubic yard", kilogramPerPound / cubicMeterPerCubicYard},
		{"lb/cu in", "pound per cubic inch", kilogramPerPound / cubicMeterPerCubicInch},
	},
	[]pairDef{
		{"t/m³", "kg/m³", 1000},
		{"g/cm³", "t/m³", 1},
		{"lb/cu ft", "lb/cu yd", 27},
		{"lb/cu in", "lb/cu ft", 1728},
	},
	map[string]string{
		"lb/ft³": "lb/cu ft",
		"lb/yd³": "lb/cu yd",
		"lb/in³": "lb/cu in",
		"pcf":    "lb/cu ft",
	},
)
