package tables

import "github.com/ersonp/buildcalc/internal/domain/entities"

const (
	kilogramPerPound = 0.45359237
	kilogramPerOunce = kilogramPerPound / 16
)

var massTable = newTable(entities.KindMass, "kg",
	[]unitDef{
		{"mg", "milligram", 1e-6},
		{"g", "gram", 0.001},
		{"kg", "kilogram", 1},
		{"t", "metric ton", 1000},
		{"lb", "pound", kilogramPerPound},
		{"oz", "ounce", kilogramPerOunce},
		{"st", "stone", 14 * kilogramPerPound},
		{"US ton", "US ton", 2000 * kilogramPerPound},
		{"long ton", "long ton", 2240 * kilogramPerPound},
	},
	[]pairDef{
		{"lb", "oz", 16},
		{"st", "lb", 14},
		{"US ton", "lb", 2000},
		{"long ton", "lb", 2240},
		{"t", "kg", 1000},
		{"kg", "g", 1000},
		{"g", "mg", 1000},
	},
	map[string]string{
		"lbs":       "lb",
		"pound":     "lb",
		"pounds":    "lb",
		"tonne":     "t",
		"tonnes":    "t",
		"short ton": "US ton",
		"ton":       "US ton",
	},
)
