package tables

import (
	"math"

	"github.com/ersonp/buildcalc/internal/domain/entities"
)

var angleTable = newTable(entities.KindAngle, "deg",
	[]unitDef{
		{"deg", "degree", 1},
		{"rad", "radian", 180 / math.Pi},
		// One pirad is π radians.
		{"pirad", "π radian", 180},
	},
	[]pairDef{
		{"rad", "deg", 180 / math.Pi},
		{"pirad", "rad", math.Pi},
	},
	map[string]string{
		"°":       "deg",
		"degree":  "deg",
		"degrees": "deg",
		"radian":  "rad",
		"radians": "rad",
		"πrad":    "pirad",
	},
)
