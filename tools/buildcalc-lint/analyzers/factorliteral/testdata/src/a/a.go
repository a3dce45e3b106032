package a

func feetToMeters(ft float64) float64 {
	return ft * 0.3048 // want "conversion factor literal 0.3048"
}

func poundsToKilograms(lb float64) float64 {
	return lb / 2.20462 // want "conversion factor literal 2.20462"
}

func acres(sqft float64) float64 {
	return sqft / 43_560 // want "conversion factor literal 43_560"
}

func percent(slope float64) float64 {
	return slope * 100
}

const meterPerFoot = 0.3048

func named(ft float64) float64 {
	return ft * meterPerFoot
}

func sum(ft float64) float64 {
	return ft + 0.3048
}
