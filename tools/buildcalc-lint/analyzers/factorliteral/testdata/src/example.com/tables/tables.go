package tables

func squareFeet(sqm float64) float64 {
	return sqm / (0.3048 * 0.3048)
}
