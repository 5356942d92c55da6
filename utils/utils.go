package utils

import "math"

// Round2 rounds to two decimal places. Applied only where responses are
// built; engine values stay raw.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
