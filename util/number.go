package util

import (
	"fmt"
	"strconv"
)

// RoundToTwo rounds a provider price to two decimals for display.
func RoundToTwo(n float64) float64 {
	val, _ := strconv.ParseFloat(fmt.Sprintf("%.2f", n), 64)
	return val
}
