package calc

import (
	"math"

	"github.com/mardo/elpriskollen-go/convert"
)

// CostSEK is the cost in SEK of using kWh at a given öre/kWh price.
func CostSEK(priceOre int, kWh float64) float64 {
	return convert.TwoDecimals(float64(priceOre) / 100 * kWh)
}

// SavingsSEK compares running a load at a reference price against an
// optimized price, in SEK. Negative when the "optimized" price is in
// fact higher; callers must not clamp that away.
func SavingsSEK(referenceOre, optimizedOre int, kWh float64) float64 {
	return math.Round(float64(referenceOre-optimizedOre)*kWh) / 100
}
