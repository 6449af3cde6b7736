package prices

import (
	"math"

	"github.com/mardo/elpriskollen-go/types"
)

// Adjust applies the additive tariff (network fee + supplier markup)
// to every price point. With ShowRealCost off the input is returned
// as-is. The input slice is never mutated.
func Adjust(series []types.HourlyPrice, settings types.CostSettings) []types.HourlyPrice {
	surcharge := settings.Surcharge()
	if surcharge == 0 {
		return series
	}

	adjusted := make([]types.HourlyPrice, len(series))
	for i, p := range series {
		p.Price += int(math.Round(surcharge))
		adjusted[i] = p
	}
	return adjusted
}

// AdjustDaySet applies Adjust to every series of a day set.
func AdjustDaySet(set types.PriceDaySet, settings types.CostSettings) types.PriceDaySet {
	if settings.Surcharge() == 0 {
		return set
	}
	return types.PriceDaySet{
		Today:       Adjust(set.Today, settings),
		Yesterday:   Adjust(set.Yesterday, settings),
		Tomorrow:    Adjust(set.Tomorrow, settings),
		LastUpdated: set.LastUpdated,
	}
}
