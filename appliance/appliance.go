// Package appliance is the fixed table of household loads the
// dashboard estimates running costs for.
package appliance

import "github.com/mardo/elpriskollen-go/calc"

type Category struct {
	ID       string
	Name     string
	KWhRange string  // shown to the user, e.g. "2 - 4 kWh"
	KWh      float64 // typical consumption used for the estimate
}

var Categories = []Category{
	{ID: "car", Name: "Ladda din elbil", KWhRange: "10 - 100 kWh", KWh: 55},
	{ID: "laundry", Name: "Tvätta & torktumla", KWhRange: "2 - 4 kWh", KWh: 3},
	{ID: "dishwasher", Name: "Diskmaskin", KWhRange: "0.7 - 1.5 kWh", KWh: 1.1},
	{ID: "oven", Name: "Ugn i 30 min", KWhRange: "1.1 kWh", KWh: 1.1},
	{ID: "bath", Name: "Ett bad", KWhRange: "7.5 kWh", KWh: 7.5},
}

// CostAt is the running cost in SEK at a given öre/kWh price.
func (c Category) CostAt(priceOre int) float64 {
	return calc.CostSEK(priceOre, c.KWh)
}

// SavingsAt compares running the load now against an optimized price.
func (c Category) SavingsAt(currentOre, optimizedOre int) float64 {
	return calc.SavingsSEK(currentOre, optimizedOre, c.KWh)
}

func ByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
