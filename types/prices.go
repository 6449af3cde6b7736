package types

import (
	"context"
	"time"
)

// VatRate is the Swedish VAT multiplier applied to spot prices.
const VatRate = 1.25

// HourlyPrice is one hour of a day's price series.
// Price is in öre/kWh including VAT.
type HourlyPrice struct {
	Hour      int    `json:"hour"`
	Price     int    `json:"price"`
	Timestamp string `json:"timestamp"` // ISO-8601 start of the hour
}

// PriceDaySet holds the price series the dashboard works with.
// Tomorrow is nil until the day-ahead auction result is published
// (normally early afternoon).
type PriceDaySet struct {
	Today       []HourlyPrice `json:"today"`
	Yesterday   []HourlyPrice `json:"yesterday"`
	Tomorrow    []HourlyPrice `json:"tomorrow,omitempty"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

func (s PriceDaySet) HasTomorrow() bool {
	return len(s.Tomorrow) > 0
}

// RollingHourEntry is one slot in the 24-hour-forward view anchored
// at the current hour. OriginalHour is the hour-of-day the entry had
// in its source series.
type RollingHourEntry struct {
	HourlyPrice
	DisplayLabel string `json:"displayLabel"`
	IsNextDay    bool   `json:"isNextDay"`
	OriginalHour int    `json:"originalHour"`
}

// Window is the result of a cheapest-window search. StartIndex and
// EndIndex (inclusive) are hour-of-day values for single-day searches
// and plain positions for searches over a rolling or combined
// sequence. The two addressing schemes must not be mixed by callers.
type Window struct {
	StartIndex      int  `json:"startIndex"`
	EndIndex        int  `json:"endIndex"`
	AveragePrice    int  `json:"averagePrice"` // öre/kWh
	CrossesMidnight bool `json:"crossesMidnight,omitempty"`
}

// CostSettings is the optional additive tariff the presentation layer
// owns. Fees are in öre/kWh. When ShowRealCost is false prices pass
// through unchanged.
type CostSettings struct {
	NetworkFee     float64 `json:"networkFee"`
	SupplierMarkup float64 `json:"supplierMarkup"`
	ShowRealCost   bool    `json:"showRealCost"`
}

// Surcharge is the total addition applied to every price point.
func (c CostSettings) Surcharge() float64 {
	if !c.ShowRealCost {
		return 0
	}
	return c.NetworkFee + c.SupplierMarkup
}

// RawSpotEntry is one entry from an upstream feed, SEK/kWh excluding
// VAT. Feeds may deliver more than one entry per hour (15-minute
// market resolution).
type RawSpotEntry struct {
	TimeStart time.Time
	SEKPerKWh float64
}

// PriceProvider fetches the raw spot entries for one delivery day.
// An empty slice means the day is not published yet, not an error.
type PriceProvider interface {
	GetDayPrices(ctx context.Context, day time.Time) ([]RawSpotEntry, error)
}
