// Package nordpool is the secondary price provider, reading the Nord
// Pool data portal directly. Used when elprisetjustnu.se is down.
package nordpool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/mardo/elpriskollen-go/types"
)

type Nordpool struct {
	area string
}

func New(area string) Nordpool {
	return Nordpool{area: area}
}

// GetDayPrices fetches the day-ahead auction result for one delivery
// day. 404 means the day is not published yet.
func (n Nordpool) GetDayPrices(ctx context.Context, day time.Time) ([]types.RawSpotEntry, error) {
	url := fmt.Sprintf("%s/api/DayAheadPrices?date=%s&market=DayAhead&deliveryArea=%s&currency=SEK",
		"https://dataportal-api.nordpoolgroup.com",
		day.Format("2006-01-02"),
		n.area)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []types.RawSpotEntry{}, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var data dayAheadResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	entries := make([]types.RawSpotEntry, 0, len(data.MultiAreaEntries))
	for _, entry := range data.MultiAreaEntries {
		if slices.ContainsFunc(entries, func(e types.RawSpotEntry) bool {
			return e.TimeStart.Equal(entry.DeliveryStart)
		}) {
			continue
		}
		price, ok := entry.EntryPerArea[n.area]
		if !ok {
			continue
		}
		entries = append(entries, types.RawSpotEntry{
			TimeStart: entry.DeliveryStart,
			SEKPerKWh: price / 1e3, // portal prices are SEK/MWh
		})
	}

	return entries, nil
}
