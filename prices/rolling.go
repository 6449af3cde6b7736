package prices

import (
	"fmt"

	"github.com/mardo/elpriskollen-go/types"
)

// RollingView stitches the remaining hours of today together with the
// available hours of tomorrow into one chronological sequence anchored
// at currentHour. Index 0 is the current hour. Without tomorrow's
// prices the result is just "remaining hours of today", which is a
// valid, shorter-than-24 view.
func RollingView(today, tomorrow []types.HourlyPrice, currentHour int) []types.RollingHourEntry {
	view := make([]types.RollingHourEntry, 0, 24)

	for _, p := range today {
		if p.Hour < currentHour {
			continue
		}
		view = append(view, types.RollingHourEntry{
			HourlyPrice:  p,
			DisplayLabel: fmt.Sprintf("%02d:00", p.Hour),
			IsNextDay:    false,
			OriginalHour: p.Hour,
		})
	}

	for _, p := range tomorrow {
		if p.Hour >= currentHour {
			continue
		}
		view = append(view, types.RollingHourEntry{
			HourlyPrice:  p,
			DisplayLabel: fmt.Sprintf("%02d:00 (+1)", p.Hour),
			IsNextDay:    true,
			OriginalHour: p.Hour,
		})
	}

	return view
}
