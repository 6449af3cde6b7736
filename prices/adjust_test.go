package prices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mardo/elpriskollen-go/types"
)

func TestAdjustPassThroughWhenDisabled(t *testing.T) {
	series := fullDay(100)
	settings := types.CostSettings{NetworkFee: 25, SupplierMarkup: 5, ShowRealCost: false}

	adjusted := Adjust(series, settings)

	assert.Equal(t, series, adjusted)
}

func TestAdjustAddsSurcharge(t *testing.T) {
	series := fullDay(100)
	settings := types.CostSettings{NetworkFee: 25, SupplierMarkup: 5.4, ShowRealCost: true}

	adjusted := Adjust(series, settings)

	require.Len(t, adjusted, 24)
	assert.Equal(t, 130, adjusted[0].Price, "surcharge rounded to whole öre")
	assert.Equal(t, 100, series[0].Price, "input must not be mutated")
}

func TestAdjustDaySet(t *testing.T) {
	set := types.PriceDaySet{
		Today:    fullDay(100),
		Tomorrow: fullDay(200),
	}
	settings := types.CostSettings{NetworkFee: 10, ShowRealCost: true}

	adjusted := AdjustDaySet(set, settings)

	assert.Equal(t, 110, adjusted.Today[0].Price)
	assert.Equal(t, 210, adjusted.Tomorrow[0].Price)
	assert.Empty(t, adjusted.Yesterday)
}
