package chartjs

import "math"

const (
	ColorBlue  = "#2196f3d4"
	ColorGreen = "#4caf50d4"
)

// NewPriceChart builds a line chart skeleton for a price sequence.
// The label count follows the sequence, which may be shorter than 24
// hours when tomorrow's prices are not published yet. Dataset 0 is
// the price curve, dataset 1 the highlighted cheapest window.
func NewPriceChart(title string, labels []string) Chart {
	n := len(labels)

	chart := Chart{
		Type: "line",
		Data: ChartData{
			Labels: labels,
			Datasets: []ChartDataset{
				{
					Label:       "Pris",
					Data:        make([]*float64, n),
					BorderWidth: 2,
					Tension:     0.4,
					Fill:        false,
					BorderColor: ColorBlue,
					YAxisID:     "YAxis1",
				},
				{
					Label:           "Billigaste fönstret",
					Data:            make([]*float64, n),
					BorderWidth:     2,
					Tension:         0.4,
					Fill:            true,
					BorderColor:     ColorGreen,
					BackgroundColor: ColorGreen,
					YAxisID:         "YAxis1",
				},
			},
		},
		Options: ChartOptions{
			Responsive: true,
			Plugins: ChartPlugins{
				Legend: ChartLegend{Display: true},
				Title:  ChartTitle{Display: title != "", Text: title},
			},
			Scales: map[string]ChartScale{
				"YAxis1": {
					Type:     "linear",
					Display:  true,
					Position: "left",
					Title:    ChartScaleTitle{Display: true, Text: "kr/kWh"},
				},
			},
		},
	}

	return chart
}

func (s ChartScale) WithTitle(title string) ChartScale {
	s.Title = ChartScaleTitle{Display: true, Text: title}
	return s
}

func (s ChartScale) WithMinAndMax(min, max float64) ChartScale {
	s.Min = &min
	s.Max = &max
	return s
}

// FixedFloat64 rounds to the given number of decimals, for compact
// chart payloads.
func FixedFloat64(value float64, decimals int) *float64 {
	factor := math.Pow10(decimals)
	rounded := math.Round(value*factor) / factor
	return &rounded
}
