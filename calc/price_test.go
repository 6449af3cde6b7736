package calc

import "testing"

func TestCostSEK(t *testing.T) {
	tests := []struct {
		name     string
		priceOre int
		kWh      float64
		want     float64
	}{
		{"one kWh at one SEK", 100, 1, 1.00},
		{"dishwasher run", 100, 1.1, 1.1},
		{"zero price", 0, 55, 0},
		{"zero consumption", 150, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CostSEK(tt.priceOre, tt.kWh); got != tt.want {
				t.Errorf("CostSEK(%d, %v) = %v, want %v", tt.priceOre, tt.kWh, got, tt.want)
			}
		})
	}
}

func TestSavingsSEK(t *testing.T) {
	tests := []struct {
		name         string
		referenceOre int
		optimizedOre int
		kWh          float64
		want         float64
	}{
		{"ev charge at off-peak", 150, 50, 40, 40.00},
		{"small load", 120, 80, 1.1, 0.44},
		{"no difference", 100, 100, 3, 0},
		{"optimized is worse", 50, 150, 40, -40.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SavingsSEK(tt.referenceOre, tt.optimizedOre, tt.kWh); got != tt.want {
				t.Errorf("SavingsSEK(%d, %d, %v) = %v, want %v",
					tt.referenceOre, tt.optimizedOre, tt.kWh, got, tt.want)
			}
		})
	}
}
