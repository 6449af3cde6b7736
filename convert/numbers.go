package convert

import (
	"math"
)

func TwoDecimals(number float64) float64 {
	return RoundFloat64(number, 2)
}

func RoundFloat64(number float64, decimals int) float64 {
	return math.Round(number*math.Pow10(decimals)) / math.Pow10(decimals)
}

// SekToOre converts a SEK/kWh spot price to whole öre/kWh.
func SekToOre(sek float64) int {
	return int(math.Round(sek * 100))
}

// OreToSek converts an öre/kWh price to SEK/kWh.
func OreToSek(ore int) float64 {
	return float64(ore) / 100
}
