package model

import "math"

// Stats holds aggregate figures over the product catalog.
type Stats struct {
	TotalProducts int            `json:"totalProducts"`
	InStock       int            `json:"inStock"`
	OutOfStock    int            `json:"outOfStock"`
	Categories    map[string]int `json:"categories"`
	AveragePrice  float64        `json:"averagePrice"`
}

// ComputeStats aggregates the given products.
func ComputeStats(products []Product) Stats {
	stats := Stats{
		TotalProducts: len(products),
		Categories:    map[string]int{},
	}

	var sum float64
	for _, p := range products {
		if p.InStock {
			stats.InStock++
		} else {
			stats.OutOfStock++
		}
		stats.Categories[p.Category]++
		sum += p.Price
	}

	if len(products) > 0 {
		stats.AveragePrice = roundTo2(sum / float64(len(products)))
	}
	return stats
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
