package main

import (
	"math"

	log "github.com/sirupsen/logrus"
)

// DefaultOutlierDeviation excludes prices more than 50% away from the mean
const DefaultOutlierDeviation = 0.5

// RemoveOutliers keeps prices whose total deviates from the mean of all totals
// by strictly less than deviation * mean. The mean is computed once, on the
// unfiltered list.
func RemoveOutliers(prices []Price, deviation float64) []Price {
	if len(prices) == 0 {
		return []Price{}
	}

	var sum float64
	for _, price := range prices {
		sum += price.Total()
	}
	mean := sum / float64(len(prices))
	bound := deviation * mean

	kept := make([]Price, 0, len(prices))
	for _, price := range prices {
		if math.Abs(mean-price.Total()) < bound {
			kept = append(kept, price)
		} else {
			log.Debugf("price %s excluded because it is outside of mean %.2f +/- %.2f", price, mean, bound)
		}
	}
	return kept
}
