package domain

import "math"

// AggregateRatings reduces a set of 1–5 star ratings to a mean (rounded to
// two decimal places) and a count. An empty set yields (0, 0): a
// photographer with no visible reviews displays a zero rating, not "no
// rating".
//
// Callers always pass the full visible-review set for one photographer.
// Incremental running averages are deliberately not supported; deletes and
// visibility flips make them error-prone.
func AggregateRatings(ratings []int) (average float64, count int) {
	if len(ratings) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*100) / 100, len(ratings)
}
