package domain

import "testing"

func TestAggregateRatingsEmpty(t *testing.T) {
	avg, count := AggregateRatings(nil)
	if avg != 0 || count != 0 {
		t.Fatalf("empty set: got (%v, %d), want (0, 0)", avg, count)
	}
}

func TestAggregateRatings(t *testing.T) {
	cases := []struct {
		name    string
		ratings []int
		avg     float64
		count   int
	}{
		{"single", []int{5}, 5, 1},
		{"three reviews", []int{5, 4, 3}, 4, 3},
		{"rounds to two decimals", []int{5, 4}, 4.5, 2},
		{"repeating decimal", []int{5, 5, 4}, 4.67, 3},
		{"all ones", []int{1, 1, 1, 1}, 1, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			avg, count := AggregateRatings(c.ratings)
			if avg != c.avg || count != c.count {
				t.Fatalf("got (%v, %d), want (%v, %d)", avg, count, c.avg, c.count)
			}
		})
	}
}
