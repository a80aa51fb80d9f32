package domain

import "testing"

func TestComputePricingWorkedExample(t *testing.T) {
	p := ComputePricing(100, 0, 1, 9, 2)
	if p.Subtotal != 100 {
		t.Fatalf("subtotal: got %v want 100", p.Subtotal)
	}
	if p.Commission != 11 {
		t.Fatalf("commission: got %v want 11", p.Commission)
	}
	if p.Total != 111 {
		t.Fatalf("total: got %v want 111", p.Total)
	}
	if p.PhotographerEarnings != 89 {
		t.Fatalf("earnings: got %v want 89", p.PhotographerEarnings)
	}
}

func TestComputePricingIdentities(t *testing.T) {
	cases := []struct {
		name          string
		base, rate    float64
		hours         int
		pct, fixed    float64
	}{
		{"base only", 250, 0, 1, 9, 2},
		{"hourly only", 0, 75, 4, 9, 2},
		{"base plus hourly", 150, 120.5, 3, 9, 2},
		{"zero everything", 0, 0, 1, 9, 2},
		{"custom commission", 500, 80, 2, 12.5, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := ComputePricing(c.base, c.rate, c.hours, c.pct, c.fixed)
			if p.Subtotal != c.base+c.rate*float64(c.hours) {
				t.Fatalf("subtotal: got %v", p.Subtotal)
			}
			if p.Total != p.Subtotal+p.Commission {
				t.Fatalf("total != subtotal + commission: %v != %v + %v", p.Total, p.Subtotal, p.Commission)
			}
			if p.PhotographerEarnings != p.Subtotal-p.Commission {
				t.Fatalf("earnings != subtotal - commission: %v != %v - %v", p.PhotographerEarnings, p.Subtotal, p.Commission)
			}
		})
	}
}

func TestComputePricingIdempotent(t *testing.T) {
	a := ComputePricing(199.99, 85.5, 3, 9, 2)
	b := ComputePricing(199.99, 85.5, 3, 9, 2)
	if a != b {
		t.Fatalf("same inputs produced different outputs: %+v vs %+v", a, b)
	}
}
