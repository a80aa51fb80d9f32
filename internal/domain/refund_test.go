package domain

import "testing"

func TestEvaluateRefundTiers(t *testing.T) {
	cases := []struct {
		days    int
		tier    string
		percent float64
	}{
		{30, TierFullRefund, 100},
		{8, TierFullRefund, 100},
		{7, TierPartialRefund75, 75},
		{4, TierPartialRefund75, 75},
		{3, TierPartialRefund50, 50},
		{2, TierPartialRefund50, 50},
		{1, TierNoRefund, 0},
		{0, TierNoRefund, 0},
		{-5, TierNoRefund, 0},
	}
	for _, c := range cases {
		tier, pct := EvaluateRefund(c.days)
		if tier != c.tier || pct != c.percent {
			t.Fatalf("EvaluateRefund(%d): got (%s, %v), want (%s, %v)", c.days, tier, pct, c.tier, c.percent)
		}
	}
}

func TestRefundAmount(t *testing.T) {
	if got := RefundAmount(200, 75); got != 150 {
		t.Fatalf("RefundAmount(200, 75): got %v want 150", got)
	}
	if got := RefundAmount(333, 0); got != 0 {
		t.Fatalf("RefundAmount(333, 0): got %v want 0", got)
	}
}
