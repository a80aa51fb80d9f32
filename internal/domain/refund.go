package domain

// Refund policy tiers, keyed by how many days remain before the booking date.
const (
	TierFullRefund      = "full_refund"
	TierPartialRefund75 = "partial_refund_75"
	TierPartialRefund50 = "partial_refund_50"
	TierNoRefund        = "no_refund"
)

// EvaluateRefund maps days-until-booking to a policy tier and percentage.
//
//	> 7 days   full_refund        100%
//	4–7 days   partial_refund_75   75%
//	2–3 days   partial_refund_50   50%
//	< 2 days   no_refund            0%
//
// Negative values (booking already past) fall into no_refund. Boundaries are
// inclusive as listed: exactly 7 is 75%, exactly 2 is 50%.
func EvaluateRefund(daysUntilBooking int) (tier string, percentage float64) {
	switch {
	case daysUntilBooking > 7:
		return TierFullRefund, 100
	case daysUntilBooking >= 4:
		return TierPartialRefund75, 75
	case daysUntilBooking >= 2:
		return TierPartialRefund50, 50
	default:
		return TierNoRefund, 0
	}
}

// RefundAmount applies a policy percentage to a payment amount.
func RefundAmount(paymentAmount, percentage float64) float64 {
	return paymentAmount * percentage / 100
}
