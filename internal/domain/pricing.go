package domain

// Pricing is the derived money breakdown for one booking. All values are raw
// float64; rounding for display is the caller's concern.
type Pricing struct {
	Subtotal             float64 `json:"subtotal"`
	Commission           float64 `json:"commission"`
	Total                float64 `json:"total"`
	PhotographerEarnings float64 `json:"photographer_earnings"`
}

// ComputePricing derives subtotal, platform commission, total and
// photographer earnings from the price inputs. Order matters: subtotal feeds
// commission, both feed total and earnings.
//
//	subtotal   = basePrice + hourlyRate*durationHours
//	commission = subtotal*commissionPercentage/100 + commissionFixed
//	total      = subtotal + commission
//	earnings   = subtotal - commission
//
// Pure and total over non-negative inputs with durationHours >= 1; range
// checks happen at the binding layer.
func ComputePricing(basePrice, hourlyRate float64, durationHours int, commissionPercentage, commissionFixed float64) Pricing {
	subtotal := basePrice + hourlyRate*float64(durationHours)
	commission := subtotal*commissionPercentage/100 + commissionFixed
	return Pricing{
		Subtotal:             subtotal,
		Commission:           commission,
		Total:                subtotal + commission,
		PhotographerEarnings: subtotal - commission,
	}
}
