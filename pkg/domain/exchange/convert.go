package exchange

import "math"

// Convert maps an order amount to its counter-amount at the given rate.
//
// Buying foreign currency spends IDR, so the result is a foreign amount
// rounded to cents. Selling surrenders foreign currency for IDR, which is
// handled in whole rupiah. The asymmetry is intentional: IDR amounts stay
// integral, foreign amounts carry two decimals.
func Convert(amount, rate float64, d Direction) (float64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return 0, ErrInvalidRate
	}
	switch d {
	case DirectionBuy:
		return math.Round(amount/rate*100) / 100, nil
	case DirectionSell:
		return math.Round(amount * rate), nil
	default:
		return 0, ErrInvalidDirection
	}
}
