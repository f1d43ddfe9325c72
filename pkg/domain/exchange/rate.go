// Package exchange defines currency rates, buy/sell transactions, and the
// conversion arithmetic between IDR and foreign currencies.
package exchange

// Rate is one row of the exchange board: a foreign currency quoted against
// IDR. Buy is the price a customer pays per unit; Sell is the price the
// counter pays when the customer surrenders foreign currency.
type Rate struct {
	Code string  `json:"currency"`
	Name string  `json:"currencyName"`
	Buy  float64 `json:"buyRate"`
	Sell float64 `json:"sellRate"`
	Flag string  `json:"flag"`
}

// Price returns the applicable side of the quote for a direction.
func (r Rate) Price(d Direction) (float64, error) {
	switch d {
	case DirectionBuy:
		return r.Buy, nil
	case DirectionSell:
		return r.Sell, nil
	default:
		return 0, ErrInvalidDirection
	}
}
