package exchange

import "errors"

var (
	// ErrInvalidAmount is returned when an amount is non-finite or not
	// strictly positive.
	ErrInvalidAmount = errors.New("amount must be a positive number")
	// ErrInvalidRate is returned when a rate is non-finite or not strictly
	// positive.
	ErrInvalidRate = errors.New("rate must be a positive number")
	// ErrInvalidDirection is returned for a direction other than buy or sell.
	ErrInvalidDirection = errors.New("direction must be buy or sell")
	// ErrUnknownCurrency is returned when a currency code is not in the
	// rate catalog.
	ErrUnknownCurrency = errors.New("currency not found in rate catalog")
	// ErrRateUnavailable is returned when a calculation is attempted before
	// a rate catalog has been produced.
	ErrRateUnavailable = errors.New("exchange rates unavailable")
	// ErrAmountBelowMinimum is returned when an order is under the fixed
	// minimum for its direction.
	ErrAmountBelowMinimum = errors.New("amount below transaction minimum")
)
