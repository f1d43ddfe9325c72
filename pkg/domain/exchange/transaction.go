package exchange

import (
	"time"

	"github.com/google/uuid"
)

// Direction says which way the customer is exchanging: buy acquires foreign
// currency with IDR, sell surrenders foreign currency for IDR.
type Direction string

const (
	DirectionBuy  Direction = "buy"
	DirectionSell Direction = "sell"
)

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == DirectionBuy || d == DirectionSell
}

// Status is the lifecycle state of a transaction. Every transaction is
// created pending; nothing in this system transitions it afterwards.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

// Transaction is one append-only exchange record. Total is always
// Convert(Amount, Rate, Direction); amounts are IDR for buy orders and
// foreign units for sell orders.
type Transaction struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	Direction     Direction `json:"type"`
	FromCurrency  string    `json:"fromCurrency"`
	ToCurrency    string    `json:"toCurrency"`
	Amount        float64   `json:"amount"`
	Rate          float64   `json:"exchangeRate"`
	Total         float64   `json:"totalAmount"`
	Status        Status    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}
