package exchange

// CreateTransactionInput is the request body for placing an exchange order.
type CreateTransactionInput struct {
	Direction     string  `json:"type" validate:"required,oneof=buy sell"`
	Currency      string  `json:"currency" validate:"required,len=3,uppercase"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"required"`
}

// PreviewInput carries the calculator query parameters.
type PreviewInput struct {
	Direction string  `query:"type" validate:"required,oneof=buy sell"`
	Currency  string  `query:"currency" validate:"required,len=3,uppercase"`
	Amount    float64 `query:"amount" validate:"required,gt=0"`
}
