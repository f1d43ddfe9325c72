// Package exchange implements order handling over the rate board and the
// transaction ledger: validation, conversion, recording, history views, and
// admin aggregates.
package exchange

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domainexchange "github.com/dolarasia/dolarasia/pkg/domain/exchange"
	"github.com/dolarasia/dolarasia/pkg/repository"
	"github.com/dolarasia/dolarasia/pkg/service/rates"
	"github.com/google/uuid"
)

// Fixed per-direction order minimums: 50,000 IDR to buy, 10 foreign units
// to sell.
const (
	MinBuyIDR     = 50000
	MinSellAmount = 10
)

// IDRCode is the local currency every order settles against.
const IDRCode = "IDR"

// CreateTransactionInput is the validated payload for one exchange order.
type CreateTransactionInput struct {
	Direction     domainexchange.Direction
	Currency      string
	Amount        float64
	PaymentMethod string
}

// Quote is the result of a conversion preview: the live rate applied and the
// counter-amount the customer would receive.
type Quote struct {
	Direction    domainexchange.Direction `json:"type"`
	Currency     string                   `json:"currency"`
	Amount       float64                  `json:"amount"`
	Rate         float64                  `json:"exchangeRate"`
	Total        float64                  `json:"totalAmount"`
	FromCurrency string                   `json:"fromCurrency"`
	ToCurrency   string                   `json:"toCurrency"`
}

// Stats is the admin dashboard aggregate.
type Stats struct {
	TotalUsers          int     `json:"totalUsers"`
	TotalTransactions   int     `json:"totalTransactions"`
	PendingTransactions int     `json:"pendingTransactions"`
	VolumeIDR           float64 `json:"volumeIdr"`
}

// Service wires the rate board to the ledger.
type Service struct {
	rates  *rates.Service
	ledger repository.Transaction
	users  repository.User
	logger *slog.Logger
}

// New creates an exchange service.
func New(
	rateSvc *rates.Service,
	ledger repository.Transaction,
	users repository.User,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{rates: rateSvc, ledger: ledger, users: users, logger: logger}
}

// Preview resolves a live rate and converts without recording anything.
func (s *Service) Preview(input CreateTransactionInput) (*Quote, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}
	return s.quote(input)
}

// CreateTransaction validates the order, applies the live rate, and appends
// a pending record to the ledger on behalf of userID.
func (s *Service) CreateTransaction(
	ctx context.Context,
	userID uuid.UUID,
	input CreateTransactionInput,
) (*domainexchange.Transaction, error) {
	log := s.logger.With("context", "CreateTransaction", "userID", userID)
	if err := s.validate(input); err != nil {
		log.Warn("order rejected", "error", err)
		return nil, err
	}
	q, err := s.quote(input)
	if err != nil {
		log.Warn("order rejected", "error", err)
		return nil, err
	}
	tx := &domainexchange.Transaction{
		ID:            uuid.New(),
		UserID:        userID,
		Direction:     q.Direction,
		FromCurrency:  q.FromCurrency,
		ToCurrency:    q.ToCurrency,
		Amount:        q.Amount,
		Rate:          q.Rate,
		Total:         q.Total,
		Status:        domainexchange.StatusPending,
		PaymentMethod: input.PaymentMethod,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.ledger.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("record transaction: %w", err)
	}
	log.Info("transaction recorded",
		"txID", tx.ID,
		"direction", tx.Direction,
		"currency", input.Currency,
		"amount", tx.Amount,
	)
	return tx, nil
}

// ListByUser returns the user's history, newest first.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domainexchange.Transaction, error) {
	return s.ledger.ListByUser(ctx, userID)
}

// ListAll returns the full ledger, newest first. Admin view.
func (s *Service) ListAll(ctx context.Context) ([]*domainexchange.Transaction, error) {
	return s.ledger.ListAll(ctx)
}

// GetStats aggregates the admin dashboard numbers. IDR volume counts the
// rupiah leg of each order: the amount spent on buys, the total received on
// sells.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.ledger.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stats := &Stats{TotalUsers: len(users), TotalTransactions: len(txs)}
	for _, tx := range txs {
		if tx.Status == domainexchange.StatusPending {
			stats.PendingTransactions++
		}
		switch tx.Direction {
		case domainexchange.DirectionBuy:
			stats.VolumeIDR += tx.Amount
		case domainexchange.DirectionSell:
			stats.VolumeIDR += tx.Total
		}
	}
	return stats, nil
}

func (s *Service) validate(input CreateTransactionInput) error {
	if !input.Direction.Valid() {
		return domainexchange.ErrInvalidDirection
	}
	if input.Amount <= 0 {
		return domainexchange.ErrInvalidAmount
	}
	switch input.Direction {
	case domainexchange.DirectionBuy:
		if input.Amount < MinBuyIDR {
			return domainexchange.ErrAmountBelowMinimum
		}
	case domainexchange.DirectionSell:
		if input.Amount < MinSellAmount {
			return domainexchange.ErrAmountBelowMinimum
		}
	}
	return nil
}

func (s *Service) quote(input CreateTransactionInput) (*Quote, error) {
	if s.rates == nil {
		return nil, domainexchange.ErrRateUnavailable
	}
	rate, err := s.rates.Get(input.Currency)
	if err != nil {
		return nil, err
	}
	price, err := rate.Price(input.Direction)
	if err != nil {
		return nil, err
	}
	total, err := domainexchange.Convert(input.Amount, price, input.Direction)
	if err != nil {
		return nil, err
	}
	q := &Quote{
		Direction: input.Direction,
		Currency:  input.Currency,
		Amount:    input.Amount,
		Rate:      price,
		Total:     total,
	}
	if input.Direction == domainexchange.DirectionBuy {
		q.FromCurrency, q.ToCurrency = IDRCode, input.Currency
	} else {
		q.FromCurrency, q.ToCurrency = input.Currency, IDRCode
	}
	return q, nil
}
