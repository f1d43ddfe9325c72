// Package rates produces the demo exchange-rate board: a fixed catalog of
// currencies against IDR with a small random perturbation applied on every
// read to simulate market movement.
package rates

import (
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/dolarasia/dolarasia/pkg/domain/exchange"
)

// JitterSpread is the width of the multiplicative perturbation band. Each
// price is scaled by a factor drawn uniformly from
// [1-JitterSpread/2, 1+JitterSpread/2], i.e. ±0.5% around the base.
const JitterSpread = 0.01

// catalog is the fixed rate board. Order is presentation order.
var catalog = []exchange.Rate{
	{Code: "USD", Name: "US Dollar", Buy: 15850, Sell: 15750, Flag: "🇺🇸"},
	{Code: "EUR", Name: "Euro", Buy: 17200, Sell: 17050, Flag: "🇪🇺"},
	{Code: "GBP", Name: "British Pound", Buy: 19800, Sell: 19600, Flag: "🇬🇧"},
	{Code: "JPY", Name: "Japanese Yen", Buy: 106, Sell: 104, Flag: "🇯🇵"},
	{Code: "AUD", Name: "Australian Dollar", Buy: 10450, Sell: 10300, Flag: "🇦🇺"},
	{Code: "SGD", Name: "Singapore Dollar", Buy: 11750, Sell: 11600, Flag: "🇸🇬"},
}

// Service hands out jittered copies of the catalog. No external market data
// is involved; the numbers are purely illustrative.
type Service struct {
	logger *slog.Logger
	rand   func() float64 // uniform draw from [0,1)
}

// Option customizes a Service.
type Option func(*Service)

// WithRand replaces the uniform random source, letting tests pin the jitter.
func WithRand(r func() float64) Option {
	return func(s *Service) { s.rand = r }
}

// New creates a rate service.
func New(logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{logger: logger, rand: rand.Float64}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the full board with fresh jitter on every call. Buy and sell
// prices draw independently; there is no memory of prior calls.
func (s *Service) List() []exchange.Rate {
	out := make([]exchange.Rate, len(catalog))
	for i, r := range catalog {
		r.Buy = s.jitter(r.Buy)
		r.Sell = s.jitter(r.Sell)
		out[i] = r
	}
	return out
}

// Get returns one jittered rate by code, or exchange.ErrUnknownCurrency.
func (s *Service) Get(code string) (*exchange.Rate, error) {
	for _, r := range catalog {
		if r.Code == code {
			r.Buy = s.jitter(r.Buy)
			r.Sell = s.jitter(r.Sell)
			return &r, nil
		}
	}
	return nil, exchange.ErrUnknownCurrency
}

// Codes returns the catalog's currency codes in board order.
func (s *Service) Codes() []string {
	codes := make([]string, len(catalog))
	for i, r := range catalog {
		codes[i] = r.Code
	}
	return codes
}

func (s *Service) jitter(price float64) float64 {
	return math.Round(price * (1 - JitterSpread/2 + s.rand()*JitterSpread))
}
