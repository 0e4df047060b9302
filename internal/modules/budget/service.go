// README: Budget service converts request budgets into the settlement currency.
package budget

import (
	"math"

	"voyago/internal/types"
)

// Indicative spend shares used for the breakdown. Remainder after the three
// fixed shares goes to activities so the categories always sum to the total.
const (
	accommodationShare = 0.40
	foodShare          = 0.25
	transportShare     = 0.20
)

type Service struct {
	rate float64
}

// NewService returns a Service using the given fixed conversion rate.
// The rate is configuration loaded once at startup, not a live lookup.
func NewService(rate float64) *Service {
	return &Service{rate: rate}
}

// Normalize converts a budget in the source currency into whole settlement
// units, rounding to the nearest unit. Normalize(100) with rate 83.5 is 8350.
func (s *Service) Normalize(amount float64) types.Money {
	return types.Money{
		Amount:   int64(math.Round(amount * s.rate)),
		Currency: SettlementCurrency,
	}
}

// Estimate normalizes the budget and derives the category breakdown.
func (s *Service) Estimate(amount float64) Estimate {
	total := s.Normalize(amount)
	accommodation := int64(math.Round(float64(total.Amount) * accommodationShare))
	food := int64(math.Round(float64(total.Amount) * foodShare))
	transport := int64(math.Round(float64(total.Amount) * transportShare))
	return Estimate{
		Total: total,
		Breakdown: Breakdown{
			Accommodation: accommodation,
			Food:          food,
			Transport:     transport,
			Activities:    total.Amount - accommodation - food - transport,
		},
	}
}
