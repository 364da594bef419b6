package domain

import "fmt"

// RateTier is a contiguous span of whole years sharing one annual rate.
// LumpSum is prepaid against the principal when the tier starts and
// Cashback is a reporting-only credit; both default to 0.
type RateTier struct {
	Rate     float64 `json:"rate" yaml:"rate"`
	Years    int     `json:"years" yaml:"years"`
	LumpSum  float64 `json:"lump_sum,omitempty" yaml:"lump_sum,omitempty"`
	Cashback float64 `json:"cashback,omitempty" yaml:"cashback,omitempty"`
}

// TierOption sets an optional field of a RateTier.
type TierOption func(*RateTier)

// WithLumpSum sets the prepayment applied at the start of the tier.
func WithLumpSum(amount float64) TierOption {
	return func(t *RateTier) { t.LumpSum = amount }
}

// WithCashback sets the credit reported for the tier.
func WithCashback(amount float64) TierOption {
	return func(t *RateTier) { t.Cashback = amount }
}

// NewRateTier builds a tier with LumpSum and Cashback resolved to 0 unless
// an option sets them.
func NewRateTier(rate float64, years int, opts ...TierOption) RateTier {
	t := RateTier{Rate: rate, Years: years}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// String renders the tier the way scenario headers describe it,
// e.g. "8% for 5 years".
func (t RateTier) String() string {
	unit := "years"
	if t.Years == 1 {
		unit = "year"
	}
	return fmt.Sprintf("%g%% for %d %s", t.Rate, t.Years, unit)
}

type LoanPlan struct {
	Principal float64    `json:"principal" yaml:"principal"`
	Tiers     []RateTier `json:"tiers" yaml:"tiers"`
}

// TotalYears is the loan term implied by the tiers.
func (p LoanPlan) TotalYears() int {
	years := 0
	for _, t := range p.Tiers {
		years += t.Years
	}
	return years
}

func (p LoanPlan) TotalMonths() int {
	return p.TotalYears() * 12
}

// TierResult summarizes one tier of an amortization schedule. Monetary
// fields are rounded to cents.
type TierResult struct {
	PeriodLabel   string  `json:"period"`
	StartYear     int     `json:"start_year"`
	EndYear       int     `json:"end_year"`
	Months        int     `json:"months"`
	Installment   float64 `json:"installment"`
	TotalPaid     float64 `json:"total_paid"`
	InterestPaid  float64 `json:"interest_paid"`
	EndingBalance float64 `json:"ending_balance"`
	Cashback      float64 `json:"cashback"`
}

// PeriodLabel formats the 1-based year span of a tier.
func PeriodLabel(startYear, endYear int) string {
	return fmt.Sprintf("Year %d to %d", startYear, endYear)
}
