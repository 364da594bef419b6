package service

import (
	"fmt"
	"math"

	"tiered-loan/domain"
)

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidatePlan checks the inputs ComputeSchedule accepts. Every failure
// wraps ErrInvalidInput.
func ValidatePlan(principal float64, tiers []domain.RateTier) error {
	if !isFinite(principal) || principal <= 0 {
		return fmt.Errorf("%w: monto inválido (%v)", ErrInvalidInput, principal)
	}
	if len(tiers) == 0 {
		return fmt.Errorf("%w: no se proporcionaron tramos", ErrInvalidInput)
	}
	// la suma de meses de todos los tramos debe caber en un int
	maxYears := math.MaxInt / monthsPerYear / len(tiers)
	for i, tier := range tiers {
		if tier.Years < MinTierYears {
			return fmt.Errorf("%w: tramo %d: plazo inválido (%d años)", ErrInvalidInput, i+1, tier.Years)
		}
		if tier.Years > maxYears {
			return fmt.Errorf("%w: tramo %d: plazo fuera de rango (%d años)", ErrInvalidInput, i+1, tier.Years)
		}
		if !isFinite(tier.Rate) || tier.Rate < 0 {
			return fmt.Errorf("%w: tramo %d: tasa inválida (%v)", ErrInvalidInput, i+1, tier.Rate)
		}
		if !isFinite(tier.LumpSum) || tier.LumpSum < 0 {
			return fmt.Errorf("%w: tramo %d: pago anticipado inválido (%v)", ErrInvalidInput, i+1, tier.LumpSum)
		}
		if !isFinite(tier.Cashback) || tier.Cashback < 0 {
			return fmt.Errorf("%w: tramo %d: cashback inválido (%v)", ErrInvalidInput, i+1, tier.Cashback)
		}
	}
	return nil
}

// installment is the level payment that amortizes principal over months
// at monthlyRate. A zero rate, or one too small to move (1+r)^n off 1,
// amortizes linearly.
func installment(principal, monthlyRate float64, months int) float64 {
	growth := math.Pow(1+monthlyRate, float64(months))
	if monthlyRate == 0 || growth == 1 {
		return principal / float64(months)
	}
	return principal * monthlyRate * growth / (growth - 1)
}

// ComputeSchedule amortizes principal across tiers in order. At every tier
// boundary the lump sum is deducted and the installment is recomputed from
// the outstanding balance over all the months left in the loan, not just the
// tier's own months. Reported amounts are rounded; the running balance keeps
// full precision from one tier to the next.
//
// A lump sum larger than the outstanding balance is not clamped: the
// balance, and from then on the installment, go negative and are reported
// as such.
func ComputeSchedule(principal float64, tiers []domain.RateTier) ([]domain.TierResult, error) {
	if err := ValidatePlan(principal, tiers); err != nil {
		return nil, err
	}

	remaining := 0
	for _, tier := range tiers {
		remaining += tier.Years * monthsPerYear
	}

	return amortize(principal, tiers, remaining)
}

// amortize walks the tiers month by month starting with remaining months
// left in the loan. The counter must land on zero after the last tier.
func amortize(principal float64, tiers []domain.RateTier, remaining int) ([]domain.TierResult, error) {
	results := make([]domain.TierResult, 0, len(tiers))
	startYear := 0

	for i, tier := range tiers {
		principal -= tier.LumpSum

		monthlyRate := tier.Rate / (monthsPerYear * 100)
		payment := installment(principal, monthlyRate, remaining)
		if !isFinite(payment) {
			return nil, fmt.Errorf("%w: tramo %d: la cuota no es representable", ErrInvalidInput, i+1)
		}

		months := tier.Years * monthsPerYear
		totalPaid := 0.0
		interestPaid := 0.0

		for m := 0; m < months; m++ {
			interest := principal * monthlyRate
			principal -= payment - interest
			interestPaid += interest
			totalPaid += payment
			remaining--
		}

		results = append(results, domain.TierResult{
			PeriodLabel:   domain.PeriodLabel(startYear+1, startYear+tier.Years),
			StartYear:     startYear + 1,
			EndYear:       startYear + tier.Years,
			Months:        months,
			Installment:   roundTo2Decimals(payment),
			TotalPaid:     roundTo2Decimals(totalPaid),
			InterestPaid:  roundTo2Decimals(interestPaid),
			EndingBalance: roundTo2Decimals(principal),
			Cashback:      roundTo2Decimals(tier.Cashback),
		})

		startYear += tier.Years
	}

	if remaining != 0 {
		return nil, fmt.Errorf("%w: quedan %d meses", ErrScheduleDrift, remaining)
	}

	return results, nil
}

// ComputePlan runs ComputeSchedule on a LoanPlan.
func ComputePlan(plan domain.LoanPlan) ([]domain.TierResult, error) {
	return ComputeSchedule(plan.Principal, plan.Tiers)
}
