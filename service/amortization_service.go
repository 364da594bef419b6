package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"tiered-loan/domain"
	"tiered-loan/repository"
)

type AmortizationService struct {
	cache    repository.CacheRepository
	reporter *Reporter
	log      *logrus.Logger
}

// NewAmortizationService creates a service that memoizes schedules in cache.
func NewAmortizationService(
	cache repository.CacheRepository,
	reporter *Reporter,
	log *logrus.Logger,
) *AmortizationService {
	return &AmortizationService{cache: cache, reporter: reporter, log: log}
}

// CheckLimits applies the service-wide caps on top of ValidatePlan.
func CheckLimits(plan domain.LoanPlan) error {
	if plan.Principal > MaxLoanAmount {
		return fmt.Errorf("%w: monto excede el máximo permitido de %.2f", ErrInvalidInput, MaxLoanAmount)
	}
	if len(plan.Tiers) > MaxTiers {
		return fmt.Errorf("%w: número de tramos excede el máximo de %d", ErrInvalidInput, MaxTiers)
	}
	for i, tier := range plan.Tiers {
		if tier.Rate > MaxInterestRate {
			return fmt.Errorf("%w: tramo %d: tasa de interés excede el máximo permitido de %.2f%%",
				ErrInvalidInput, i+1, MaxInterestRate)
		}
	}
	// Years se valida tramo a tramo para que la suma no desborde.
	months := 0
	for _, tier := range plan.Tiers {
		if tier.Years > MaxTermMonths/monthsPerYear {
			return fmt.Errorf("%w: plazo excede el máximo permitido de %d meses", ErrInvalidInput, MaxTermMonths)
		}
		months += tier.Years * monthsPerYear
	}
	if months > MaxTermMonths {
		return fmt.Errorf("%w: plazo excede el máximo permitido de %d meses", ErrInvalidInput, MaxTermMonths)
	}
	return nil
}

// Calculate computes the schedule for plan, reusing a cached schedule when
// one exists, and summarizes it.
func (s *AmortizationService) Calculate(
	ctx context.Context,
	plan domain.LoanPlan,
) (domain.ScheduleReport, error) {

	// Validar entrada
	if err := ValidatePlan(plan.Principal, plan.Tiers); err != nil {
		return domain.ScheduleReport{}, err
	}
	if err := CheckLimits(plan); err != nil {
		return domain.ScheduleReport{}, err
	}

	key := repository.ScheduleKey(plan)
	entry := s.log.WithFields(logrus.Fields{
		"key":   key,
		"tiers": len(plan.Tiers),
	})

	results, ok := s.cached(ctx, key, entry)
	if !ok {
		var err error
		results, err = ComputePlan(plan)
		if err != nil {
			return domain.ScheduleReport{}, err
		}
		s.store(ctx, key, results, entry)
	}

	return s.reporter.Summarize(plan, results)
}

func (s *AmortizationService) cached(
	ctx context.Context,
	key string,
	entry *logrus.Entry,
) ([]domain.TierResult, bool) {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var results []domain.TierResult
	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		entry.Warnf("Discarding unreadable cached schedule: %v", err)
		return nil, false
	}
	entry.Debug("Schedule served from cache")
	return results, true
}

// store no es crítico: un fallo solo se registra
func (s *AmortizationService) store(
	ctx context.Context,
	key string,
	results []domain.TierResult,
	entry *logrus.Entry,
) {
	raw, err := json.Marshal(results)
	if err != nil {
		entry.Warnf("Failed to encode schedule for cache: %v", err)
		return
	}
	if err := s.cache.Set(ctx, key, string(raw)); err != nil {
		entry.Warnf("Failed to cache schedule: %v", err)
	}
}
