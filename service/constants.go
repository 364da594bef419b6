package service

const (
	MaxLoanAmount   = 1_000_000_000.0 // 1 billón
	MaxInterestRate = 1000.0          // 1000% anual
	MaxTermMonths   = 600             // 50 años
	MinTierYears    = 1
	MaxTiers        = 50 // máximo de tramos por plan

	monthsPerYear = 12
)
