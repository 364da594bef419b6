package domain

// TierReport is a TierResult paired with the tier that produced it.
// EffectiveInstallment is only set when the tier carries cashback.
type TierReport struct {
	TierResult
	Rate                 float64  `json:"rate"`
	Years                int      `json:"years"`
	LumpSum              float64  `json:"lump_sum"`
	EffectiveInstallment *float64 `json:"effective_installment,omitempty"`
}

type ScheduleReport struct {
	Principal     float64      `json:"principal"`
	Currency      string       `json:"currency"`
	Tiers         []TierReport `json:"tiers"`
	TotalPaidAll  float64      `json:"total_paid_all"`
	TotalInterest float64      `json:"total_interest"`
	TotalCashback float64      `json:"total_cashback"`
	NetCost       float64      `json:"net_cost"`
}
