package service

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"tiered-loan/domain"
)

const DefaultCurrency = "€"

// Reporter derives totals from a schedule and renders it as text. The
// currency symbol is fixed at construction.
type Reporter struct {
	currency string
}

func NewReporter(currency string) *Reporter {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Reporter{currency: currency}
}

func (r *Reporter) Currency() string {
	return r.currency
}

// Summarize pairs every result with its tier and computes the plan totals.
// EffectiveInstallment is (TotalPaid - Cashback) spread over the tier's
// months and is only reported for tiers with cashback.
func (r *Reporter) Summarize(
	plan domain.LoanPlan,
	results []domain.TierResult,
) (domain.ScheduleReport, error) {

	if len(results) != len(plan.Tiers) {
		return domain.ScheduleReport{}, fmt.Errorf(
			"se esperaban %d resultados, se recibieron %d", len(plan.Tiers), len(results))
	}

	report := domain.ScheduleReport{
		Principal: plan.Principal,
		Currency:  r.currency,
		Tiers:     make([]domain.TierReport, len(results)),
	}

	paid := make([]float64, len(results))
	interest := make([]float64, len(results))
	cashback := make([]float64, len(results))
	for i, res := range results {
		tier := plan.Tiers[i]
		tr := domain.TierReport{
			TierResult: res,
			Rate:       tier.Rate,
			Years:      tier.Years,
			LumpSum:    tier.LumpSum,
		}
		if res.Cashback > 0 {
			months := decimal.NewFromInt(int64(tier.Years * monthsPerYear))
			effective := sumCents(res.TotalPaid, -res.Cashback).Div(months).Round(2).InexactFloat64()
			tr.EffectiveInstallment = &effective
		}
		report.Tiers[i] = tr

		paid[i] = res.TotalPaid
		interest[i] = res.InterestPaid
		cashback[i] = res.Cashback
	}

	totalPaid := sumCents(paid...)
	totalCashback := sumCents(cashback...)

	report.TotalPaidAll = totalPaid.InexactFloat64()
	report.TotalInterest = sumCents(interest...).InexactFloat64()
	report.TotalCashback = totalCashback.InexactFloat64()
	report.NetCost = totalPaid.Sub(totalCashback).InexactFloat64()

	return report, nil
}

func (r *Reporter) money(amount float64) string {
	return fmt.Sprintf("%s%.2f", r.currency, amount)
}

// Write prints a report under a scenario header listing the tiers.
func (r *Reporter) Write(w io.Writer, name string, report domain.ScheduleReport) error {
	var b strings.Builder

	tiers := make([]string, len(report.Tiers))
	for i, t := range report.Tiers {
		tiers[i] = domain.NewRateTier(t.Rate, t.Years).String()
	}

	b.WriteString("\n")
	if name != "" {
		fmt.Fprintf(&b, "[%s]\n", name)
	}
	fmt.Fprintf(&b, "Scenario for Loan: %s%s with rates: %s\n",
		r.currency, strconv.FormatFloat(report.Principal, 'f', -1, 64), strings.Join(tiers, ", then "))
	b.WriteString(strings.Repeat("-", 60) + "\n")

	for _, t := range report.Tiers {
		if t.LumpSum > 0 {
			fmt.Fprintf(&b, "%s: Lump Sum Prepaid = %s\n", t.PeriodLabel, r.money(t.LumpSum))
		}
		fmt.Fprintf(&b, "%s: Installment = %s, Total Paid in Period = %s, Interest Paid = %s, Balance Left = %s\n",
			t.PeriodLabel, r.money(t.Installment), r.money(t.TotalPaid), r.money(t.InterestPaid), r.money(t.EndingBalance))
		if t.EffectiveInstallment != nil {
			fmt.Fprintf(&b, "%s: Cashback = %s, Effective Installment = %s\n",
				t.PeriodLabel, r.money(t.Cashback), r.money(*t.EffectiveInstallment))
		}
	}

	fmt.Fprintf(&b, "\nTotal Paid Over All Installments: %s\n", r.money(report.TotalPaidAll))
	fmt.Fprintf(&b, "Total Interest Paid: %s\n", r.money(report.TotalInterest))
	if report.TotalCashback > 0 {
		fmt.Fprintf(&b, "Total Cashback: %s\n", r.money(report.TotalCashback))
		fmt.Fprintf(&b, "Net Cost After Cashback: %s\n", r.money(report.NetCost))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
