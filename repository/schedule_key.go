package repository

import (
	"strconv"

	"github.com/cespare/xxhash/v2"

	"tiered-loan/domain"
)

const scheduleKeyPrefix = "schedule:"

// ScheduleKey hashes every input of a plan, in tier order. Floats are
// encoded with their shortest exact representation so equal plans always
// share a key.
func ScheduleKey(plan domain.LoanPlan) string {
	d := xxhash.New()
	writeFloat := func(v float64) {
		d.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		d.WriteString("|")
	}

	writeFloat(plan.Principal)
	for _, t := range plan.Tiers {
		writeFloat(t.Rate)
		d.WriteString(strconv.Itoa(t.Years))
		d.WriteString("|")
		writeFloat(t.LumpSum)
		writeFloat(t.Cashback)
		d.WriteString(";")
	}

	return scheduleKeyPrefix + strconv.FormatUint(d.Sum64(), 16)
}
