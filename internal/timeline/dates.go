// Package timeline turns a loan guide into a date-major grid of payment
// schedules: one row per payment date, one cell per loan account.
package timeline

import (
	"sort"
	"time"

	"github.com/segyhp/loan-guide/internal/domain"
	"github.com/segyhp/loan-guide/pkg/utils"
)

type axisEntry struct {
	value  string
	date   time.Time
	parsed bool
}

// DateAxis returns every distinct payment date of the guide in ascending
// calendar order. Distinctness is exact string equality. Values that cannot be
// parsed go after all parseable ones; within equal keys first-seen order holds.
func DateAxis(guide domain.LoanGuide) []string {
	seen := make(map[string]struct{})
	entries := make([]axisEntry, 0)

	for _, account := range guide.LoanAccounts {
		for _, schedule := range account.PaymentSchedules {
			if _, ok := seen[schedule.PaymentDate]; ok {
				continue
			}
			seen[schedule.PaymentDate] = struct{}{}

			date, ok := utils.ParseDate(schedule.PaymentDate)
			entries = append(entries, axisEntry{value: schedule.PaymentDate, date: date, parsed: ok})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.parsed != b.parsed {
			return a.parsed
		}
		if !a.parsed {
			return false
		}
		return a.date.Before(b.date)
	})

	axis := make([]string, len(entries))
	for i, entry := range entries {
		axis[i] = entry.value
	}
	return axis
}

// InvalidDates returns the distinct payment dates that do not parse, in
// first-seen order.
func InvalidDates(guide domain.LoanGuide) []string {
	var invalid []string
	seen := make(map[string]struct{})

	for _, account := range guide.LoanAccounts {
		for _, schedule := range account.PaymentSchedules {
			if _, ok := seen[schedule.PaymentDate]; ok {
				continue
			}
			seen[schedule.PaymentDate] = struct{}{}
			if _, ok := utils.ParseDate(schedule.PaymentDate); !ok {
				invalid = append(invalid, schedule.PaymentDate)
			}
		}
	}

	return invalid
}
