package domain

import (
	"github.com/google/uuid"
)

// TimelineRow is one payment date across every account of a loan guide.
// Schedules holds one key per account; a nil value means no schedule on that date.
// Cells carries the same pointers in loan_accounts order.
type TimelineRow struct {
	PaymentDate string                      `json:"payment_date"`
	Month       string                      `json:"month"`
	Schedules   map[string]*PaymentSchedule `json:"schedules"`
	Cells       []*PaymentSchedule          `json:"-"`
}

// MonthGroup is a bucket of timeline rows sharing a month label.
type MonthGroup struct {
	Month string        `json:"month"`
	Rows  []TimelineRow `json:"rows"`
}

// MonthGroups keeps buckets in first-seen order.
type MonthGroups []MonthGroup

// Get returns the rows for a month label.
func (g MonthGroups) Get(month string) ([]TimelineRow, bool) {
	for _, group := range g {
		if group.Month == month {
			return group.Rows, true
		}
	}
	return nil, false
}

// Labels returns the month labels in iteration order.
func (g MonthGroups) Labels() []string {
	labels := make([]string, 0, len(g))
	for _, group := range g {
		labels = append(labels, group.Month)
	}
	return labels
}

// LoanGuideView is what the API hands to the rendering layer.
type LoanGuideView struct {
	LoanID       uuid.UUID            `json:"loan_id"`
	LoanAccounts []LoanAccountSummary `json:"loan_accounts"`
	Timeline     []TimelineRow        `json:"timeline"`
	Months       MonthGroups          `json:"months"`
	InvalidDates []string             `json:"invalid_dates,omitempty"`
}
