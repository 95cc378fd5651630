package domain

import (
	"github.com/google/uuid"
)

// LoanAccount is the account a loan line is booked against.
type LoanAccount struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
	Icon string    `json:"icon,omitempty" db:"icon"`
}

// Key is the identifier used for timeline cells.
func (a LoanAccount) Key() string {
	return a.ID.String()
}

// LoanAccountSummary holds one loan-linked account and its schedule.
type LoanAccountSummary struct {
	LoanAccount      LoanAccount       `json:"loan_account"`
	PaymentSchedules []PaymentSchedule `json:"payment_schedules"`
}

// LoanGuide is the read-only snapshot of a loan's accounts and schedules.
type LoanGuide struct {
	LoanID       uuid.UUID            `json:"loan_id"`
	LoanAccounts []LoanAccountSummary `json:"loan_accounts"`
}
