package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ScheduleType is the status an upstream classifier assigns to a schedule entry.
type ScheduleType string

const (
	ScheduleTypePaid    ScheduleType = "paid"
	ScheduleTypeAdvance ScheduleType = "advance"
	ScheduleTypeDue     ScheduleType = "due"
	ScheduleTypeOverdue ScheduleType = "overdue"
	ScheduleTypeSkipped ScheduleType = "skipped"
)

// ScheduleTypes lists every known status in display order.
var ScheduleTypes = []ScheduleType{
	ScheduleTypePaid,
	ScheduleTypeAdvance,
	ScheduleTypeDue,
	ScheduleTypeOverdue,
	ScheduleTypeSkipped,
}

// Valid reports whether t is one of the known statuses.
func (t ScheduleType) Valid() bool {
	switch t {
	case ScheduleTypePaid, ScheduleTypeAdvance, ScheduleTypeDue, ScheduleTypeOverdue, ScheduleTypeSkipped:
		return true
	}
	return false
}

// IsSettled is true for statuses backed by realized payments.
func (t ScheduleType) IsSettled() bool {
	return t == ScheduleTypePaid || t == ScheduleTypeAdvance
}

func (t *ScheduleType) UnmarshalText(text []byte) error {
	v := ScheduleType(text)
	if !v.Valid() {
		return fmt.Errorf("unknown schedule type %q", string(text))
	}
	*t = v
	return nil
}

// LoanPayment is a realized payment tied to a schedule entry.
type LoanPayment struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	LedgerEntryID string          `json:"ledger_entry_id" db:"ledger_entry_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	PaidAt        string          `json:"paid_at" db:"paid_at"`
}

// PaymentSchedule is one scheduled or realized payment event for one account.
// PaymentDate is kept as received; ordering is done on its parsed calendar date.
type PaymentSchedule struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	PaymentDate     string          `json:"payment_date" db:"payment_date"`
	Type            ScheduleType    `json:"type" db:"type"`
	AmountPaid      decimal.Decimal `json:"amount_paid" db:"amount_paid"`
	AmountDue       decimal.Decimal `json:"amount_due" db:"amount_due"`
	PrincipalAmount decimal.Decimal `json:"principal_amount" db:"principal_amount"`
	InterestAmount  decimal.Decimal `json:"interest_amount" db:"interest_amount"`
	FinesAmount     decimal.Decimal `json:"fines_amount" db:"fines_amount"`
	DaysSkipped     int             `json:"days_skipped" db:"days_skipped"`
	Balance         decimal.Decimal `json:"balance" db:"balance"`
	LoanPayments    []LoanPayment   `json:"loan_payments"`
	ActualDate      *string         `json:"actual_date,omitempty" db:"actual_date"`
}

// Clone returns a copy that shares no mutable state with s.
func (s PaymentSchedule) Clone() PaymentSchedule {
	out := s
	if s.LoanPayments != nil {
		out.LoanPayments = make([]LoanPayment, len(s.LoanPayments))
		copy(out.LoanPayments, s.LoanPayments)
	}
	if s.ActualDate != nil {
		d := *s.ActualDate
		out.ActualDate = &d
	}
	return out
}
