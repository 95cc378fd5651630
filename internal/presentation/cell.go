// Package presentation maps classified schedule entries to what a timeline
// cell shows.
package presentation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/segyhp/loan-guide/internal/domain"
	customError "github.com/segyhp/loan-guide/pkg/errors"
	"github.com/segyhp/loan-guide/pkg/utils"
)

// Cell is the display model of one schedule entry.
type Cell struct {
	Type   domain.ScheduleType `json:"type"`
	Amount decimal.Decimal     `json:"amount"`

	// paid, advance
	Payments []domain.LoanPayment `json:"payments,omitempty"`
	Balance  *decimal.Decimal     `json:"balance,omitempty"`

	// due, overdue
	Principal *decimal.Decimal `json:"principal,omitempty"`
	Interest  *decimal.Decimal `json:"interest,omitempty"`
	Fines     *decimal.Decimal `json:"fines,omitempty"`

	DaysSkipped int    `json:"days_skipped,omitempty"`
	Note        string `json:"note,omitempty"`
}

// Describe applies the display rules of the schedule's status.
func Describe(schedule domain.PaymentSchedule) (Cell, error) {
	cell := Cell{Type: schedule.Type}

	switch schedule.Type {
	case domain.ScheduleTypePaid, domain.ScheduleTypeAdvance:
		balance := schedule.Balance
		cell.Amount = schedule.AmountPaid
		cell.Balance = &balance
		cell.Payments = append([]domain.LoanPayment(nil), schedule.LoanPayments...)

	case domain.ScheduleTypeDue, domain.ScheduleTypeOverdue:
		principal := schedule.PrincipalAmount
		interest := schedule.InterestAmount
		cell.Amount = schedule.AmountDue
		cell.Principal = &principal
		cell.Interest = &interest
		if schedule.FinesAmount.IsPositive() {
			fines := schedule.FinesAmount
			cell.Fines = &fines
		}
		if schedule.DaysSkipped > 0 {
			cell.DaysSkipped = schedule.DaysSkipped
			cell.Note = skippedNote(schedule.DaysSkipped)
		}

	case domain.ScheduleTypeSkipped:
		cell.Amount = decimal.Zero
		cell.DaysSkipped = schedule.DaysSkipped
		cell.Note = skippedNote(schedule.DaysSkipped)

	default:
		return Cell{}, customError.WrapUnknownScheduleType(string(schedule.Type))
	}

	return cell, nil
}

// Label is the short text used for a cell in flat exports.
func (c Cell) Label() string {
	return fmt.Sprintf("%s %s", c.Type, utils.FormatAmount(c.Amount))
}

func skippedNote(days int) string {
	if days == 1 {
		return "1 day skipped"
	}
	return fmt.Sprintf("%d days skipped", days)
}
