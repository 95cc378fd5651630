package timeline

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/segyhp/loan-guide/internal/domain"
)

func account(name string, schedules ...domain.PaymentSchedule) domain.LoanAccountSummary {
	return domain.LoanAccountSummary{
		LoanAccount:      domain.LoanAccount{ID: uuid.New(), Name: name},
		PaymentSchedules: schedules,
	}
}

func paid(date string, amount int64) domain.PaymentSchedule {
	return domain.PaymentSchedule{
		ID:          uuid.New(),
		PaymentDate: date,
		Type:        domain.ScheduleTypePaid,
		AmountPaid:  decimal.NewFromInt(amount),
		LoanPayments: []domain.LoanPayment{
			{ID: uuid.New(), LedgerEntryID: "GL-" + date, Amount: decimal.NewFromInt(amount), PaidAt: date},
		},
	}
}

func due(date string, amount int64) domain.PaymentSchedule {
	return domain.PaymentSchedule{
		ID:          uuid.New(),
		PaymentDate: date,
		Type:        domain.ScheduleTypeDue,
		AmountDue:   decimal.NewFromInt(amount),
	}
}

func skipped(date string, days int) domain.PaymentSchedule {
	return domain.PaymentSchedule{
		ID:          uuid.New(),
		PaymentDate: date,
		Type:        domain.ScheduleTypeSkipped,
		DaysSkipped: days,
	}
}

func guideOf(accounts ...domain.LoanAccountSummary) domain.LoanGuide {
	return domain.LoanGuide{LoanID: uuid.New(), LoanAccounts: accounts}
}
