package timeline

import (
	"github.com/segyhp/loan-guide/internal/domain"
	"github.com/segyhp/loan-guide/pkg/utils"
)

// Build cross-indexes every account's schedules by payment date. Each row has
// exactly one cell per account, nil where the account has nothing on that date.
// When an account lists the same date twice the later entry wins.
// Cells point to copies, so the guide is never reachable through the result.
func Build(guide domain.LoanGuide) []domain.TimelineRow {
	axis := DateAxis(guide)
	rows := make([]domain.TimelineRow, 0, len(axis))
	if len(axis) == 0 {
		return rows
	}

	lookups := make([]map[string]*domain.PaymentSchedule, len(guide.LoanAccounts))
	for i, account := range guide.LoanAccounts {
		byDate := make(map[string]*domain.PaymentSchedule, len(account.PaymentSchedules))
		for _, schedule := range account.PaymentSchedules {
			cloned := schedule.Clone()
			byDate[schedule.PaymentDate] = &cloned
		}
		lookups[i] = byDate
	}

	for _, date := range axis {
		row := domain.TimelineRow{
			PaymentDate: date,
			Month:       utils.MonthLabel(date),
			Schedules:   make(map[string]*domain.PaymentSchedule, len(guide.LoanAccounts)),
			Cells:       make([]*domain.PaymentSchedule, len(guide.LoanAccounts)),
		}
		for i, account := range guide.LoanAccounts {
			schedule := lookups[i][date]
			row.Schedules[account.LoanAccount.Key()] = schedule
			row.Cells[i] = schedule
		}
		rows = append(rows, row)
	}

	return rows
}
