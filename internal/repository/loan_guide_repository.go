package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/segyhp/loan-guide/internal/domain"
	customError "github.com/segyhp/loan-guide/pkg/errors"
)

type loanGuideRepository struct {
	db *sqlx.DB
}

func NewLoanGuideRepository(db *sqlx.DB) LoanGuideRepository {
	return &loanGuideRepository{db: db}
}

type accountRow struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
	Icon string    `db:"icon"`
}

type scheduleRow struct {
	ID              uuid.UUID       `db:"id"`
	LoanAccountID   uuid.UUID       `db:"loan_account_id"`
	PaymentDate     string          `db:"payment_date"`
	Type            string          `db:"type"`
	AmountPaid      decimal.Decimal `db:"amount_paid"`
	AmountDue       decimal.Decimal `db:"amount_due"`
	PrincipalAmount decimal.Decimal `db:"principal_amount"`
	InterestAmount  decimal.Decimal `db:"interest_amount"`
	FinesAmount     decimal.Decimal `db:"fines_amount"`
	DaysSkipped     int             `db:"days_skipped"`
	Balance         decimal.Decimal `db:"balance"`
	ActualDate      sql.NullString  `db:"actual_date"`
}

type paymentRow struct {
	ID                uuid.UUID       `db:"id"`
	PaymentScheduleID uuid.UUID       `db:"payment_schedule_id"`
	LedgerEntryID     string          `db:"ledger_entry_id"`
	Amount            decimal.Decimal `db:"amount"`
	PaidAt            string          `db:"paid_at"`
}

func (r *loanGuideRepository) GetLoanGuide(ctx context.Context, loanID uuid.UUID) (*domain.LoanGuide, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM loans WHERE id = $1)`, loanID); err != nil {
		return nil, err
	}
	if !exists {
		return nil, customError.WrapLoanGuideNotFound(loanID.String())
	}

	var accounts []accountRow
	err := r.db.SelectContext(ctx, &accounts, `
		SELECT id, name, COALESCE(icon, '') AS icon
		FROM loan_accounts
		WHERE loan_id = $1
		ORDER BY position, created_at
	`, loanID)
	if err != nil {
		return nil, err
	}

	guide := &domain.LoanGuide{
		LoanID:       loanID,
		LoanAccounts: make([]domain.LoanAccountSummary, 0, len(accounts)),
	}
	if len(accounts) == 0 {
		return guide, nil
	}

	accountIDs := make([]string, len(accounts))
	for i, a := range accounts {
		accountIDs[i] = a.ID.String()
	}

	var schedules []scheduleRow
	err = r.db.SelectContext(ctx, &schedules, `
		SELECT id, loan_account_id, to_char(payment_date, 'YYYY-MM-DD') AS payment_date, type,
		       amount_paid, amount_due, principal_amount, interest_amount, fines_amount,
		       days_skipped, balance, to_char(actual_date, 'YYYY-MM-DD') AS actual_date
		FROM payment_schedules
		WHERE loan_account_id = ANY($1::uuid[])
		ORDER BY loan_account_id, position
	`, pq.Array(accountIDs))
	if err != nil {
		return nil, err
	}

	paymentsBySchedule, err := r.paymentsFor(ctx, schedules)
	if err != nil {
		return nil, err
	}

	schedulesByAccount := make(map[uuid.UUID][]domain.PaymentSchedule, len(accounts))
	for _, row := range schedules {
		schedule := domain.PaymentSchedule{
			ID:              row.ID,
			PaymentDate:     row.PaymentDate,
			Type:            domain.ScheduleType(row.Type),
			AmountPaid:      row.AmountPaid,
			AmountDue:       row.AmountDue,
			PrincipalAmount: row.PrincipalAmount,
			InterestAmount:  row.InterestAmount,
			FinesAmount:     row.FinesAmount,
			DaysSkipped:     row.DaysSkipped,
			Balance:         row.Balance,
			LoanPayments:    paymentsBySchedule[row.ID],
		}
		if row.ActualDate.Valid {
			actual := row.ActualDate.String
			schedule.ActualDate = &actual
		}
		schedulesByAccount[row.LoanAccountID] = append(schedulesByAccount[row.LoanAccountID], schedule)
	}

	for _, a := range accounts {
		guide.LoanAccounts = append(guide.LoanAccounts, domain.LoanAccountSummary{
			LoanAccount:      domain.LoanAccount{ID: a.ID, Name: a.Name, Icon: a.Icon},
			PaymentSchedules: schedulesByAccount[a.ID],
		})
	}

	return guide, nil
}

func (r *loanGuideRepository) paymentsFor(ctx context.Context, schedules []scheduleRow) (map[uuid.UUID][]domain.LoanPayment, error) {
	ids := make([]string, 0, len(schedules))
	for _, s := range schedules {
		if domain.ScheduleType(s.Type).IsSettled() {
			ids = append(ids, s.ID.String())
		}
	}

	out := make(map[uuid.UUID][]domain.LoanPayment)
	if len(ids) == 0 {
		return out, nil
	}

	var payments []paymentRow
	err := r.db.SelectContext(ctx, &payments, `
		SELECT id, payment_schedule_id, ledger_entry_id, amount,
		       to_char(paid_at, 'YYYY-MM-DD') AS paid_at
		FROM loan_payments
		WHERE payment_schedule_id = ANY($1::uuid[])
		ORDER BY paid_at, id
	`, pq.Array(ids))
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	for _, p := range payments {
		out[p.PaymentScheduleID] = append(out[p.PaymentScheduleID], domain.LoanPayment{
			ID:            p.ID,
			LedgerEntryID: p.LedgerEntryID,
			Amount:        p.Amount,
			PaidAt:        p.PaidAt,
		})
	}

	return out, nil
}

func (r *loanGuideRepository) ListActiveLoanIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids, `
		SELECT id
		FROM loans
		WHERE status = 'active'
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, err
	}

	return ids, nil
}
