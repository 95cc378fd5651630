package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/segyhp/loan-guide/internal/domain"
)

// LoanGuideRepository reads loan guide snapshots
type LoanGuideRepository interface {
	// GetLoanGuide loads every account of a loan with its schedules and payments
	GetLoanGuide(ctx context.Context, loanID uuid.UUID) (*domain.LoanGuide, error)

	// ListActiveLoanIDs returns loans whose guides are worth keeping warm
	ListActiveLoanIDs(ctx context.Context) ([]uuid.UUID, error)
}

// GuideCache stores loan guide snapshots
type GuideCache interface {
	// Get returns errors.ErrCacheMiss when nothing is cached for the loan
	Get(ctx context.Context, loanID uuid.UUID) (*domain.LoanGuide, error)

	Set(ctx context.Context, guide *domain.LoanGuide, ttl time.Duration) error

	Delete(ctx context.Context, loanID uuid.UUID) error
}
