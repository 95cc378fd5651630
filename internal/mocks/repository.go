package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/segyhp/loan-guide/internal/domain"
)

type MockLoanGuideRepository struct {
	mock.Mock
}

func (m *MockLoanGuideRepository) GetLoanGuide(ctx context.Context, loanID uuid.UUID) (*domain.LoanGuide, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanGuide), args.Error(1)
}

func (m *MockLoanGuideRepository) ListActiveLoanIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

type MockGuideCache struct {
	mock.Mock
}

func (m *MockGuideCache) Get(ctx context.Context, loanID uuid.UUID) (*domain.LoanGuide, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanGuide), args.Error(1)
}

func (m *MockGuideCache) Set(ctx context.Context, guide *domain.LoanGuide, ttl time.Duration) error {
	args := m.Called(ctx, guide, ttl)
	return args.Error(0)
}

func (m *MockGuideCache) Delete(ctx context.Context, loanID uuid.UUID) error {
	args := m.Called(ctx, loanID)
	return args.Error(0)
}
