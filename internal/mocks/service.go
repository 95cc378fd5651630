package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/segyhp/loan-guide/internal/domain"
)

type MockLoanGuideService struct {
	mock.Mock
}

func (m *MockLoanGuideService) GetLoanGuideView(ctx context.Context, loanID uuid.UUID) (*domain.LoanGuideView, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanGuideView), args.Error(1)
}

func (m *MockLoanGuideService) RefreshLoanGuide(ctx context.Context, loanID uuid.UUID) (*domain.LoanGuideView, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanGuideView), args.Error(1)
}

// NewMockLoanGuideService creates a new mock loan guide service instance
func NewMockLoanGuideService() *MockLoanGuideService {
	return &MockLoanGuideService{}
}
