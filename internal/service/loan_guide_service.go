package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/segyhp/loan-guide/internal/domain"
	"github.com/segyhp/loan-guide/internal/repository"
	"github.com/segyhp/loan-guide/internal/timeline"
	customError "github.com/segyhp/loan-guide/pkg/errors"
)

// LoanGuideProvider is what the HTTP layer needs from the service
type LoanGuideProvider interface {
	GetLoanGuideView(ctx context.Context, loanID uuid.UUID) (*domain.LoanGuideView, error)
	RefreshLoanGuide(ctx context.Context, loanID uuid.UUID) (*domain.LoanGuideView, error)
}

type LoanGuideService struct {
	repo     repository.LoanGuideRepository
	cache    repository.GuideCache
	cacheTTL time.Duration
	log      logrus.FieldLogger
}

// NewLoanGuideService wires the service. A nil cache disables caching.
func NewLoanGuideService(
	repo repository.LoanGuideRepository,
	cache repository.GuideCache,
	cacheTTL time.Duration,
	log logrus.FieldLogger,
) *LoanGuideService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LoanGuideService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// GetLoanGuideView returns the loan's timeline, served from the snapshot cache
// when possible
func (s *LoanGuideService) GetLoanGuideView(ctx context.Context, loanID uuid.UUID) (*domain.LoanGuideView, error) {
	guide, err := s.cached(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if guide == nil {
		guide, err = s.load(ctx, loanID)
		if err != nil {
			return nil, err
		}
	}

	return s.view(*guide), nil
}

// RefreshLoanGuide reloads the guide from the database, re-caching it
func (s *LoanGuideService) RefreshLoanGuide(ctx context.Context, loanID uuid.UUID) (*domain.LoanGuideView, error) {
	guide, err := s.load(ctx, loanID)
	if err != nil {
		return nil, err
	}

	return s.view(*guide), nil
}

// WarmCache refreshes every active loan and reports how many were refreshed.
// Per-loan failures are joined into the returned error.
func (s *LoanGuideService) WarmCache(ctx context.Context) (int, error) {
	ids, err := s.repo.ListActiveLoanIDs(ctx)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	var errs []error
	refreshed := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if _, err := s.load(ctx, id); err != nil {
			errs = append(errs, fmt.Errorf("loan %s: %w", id, err))
			continue
		}
		refreshed++
	}

	s.log.WithFields(logrus.Fields{
		"loans":     len(ids),
		"refreshed": refreshed,
		"failed":    len(errs),
	}).Info("loan guide cache warmed")

	return refreshed, errors.Join(errs...)
}

// cached returns nil, nil on a miss or when the cache misbehaves
func (s *LoanGuideService) cached(ctx context.Context, loanID uuid.UUID) (*domain.LoanGuide, error) {
	if s.cache == nil {
		return nil, nil
	}

	guide, err := s.cache.Get(ctx, loanID)
	switch {
	case err == nil:
		return guide, nil
	case errors.Is(err, customError.ErrCacheMiss):
		return nil, nil
	case ctx.Err() != nil:
		return nil, ctx.Err()
	default:
		s.log.WithError(customError.WrapCacheError(err)).WithField("loan_id", loanID).Warn("loan guide cache read failed")
		return nil, nil
	}
}

func (s *LoanGuideService) load(ctx context.Context, loanID uuid.UUID) (*domain.LoanGuide, error) {
	guide, err := s.repo.GetLoanGuide(ctx, loanID)
	if err != nil {
		if errors.Is(err, customError.ErrLoanGuideNotFound) {
			return nil, err
		}
		return nil, customError.WrapDatabaseError(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, guide, s.cacheTTL); err != nil {
			s.log.WithError(customError.WrapCacheError(err)).WithField("loan_id", loanID).Warn("loan guide cache write failed")
		}
	}

	return guide, nil
}

func (s *LoanGuideService) view(guide domain.LoanGuide) *domain.LoanGuideView {
	rows := timeline.Build(guide)

	invalid := timeline.InvalidDates(guide)
	if len(invalid) > 0 {
		s.log.WithFields(logrus.Fields{
			"loan_id": guide.LoanID,
			"dates":   invalid,
		}).Warn("loan guide has unparseable payment dates")
	}

	return &domain.LoanGuideView{
		LoanID:       guide.LoanID,
		LoanAccounts: guide.LoanAccounts,
		Timeline:     rows,
		Months:       timeline.GroupByMonth(rows),
		InvalidDates: invalid,
	}
}
