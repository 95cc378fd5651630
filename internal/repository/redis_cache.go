package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/segyhp/loan-guide/internal/domain"
	customError "github.com/segyhp/loan-guide/pkg/errors"
)

const cacheKeyPrefix = "loan_guide:"

type redisCache struct {
	client redis.Cmdable
}

// NewRedisCache stores guides as JSON under loan_guide:<loan id>
func NewRedisCache(client redis.Cmdable) GuideCache {
	return &redisCache{client: client}
}

// CacheKey is the redis key of a loan's guide snapshot
func CacheKey(loanID uuid.UUID) string {
	return cacheKeyPrefix + loanID.String()
}

func (c *redisCache) Get(ctx context.Context, loanID uuid.UUID) (*domain.LoanGuide, error) {
	raw, err := c.client.Get(ctx, CacheKey(loanID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, customError.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var guide domain.LoanGuide
	if err := json.Unmarshal(raw, &guide); err != nil {
		return nil, fmt.Errorf("decode cached guide %s: %w", loanID, err)
	}

	return &guide, nil
}

func (c *redisCache) Set(ctx context.Context, guide *domain.LoanGuide, ttl time.Duration) error {
	raw, err := json.Marshal(guide)
	if err != nil {
		return fmt.Errorf("encode guide %s: %w", guide.LoanID, err)
	}

	return c.client.Set(ctx, CacheKey(guide.LoanID), raw, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, loanID uuid.UUID) error {
	return c.client.Del(ctx, CacheKey(loanID)).Err()
}
