package processor

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/funnelscope/awareness-classifier/internal/classifier"
	"github.com/funnelscope/awareness-classifier/internal/domain"
)

const defaultStoreRPS = 50

// RateLimiter provides rate limiting for store operations.
type RateLimiter struct {
	limiter *rate.Limiter
	logger  Logger
}

// NewRateLimiter creates a new rate limiter.
// rps: requests per second; burst defaults to rps when non-positive.
func NewRateLimiter(rps, burst int, logger Logger) *RateLimiter {
	if rps <= 0 {
		rps = defaultStoreRPS
	}
	if burst <= 0 {
		burst = rps
	}

	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger,
	}
}

// Wait waits until the rate limit allows the operation.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		r.logger.Warn("Rate limiter wait failed", "error", err)
		return err
	}
	return nil
}

// Allow checks if an operation is allowed without waiting.
func (r *RateLimiter) Allow() bool {
	return r.limiter.Allow()
}

// SetLimit updates the rate limit.
func (r *RateLimiter) SetLimit(rps int) {
	r.limiter.SetLimit(rate.Limit(rps))
	r.logger.Info("Rate limit updated", "new_rps", rps)
}

// RateLimitedStore wraps a phase store, waiting for a token before each
// write so batch pipelines cannot saturate the database.
type RateLimitedStore struct {
	store   classifier.PhaseStore
	limiter *RateLimiter
}

// NewRateLimitedStore creates a rate-limited phase store.
func NewRateLimitedStore(store classifier.PhaseStore, limiter *RateLimiter) *RateLimitedStore {
	return &RateLimitedStore{store: store, limiter: limiter}
}

// SavePhase persists a phase after acquiring a rate limit token.
func (s *RateLimitedStore) SavePhase(ctx context.Context, phase *domain.Phase) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}
	return s.store.SavePhase(ctx, phase)
}
