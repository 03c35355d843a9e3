package ratelimit

import (
	"boatshow-server/internal/clients/redis"
	"boatshow-server/internal/observability"
	"context"
	"sync"
	"time"
)

const window = time.Minute

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service limits requests per key over a sliding one minute window
type Service struct {
	redis  *redis.Client
	limit  int
	logger *observability.Logger
	now    func() time.Time

	// in-process window used when Redis is disabled or failing
	mu    sync.Mutex
	local map[string][]time.Time
}

// NewService creates a rate limiter allowing requestsPerMinute per key.
// A nil or disabled Redis client keeps the window in process memory.
func NewService(redis *redis.Client, requestsPerMinute int, logger *observability.Logger) *Service {
	return &Service{
		redis:  redis,
		limit:  requestsPerMinute,
		logger: logger,
		now:    time.Now,
		local:  make(map[string][]time.Time),
	}
}

// CheckRateLimit records a request for key and reports whether it is allowed.
// A non-positive limit disables limiting.
func (s *Service) CheckRateLimit(ctx context.Context, key string) (RateLimitResult, error) {
	if s.limit <= 0 {
		return RateLimitResult{Allowed: true, Limit: s.limit}, nil
	}

	if s.redis.IsEnabled() {
		result, err := s.checkRateLimitRedis(ctx, key)
		if err != nil {
			s.logger.InfoWithError(ctx, "Redis rate limit check failed, falling back to local window", err)
			return s.checkRateLimitLocal(key), nil
		}
		return result, nil
	}

	return s.checkRateLimitLocal(key), nil
}

// checkRateLimitRedis keeps the window in the sorted set rl:{key}, one
// member per request scored by its time in ms.
func (s *Service) checkRateLimitRedis(ctx context.Context, key string) (RateLimitResult, error) {
	now := s.now()

	hit, err := s.redis.SlidingWindowHit(ctx, "rl:"+key, now, window, s.limit)
	if err != nil {
		return RateLimitResult{}, err
	}
	if !hit.Allowed {
		return s.denied(now, hit.Oldest.Add(window)), nil
	}

	return RateLimitResult{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(hit.Count),
		ResetAt:   hit.Oldest.Add(window),
	}, nil
}

func (s *Service) checkRateLimitLocal(key string) RateLimitResult {
	now := s.now()
	windowStart := now.Add(-window)

	s.mu.Lock()
	defer s.mu.Unlock()

	hits := s.local[key]
	kept := hits[:0]
	for _, t := range hits {
		if t.After(windowStart) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= s.limit {
		s.local[key] = kept
		return s.denied(now, kept[0].Add(window))
	}

	kept = append(kept, now)
	s.local[key] = kept
	return RateLimitResult{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - len(kept),
		ResetAt:   kept[0].Add(window),
	}
}

func (s *Service) denied(now, resetAt time.Time) RateLimitResult {
	retryAfter := resetAt.Sub(now)
	if retryAfter < 0 {
		retryAfter = 0
	}
	return RateLimitResult{
		Allowed:      false,
		Limit:        s.limit,
		Remaining:    0,
		ResetAt:      resetAt,
		RetryAfterMs: int(retryAfter.Milliseconds()),
	}
}
