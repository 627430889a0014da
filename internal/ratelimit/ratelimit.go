package ratelimit

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// GeminiLimiter caps the number of generative-service requests per day.
// A max of 0 disables the cap.
type GeminiLimiter struct {
	mu        sync.Mutex
	count     int
	max       int
	resetTime time.Time
}

func NewGeminiLimiter(max int) *GeminiLimiter {
	return &GeminiLimiter{
		max:       max,
		resetTime: time.Now().Add(24 * time.Hour),
	}
}

// CanUse reports whether another request fits inside the budget.
func (rl *GeminiLimiter) CanUse() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.checkReset()

	if rl.max > 0 && rl.count >= rl.max {
		slog.Warn("[RateLimit] Gemini budget exhausted",
			slog.Int("used", rl.count), slog.Int("max", rl.max))
		return false
	}
	return true
}

// Use records one request against the budget.
func (rl *GeminiLimiter) Use() error {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.checkReset()

	if rl.max > 0 && rl.count >= rl.max {
		return fmt.Errorf("gemini rate limit exceeded (%d/%d)", rl.count, rl.max)
	}

	rl.count++
	return nil
}

func (rl *GeminiLimiter) Stats() (used, max int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.count, rl.max
}

func (rl *GeminiLimiter) checkReset() {
	if time.Now().After(rl.resetTime) {
		slog.Info("[RateLimit] resetting Gemini counter", slog.Int("used", rl.count))
		rl.count = 0
		rl.resetTime = time.Now().Add(24 * time.Hour)
	}
}
