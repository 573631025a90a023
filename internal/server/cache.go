package server

import (
	"sync"
	"time"

	"github.com/mj1618/cute-borders/internal/engine"
)

// PlanFunc produces a fresh set of border decisions.
type PlanFunc func() ([]engine.Decision, error)

// PlanCache provides a TTL-based cache for border decisions so that agents
// polling list_windows do not enumerate the desktop on every call.
type PlanCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	decisions []engine.Decision
	timestamp time.Time
	now       func() time.Time
}

// NewPlanCache creates a new cache. A ttl of 0 disables caching.
func NewPlanCache(ttl time.Duration) *PlanCache {
	return &PlanCache{ttl: ttl, now: time.Now}
}

// Plan returns cached decisions if within TTL, otherwise calls plan.
func (c *PlanCache) Plan(plan PlanFunc) ([]engine.Decision, error) {
	if c.ttl == 0 {
		return plan()
	}

	c.mu.Lock()
	if c.decisions != nil && c.now().Sub(c.timestamp) < c.ttl {
		decisions := c.decisions
		c.mu.Unlock()
		return decisions, nil
	}
	c.mu.Unlock()

	decisions, err := plan()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.decisions = decisions
	c.timestamp = c.now()
	c.mu.Unlock()

	return decisions, nil
}

// Invalidate clears the cache.
func (c *PlanCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decisions = nil
}
