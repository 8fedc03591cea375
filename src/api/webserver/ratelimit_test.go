package webserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	now := time.Now()

	assert.True(t, rl.Allow("alice", now))
	assert.True(t, rl.Allow("alice", now))
	assert.True(t, rl.Allow("alice", now))
	assert.False(t, rl.Allow("alice", now))

	// Separate keys have separate budgets.
	assert.True(t, rl.Allow("bob", now))

	// The window expiring frees the budget.
	assert.True(t, rl.Allow("alice", now.Add(2*time.Minute)))
}
