package strategy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedLimitNeverShrinks(t *testing.T) {
	tc := FixedTimeControl(5 * time.Second)
	assert.Equal(t, DefaultSearchTime, PerCandidateTime(tc, 1))
	assert.Equal(t, DefaultSearchTime, PerCandidateTime(tc, 100))
}

func TestPlentyOfClockUsesBaseTime(t *testing.T) {
	// 20 candidates at 100ms is 2s, within a tenth of 60s
	tc := ClockTimeControl(60*time.Second, 0)
	assert.Equal(t, DefaultSearchTime, PerCandidateTime(tc, 20))
}

func TestShrinksToTenthOfClock(t *testing.T) {
	// 20 candidates at 100ms is 2s, over a tenth of 10s; each candidate
	// gets (10s/10)/20
	tc := ClockTimeControl(10*time.Second, 0)
	assert.Equal(t, 50*time.Millisecond, PerCandidateTime(tc, 20))
}

func TestShrinkBoundary(t *testing.T) {
	// exactly at the boundary the base time survives
	tc := ClockTimeControl(20*time.Second, 0)
	assert.Equal(t, DefaultSearchTime, PerCandidateTime(tc, 20))

	tc = ClockTimeControl(20*time.Second-time.Millisecond, 0)
	assert.Less(t, PerCandidateTime(tc, 20), DefaultSearchTime)
}

func TestMonotonicInRemainingTime(t *testing.T) {
	last := time.Duration(0)
	for remaining := time.Second; remaining <= 60*time.Second; remaining += time.Second {
		current := PerCandidateTime(ClockTimeControl(remaining, 0), 30)
		assert.GreaterOrEqual(t, current, last)
		last = current
	}
}

func TestNeverNonPositive(t *testing.T) {
	assert.Greater(t, PerCandidateTime(ClockTimeControl(0, 0), 20), time.Duration(0))
	assert.Greater(t, PerCandidateTime(ClockTimeControl(time.Millisecond, 0), 500), time.Duration(0))
}

func TestOracleDeadline(t *testing.T) {
	assert.Equal(t, 90*time.Millisecond, OracleDeadline(100*time.Millisecond))
	assert.Greater(t, OracleDeadline(5*time.Millisecond), time.Duration(0))
	assert.Greater(t, OracleDeadline(0), time.Duration(0))
}
