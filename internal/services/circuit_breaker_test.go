package services

import (
	"testing"
	"time"

	"card-advisor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transition struct {
	from, to models.CircuitBreakerState
}

func newTestBreaker(t *testing.T) (*CircuitBreaker, *time.Time, *[]transition) {
	t.Helper()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var transitions []transition
	cb := newCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:     3,
		ResetTimeout:    time.Minute,
		HalfOpenMaxSucc: 2,
	}, func(from, to models.CircuitBreakerState) {
		transitions = append(transitions, transition{from, to})
	})
	cb.now = func() time.Time { return now }
	return cb, &now, &transitions
}

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb, _, transitions := newTestBreaker(t)

	cb.RecordFailure()
	cb.RecordFailure()
	assert.False(t, cb.IsOpen())
	assert.Equal(t, 2, cb.GetFailureCount())

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
	assert.Equal(t, StateOpen, cb.GetState())
	assert.Equal(t, []transition{{StateClosed, StateOpen}}, *transitions)
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb, _, _ := newTestBreaker(t)

	cb.RecordFailure()
	cb.RecordFailure()
	cb.RecordSuccess()

	assert.Zero(t, cb.GetFailureCount())
	cb.RecordFailure()
	assert.False(t, cb.IsOpen())
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb, now, transitions := newTestBreaker(t)
	for i := 0; i < 3; i++ {
		cb.RecordFailure()
	}
	require.True(t, cb.IsOpen())

	*now = now.Add(2 * time.Minute)
	assert.False(t, cb.IsOpen())
	assert.Equal(t, StateHalfOpen, cb.GetState())

	cb.RecordSuccess()
	assert.Equal(t, StateHalfOpen, cb.GetState())
	cb.RecordSuccess()
	assert.Equal(t, StateClosed, cb.GetState())

	assert.Equal(t, []transition{
		{StateClosed, StateOpen},
		{StateOpen, StateHalfOpen},
		{StateHalfOpen, StateClosed},
	}, *transitions)
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb, now, _ := newTestBreaker(t)
	for i := 0; i < 3; i++ {
		cb.RecordFailure()
	}

	*now = now.Add(2 * time.Minute)
	require.False(t, cb.IsOpen())

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
}

func TestCircuitBreaker_Reset(t *testing.T) {
	cb, _, transitions := newTestBreaker(t)
	for i := 0; i < 3; i++ {
		cb.RecordFailure()
	}

	cb.Reset()

	assert.False(t, cb.IsOpen())
	assert.Zero(t, cb.GetFailureCount())
	assert.Equal(t, transition{StateOpen, StateClosed}, (*transitions)[len(*transitions)-1])
}

func TestCircuitBreakerState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half_open", StateHalfOpen.String())
}
