package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func advanceToReady(t *testing.T, p *Player) {
	t.Helper()
	assert.NoError(t, p.Mount())
	assert.NoError(t, p.MetadataLoaded(30))
}

func TestPlayerHappyPath(t *testing.T) {
	p := NewPlayer()
	assert.Equal(t, StateIdle, p.State())

	advanceToReady(t, p)
	assert.Equal(t, StateReady, p.State())

	assert.NoError(t, p.Activate())
	assert.Equal(t, StatePlaying, p.State())

	assert.NoError(t, p.Toggle())
	assert.Equal(t, StatePaused, p.State())

	assert.NoError(t, p.Toggle())
	assert.Equal(t, StatePlaying, p.State())

	assert.NoError(t, p.Deactivate())
	assert.Equal(t, StatePaused, p.State())
}

func TestPlayerInvalidTransitions(t *testing.T) {
	p := NewPlayer()

	assert.ErrorIs(t, p.Activate(), ErrInvalidTransition)
	assert.ErrorIs(t, p.MetadataLoaded(10), ErrInvalidTransition)
	assert.ErrorIs(t, p.UserRetry(), ErrInvalidTransition)

	assert.NoError(t, p.Mount())
	assert.ErrorIs(t, p.Mount(), ErrInvalidTransition)
	assert.ErrorIs(t, p.Toggle(), ErrInvalidTransition)
}

func TestPlayerAutoplayBlockedFallsBackToMuted(t *testing.T) {
	p := NewPlayer()
	advanceToReady(t, p)
	assert.NoError(t, p.Activate())

	p.AutoplayBlocked()
	assert.Equal(t, StatePlaying, p.State())
	assert.True(t, p.Muted())
	assert.Equal(t, 0, p.Retries())
}

func TestPlayerMutedAutoplayBlockIsAFault(t *testing.T) {
	p := NewPlayer()
	advanceToReady(t, p)
	assert.NoError(t, p.Activate())

	p.AutoplayBlocked()
	p.AutoplayBlocked()
	assert.Equal(t, StateRetrying, p.State())
	assert.Equal(t, 1, p.Retries())
}

func TestPlayerFaultRetriesAreBounded(t *testing.T) {
	p := NewPlayer()
	advanceToReady(t, p)
	assert.NoError(t, p.Activate())

	p.Fault()
	assert.Equal(t, StateRetrying, p.State())
	assert.NoError(t, p.RetryElapsed())
	assert.NoError(t, p.MetadataLoaded(30))
	assert.NoError(t, p.Activate())

	p.Fault()
	assert.Equal(t, StateRetrying, p.State())
	assert.NoError(t, p.RetryElapsed())

	// Budget exhausted, the next fault is terminal.
	p.Fault()
	assert.Equal(t, StateError, p.State())
	assert.ErrorIs(t, p.RetryElapsed(), ErrInvalidTransition)
}

func TestPlayerUserRetryResetsBudget(t *testing.T) {
	p := NewPlayer()
	advanceToReady(t, p)

	p.Fault()
	p.Fault()
	p.Fault()
	assert.Equal(t, StateError, p.State())

	assert.NoError(t, p.UserRetry())
	assert.Equal(t, StateLoading, p.State())
	assert.Equal(t, 0, p.Retries())

	assert.NoError(t, p.MetadataLoaded(30))
	assert.Equal(t, StateReady, p.State())
}

func TestPlayerProgress(t *testing.T) {
	p := NewPlayer()
	assert.Equal(t, 0.0, p.Progress())

	advanceToReady(t, p)

	p.SetCurrentTime(15)
	assert.InDelta(t, 0.5, p.Progress(), 1e-9)

	p.SetCurrentTime(-3)
	assert.Equal(t, 0.0, p.Progress())

	p.SetCurrentTime(500)
	assert.Equal(t, 1.0, p.Progress())
}
