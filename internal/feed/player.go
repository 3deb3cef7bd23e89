package feed

import "errors"

// PlayerState is one phase of a video card's lifecycle.
type PlayerState int

const (
	StateIdle PlayerState = iota
	StateLoading
	StateReady
	StatePlaying
	StatePaused
	StateError
	StateRetrying
)

func (s PlayerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateError:
		return "error"
	case StateRetrying:
		return "retrying"
	}
	return "unknown"
}

// DefaultMaxRetries bounds automatic fault recovery. Past it, only an
// explicit user retry restarts the player.
const DefaultMaxRetries = 2

var ErrInvalidTransition = errors.New("feed: invalid player transition")

// Player is the per-video state machine:
//
//	idle → loading → ready → {playing, paused} → error → retrying
//
// A blocked autoplay is not a fault: the first unmuted play that gets
// rejected falls back to a muted attempt instead of entering the error
// state. Faults are retried automatically a bounded number of times.
type Player struct {
	state      PlayerState
	muted      bool
	retries    int
	maxRetries int

	duration    float64
	currentTime float64
}

// NewPlayer creates a player in the idle state.
func NewPlayer() *Player {
	return &Player{state: StateIdle, maxRetries: DefaultMaxRetries}
}

// State returns the current lifecycle phase.
func (p *Player) State() PlayerState { return p.state }

// Muted reports whether playback has fallen back to muted mode.
func (p *Player) Muted() bool { return p.muted }

// Retries returns how many automatic fault recoveries have run.
func (p *Player) Retries() int { return p.retries }

// Mount begins loading the media. Valid only from idle.
func (p *Player) Mount() error {
	if p.state != StateIdle {
		return ErrInvalidTransition
	}
	p.state = StateLoading
	return nil
}

// MetadataLoaded marks the media ready for playback. Arrives while loading
// or retrying.
func (p *Player) MetadataLoaded(duration float64) error {
	if p.state != StateLoading && p.state != StateRetrying {
		return ErrInvalidTransition
	}
	p.duration = duration
	p.state = StateReady
	return nil
}

// Activate attempts autoplay when the card becomes the feed's active entry.
func (p *Player) Activate() error {
	switch p.state {
	case StateReady, StatePaused:
		p.state = StatePlaying
		return nil
	case StatePlaying:
		return nil
	}
	return ErrInvalidTransition
}

// Deactivate pauses the card when another entry becomes active.
func (p *Player) Deactivate() error {
	switch p.state {
	case StatePlaying, StateReady:
		p.state = StatePaused
		return nil
	case StatePaused:
		return nil
	}
	return ErrInvalidTransition
}

// Toggle flips between playing and paused on user tap.
func (p *Player) Toggle() error {
	switch p.state {
	case StatePlaying:
		p.state = StatePaused
		return nil
	case StateReady, StatePaused:
		p.state = StatePlaying
		return nil
	}
	return ErrInvalidTransition
}

// AutoplayBlocked handles the browser rejecting an unmuted play. The first
// rejection downgrades to muted playback and stays out of the error state;
// a muted rejection is treated as a real fault.
func (p *Player) AutoplayBlocked() {
	if p.state != StatePlaying {
		return
	}
	if !p.muted {
		p.muted = true
		return
	}
	p.fault()
}

// Fault records a playback error from any state.
func (p *Player) Fault() {
	p.fault()
}

func (p *Player) fault() {
	if p.retries < p.maxRetries {
		p.retries++
		p.state = StateRetrying
		return
	}
	p.state = StateError
}

// RetryElapsed restarts loading after an automatic retry delay (or an
// alternate-format fallback).
func (p *Player) RetryElapsed() error {
	if p.state != StateRetrying {
		return ErrInvalidTransition
	}
	p.state = StateLoading
	return nil
}

// UserRetry recovers from the terminal error state on an explicit tap,
// resetting the automatic retry budget.
func (p *Player) UserRetry() error {
	if p.state != StateError {
		return ErrInvalidTransition
	}
	p.retries = 0
	p.state = StateLoading
	return nil
}

// SetCurrentTime records the playhead position.
func (p *Player) SetCurrentTime(t float64) {
	if t < 0 {
		t = 0
	}
	if p.duration > 0 && t > p.duration {
		t = p.duration
	}
	p.currentTime = t
}

// Progress is the derived playback fraction in [0, 1]. It is never stored.
func (p *Player) Progress() float64 {
	if p.duration <= 0 {
		return 0
	}
	return p.currentTime / p.duration
}
