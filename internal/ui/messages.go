package ui

import (
	"time"

	"github.com/i474232898/skysense/internal/weather"
)

// Message types for async operations

// outcomeMsg carries an outcome published to the latest-result slot.
type outcomeMsg struct {
	outcome weather.Outcome
}

// searchDoneMsg is sent when a search started from the input finishes,
// whether or not its outcome was published.
type searchDoneMsg struct {
	token     uint64
	published bool
}

// sceneTickMsg advances the animation.
type sceneTickMsg time.Time
