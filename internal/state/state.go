// Package state owns the application state: which screen is mounted, whether
// onboarding has finished, and the shared privacy score.
//
// State changes only through Actions reduced by Reduce; Store wraps the
// current value and notifies observers after every dispatch.
package state

import (
	"encoding/json"
	"fmt"
)

const (
	MinScore     = 0
	MaxScore     = 100
	InitialScore = 67

	DeltaRevokeAll   = 25
	DeltaRevokeRisky = 18
	DeltaSwitchApp   = 15
)

// State is the serializable application state.
type State struct {
	Screen    Screen `json:"screen"`
	Onboarded bool   `json:"onboarded"`
	Score     int    `json:"score"`
}

// Initial returns the state a fresh process starts with.
func Initial(score int) State {
	return State{Screen: ScreenOnboarding, Score: Clamp(score)}
}

// Clamp bounds a score to [MinScore, MaxScore].
func Clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// ShowNav reports whether the bottom navigation bar is visible.
func (s State) ShowNav() bool {
	return s.Onboarded && s.Screen != ScreenOnboarding
}

// Marshal encodes the state as JSON.
func (s State) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

// Unmarshal decodes a JSON snapshot, normalising anything out of range.
func Unmarshal(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("decode state: %w", err)
	}
	if !s.Screen.Valid() {
		return State{}, fmt.Errorf("decode state: unknown screen %q", s.Screen)
	}
	s.Score = Clamp(s.Score)
	return s, nil
}

// Band is the display classification of a score.
type Band string

const (
	BandGreat Band = "Great!"
	BandGood  Band = "Good"
	BandFair  Band = "Fair"
	BandPoor  Band = "Poor"
)

// BandFor maps a score to its band.
func BandFor(score int) Band {
	switch {
	case score >= 80:
		return BandGreat
	case score >= 60:
		return BandGood
	case score >= 40:
		return BandFair
	default:
		return BandPoor
	}
}
