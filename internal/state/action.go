package state

import "fmt"

// Action is a request to change State.
type Action interface {
	fmt.Stringer
	isAction()
}

// Navigate unconditionally mounts To.
type Navigate struct {
	To Screen
}

// CompleteOnboarding marks onboarding finished and mounts home.
type CompleteOnboarding struct{}

// ApplyDelta adds N to the score, clamped to [0,100]. Reason is carried for
// the session journal only.
type ApplyDelta struct {
	N      int
	Reason string
}

func (Navigate) isAction()           {}
func (CompleteOnboarding) isAction() {}
func (ApplyDelta) isAction()         {}

func (a Navigate) String() string         { return "navigate:" + string(a.To) }
func (CompleteOnboarding) String() string { return "complete_onboarding" }
func (a ApplyDelta) String() string       { return fmt.Sprintf("apply_delta:%+d", a.N) }

// Reduce returns the state after applying a. It never fails; unknown actions
// leave s unchanged.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case Navigate:
		s.Screen = act.To
	case CompleteOnboarding:
		s.Onboarded = true
		s.Screen = ScreenHome
	case ApplyDelta:
		s.Score = Clamp(s.Score + act.N)
	}
	return s
}
