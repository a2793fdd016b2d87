package repository

import "time"

// Session is the persisted snapshot of the navigation state and score.
type Session struct {
	ID        string
	Screen    string
	Onboarded bool
	Score     int
	Seq       int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScoreEvent is one ledger entry for a score change.
type ScoreEvent struct {
	ID          string
	SessionID   string
	Delta       int
	ScoreBefore int
	ScoreAfter  int
	Reason      string
	Seq         int64
	CreatedAt   time.Time
}
