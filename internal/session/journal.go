// Package session persists the navigation snapshot and a ledger of score
// changes so a restart can resume where the user left off.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/jask/privix/internal/database"
	"github.com/jask/privix/internal/database/repository"
	"github.com/jask/privix/internal/state"
)

// Journal records state changes. Every method may be called concurrently
// from tea.Cmd goroutines, and Record calls may arrive out of Change.Seq order.
type Journal interface {
	// Restore returns the last recorded state. ok is false when nothing was
	// recorded yet, in which case the caller keeps its initial state.
	Restore(ctx context.Context) (s state.State, ok bool, err error)
	// Record persists c. A change older than the stored snapshot only adds
	// its ledger entry.
	Record(ctx context.Context, c state.Change) error
	Reset(ctx context.Context) error
	History(ctx context.Context) (History, error)
	Enabled() bool
}

// History is the score ledger of the current session.
type History struct {
	Events []repository.ScoreEvent
	Net    int
}

// SQLJournal stores sessions in sqlite.
type SQLJournal struct {
	DB       *sql.DB
	Sessions *repository.SessionRepo
	Events   *repository.ScoreEventRepo

	mu sync.Mutex
	id string
	// base offsets Change.Seq so a restored session keeps counting upward.
	base int64
}

// New wires a journal over db. The schema must already be migrated.
func New(db *sql.DB) *SQLJournal {
	return &SQLJournal{
		DB:       db,
		Sessions: repository.NewSessionRepo(db),
		Events:   repository.NewScoreEventRepo(db),
		id:       uuid.NewString(),
	}
}

// ID is the session currently being written.
func (j *SQLJournal) ID() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.id
}

func (j *SQLJournal) Enabled() bool { return true }

func (j *SQLJournal) Restore(ctx context.Context) (state.State, bool, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	row, ok, err := j.Sessions.Latest(ctx)
	if err != nil {
		return state.State{}, false, fmt.Errorf("load latest session: %w", err)
	}
	if !ok {
		return state.State{}, false, nil
	}
	screen, err := state.ParseScreen(row.Screen)
	if err != nil {
		log.Printf("warn: session %s has unknown screen %q, starting fresh", row.ID, row.Screen)
		return state.State{}, false, nil
	}
	j.id = row.ID
	j.base = row.Seq
	return state.State{
		Screen:    screen,
		Onboarded: row.Onboarded,
		Score:     state.Clamp(row.Score),
	}, true, nil
}

// Record upserts the snapshot after c and, when the score moved, appends a
// ledger entry.
func (j *SQLJournal) Record(ctx context.Context, c state.Change) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	after := c.After
	seq := j.base + int64(c.Seq)
	if err := j.Sessions.Upsert(ctx, repository.Session{
		ID:        j.id,
		Screen:    string(after.Screen),
		Onboarded: after.Onboarded,
		Score:     after.Score,
		Seq:       seq,
	}); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if !c.ScoreChanged() {
		return nil
	}
	reason := ""
	if d, ok := c.Action.(state.ApplyDelta); ok {
		reason = d.Reason
	}
	ev := repository.ScoreEvent{
		ID:          uuid.NewString(),
		SessionID:   j.id,
		Delta:       after.Score - c.Before.Score,
		ScoreBefore: c.Before.Score,
		ScoreAfter:  after.Score,
		Reason:      reason,
		Seq:         seq,
	}
	if err := j.Events.Append(ctx, ev); err != nil {
		return fmt.Errorf("append score event: %w", err)
	}
	return nil
}

// Reset wipes every recorded session and starts a new one. The schema stays.
func (j *SQLJournal) Reset(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.DB == nil {
		return fmt.Errorf("session: db not configured")
	}
	if err := database.WithTx(j.DB, func(tx *sql.Tx) error {
		for _, t := range []string{"score_events", "sessions"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
		}
		return nil
	}); err != nil {
		return err
	}
	j.id = uuid.NewString()
	return nil
}

// History returns the current session's ledger and the net score change.
func (j *SQLJournal) History(ctx context.Context) (History, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	events, err := j.Events.ListBySession(ctx, j.id)
	if err != nil {
		return History{}, fmt.Errorf("list score events: %w", err)
	}
	net, err := j.Events.Total(ctx, j.id)
	if err != nil {
		return History{}, fmt.Errorf("sum score events: %w", err)
	}
	return History{Events: events, Net: net}, nil
}

// Nop discards everything; the app starts fresh on each launch.
type Nop struct{}

func (Nop) Restore(context.Context) (state.State, bool, error) { return state.State{}, false, nil }
func (Nop) Record(context.Context, state.Change) error          { return nil }
func (Nop) Reset(context.Context) error                         { return nil }
func (Nop) History(context.Context) (History, error)            { return History{}, nil }
func (Nop) Enabled() bool                                       { return false }
