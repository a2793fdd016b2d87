package repository

import (
	"context"
	"database/sql"
)

// ScoreEventRepo handles the score ledger.
type ScoreEventRepo struct {
	db *sql.DB
}

func NewScoreEventRepo(db *sql.DB) *ScoreEventRepo {
	return &ScoreEventRepo{db: db}
}

func (r *ScoreEventRepo) Append(ctx context.Context, e ScoreEvent) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO score_events(id, session_id, delta, score_before, score_after, reason, seq, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		e.ID, e.SessionID, e.Delta, e.ScoreBefore, e.ScoreAfter, e.Reason, e.Seq)
	return err
}

// ListBySession returns a session's events in seq order.
func (r *ScoreEventRepo) ListBySession(ctx context.Context, sessionID string) ([]ScoreEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, session_id, delta, score_before, score_after, reason, seq, created_at
	FROM score_events
	WHERE session_id = ?
	ORDER BY seq, created_at, rowid`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ScoreEvent
	for rows.Next() {
		var e ScoreEvent
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Delta, &e.ScoreBefore, &e.ScoreAfter, &e.Reason, &e.Seq, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Total sums the deltas recorded for a session.
func (r *ScoreEventRepo) Total(ctx context.Context, sessionID string) (int, error) {
	var total sql.NullInt64
	err := r.db.QueryRowContext(ctx, `SELECT SUM(delta) FROM score_events WHERE session_id = ?`, sessionID).Scan(&total)
	if err != nil {
		return 0, err
	}
	return int(total.Int64), nil
}
