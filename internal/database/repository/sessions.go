package repository

import (
	"context"
	"database/sql"
	"errors"
)

// SessionRepo handles session snapshots.
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Upsert writes the snapshot unless the stored row already carries a newer seq.
func (r *SessionRepo) Upsert(ctx context.Context, s Session) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO sessions(id, screen, onboarded, score, seq, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 screen=excluded.screen,
	 onboarded=excluded.onboarded,
	 score=excluded.score,
	 seq=excluded.seq,
	 updated_at=CURRENT_TIMESTAMP
	WHERE excluded.seq >= sessions.seq;
	`, s.ID, s.Screen, s.Onboarded, s.Score, s.Seq)
	return err
}

// Latest returns the most recently updated session, or ok=false when none exist.
func (r *SessionRepo) Latest(ctx context.Context) (Session, bool, error) {
	var s Session
	err := r.db.QueryRowContext(ctx, `
	SELECT id, screen, onboarded, score, seq, created_at, updated_at
	FROM sessions
	ORDER BY updated_at DESC, rowid DESC
	LIMIT 1`).Scan(&s.ID, &s.Screen, &s.Onboarded, &s.Score, &s.Seq, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, err
	}
	return s, true, nil
}

func (r *SessionRepo) List(ctx context.Context) ([]Session, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, screen, onboarded, score, seq, created_at, updated_at FROM sessions ORDER BY updated_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.Screen, &s.Onboarded, &s.Score, &s.Seq, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
