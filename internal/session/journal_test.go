package session

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/privix/internal/database"
	"github.com/jask/privix/internal/state"
)

func newJournal(t *testing.T) (*SQLJournal, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "privix.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db), dbPath
}

func recordAll(t *testing.T, ctx context.Context, j Journal, st *state.Store) {
	t.Helper()
	st.Observe(func(c state.Change) {
		require.NoError(t, j.Record(ctx, c))
	})
}

func TestJournalRoundTrip(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	j, dbPath := newJournal(t)

	_, ok, err := j.Restore(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	st := state.NewStore(state.Initial(state.InitialScore))
	recordAll(t, ctx, j, st)
	st.CompleteOnboarding()
	st.Dispatch(state.ApplyDelta{N: state.DeltaRevokeAll, Reason: "revoke all"})
	st.Navigate(state.ScreenAlerts)

	history, err := j.History(ctx)
	require.NoError(t, err)
	require.Len(t, history.Events, 1)
	require.Equal(t, 25, history.Net)
	ev := history.Events[0]
	require.Equal(t, 25, ev.Delta)
	require.Equal(t, 67, ev.ScoreBefore)
	require.Equal(t, 92, ev.ScoreAfter)
	require.Equal(t, "revoke all", ev.Reason)

	db2, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })
	reopened := New(db2)
	got, ok, err := reopened.Restore(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, state.State{Screen: state.ScreenAlerts, Onboarded: true, Score: 92}, got)
	require.Equal(t, j.ID(), reopened.ID())
}

func TestJournalRecordsClampedDelta(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, _ := newJournal(t)
	st := state.NewStore(state.State{Screen: state.ScreenQuickFix, Onboarded: true, Score: 95})
	recordAll(t, ctx, j, st)

	st.ApplyDelta(state.DeltaRevokeAll)
	st.ApplyDelta(state.DeltaRevokeAll)

	history, err := j.History(ctx)
	require.NoError(t, err)
	require.Len(t, history.Events, 1, "a clamped no-op change is not a score event")
	require.Equal(t, 5, history.Events[0].Delta)
	require.Equal(t, 100, history.Events[0].ScoreAfter)
	require.Equal(t, 5, history.Net)
}

func TestJournalReset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, _ := newJournal(t)
	st := state.NewStore(state.Initial(50))
	recordAll(t, ctx, j, st)
	st.ApplyDelta(10)
	before := j.ID()

	require.NoError(t, j.Reset(ctx))
	require.NotEqual(t, before, j.ID())

	_, ok, err := j.Restore(ctx)
	require.NoError(t, err)
	require.False(t, ok)
	history, err := j.History(ctx)
	require.NoError(t, err)
	require.Empty(t, history.Events)
	require.Zero(t, history.Net)
}

func TestNopJournal(t *testing.T) {
	t.Parallel()

	var j Journal = Nop{}
	require.False(t, j.Enabled())
	require.NoError(t, j.Record(context.Background(), state.Change{}))
	require.NoError(t, j.Reset(context.Background()))
	_, ok, err := j.Restore(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
	h, err := j.History(context.Background())
	require.NoError(t, err)
	require.Empty(t, h.Events)
}

func TestJournalKeepsNewestSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, dbPath := newJournal(t)
	home := state.State{Screen: state.ScreenHome, Onboarded: true, Score: 67}
	quickfix := state.State{Screen: state.ScreenQuickFix, Onboarded: true, Score: 67}
	fixed := state.State{Screen: state.ScreenQuickFix, Onboarded: true, Score: 85}
	done := state.State{Screen: state.ScreenQuickFix, Onboarded: true, Score: 92}

	// The second command finishes before the first.
	require.NoError(t, j.Record(ctx, state.Change{Seq: 3, Before: fixed, After: done, Action: state.ApplyDelta{N: 7, Reason: "second"}}))
	require.NoError(t, j.Record(ctx, state.Change{Seq: 2, Before: quickfix, After: fixed, Action: state.ApplyDelta{N: 18, Reason: "first"}}))
	require.NoError(t, j.Record(ctx, state.Change{Seq: 1, Before: home, After: quickfix, Action: state.Navigate{To: state.ScreenQuickFix}}))

	history, err := j.History(ctx)
	require.NoError(t, err)
	require.Len(t, history.Events, 2)
	require.Equal(t, "first", history.Events[0].Reason)
	require.Equal(t, "second", history.Events[1].Reason)
	require.Equal(t, 25, history.Net)

	db2, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })
	reopened := New(db2)
	got, ok, err := reopened.Restore(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, done, got)

	// A restored session continues above the stored seq even though a new
	// store starts counting from one.
	require.NoError(t, reopened.Record(ctx, state.Change{Seq: 1, Before: done, After: state.State{Screen: state.ScreenAlerts, Onboarded: true, Score: 92}, Action: state.Navigate{To: state.ScreenAlerts}}))
	got, _, err = New(db2).Restore(ctx)
	require.NoError(t, err)
	require.Equal(t, state.ScreenAlerts, got.Screen)
}

func TestJournalConcurrentRecordAndReset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, _ := newJournal(t)
	s := state.State{Screen: state.ScreenHome, Onboarded: true, Score: 67}

	var wg sync.WaitGroup
	errs := make(chan error, 40)
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(seq uint64) {
			defer wg.Done()
			errs <- j.Record(ctx, state.Change{Seq: seq, Before: s, After: s, Action: state.Navigate{To: state.ScreenHome}})
		}(uint64(i + 1))
		go func() {
			defer wg.Done()
			errs <- j.Reset(ctx)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	require.NotEmpty(t, j.ID())
}
