package state

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyDeltaExamples(t *testing.T) {
	t.Parallel()

	st := NewStore(State{Screen: ScreenQuickFix, Score: 67})
	require.Equal(t, 92, st.ApplyDelta(DeltaRevokeAll).Score)

	st = NewStore(State{Screen: ScreenQuickFix, Score: 95})
	require.Equal(t, 100, st.ApplyDelta(DeltaRevokeAll).Score)

	st = NewStore(State{Screen: ScreenQuickFix, Score: 3})
	require.Equal(t, 0, st.ApplyDelta(-10).Score)
}

func TestApplyDeltaStaysInBounds(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	st := NewStore(Initial(InitialScore))
	for i := 0; i < 2000; i++ {
		got := st.ApplyDelta(rng.Intn(301) - 150).Score
		require.GreaterOrEqual(t, got, MinScore)
		require.LessOrEqual(t, got, MaxScore)
	}
}

func TestNavigateAnyToAny(t *testing.T) {
	t.Parallel()

	for _, from := range Screens() {
		for _, to := range Screens() {
			st := NewStore(State{Screen: from, Score: 50})
			got := st.Navigate(to)
			require.Equal(t, to, got.Screen, "from %s", from)
			require.Equal(t, 50, got.Score)
		}
	}
}

func TestCompleteOnboarding(t *testing.T) {
	t.Parallel()

	for _, from := range Screens() {
		st := NewStore(State{Screen: from, Score: 10})
		got := st.CompleteOnboarding()
		require.True(t, got.Onboarded)
		require.Equal(t, ScreenHome, got.Screen)
	}
}

func TestInitialState(t *testing.T) {
	t.Parallel()

	s := Initial(InitialScore)
	require.Equal(t, ScreenOnboarding, s.Screen)
	require.False(t, s.Onboarded)
	require.Equal(t, 67, s.Score)
	require.False(t, s.ShowNav())

	require.Equal(t, 100, Initial(250).Score)
	require.Equal(t, 0, Initial(-4).Score)
}

func TestShowNav(t *testing.T) {
	t.Parallel()

	require.False(t, State{Screen: ScreenHome}.ShowNav())
	require.False(t, State{Screen: ScreenOnboarding, Onboarded: true}.ShowNav())
	require.True(t, State{Screen: ScreenAlerts, Onboarded: true}.ShowNav())
}

func TestObserversSeeEveryChange(t *testing.T) {
	t.Parallel()

	st := NewStore(Initial(InitialScore))
	var changes []Change
	st.Observe(func(c Change) { changes = append(changes, c) })

	st.Dispatch(CompleteOnboarding{}, Navigate{To: ScreenQuickFix}, ApplyDelta{N: DeltaRevokeRisky, Reason: "revoke_risky"}, nil)

	require.Len(t, changes, 3)
	require.Equal(t, ScreenOnboarding, changes[0].Before.Screen)
	require.Equal(t, ScreenHome, changes[0].After.Screen)
	require.False(t, changes[1].ScoreChanged())
	require.True(t, changes[2].ScoreChanged())
	require.Equal(t, 85, changes[2].After.Score)
	require.Equal(t, "apply_delta:+18", changes[2].Action.String())
	for i, c := range changes {
		require.Equal(t, uint64(i+1), c.Seq)
	}

	st.Navigate(ScreenHome)
	require.Equal(t, uint64(4), changes[3].Seq, "seq keeps counting across dispatch calls")
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	in := State{Screen: ScreenTimeline, Onboarded: true, Score: 81}
	data, err := in.Marshal()
	require.NoError(t, err)
	require.JSONEq(t, `{"screen":"timeline","onboarded":true,"score":81}`, string(data))

	out, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, in, out)

	_, err = Unmarshal([]byte(`{"screen":"nowhere","score":5}`))
	require.Error(t, err)

	clamped, err := Unmarshal([]byte(`{"screen":"home","score":140}`))
	require.NoError(t, err)
	require.Equal(t, 100, clamped.Score)
}

func TestParseScreen(t *testing.T) {
	t.Parallel()

	got, err := ParseScreen("  QuickFix ")
	require.NoError(t, err)
	require.Equal(t, ScreenQuickFix, got)

	_, err = ParseScreen("inbox")
	require.Error(t, err)
	require.Len(t, Screens(), 9)
}

func TestBandFor(t *testing.T) {
	t.Parallel()

	cases := map[int]Band{100: BandGreat, 80: BandGreat, 79: BandGood, 60: BandGood, 59: BandFair, 40: BandFair, 39: BandPoor, 0: BandPoor}
	for score, want := range cases {
		require.Equal(t, want, BandFor(score), "score %d", score)
	}
}
