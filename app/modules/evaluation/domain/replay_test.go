package evaluationdomain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func awards(golden bool, winners ...TeamID) []PointAward {
	out := make([]PointAward, len(winners))
	for i, w := range winners {
		out[i] = PointAward{Winner: w, GoldenPoint: golden}
	}
	return out
}

func TestReplay_MatchesIncrementalScoring(t *testing.T) {
	log := awards(false, Team1, Team2, Team1, Team2, Team1, Team2, Team2, Team1, Team1, Team1)

	state := NewScoreState()
	state.GoldenPoint = false
	for _, a := range log {
		var err error
		state, err = AwardPoint(state, a.Winner)
		require.NoError(t, err)
	}

	replayed, err := Replay(log, false)
	require.NoError(t, err)
	if diff := cmp.Diff(state, replayed); diff != "" {
		t.Errorf("replay diverged (-incremental +replayed):\n%s", diff)
	}
}

func TestReplay_SkipsUnscoredAwards(t *testing.T) {
	log := []PointAward{
		{Winner: Team1},
		{Winner: NoTeam},
		{Winner: Team1},
		{Winner: NoTeam},
	}

	got, err := Replay(log, true)
	require.NoError(t, err)
	assert.Equal(t, Thirty, got.Team1.Points)
	assert.Equal(t, Love, got.Team2.Points)
	assert.True(t, got.GoldenPoint)
}

func TestReplay_UsesGoldenFlagRecordedWithEachAward(t *testing.T) {
	// Reach deuce, then the deciding point was played under golden point.
	log := append(awards(false, Team1, Team1, Team1, Team2, Team2, Team2), PointAward{Winner: Team2, GoldenPoint: true})

	got, err := Replay(log, false)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Team2.Games)
	assert.Equal(t, Love, got.Team1.Points)
	assert.False(t, got.GoldenPoint, "final state carries the session's current flag")

	// Toggling the session flag afterwards does not rewrite the completed game.
	again, err := Replay(log, true)
	require.NoError(t, err)
	assert.Equal(t, got.Team2.Games, again.Team2.Games)
}

func TestReplay_UndoByDroppingLastAward(t *testing.T) {
	log := awards(false, Team1, Team1, Team1, Team2, Team2, Team2, Team1)

	full, err := Replay(log, false)
	require.NoError(t, err)
	assert.Equal(t, Advantage, full.Team1.Points)

	undone, err := Replay(log[:len(log)-1], false)
	require.NoError(t, err)
	assert.Equal(t, Forty, undone.Team1.Points)
	assert.Equal(t, Forty, undone.Team2.Points)
}

func TestReplay_Empty(t *testing.T) {
	got, err := Replay(nil, false)
	require.NoError(t, err)

	want := NewScoreState()
	want.GoldenPoint = false
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected state (-want +got):\n%s", diff)
	}
}

func TestReplay_InvalidAward(t *testing.T) {
	_, err := Replay([]PointAward{{Winner: Team1}, {Winner: 5}}, true)
	assert.ErrorIs(t, err, ErrInvalidTeam)
	assert.Contains(t, err.Error(), "replay award 1")
}
