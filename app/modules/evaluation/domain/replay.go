package evaluationdomain

import "fmt"

// PointAward is one entry of the stat log as seen by the score engine.
// Winner is NoTeam for actions that did not move the score.
type PointAward struct {
	Winner      TeamID
	GoldenPoint bool
}

// Replay rebuilds a score from scratch by applying every award in log order,
// each under the golden point rule that was in effect when it was recorded.
// The returned state carries goldenPoint as the session's current setting.
func Replay(awards []PointAward, goldenPoint bool) (ScoreState, error) {
	state := NewScoreState()
	for i, a := range awards {
		if a.Winner == NoTeam {
			continue
		}
		state.GoldenPoint = a.GoldenPoint
		next, err := AwardPoint(state, a.Winner)
		if err != nil {
			return NewScoreState(), fmt.Errorf("replay award %d: %w", i, err)
		}
		state = next
	}
	return ToggleGoldenPoint(state, goldenPoint), nil
}
