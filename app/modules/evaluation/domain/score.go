package evaluationdomain

import (
	"fmt"
)

// PointScore is a team's standing within the current game.
// It is a closed enumeration; transitions between values are looked up, never computed.
type PointScore int

const (
	Love PointScore = iota
	Fifteen
	Thirty
	Forty
	Advantage
)

var pointScoreDisplay = [...]string{
	Love:      "0",
	Fifteen:   "15",
	Thirty:    "30",
	Forty:     "40",
	Advantage: "AD",
}

func (p PointScore) Valid() bool {
	return p >= Love && p <= Advantage
}

func (p PointScore) String() string {
	if !p.Valid() {
		return fmt.Sprintf("PointScore(%d)", int(p))
	}
	return pointScoreDisplay[p]
}

// ParsePointScore is the inverse of String for the five enumerated values.
func ParsePointScore(s string) (PointScore, error) {
	for i, d := range pointScoreDisplay {
		if d == s {
			return PointScore(i), nil
		}
	}
	return Love, fmt.Errorf("%w: %q", ErrInvalidPointScore, s)
}

func (p PointScore) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPointScore, int(p))
	}
	return []byte(p.String()), nil
}

func (p *PointScore) UnmarshalText(b []byte) error {
	v, err := ParsePointScore(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// TeamID identifies one of the two sides of an evaluation session.
type TeamID int

const (
	NoTeam TeamID = 0
	Team1  TeamID = 1
	Team2  TeamID = 2
)

func (t TeamID) Valid() bool { return t == Team1 || t == Team2 }

// Opponent returns the other team. Only meaningful for a valid TeamID.
func (t TeamID) Opponent() TeamID {
	if t == Team1 {
		return Team2
	}
	return Team1
}

type Team struct {
	ID     TeamID     `json:"id"`
	Points PointScore `json:"points"`
	Games  int        `json:"games"`
}

// ScoreState is the full score of a session: both teams plus the golden point rule.
type ScoreState struct {
	Team1       Team `json:"team1"`
	Team2       Team `json:"team2"`
	GoldenPoint bool `json:"golden_point"`
}

// NewScoreState returns a fresh score with both teams at love and golden point on.
func NewScoreState() ScoreState {
	return ScoreState{
		Team1:       Team{ID: Team1},
		Team2:       Team{ID: Team2},
		GoldenPoint: true,
	}
}

func (s ScoreState) Team(id TeamID) Team {
	if id == Team2 {
		return s.Team2
	}
	return s.Team1
}

func (s ScoreState) initialized() bool {
	return s.Team1.ID == Team1 && s.Team2.ID == Team2
}

type pointKey struct {
	winner PointScore
	loser  PointScore
	golden bool
}

type transition struct {
	winner  PointScore
	loser   PointScore
	gameWon bool
}

// transitions is keyed on (winner's points, loser's points, golden point).
// Any pair missing from the table cannot be produced by legal play.
var transitions = buildTransitions()

func buildTransitions() map[pointKey]transition {
	t := make(map[pointKey]transition)
	regular := []PointScore{Love, Fifteen, Thirty, Forty}

	for _, golden := range []bool{false, true} {
		for _, l := range regular {
			t[pointKey{Love, l, golden}] = transition{winner: Fifteen, loser: l}
			t[pointKey{Fifteen, l, golden}] = transition{winner: Thirty, loser: l}
			t[pointKey{Thirty, l, golden}] = transition{winner: Forty, loser: l}
		}
		for _, l := range []PointScore{Love, Fifteen, Thirty} {
			t[pointKey{Forty, l, golden}] = transition{gameWon: true}
		}
	}

	// Deuce.
	t[pointKey{Forty, Forty, false}] = transition{winner: Advantage, loser: Forty}
	t[pointKey{Forty, Forty, true}] = transition{gameWon: true}

	// Advantage cancelled, or converted.
	t[pointKey{Forty, Advantage, false}] = transition{winner: Forty, loser: Forty}
	t[pointKey{Advantage, Forty, false}] = transition{gameWon: true}

	// An advantage left over from before golden point was switched on counts as
	// deuce: whoever wins the next point takes the game.
	t[pointKey{Forty, Advantage, true}] = transition{gameWon: true}
	t[pointKey{Advantage, Forty, true}] = transition{gameWon: true}

	return t
}

// AwardPoint applies one won rally to the score. It never mutates its input;
// on error the returned state is the input unchanged.
func AwardPoint(state ScoreState, winner TeamID) (ScoreState, error) {
	if !state.initialized() {
		return state, ErrStateNotInitialized
	}
	if !winner.Valid() {
		return state, fmt.Errorf("%w: %d", ErrInvalidTeam, int(winner))
	}
	if state.Team1.Games < 0 || state.Team2.Games < 0 {
		return state, fmt.Errorf("%w: negative game count", ErrMalformedState)
	}

	w, l := state.Team(winner), state.Team(winner.Opponent())

	tr, ok := transitions[pointKey{w.Points, l.Points, state.GoldenPoint}]
	if !ok {
		return state, fmt.Errorf("%w: %s-%s", ErrMalformedState, w.Points, l.Points)
	}

	if tr.gameWon {
		w.Games++
		w.Points, l.Points = Love, Love
	} else {
		w.Points, l.Points = tr.winner, tr.loser
	}

	next := state
	if winner == Team1 {
		next.Team1, next.Team2 = w, l
	} else {
		next.Team1, next.Team2 = l, w
	}
	return next, nil
}

// ToggleGoldenPoint only sets the flag. Points already on the board are left as
// they are; the next AwardPoint resolves any advantage under the new rule.
func ToggleGoldenPoint(state ScoreState, enabled bool) ScoreState {
	state.GoldenPoint = enabled
	return state
}

// GameWinner reports which team, if any, won a game between prev and next.
func GameWinner(prev, next ScoreState) (TeamID, bool) {
	switch {
	case next.Team1.Games > prev.Team1.Games:
		return Team1, true
	case next.Team2.Games > prev.Team2.Games:
		return Team2, true
	}
	return NoTeam, false
}

type TeamView struct {
	Points string `json:"points"`
	Games  int    `json:"games"`
}

// ScoreView is the display form of a ScoreState.
type ScoreView struct {
	Team1       TeamView `json:"team1"`
	Team2       TeamView `json:"team2"`
	GoldenPoint bool     `json:"golden_point"`
}

func (s ScoreState) Display() ScoreView {
	return ScoreView{
		Team1:       TeamView{Points: s.Team1.Points.String(), Games: s.Team1.Games},
		Team2:       TeamView{Points: s.Team2.Points.String(), Games: s.Team2.Games},
		GoldenPoint: s.GoldenPoint,
	}
}
