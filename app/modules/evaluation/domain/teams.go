package evaluationdomain

import (
	"fmt"

	"github.com/google/uuid"
)

// TeamAssignment maps session participants onto the two teams.
type TeamAssignment struct {
	Team1 []uuid.UUID `json:"team1"`
	Team2 []uuid.UUID `json:"team2"`
}

// Empty reports whether no player is assigned at all.
func (a TeamAssignment) Empty() bool {
	return len(a.Team1) == 0 && len(a.Team2) == 0
}

// TeamOf returns the team a player belongs to, or NoTeam.
func (a TeamAssignment) TeamOf(player uuid.UUID) TeamID {
	for _, id := range a.Team1 {
		if id == player {
			return Team1
		}
	}
	for _, id := range a.Team2 {
		if id == player {
			return Team2
		}
	}
	return NoTeam
}

// Validate checks the assignment against the session participants. An empty
// assignment is valid and leaves every player unassigned. Sides may differ in
// size, so three players can play two against one.
func (a TeamAssignment) Validate(participants []uuid.UUID) error {
	if a.Empty() {
		return nil
	}
	for _, team := range [][]uuid.UUID{a.Team1, a.Team2} {
		if len(team) < 1 || len(team) > 2 {
			return ErrTeamSize
		}
	}

	inSession := make(map[uuid.UUID]struct{}, len(participants))
	for _, p := range participants {
		inSession[p] = struct{}{}
	}

	seen := make(map[uuid.UUID]TeamID, len(a.Team1)+len(a.Team2))
	check := func(team TeamID, ids []uuid.UUID) error {
		for _, id := range ids {
			if prev, ok := seen[id]; ok {
				if prev == team {
					return fmt.Errorf("%w: %s", ErrDuplicatePlayer, id)
				}
				return fmt.Errorf("%w: %s", ErrPlayerInBothTeams, id)
			}
			if _, ok := inSession[id]; !ok {
				return fmt.Errorf("%w: %s", ErrPlayerNotInSession, id)
			}
			seen[id] = team
		}
		return nil
	}
	if err := check(Team1, a.Team1); err != nil {
		return err
	}
	return check(Team2, a.Team2)
}

// DefaultAssignment splits a new session's participants: two players play
// one against one, four or more play the first two against the next two.
// Any other count starts unassigned.
func DefaultAssignment(participants []uuid.UUID) TeamAssignment {
	switch {
	case len(participants) == 2:
		return TeamAssignment{
			Team1: []uuid.UUID{participants[0]},
			Team2: []uuid.UUID{participants[1]},
		}
	case len(participants) >= 4:
		return TeamAssignment{
			Team1: []uuid.UUID{participants[0], participants[1]},
			Team2: []uuid.UUID{participants[2], participants[3]},
		}
	}
	return TeamAssignment{}
}
