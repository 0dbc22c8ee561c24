package evaluationdomain

import "errors"

var (
	// ErrInvalidTeam is returned when a point is awarded to anything other than team 1 or 2.
	ErrInvalidTeam = errors.New("invalid team: must be 1 or 2")
	// ErrStateNotInitialized is returned for a ScoreState whose teams were never set up.
	ErrStateNotInitialized = errors.New("score state not initialized with two teams")
	// ErrMalformedState is returned for point combinations no legal sequence can produce.
	ErrMalformedState = errors.New("malformed score state")
	// ErrInvalidPointScore is returned when a display string is not one of 0/15/30/40/AD.
	ErrInvalidPointScore = errors.New("invalid point score")

	ErrPlayerUnassigned = errors.New("cannot auto-score, assign player to a team")

	ErrInvalidStatType   = errors.New("invalid stat type")
	ErrInvalidStrokeType = errors.New("invalid stroke type")

	ErrTeamSize           = errors.New("each team needs one or two players")
	ErrPlayerInBothTeams  = errors.New("player cannot be in both teams")
	ErrDuplicatePlayer    = errors.New("player listed twice in the same team")
	ErrPlayerNotInSession = errors.New("player is not a participant of this session")
)
