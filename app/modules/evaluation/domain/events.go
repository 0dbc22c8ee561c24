package evaluationdomain

import "github.com/google/uuid"

// Topics published on the event bus after a stat log change commits.
const (
	StatRecordedTopic = "evaluation.stat.recorded"
	StatUndoneTopic   = "evaluation.stat.undone"
)

// StatRecordedPayload describes a stat that was just appended to a session
// log. PointWinner is NoTeam for an unscored action; GameWinner is NoTeam
// unless the point closed a game.
type StatRecordedPayload struct {
	SessionID   uuid.UUID `json:"session_id"`
	StatID      uuid.UUID `json:"stat_id"`
	StatType    StatType  `json:"stat_type"`
	PointWinner TeamID    `json:"point_winner"`
	GameWinner  TeamID    `json:"game_winner"`
}

// StatUndonePayload describes the removal of a session's last stat.
type StatUndonePayload struct {
	SessionID uuid.UUID `json:"session_id"`
	StatID    uuid.UUID `json:"stat_id"`
}
