package evaluationdomain

import (
	"fmt"
	"strings"
)

// StatType is the kind of action a trainer records for a player.
type StatType string

const (
	StatWinner        StatType = "WINNER"
	StatForcedError   StatType = "FORCED_ERROR"
	StatUnforcedError StatType = "UNFORCED_ERROR"
	// StatManualPoint is a point awarded directly to a team, with no player or stroke.
	StatManualPoint StatType = "MANUAL_POINT"
)

// ParseStatType accepts player stat types only; manual points have their own endpoint.
func ParseStatType(s string) (StatType, error) {
	switch t := StatType(strings.ToUpper(strings.TrimSpace(s))); t {
	case StatWinner, StatForcedError, StatUnforcedError:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatType, s)
}

// PointOutcome is whether the acting player's team won or lost the rally.
type PointOutcome string

const (
	OutcomeWon  PointOutcome = "GANHO"
	OutcomeLost PointOutcome = "PERDIDO"
)

// Outcome maps a stat to the rally result for the acting player's team.
func (t StatType) Outcome() PointOutcome {
	if t == StatWinner || t == StatManualPoint {
		return OutcomeWon
	}
	return OutcomeLost
}

type StrokeType string

const (
	StrokeForehand       StrokeType = "FOREHAND"
	StrokeBackhand       StrokeType = "BACKHAND"
	StrokeSmash          StrokeType = "SMASH"
	StrokeForehandVolley StrokeType = "VOLEIO_DIREITA"
	StrokeBackhandVolley StrokeType = "VOLEIO_ESQUERDA"
	StrokeBandeja        StrokeType = "BANDEJA"
	StrokeVibora         StrokeType = "VIBORA"
	StrokeServe          StrokeType = "SAQUE"
	StrokeReturn         StrokeType = "RESTA"
	StrokeLob            StrokeType = "GLOBO"
	StrokeOther          StrokeType = "OUTRO"
)

// StrokeTypes lists every stroke in display order.
var StrokeTypes = []StrokeType{
	StrokeForehand, StrokeBackhand, StrokeSmash, StrokeForehandVolley, StrokeBackhandVolley,
	StrokeBandeja, StrokeVibora, StrokeServe, StrokeReturn, StrokeLob, StrokeOther,
}

func ParseStrokeType(s string) (StrokeType, error) {
	t := StrokeType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range StrokeTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStrokeType, s)
}

// PointWinner resolves which team a player's action awards the point to.
// A winner scores for the player's own team, any error scores for the opponents.
func PointWinner(playerTeam TeamID, stat StatType) (TeamID, error) {
	if !playerTeam.Valid() {
		return NoTeam, ErrPlayerUnassigned
	}
	if stat.Outcome() == OutcomeWon {
		return playerTeam, nil
	}
	return playerTeam.Opponent(), nil
}
