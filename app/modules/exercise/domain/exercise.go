package exercisedomain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidType is returned for an exercise type outside the known set.
var ErrInvalidType = errors.New("invalid exercise type")

// Type classifies a drill.
type Type string

const (
	TypeTechnical Type = "TECNICO"
	TypeTactical  Type = "TATICO"
	TypePhysical  Type = "FISICO"
	TypeWarmUp    Type = "AQUECIMENTO"
	TypeCoolDown  Type = "VOLTA_A_CALMA"
)

var Types = []Type{TypeTechnical, TypeTactical, TypePhysical, TypeWarmUp, TypeCoolDown}

// ParseType accepts any casing of a known type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Types {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
}
