package exerciseservice

import "errors"

var (
	// ErrExerciseNotFound is returned for an exercise that does not exist or is owned by another trainer.
	ErrExerciseNotFound = errors.New("exercise not found")
	// ErrExerciseInUse is returned when deleting an exercise still referenced by a practice plan.
	ErrExerciseInUse = errors.New("exercise is used by one or more practice plans")
)
