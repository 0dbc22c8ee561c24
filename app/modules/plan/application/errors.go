package planservice

import "errors"

var (
	// ErrPlanNotFound is returned for a plan that does not exist or is owned by another trainer.
	ErrPlanNotFound = errors.New("practice plan not found")
	// ErrUnknownExercise is returned when a plan item names an exercise the trainer does not own.
	ErrUnknownExercise = errors.New("plan references an unknown exercise")
)
