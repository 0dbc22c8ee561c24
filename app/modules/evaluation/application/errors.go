package evaluationservice

import "errors"

var (
	// ErrSessionNotFound is returned for a session that does not exist or is owned by another trainer.
	ErrSessionNotFound = errors.New("game session not found")
	// ErrUnknownStudent is returned when a new session names a student the trainer does not own.
	ErrUnknownStudent = errors.New("session references an unknown student")
	// ErrStudentNotInSession is returned when a stat names a student outside the session.
	ErrStudentNotInSession = errors.New("student is not a participant of this session")
	// ErrNothingToUndo is returned by undo on an empty stat log.
	ErrNothingToUndo = errors.New("no stats to undo")
	// ErrNothingToChart is returned when no player action has been recorded yet.
	ErrNothingToChart = errors.New("no player stats to chart")
)
