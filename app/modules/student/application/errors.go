package studentservice

import "errors"

// ErrStudentNotFound is returned for a student that does not exist or is owned by another trainer.
var ErrStudentNotFound = errors.New("student not found")
