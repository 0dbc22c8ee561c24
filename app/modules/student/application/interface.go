package studentservice

import (
	"context"

	"github.com/google/uuid"
	studentdb "github.com/padelcoach/coach-api/app/modules/student/infrastructure/repositories"
)

// Service manages a trainer's students.
type Service interface {
	ListStudents(ctx context.Context, trainerID uuid.UUID) ([]studentdb.Student, error)
	GetStudent(ctx context.Context, trainerID, id uuid.UUID) (*studentdb.Student, error)
	CreateStudent(ctx context.Context, trainerID uuid.UUID, in StudentInput) (*studentdb.Student, error)
	UpdateStudent(ctx context.Context, trainerID, id uuid.UUID, in StudentInput) (*studentdb.Student, error)
	DeleteStudent(ctx context.Context, trainerID, id uuid.UUID) error
}

// StudentInput is the writable part of a student.
type StudentInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	ContactInfo *string `json:"contact_info" validate:"omitempty,max=1000"`
	SkillLevel  *string `json:"skill_level" validate:"omitempty,max=100"`
	Notes       *string `json:"notes"`
}
