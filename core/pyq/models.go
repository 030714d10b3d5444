package pyq

import "github.com/go-playground/validator/v10"

// PlaceholderID is the identifier handed to every question set.
const PlaceholderID int64 = 1

// Pyq is a set of past year questions of a Course.
type Pyq struct {
	ID         int64    `json:"id"`
	CourseID   int64    `json:"course_id"`
	Year       int64    `json:"year"`
	Questions  []string `json:"questions"`
	Duration   int64    `json:"duration"`
	TotalMarks int64    `json:"total_marks"`
}

type (
	Created struct {
		ID       int64 `json:"id"`
		CourseID int64 `json:"course_id"`
		Year     int64 `json:"year"`
	}

	YearRef struct {
		CourseID int64 `json:"course_id"`
		Year     int64 `json:"year"`
	}
)

// NewPyq contains information needed to create a Pyq. Every field must be present.
type NewPyq struct {
	CourseID   *int64   `json:"course_id" validate:"required,gte=0"`
	Year       *int64   `json:"year" validate:"required,gte=0"`
	Questions  []string `json:"questions" validate:"required"`
	Duration   *int64   `json:"duration" validate:"required,gte=0"`
	TotalMarks *int64   `json:"total_marks" validate:"required,gte=0"`
}

func (np *NewPyq) Validate(validate *validator.Validate) error {
	return validate.Struct(np)
}
