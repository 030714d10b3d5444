package syllabus

import "github.com/go-playground/validator/v10"

// PlaceholderID is the identifier handed to every syllabus.
const PlaceholderID int64 = 1

type Syllabus struct {
	ID         int64    `json:"id"`
	CourseID   int64    `json:"course_id"`
	Topics     []string `json:"topics"`
	Duration   int64    `json:"duration"`
	Objectives []string `json:"objectives"`
}

type (
	// Created is returned once a Syllabus is created.
	Created struct {
		ID       int64    `json:"id"`
		CourseID int64    `json:"course_id"`
		Topics   []string `json:"topics"`
	}

	// Ref identifies a Syllabus and its Course.
	Ref struct {
		ID       int64 `json:"id"`
		CourseID int64 `json:"course_id"`
	}
)

// Input is the body accepted on create and update. Every field must be present;
// an empty list counts as present, null does not.
type Input struct {
	CourseID   *int64   `json:"course_id" validate:"required,gte=0"`
	Topics     []string `json:"topics" validate:"required"`
	Duration   *int64   `json:"duration" validate:"required,gte=0"`
	Objectives []string `json:"objectives" validate:"required"`
}

func (in *Input) Validate(validate *validator.Validate) error {
	return validate.Struct(in)
}
