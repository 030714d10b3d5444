package course

import "github.com/go-playground/validator/v10"

// Every course is handed the same identifier and lookups the same title.
const (
	PlaceholderID    int64 = 1
	PlaceholderTitle       = "Sample Course"
)

type Course struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Instructor  string `json:"instructor"`
	Duration    int64  `json:"duration"`
}

// Summary is the short form returned by lookups and updates.
type Summary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// NewCourse is the body accepted on create and update. Every field must be present;
// values are taken as sent.
type NewCourse struct {
	Title       *string `json:"title" validate:"required"`
	Description *string `json:"description" validate:"required"`
	Instructor  *string `json:"instructor" validate:"required"`
	Duration    *int64  `json:"duration" validate:"required,gte=0"`
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	return validate.Struct(nc)
}
