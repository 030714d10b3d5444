package analytics

import "github.com/go-playground/validator/v10"

// Activity is a user action on a course. It is accepted and discarded.
type Activity struct {
	UserID    *string `json:"user_id" validate:"required"`
	CourseID  *int64  `json:"course_id" validate:"required,gte=0"`
	Action    *string `json:"action" validate:"required"`
	Timestamp *string `json:"timestamp" validate:"required"`
}

func (a *Activity) Validate(validate *validator.Validate) error {
	return validate.Struct(a)
}

type Progress struct {
	UserID   string  `json:"user_id"`
	CourseID int64   `json:"course_id"`
	Progress float64 `json:"progress"`
}

type CourseStats struct {
	CourseID        int64 `json:"course_id"`
	TotalUsers      int   `json:"total_users"`
	TotalActivities int   `json:"total_activities"`
}
