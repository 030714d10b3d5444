package syllabus

import (
	"context"

	"github.com/trezcool/lms/core"
)

// Service answers syllabus requests without storing anything.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Create echoes the course and its topics, as sent.
func (svc *Service) Create(_ context.Context, in Input) (Created, error) {
	topics := in.Topics
	if topics == nil {
		topics = []string{}
	}
	return Created{ID: PlaceholderID, CourseID: core.Value(in.CourseID), Topics: topics}, nil
}

// QueryAll is always empty.
func (svc *Service) QueryAll(context.Context) ([]Syllabus, error) {
	return []Syllabus{}, nil
}

// QueryByCourse is always empty.
func (svc *Service) QueryByCourse(context.Context, int64) ([]Syllabus, error) {
	return []Syllabus{}, nil
}

func (svc *Service) Update(_ context.Context, id int64, in Input) (Ref, error) {
	return Ref{ID: id, CourseID: core.Value(in.CourseID)}, nil
}
