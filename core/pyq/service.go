package pyq

import (
	"context"

	"github.com/trezcool/lms/core"
)

// Service answers PYQ requests without storing anything.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (svc *Service) Create(_ context.Context, np NewPyq) (Created, error) {
	return Created{ID: PlaceholderID, CourseID: core.Value(np.CourseID), Year: core.Value(np.Year)}, nil
}

// QueryAll is always empty.
func (svc *Service) QueryAll(context.Context) ([]Pyq, error) {
	return []Pyq{}, nil
}

// QueryByCourse is always empty.
func (svc *Service) QueryByCourse(context.Context, int64) ([]Pyq, error) {
	return []Pyq{}, nil
}

func (svc *Service) GetByYear(_ context.Context, courseID, year int64) (YearRef, error) {
	return YearRef{CourseID: courseID, Year: year}, nil
}
