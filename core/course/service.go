package course

import (
	"context"

	"github.com/trezcool/lms/core"
)

// Service answers CMS requests without storing anything.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (svc *Service) Create(_ context.Context, nc NewCourse) (Course, error) {
	return Course{
		ID:          PlaceholderID,
		Title:       core.Value(nc.Title),
		Description: core.Value(nc.Description),
		Instructor:  core.Value(nc.Instructor),
		Duration:    core.Value(nc.Duration),
	}, nil
}

// QueryAll is always empty, whatever was created before.
func (svc *Service) QueryAll(context.Context) ([]Course, error) {
	return []Course{}, nil
}

func (svc *Service) GetByID(_ context.Context, id int64) (Summary, error) {
	return Summary{ID: id, Title: PlaceholderTitle}, nil
}

func (svc *Service) Update(_ context.Context, id int64, nc NewCourse) (Summary, error) {
	return Summary{ID: id, Title: core.Value(nc.Title)}, nil
}

func (svc *Service) Delete(context.Context, int64) error {
	return nil
}
