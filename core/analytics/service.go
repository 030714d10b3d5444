package analytics

import (
	"context"

	"github.com/trezcool/lms/core"
)

// Service answers analytics requests; nothing is recorded or computed.
type Service struct {
	logger core.Logger
}

func NewService(logger core.Logger) *Service {
	return &Service{logger: logger}
}

// Track acknowledges the activity. It only shows up in debug logs.
func (svc *Service) Track(_ context.Context, act Activity) error {
	svc.logger.Debug("activity discarded", map[string]interface{}{
		"user_id":   core.Value(act.UserID),
		"course_id": core.Value(act.CourseID),
		"action":    core.Value(act.Action),
		"timestamp": core.Value(act.Timestamp),
	})
	return nil
}

func (svc *Service) Progress(_ context.Context, userID string, courseID int64) (Progress, error) {
	return Progress{UserID: userID, CourseID: courseID}, nil
}

func (svc *Service) CourseStats(_ context.Context, courseID int64) (CourseStats, error) {
	return CourseStats{CourseID: courseID}, nil
}
