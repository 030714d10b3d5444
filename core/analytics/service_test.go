package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/lms/core"
)

func newActivity(userID string, courseID int64, action, ts string) Activity {
	return Activity{UserID: &userID, CourseID: &courseID, Action: &action, Timestamp: &ts}
}

type recordingLogger struct {
	debugs []string
}

func (l *recordingLogger) Debug(msg string, _ ...interface{}) { l.debugs = append(l.debugs, msg) }
func (l *recordingLogger) Info(string, ...interface{})        {}
func (l *recordingLogger) Warn(string, ...interface{})        {}
func (l *recordingLogger) Error(string, ...interface{})       {}
func (l *recordingLogger) Fatal(string, ...interface{})       {}

func TestService(t *testing.T) {
	logger := new(recordingLogger)
	svc := NewService(logger)
	ctx := context.Background()

	require.NoError(t, svc.Track(ctx, newActivity("u1", 2, "view", "2024-01-01T00:00:00Z")))
	assert.Equal(t, []string{"activity discarded"}, logger.debugs)

	// tracked activities do not count
	prog, err := svc.Progress(ctx, "u1", 2)
	require.NoError(t, err)
	assert.Equal(t, Progress{UserID: "u1", CourseID: 2, Progress: 0}, prog)

	stats, err := svc.CourseStats(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, CourseStats{CourseID: 2}, stats)
}

func TestActivity_Validate(t *testing.T) {
	validate, _ := core.NewValidator()

	tests := []struct {
		name    string
		act     Activity
		wantErr bool
	}{
		{name: "valid", act: newActivity("u1", 1, "view", "now")},
		{name: "empty strings and zero course", act: newActivity("", 0, "", "")},
		{name: "user_id missing", act: Activity{CourseID: core.Ptr(int64(1)), Action: core.Ptr("view"), Timestamp: core.Ptr("now")}, wantErr: true},
		{name: "timestamp missing", act: Activity{UserID: core.Ptr("u1"), CourseID: core.Ptr(int64(1)), Action: core.Ptr("view")}, wantErr: true},
		{name: "negative course_id", act: newActivity("u1", -1, "view", "now"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.act.Validate(validate); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
