package pyq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/lms/core"
)

func newPyq(courseID, year, duration, marks int64) NewPyq {
	return NewPyq{CourseID: &courseID, Year: &year, Questions: []string{}, Duration: &duration, TotalMarks: &marks}
}

func TestService(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	created, err := svc.Create(ctx, newPyq(5, 2023, 60, 100))
	require.NoError(t, err)
	assert.Equal(t, Created{ID: PlaceholderID, CourseID: 5, Year: 2023}, created)

	created, err = svc.Create(ctx, newPyq(0, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, Created{ID: PlaceholderID}, created)

	all, err := svc.QueryAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Pyq{}, all)

	all, err = svc.QueryByCourse(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []Pyq{}, all)

	ref, err := svc.GetByYear(ctx, 5, 2021)
	require.NoError(t, err)
	assert.Equal(t, YearRef{CourseID: 5, Year: 2021}, ref)
}

func TestNewPyq_Validate(t *testing.T) {
	validate, _ := core.NewValidator()

	noYear := newPyq(5, 0, 60, 100)
	noYear.Year = nil
	noQuestions := newPyq(5, 2023, 60, 100)
	noQuestions.Questions = nil

	tests := []struct {
		name    string
		np      NewPyq
		wantErr bool
	}{
		{name: "valid", np: newPyq(5, 2023, 60, 100)},
		{name: "zero values", np: newPyq(0, 0, 0, 0)},
		{name: "year missing", np: noYear, wantErr: true},
		{name: "questions missing", np: noQuestions, wantErr: true},
		{name: "negative marks", np: newPyq(5, 2023, 60, -1), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.np.Validate(validate); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
