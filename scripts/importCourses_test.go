package main

import (
	"strings"
	"testing"

	"learnhub/models"
	"learnhub/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestImportCourses(t *testing.T) {
	db := testutils.SetupTestDB(t)
	instructor := testutils.CreateTestUser(db, testutils.WithEmail("grace@example.com"), testutils.WithRole(models.RoleInstructor))
	testutils.CreateTestUser(db, testutils.WithEmail("ada@example.com"))

	csv := strings.Join([]string{
		"title,description,category,level,instructor_email",
		"Go Basics,Intro to Go,programming,beginner,grace@example.com",
		"SQL,Queries,databases,intermediate, grace@example.com",
		"Student Course,Nope,misc,beginner,ada@example.com",
		"Ghost Course,Nope,misc,beginner,ghost@example.com",
		",Missing title,misc,beginner,grace@example.com",
	}, "\n")

	result, err := importCourses(db, strings.NewReader(csv), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, importResult{Inserted: 2, Skipped: 3}, result)

	var courses []models.Course
	require.NoError(t, db.Order("id").Find(&courses).Error)
	require.Len(t, courses, 2)
	assert.Equal(t, "Go Basics", courses[0].Title)
	assert.Equal(t, "intermediate", courses[1].Level)
	for _, course := range courses {
		assert.Equal(t, instructor.ID, course.InstructorID)
	}
}

func TestImportCourses_BadInput(t *testing.T) {
	db := testutils.SetupTestDB(t)

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty file", input: "", wantErr: "empty"},
		{name: "missing column", input: "title,description,category,level\nGo,Intro,programming,beginner", wantErr: `missing column "instructor_email"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := importCourses(db, strings.NewReader(tt.input), zap.NewNop())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
