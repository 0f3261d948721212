package services_test

import (
	"testing"
	"time"

	"github.com/huellitas/shelter-backend/internal/models"
	"github.com/huellitas/shelter-backend/internal/services"
	"github.com/huellitas/shelter-backend/internal/types"
	"github.com/huellitas/shelter-backend/tests/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func courseInput(capacity int, schedule ...services.ScheduleInput) services.CourseInput {
	return services.CourseInput{
		Name:        "Adiestramiento básico",
		Description: "Curso introductorio",
		StartDate:   models.NewDate(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:     models.NewDate(time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)),
		Price:       50,
		Capacity:    capacity,
		Schedule:    types.FlexList[services.ScheduleInput](schedule),
	}
}

func TestCreateCourseWithSchedule(t *testing.T) {
	db := helpers.OpenTestDB(t)

	course, err := services.CreateCourse(db, courseInput(10,
		services.ScheduleInput{Day: models.Monday, StartHour: "10:00", EndHour: "12:00"},
		services.ScheduleInput{Day: models.Friday, StartHour: "15:30", EndHour: "17:00"},
	))
	require.NoError(t, err)

	got, err := services.GetCourse(db, course.ID)
	require.NoError(t, err)
	require.Len(t, got.Schedule, 2)
	assert.Equal(t, models.Monday, got.Schedule[0].Day)
	assert.Equal(t, "15:30", got.Schedule[1].StartHour)
}

func TestCreateCourseValidation(t *testing.T) {
	db := helpers.OpenTestDB(t)

	_, err := services.CreateCourse(db, courseInput(0))
	require.Error(t, err)
	assert.True(t, types.IsValidation(err))

	_, err = services.CreateCourse(db, courseInput(5,
		services.ScheduleInput{Day: "someday", StartHour: "10:00", EndHour: "12:00"},
	))
	require.Error(t, err)
	assert.True(t, types.IsValidation(err))

	_, err = services.CreateCourse(db, courseInput(5,
		services.ScheduleInput{Day: models.Monday, StartHour: "25:00", EndHour: "12:00"},
	))
	require.Error(t, err)
	assert.True(t, types.IsValidation(err))
}

func TestUpdateCourseReplacesSchedule(t *testing.T) {
	db := helpers.OpenTestDB(t)

	course, err := services.CreateCourse(db, courseInput(10,
		services.ScheduleInput{Day: models.Monday, StartHour: "10:00", EndHour: "12:00"},
	))
	require.NoError(t, err)

	newSchedule := types.FlexList[services.ScheduleInput]{
		{Day: models.Saturday, StartHour: "09:00", EndHour: "11:00"},
		{Day: models.Sunday, StartHour: "09:00", EndHour: "11:00"},
	}
	capacity := 20
	require.NoError(t, services.UpdateCourse(db, course.ID, services.CourseUpdateInput{
		Capacity: &capacity,
		Schedule: &newSchedule,
	}))

	got, err := services.GetCourse(db, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Capacity)
	require.Len(t, got.Schedule, 2)
	assert.Equal(t, models.Saturday, got.Schedule[0].Day)
}

func TestDeleteCourseCascades(t *testing.T) {
	db := helpers.OpenTestDB(t)
	cipher := helpers.NewTestCipher(t)

	course, err := services.CreateCourse(db, courseInput(10,
		services.ScheduleInput{Day: models.Monday, StartHour: "10:00", EndHour: "12:00"},
	))
	require.NoError(t, err)

	_, err = services.CreateApplicant(db, cipher, applicantInput(course.ID, "a@test.com"), nil)
	require.NoError(t, err)

	require.NoError(t, services.DeleteCourse(db, course.ID))

	var schedules, applicants int64
	db.Model(&models.Schedule{}).Count(&schedules)
	db.Model(&models.Applicant{}).Count(&applicants)
	assert.Zero(t, schedules)
	assert.Zero(t, applicants)

	err = services.DeleteCourse(db, course.ID)
	require.Error(t, err)
	assert.True(t, types.IsNotFound(err))
}
