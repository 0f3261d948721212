package services

import (
	"github.com/huellitas/shelter-backend/internal/models"
	"github.com/huellitas/shelter-backend/internal/types"
	"github.com/huellitas/shelter-backend/internal/validate"
	"gorm.io/gorm"
)

// ScheduleInput is one weekly slot in a course payload.
type ScheduleInput struct {
	Day       models.Day `json:"day"`
	StartHour string     `json:"start_hour"`
	EndHour   string     `json:"end_hour"`
}

// CourseInput is the payload for creating a course. Schedule accepts a single
// entry or a list.
type CourseInput struct {
	Name        string                          `json:"name"`
	Description string                          `json:"description"`
	StartDate   models.Date                     `json:"start_date"`
	EndDate     models.Date                     `json:"end_date"`
	Price       float64                         `json:"price"`
	Capacity    int                             `json:"capacity"`
	Schedule    types.FlexList[ScheduleInput]   `json:"schedule"`
}

// CourseUpdateInput carries a partial update; nil fields keep their previous
// value. A non-nil schedule replaces all existing slots.
type CourseUpdateInput struct {
	Name        *string                        `json:"name"`
	Description *string                        `json:"description"`
	StartDate   *models.Date                   `json:"start_date"`
	EndDate     *models.Date                   `json:"end_date"`
	Price       *float64                       `json:"price"`
	Capacity    *int                           `json:"capacity"`
	Schedule    *types.FlexList[ScheduleInput] `json:"schedule"`
}

func buildSchedule(inputs []ScheduleInput) ([]models.Schedule, error) {
	slots := make([]models.Schedule, 0, len(inputs))
	for _, in := range inputs {
		if !in.Day.Valid() {
			return nil, types.NewValidation("Día inválido: " + string(in.Day))
		}
		if !validate.Hour(in.StartHour) || !validate.Hour(in.EndHour) {
			return nil, types.NewValidation("Formato de hora inválido")
		}
		slots = append(slots, models.Schedule{
			Day:       in.Day,
			StartHour: in.StartHour,
			EndHour:   in.EndHour,
		})
	}
	return slots, nil
}

// CreateCourse persists a course with its schedule slots.
func CreateCourse(db *gorm.DB, input CourseInput) (*models.Course, error) {
	if input.Capacity <= 0 {
		return nil, types.NewValidation("La capacidad debe ser mayor a cero")
	}
	schedule, err := buildSchedule(input.Schedule.Slice())
	if err != nil {
		return nil, err
	}

	course := models.Course{
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Price:       input.Price,
		Capacity:    input.Capacity,
		Schedule:    schedule,
	}
	if err := db.Create(&course).Error; err != nil {
		return nil, types.NewInternal("Error al crear el curso")
	}
	return &course, nil
}

// ListCourses returns all courses with their schedules loaded.
func ListCourses(db *gorm.DB) ([]models.Course, error) {
	var courses []models.Course
	if err := db.Preload("Schedule").Order("id").Find(&courses).Error; err != nil {
		return nil, types.NewInternal("Error al leer los cursos")
	}
	return courses, nil
}

// GetCourse returns one course with its schedule loaded.
func GetCourse(db *gorm.DB, courseID uint) (*models.Course, error) {
	var course models.Course
	if err := db.Preload("Schedule").First(&course, courseID).Error; err != nil {
		return nil, types.NewNotFound("Curso no encontrado")
	}
	return &course, nil
}

// UpdateCourse merges the provided fields; a provided schedule replaces the
// existing slots.
func UpdateCourse(db *gorm.DB, courseID uint, input CourseUpdateInput) error {
	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return types.NewNotFound("Curso no encontrado")
	}

	if input.Name != nil {
		course.Name = *input.Name
	}
	if input.Description != nil {
		course.Description = *input.Description
	}
	if input.StartDate != nil {
		course.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		course.EndDate = *input.EndDate
	}
	if input.Price != nil {
		course.Price = *input.Price
	}
	if input.Capacity != nil {
		if *input.Capacity <= 0 {
			return types.NewValidation("La capacidad debe ser mayor a cero")
		}
		course.Capacity = *input.Capacity
	}

	var newSchedule []models.Schedule
	if input.Schedule != nil {
		slots, err := buildSchedule(input.Schedule.Slice())
		if err != nil {
			return err
		}
		newSchedule = slots
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&course).Error; err != nil {
			return types.NewInternal("Error al actualizar el curso")
		}
		if input.Schedule != nil {
			if err := tx.Where("course_id = ?", course.ID).Delete(&models.Schedule{}).Error; err != nil {
				return types.NewInternal("Error al actualizar el horario")
			}
			for i := range newSchedule {
				newSchedule[i].CourseID = course.ID
			}
			if len(newSchedule) > 0 {
				if err := tx.Create(&newSchedule).Error; err != nil {
					return types.NewInternal("Error al actualizar el horario")
				}
			}
		}
		return nil
	})
}

// DeleteCourse removes a course; schedule slots and applicants cascade.
func DeleteCourse(db *gorm.DB, courseID uint) error {
	result := db.Select("Schedule", "Applicants").Delete(&models.Course{ID: courseID})
	if result.Error != nil {
		return types.NewInternal("Error al eliminar el curso")
	}
	if result.RowsAffected == 0 {
		return types.NewNotFound("Curso no encontrado")
	}
	return nil
}
