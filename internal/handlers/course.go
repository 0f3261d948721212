package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/huellitas/shelter-backend/internal/services"
	"github.com/huellitas/shelter-backend/internal/utils"
	"gorm.io/gorm"
)

// CourseHandler handles education courses and their schedules
type CourseHandler struct {
	DB *gorm.DB
}

// CreateCourse handles POST /course/create/
// @Summary Create a course
// @Description Schedule accepts one entry or a list; hours use HH:MM
// @Tags Course
// @Accept json
// @Produce json
// @Param course body services.CourseInput true "New course"
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /course/create/ [post]
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var input services.CourseInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if _, err := services.CreateCourse(h.DB, input); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Curso creado")
}

// ListCourses handles GET /course/
// @Summary List courses
// @Tags Course
// @Produce json
// @Success 200 {array} models.Course
// @Router /course/ [get]
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	courses, err := services.ListCourses(h.DB)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, courses, fiber.StatusOK)
}

// GetCourse handles GET /course/:course_id
// @Summary Get a course
// @Tags Course
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {object} models.Course
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /course/{course_id} [get]
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	courseID, err := parseID(c, "course_id")
	if err != nil {
		return err
	}
	course, err := services.GetCourse(h.DB, courseID)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, course, fiber.StatusOK)
}

// UpdateCourse handles PUT /course/update/:course_id
// @Summary Update a course
// @Description A schedule in the payload replaces all existing slots
// @Tags Course
// @Accept json
// @Produce json
// @Param course_id path int true "Course ID"
// @Param course body services.CourseUpdateInput true "Fields to change"
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /course/update/{course_id} [put]
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := parseID(c, "course_id")
	if err != nil {
		return err
	}
	var input services.CourseUpdateInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := services.UpdateCourse(h.DB, courseID, input); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Curso actualizado")
}

// DeleteCourse handles DELETE /course/delete/:course_id
// @Summary Delete a course
// @Description Removes the course with its schedule and applicants
// @Tags Course
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {object} utils.DeleteResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /course/delete/{course_id} [delete]
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := parseID(c, "course_id")
	if err != nil {
		return err
	}
	if err := services.DeleteCourse(h.DB, courseID); err != nil {
		return err
	}
	return utils.DeleteResponse(c, "Curso eliminado")
}
