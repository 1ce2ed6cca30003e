package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unicommunity/internal/app/models/dto"
	"github.com/yigit/unicommunity/internal/middleware"
)

// EnrollmentController handles student enrollments
type EnrollmentController struct {
	enrollments Enroller
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollments Enroller) *EnrollmentController {
	return &EnrollmentController{enrollments: enrollments}
}

// Enroll enrolls a student in a course
// @Summary Enroll a student in a course
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.EnrollRequest true "Enrollment"
// @Success 201 {object} dto.EnrollResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Router /enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	enrollment, err := c.enrollments.Enroll(ctx.Request.Context(), req.StudentID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.EnrollResponse{
		Message:      "Enrollment successful",
		EnrollmentID: enrollment.ID,
	})
}

// GetStudentCourses lists the courses of a student
// @Summary List a student's courses
// @Tags enrollments
// @Produce json
// @Param student_id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.StudentCoursesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid student id"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{student_id}/courses [get]
func (c *EnrollmentController) GetStudentCourses(ctx *gin.Context) {
	studentID, ok := middleware.ParseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	courses, err := c.enrollments.ListStudentCourses(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentCoursesResponse{Courses: courses})
}
