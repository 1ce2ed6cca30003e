package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unicommunity/internal/app/models/dto"
	"github.com/yigit/unicommunity/internal/middleware"
)

// RegistrationController handles POST /register
type RegistrationController struct {
	registrar Registrar
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrar Registrar) *RegistrationController {
	return &RegistrationController{registrar: registrar}
}

// Register handles registration of every user type
// @Summary Register a user or an entity
// @Description Registers a student, professor, university, faculty, department or course selected by user_type.
// @Description Usernames are lower-cased with whitespace removed. Registering a university also creates its default chat.
// @Tags registration
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.RegisterResponse "Registration successful"
// @Failure 400 {object} dto.ErrorResponse "Incomplete data, invalid user type or duplicate"
// @Failure 404 {object} dto.ErrorResponse "Parent university, faculty or department not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (c *RegistrationController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.registrar.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}
