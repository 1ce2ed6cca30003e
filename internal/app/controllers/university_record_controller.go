package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/app/models/dto"
	"github.com/yigit/unicommunity/internal/middleware"
)

// UniversityRecordController handles reviews and contacts
type UniversityRecordController struct {
	records UniversityRecorder
}

// NewUniversityRecordController creates a new UniversityRecordController
func NewUniversityRecordController(records UniversityRecorder) *UniversityRecordController {
	return &UniversityRecordController{records: records}
}

// CreateReview attaches a review to a university
// @Summary Review a university
// @Tags universities
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Review"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /reviews [post]
func (c *UniversityRecordController) CreateReview(ctx *gin.Context) {
	var req dto.CreateReviewRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	review, err := c.records.CreateReview(ctx.Request.Context(), req.UniversityName, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Review created successfully", ID: review.ID})
}

// CreateContact attaches a contact point to a university
// @Summary Add a university contact
// @Tags universities
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Contact"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /contacts [post]
func (c *UniversityRecordController) CreateContact(ctx *gin.Context) {
	var req dto.CreateContactRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	contact, err := c.records.CreateContact(ctx.Request.Context(), req.UniversityName, &models.Contact{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Contact created successfully", ID: contact.ID})
}
