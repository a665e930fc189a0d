package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"maison-decor/models"
	"maison-decor/services"
)

type ContactController struct {
	service *services.EnquiryService
}

func NewContactController(service *services.EnquiryService) *ContactController {
	return &ContactController{service: service}
}

// @Summary Submit contact message
// @Description Validate a contact form submission and deliver it by email
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Contact Request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/contact [post]
func (ctrl *ContactController) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := ctrl.service.SubmitContact(req)
	if err != nil {
		writeSubmissionError(c, err)
		return
	}

	resp := gin.H{"success": true, "message": result.Message}
	if result.Warning != "" {
		resp["warning"] = result.Warning
	}
	c.JSON(200, resp)
}

func writeSubmissionError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(400, gin.H{"error": "Validation failed", "details": verr.Details})
	case errors.Is(err, services.ErrServiceMisconfigured):
		c.JSON(500, gin.H{"error": "Service temporarily unavailable. Please try again later."})
	default:
		c.JSON(500, gin.H{"error": "Failed to send message. Please try again."})
	}
}
