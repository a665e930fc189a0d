package controllers

import (
	"github.com/gin-gonic/gin"

	"maison-decor/models"
	"maison-decor/services"
)

type EnquiryController struct {
	service *services.EnquiryService
}

func NewEnquiryController(service *services.EnquiryService) *EnquiryController {
	return &EnquiryController{service: service}
}

// @Summary Submit product enquiry
// @Description Validate an enquiry cart submission and deliver business and customer emails
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body models.EnquiryRequest true "Enquiry Request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/enquiry [post]
func (ctrl *EnquiryController) SubmitEnquiry(c *gin.Context) {
	var req models.EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := ctrl.service.SubmitEnquiry(req)
	if err != nil {
		writeSubmissionError(c, err)
		return
	}

	resp := gin.H{
		"message":   "Enquiry submitted successfully. We will contact you within 24 hours.",
		"enquiryId": result.EnquiryID,
	}
	if result.Warning != "" {
		resp["warning"] = result.Warning
	}
	c.JSON(200, resp)
}
