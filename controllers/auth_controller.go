package controllers

import (
	"github.com/gin-gonic/gin"

	"maison-decor/models"
	"maison-decor/repositories"
	"maison-decor/utils"
)

type AuthController struct {
	userRepo *repositories.UserRepository
}

func NewAuthController(userRepo *repositories.UserRepository) *AuthController {
	return &AuthController{userRepo: userRepo}
}

// @Summary Admin login
// @Description Authenticate a catalog administrator
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /api/admin/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, err := ctrl.userRepo.FindByEmail(req.Email)
	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	ok, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !ok {
		c.JSON(401, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to generate token"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    models.LoginResponse{Token: token, User: *user},
	})
}

// @Summary Get admin profile
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /api/admin/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(401, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	user, err := ctrl.userRepo.FindByID(userID.(int))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "User not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Profile retrieved", "data": user})
}
