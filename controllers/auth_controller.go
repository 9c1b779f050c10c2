// controllers/auth_controller.go
package controllers

import (
	"log"
	"net/http"

	"sangamstay/services"
	"sangamstay/utils"

	"github.com/gin-gonic/gin"
)

type RegisterPayload struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{Users: users}
}

// Register creates a user account and returns a session token.
func (ctrl *AuthController) Register(c *gin.Context) {
	var payload RegisterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "invalid request payload", err)
		return
	}

	user, err := ctrl.Users.Register(services.RegisterInput{
		Username: payload.Username,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Password: payload.Password,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("Register: token generation failed for user %d: %v", user.ID, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"user": user, "token": token})
}

// Login authenticates email + password and returns a session token.
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "invalid request payload", err)
		return
	}

	user, err := ctrl.Users.Authenticate(payload.Email, payload.Password)
	if err != nil {
		serviceError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("Login: token generation failed for user %d: %v", user.ID, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": user, "token": token})
}

// Profile returns the authenticated user with their booking history.
func (ctrl *AuthController) Profile(c *gin.Context) {
	act := actor(c)
	user, err := ctrl.Users.Profile(act.ID)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
