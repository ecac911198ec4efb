package controllers

import (
	"errors"
	"net/http"

	"github.com/VictoriaKoe/NutriTrack/services"
	"github.com/VictoriaKoe/NutriTrack/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Patients *services.PatientService
	Session  *utils.SessionManager
}

func NewAuthController(patients *services.PatientService, session *utils.SessionManager) *AuthController {
	return &AuthController{Patients: patients, Session: session}
}

type LoginInput struct {
	UserID   int    `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterInput struct {
	UserID          int    `json:"user_id" binding:"required"`
	PhoneNumber     string `json:"phone_number" binding:"required"`
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := a.Patients.Authenticate(input.UserID, input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "ID and password do not match each other. Please try again"})
		return
	}

	if err := a.Session.Login(input.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist session"})
		return
	}

	token, err := utils.GenerateJWT(input.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":                  token,
		"questionnaire_complete": a.Session.HasCompletedQuestionnaire(),
		"user_id":                input.UserID,
	})
}

// Register claims a pre-seeded patient record. The id and phone number must
// match the dataset; a mismatch is a normal failed outcome.
func (a *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.ValidatePasswordMatched(input.Password, input.ConfirmPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	err := a.Patients.Register(input.UserID, input.PhoneNumber, input.Username, input.Password)
	if errors.Is(err, services.ErrCredentialMismatch) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "ID and Phone Number do not match each other. Fail to register."})
		return
	}
	if errors.Is(err, services.ErrAlreadyRegistered) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful"})
}

func (a *AuthController) Logout(c *gin.Context) {
	if err := a.Session.Logout(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
