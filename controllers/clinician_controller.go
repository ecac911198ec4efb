package controllers

import (
	"net/http"
	"os"

	"github.com/VictoriaKoe/NutriTrack/models"
	"github.com/VictoriaKoe/NutriTrack/services"

	"github.com/gin-gonic/gin"
)

// defaultClinicianKey is the built-in admin access key; override with the
// CLINICIAN_KEY env var in any real deployment.
const defaultClinicianKey = "dollar-entry-apples"

type ClinicianController struct {
	Patients *services.PatientService
	GenAI    *services.GenAIService
}

func NewClinicianController(patients *services.PatientService, genAI *services.GenAIService) *ClinicianController {
	return &ClinicianController{Patients: patients, GenAI: genAI}
}

func clinicianKey() string {
	if k := os.Getenv("CLINICIAN_KEY"); k != "" {
		return k
	}
	return defaultClinicianKey
}

// KeyMiddleware gates the clinician routes behind the static access key,
// supplied in the X-Clinician-Key header.
func (cl *ClinicianController) KeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Clinician-Key") != clinicianKey() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid access key. Please try again."})
			return
		}
		c.Next()
	}
}

type ClinicianLoginInput struct {
	AccessKey string `json:"access_key" binding:"required"`
}

// Login checks the access key so the clinician screen can gate entry before
// making data requests.
func (cl *ClinicianController) Login(c *gin.Context) {
	var input ClinicianLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.AccessKey != clinicianKey() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid access key. Please try again."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "access granted"})
}

// AverageScores returns the mean total HEIFA score per gender across all
// patients. Genders with no rows report 0.
func (cl *ClinicianController) AverageScores(c *gin.Context) {
	maleAvg, err := cl.Patients.AverageTotalScore(models.GenderMale)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	femaleAvg, err := cl.Patients.AverageTotalScore(models.GenderFemale)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"average_heifa_score_male":   maleAvg,
		"average_heifa_score_female": femaleAvg,
	})
}

// Patterns asks the generative model for three key data patterns over the
// whole patient dataset.
func (cl *ClinicianController) Patterns(c *gin.Context) {
	patients, err := cl.Patients.GetAllPatients()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(patients) == 0 {
		c.JSON(http.StatusOK, gin.H{"patterns": []services.DataPattern{}})
		return
	}

	prompt := services.ClinicianPatternsPrompt(patients)
	patterns, err := cl.GenAI.GeneratePatterns(c.Request.Context(), prompt)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"patterns": patterns})
}
