package controllers

import (
	"net/http"

	"github.com/VictoriaKoe/NutriTrack/services"

	"github.com/gin-gonic/gin"
)

type PatientController struct {
	Patients *services.PatientService
}

func NewPatientController(patients *services.PatientService) *PatientController {
	return &PatientController{Patients: patients}
}

func (p *PatientController) GetProfile(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	patient, err := p.Patients.GetPatientByID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if patient == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return
	}
	c.JSON(http.StatusOK, patient)
}

// GetScores returns the insight-screen breakdown: the twelve category
// scores keyed by category name, plus the total.
func (p *PatientController) GetScores(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	patient, err := p.Patients.GetPatientByID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if patient == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total": patient.TotalHEIFAScore,
		"by_category": gin.H{
			"Discretionary":       patient.DiscretionaryHEIFAScore,
			"Vegetables":          patient.VegetableHEIFAScore,
			"Fruit":               patient.FruitHEIFAScore,
			"Grainsandcereals":    patient.GrainsAndCerealsHEIFAScore,
			"Wholegrains":         patient.WholeGrainsHEIFAScore,
			"Meatandalternatives": patient.MeatAndAlternativesHEIFAScore,
			"Sodium":              patient.SodiumHEIFAScore,
			"Alcohol":             patient.AlcoholHEIFAScore,
			"Water":               patient.WaterHEIFAScore,
			"Sugar":               patient.SugarHEIFAScore,
			"SaturatedFat":        patient.SaturatedFatHEIFAScore,
			"UnsaturatedFat":      patient.UnsaturatedFatHEIFAScore,
		},
	})
}

// GetUnregisteredIDs feeds the registration screen's id dropdown.
func (p *PatientController) GetUnregisteredIDs(c *gin.Context) {
	ids, err := p.Patients.UnregisteredIDs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_ids": ids})
}

// GetRegisteredIDs feeds the login screen's id dropdown.
func (p *PatientController) GetRegisteredIDs(c *gin.Context) {
	ids, err := p.Patients.RegisteredIDs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_ids": ids})
}
