package controllers

import (
	"net/http"

	"github.com/VictoriaKoe/NutriTrack/models"
	"github.com/VictoriaKoe/NutriTrack/services"
	"github.com/VictoriaKoe/NutriTrack/utils"

	"github.com/gin-gonic/gin"
)

type FoodIntakeController struct {
	Intakes *services.FoodIntakeService
	Session *utils.SessionManager
}

func NewFoodIntakeController(intakes *services.FoodIntakeService, session *utils.SessionManager) *FoodIntakeController {
	return &FoodIntakeController{Intakes: intakes, Session: session}
}

type QuestionnaireInput struct {
	Fruits     bool `json:"fruits"`
	Vegetables bool `json:"vegetables"`
	Grains     bool `json:"grains"`
	RedMeat    bool `json:"red_meat"`
	Seafood    bool `json:"seafood"`
	Poultry    bool `json:"poultry"`
	Fish       bool `json:"fish"`
	Eggs       bool `json:"eggs"`
	NutsSeeds  bool `json:"nuts_seeds"`

	Persona    string `json:"persona" binding:"required"`
	MealTime   string `json:"meal_time" binding:"required"`
	SleepTime  string `json:"sleep_time" binding:"required"`
	WakeUpTime string `json:"wake_up_time" binding:"required"`
}

// Submit records (or re-records) the questionnaire. A resubmission replaces
// the user's previous answers; the questionnaire-complete flag becomes
// durable on first success.
func (f *FoodIntakeController) Submit(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input QuestionnaireInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validPersona(input.Persona) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown persona"})
		return
	}

	intake := models.FoodIntake{
		Fruits:     input.Fruits,
		Vegetables: input.Vegetables,
		Grains:     input.Grains,
		RedMeat:    input.RedMeat,
		Seafood:    input.Seafood,
		Poultry:    input.Poultry,
		Fish:       input.Fish,
		Eggs:       input.Eggs,
		NutsSeeds:  input.NutsSeeds,
		Persona:    input.Persona,
		MealTime:   input.MealTime,
		SleepTime:  input.SleepTime,
		WakeUpTime: input.WakeUpTime,
	}

	if err := f.Intakes.UpsertForUser(userID, intake); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := f.Session.CompleteQuestionnaire(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist questionnaire flag"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "questionnaire saved"})
}

// Get returns the user's current response, so the questionnaire screen can
// preload previous answers when editing.
func (f *FoodIntakeController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	intake, err := f.Intakes.GetByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if intake == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no questionnaire response yet"})
		return
	}
	c.JSON(http.StatusOK, intake)
}

func validPersona(persona string) bool {
	for _, p := range models.Personas {
		if p == persona {
			return true
		}
	}
	return false
}
