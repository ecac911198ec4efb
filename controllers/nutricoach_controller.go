package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/VictoriaKoe/NutriTrack/services"

	"github.com/gin-gonic/gin"
)

type NutriCoachController struct {
	Patients *services.PatientService
	Intakes  *services.FoodIntakeService
	Tips     *services.TipService
	Fruity   *services.FruityService
	GenAI    *services.GenAIService
	Tracker  *services.RequestTracker
}

func NewNutriCoachController(
	patients *services.PatientService,
	intakes *services.FoodIntakeService,
	tips *services.TipService,
	fruity *services.FruityService,
	genAI *services.GenAIService,
	tracker *services.RequestTracker,
) *NutriCoachController {
	return &NutriCoachController{
		Patients: patients,
		Intakes:  intakes,
		Tips:     tips,
		Fruity:   fruity,
		GenAI:    genAI,
		Tracker:  tracker,
	}
}

// GetFruit proxies the fruit lookup. An unknown fruit is a 404, not a
// failure; only transport errors surface as 502.
func (n *NutriCoachController) GetFruit(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fruit name required"})
		return
	}

	fruit, err := n.Fruity.GetFruit(name)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if fruit == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "fruit not found"})
		return
	}
	c.JSON(http.StatusOK, fruit)
}

// GenerateTip builds a coaching prompt from the user's scores and
// questionnaire answers and returns the generated text. The tip is not
// persisted here; saving is a separate, explicit request.
func (n *NutriCoachController) GenerateTip(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	patient, err := n.Patients.GetPatientByID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	intake, err := n.Intakes.GetByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	prompt := services.PickTipPrompt(patient, intake)

	key := tipTrackerKey(userID)
	tag := n.Tracker.Begin(key)

	text, err := n.GenAI.GenerateTip(c.Request.Context(), prompt)
	if err != nil {
		n.Tracker.CompleteError(key, tag, err.Error())
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	n.Tracker.CompleteSuccess(key, tag, text)

	c.JSON(http.StatusOK, gin.H{"tip": text})
}

// TipStatus reports the state of the user's latest generation request.
func (n *NutriCoachController) TipStatus(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, n.Tracker.Status(tipTrackerKey(userID)))
}

type SaveTipInput struct {
	GeneratedResponse string `json:"generated_response" binding:"required"`
}

// SaveTip appends a generated tip to the user's log.
func (n *NutriCoachController) SaveTip(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input SaveTipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tip, err := n.Tips.SaveTip(userID, input.GeneratedResponse)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tip)
}

// ListTips returns every tip the user has saved.
func (n *NutriCoachController) ListTips(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	tips, err := n.Tips.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tips": tips})
}

func tipTrackerKey(userID int) string {
	return fmt.Sprintf("tip:%d", userID)
}
