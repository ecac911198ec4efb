package controllers

import (
	"net/http"

	"github.com/VictoriaKoe/NutriTrack/services"

	"github.com/gin-gonic/gin"
)

// DevController exposes the bulk reset used by tests and local development.
// Not wired in release builds.
type DevController struct {
	Patients *services.PatientService
	Intakes  *services.FoodIntakeService
	Tips     *services.TipService
}

func NewDevController(patients *services.PatientService, intakes *services.FoodIntakeService, tips *services.TipService) *DevController {
	return &DevController{Patients: patients, Intakes: intakes, Tips: tips}
}

// Reset deletes all rows from every table. Children first, then patients,
// so the wipe also works without cascade support.
func (d *DevController) Reset(c *gin.Context) {
	if err := d.Tips.DeleteAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := d.Intakes.DeleteAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := d.Patients.DeleteAllPatients(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
