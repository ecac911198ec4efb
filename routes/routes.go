package routes

import (
	"os"
	"time"

	"github.com/VictoriaKoe/NutriTrack/controllers"
	"github.com/VictoriaKoe/NutriTrack/middlewares"
	"github.com/VictoriaKoe/NutriTrack/services"
	"github.com/VictoriaKoe/NutriTrack/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires every controller against the shared database handle and
// session manager and returns the configured engine.
func SetupRouter(db *gorm.DB, session *utils.SessionManager) *gin.Engine {
	patientService := services.NewPatientService(db)
	intakeService := services.NewFoodIntakeService(db)
	tipService := services.NewTipService(db)
	fruityService := services.NewFruityService()
	genAIService := services.NewGenAIService()
	tracker := services.NewRequestTracker()

	authController := controllers.NewAuthController(patientService, session)
	patientController := controllers.NewPatientController(patientService)
	intakeController := controllers.NewFoodIntakeController(intakeService, session)
	coachController := controllers.NewNutriCoachController(
		patientService, intakeService, tipService, fruityService, genAIService, tracker)
	clinicianController := controllers.NewClinicianController(patientService, genAIService)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Clinician-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// Dropdown data for the login/register screens
	r.GET("/patients/unregistered-ids", patientController.GetUnregisteredIDs)
	r.GET("/patients/registered-ids", patientController.GetRegisteredIDs)

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", patientController.GetProfile)
		user.GET("/scores", patientController.GetScores)

		user.POST("/questionnaire", intakeController.Submit)
		user.GET("/questionnaire", intakeController.Get)

		user.GET("/fruit/:name", coachController.GetFruit)
		user.POST("/tips/generate", coachController.GenerateTip)
		user.GET("/tips/status", coachController.TipStatus)
		user.POST("/tips", coachController.SaveTip)
		user.GET("/tips", coachController.ListTips)
	}

	// Clinician routes, gated by the static access key
	clinician := r.Group("/clinician")
	{
		clinician.POST("/login", clinicianController.Login)

		data := clinician.Group("")
		data.Use(clinicianController.KeyMiddleware())
		{
			data.GET("/average-scores", clinicianController.AverageScores)
			data.POST("/patterns", clinicianController.Patterns)
		}
	}

	// Dev-only reset endpoint
	if os.Getenv("ENABLE_DEV_ROUTES") == "true" {
		devController := controllers.NewDevController(patientService, intakeService, tipService)
		r.POST("/dev/reset", devController.Reset)
	}

	return r
}
