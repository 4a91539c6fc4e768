package routes

import (
	"github.com/sivakadari517-cloud/fitxgen-sub000/config"
	"github.com/sivakadari517-cloud/fitxgen-sub000/controllers"
	"github.com/sivakadari517-cloud/fitxgen-sub000/middlewares"
	"github.com/sivakadari517-cloud/fitxgen-sub000/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	compositionSvc := services.NewCompositionService(config.DB, hub)
	analyticsSvc := services.NewAnalyticsService(config.DB)

	measurementCtrl := controllers.NewMeasurementController(compositionSvc)
	analyticsCtrl := controllers.NewAnalyticsController(analyticsSvc)
	realtimeCtrl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/onboarding", controllers.CompleteOnboarding)
		user.DELETE("", controllers.DeleteAccount)
		user.GET("/alerts", controllers.GetAlerts)
	}

	// Measurements & body composition
	m := r.Group("/measurements")
	m.Use(middlewares.AuthMiddleware())
	{
		m.POST("/validate", measurementCtrl.ValidateMeasurement)
		m.POST("", measurementCtrl.CreateMeasurement)
		m.GET("/history", measurementCtrl.GetHistory)
		m.POST("/energy", controllers.CalculateEnergy)
	}

	// AI-augmented recommendations
	recs := r.Group("/recommendations")
	recs.Use(middlewares.AuthMiddleware())
	{
		recs.GET("/ai", controllers.GetAIRecommendations)
	}

	// Analytics
	analytics := r.Group("/analytics")
	analytics.Use(middlewares.AuthMiddleware())
	{
		analytics.GET("/summary", analyticsCtrl.GetTrendSummary)
	}

	// Realtime result stream
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/results", realtimeCtrl.ResultsWS)
	}

	return r
}
