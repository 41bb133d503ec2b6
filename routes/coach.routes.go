package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterCoachRoutes(router *gin.Engine, coachController *controllers.CoachController) {
	coachRoutes := router.Group("/coach")
	coachRoutes.Use(middleware.AuthMiddleware())
	{
		coachRoutes.POST("/summary", coachController.GenerateGoalSummary)
		coachRoutes.POST("/chat", coachController.Chat)
		coachRoutes.POST("/nutrition", coachController.AnalyzeNutrition)
	}
}
