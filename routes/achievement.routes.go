package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAchievementRoutes(router *gin.Engine, achievementController *controllers.AchievementController) {
	achievementRoutes := router.Group("/achievements")
	achievementRoutes.Use(middleware.AuthMiddleware())
	{
		achievementRoutes.GET("/", achievementController.ListAchievements)
		achievementRoutes.GET("/ws", achievementController.StreamUnlocks)
	}
}
