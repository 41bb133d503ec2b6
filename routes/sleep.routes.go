package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterSleepRoutes(router *gin.Engine, sleepController *controllers.SleepController) {
	sleepRoutes := router.Group("/sleep")
	sleepRoutes.Use(middleware.AuthMiddleware())
	{
		sleepRoutes.PUT("/", sleepController.UpsertSleep)
		sleepRoutes.GET("/", sleepController.GetSleep)
		sleepRoutes.DELETE("/", sleepController.DeleteSleep)
	}
}
