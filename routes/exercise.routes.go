package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterExerciseRoutes(router *gin.Engine, exerciseController *controllers.ExerciseController) {
	exerciseRoutes := router.Group("/exercises")
	exerciseRoutes.Use(middleware.AuthMiddleware())
	{
		exerciseRoutes.POST("/", exerciseController.CreateExercise)
		exerciseRoutes.POST("/estimate", exerciseController.EstimateCalories)
		exerciseRoutes.GET("/", exerciseController.GetExercises)
		exerciseRoutes.DELETE("/:id", exerciseController.DeleteExercise)
	}
}
