package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMealRoutes(router *gin.Engine, mealController *controllers.MealController) {
	mealRoutes := router.Group("/meals")
	mealRoutes.Use(middleware.AuthMiddleware())
	{
		mealRoutes.POST("/", mealController.CreateMeal)
		mealRoutes.GET("/", mealController.GetMeals)
		mealRoutes.DELETE("/:id", mealController.DeleteMeal)
	}
}
