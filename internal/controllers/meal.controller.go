package controllers

import (
	"net/http"
	"strconv"
	"time"

	"fittrack/internal/middleware"
	"fittrack/internal/models"
	"fittrack/internal/repository"
	"fittrack/internal/stats"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	repo     repository.MealRepository
	notifier AchievementNotifier
	cache    SummaryInvalidator
}

func NewMealController(repo repository.MealRepository, notifier AchievementNotifier, cache SummaryInvalidator) *MealController {
	return &MealController{repo: repo, notifier: notifier, cache: cache}
}

type mealRequest struct {
	MealName   string     `json:"meal_name" binding:"required"`
	MealType   string     `json:"meal_type" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	Calories   float64    `json:"calories"`
	Protein    float64    `json:"protein"`
	Carbs      float64    `json:"carbs"`
	Fat        float64    `json:"fat"`
	ConsumedAt *time.Time `json:"consumed_at"`
	Notes      string     `json:"notes"`
}

// parseDateParam reads an optional ?date=YYYY-MM-DD query, defaulting to
// today.
func parseDateParam(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// CreateMeal godoc
// @Summary Log a meal
// @Description Record a meal with its macros; triggers achievement re-evaluation
// @Tags meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param meal body mealRequest true "Meal data"
// @Success 201 {object} map[string]interface{} "Meal logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to log meal"
// @Router /meals [post]
func (mc *MealController) CreateMeal(c *gin.Context) {
	userID := middleware.UserID(c)

	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.Calories < 0 || req.Protein < 0 || req.Carbs < 0 || req.Fat < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "Calories and macros must not be negative",
		})
		return
	}

	consumedAt := time.Now()
	if req.ConsumedAt != nil {
		consumedAt = *req.ConsumedAt
	}

	meal := models.Meal{
		UserID:     userID,
		MealName:   req.MealName,
		MealType:   req.MealType,
		Calories:   req.Calories,
		Protein:    req.Protein,
		Carbs:      req.Carbs,
		Fat:        req.Fat,
		ConsumedAt: consumedAt,
		Notes:      req.Notes,
	}

	if err := mc.repo.Create(&meal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to log meal",
			"error":   err.Error(),
		})
		return
	}

	if mc.notifier != nil {
		mc.notifier.Enqueue(userID)
	}
	invalidateSummary(c, mc.cache, userID)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Meal logged successfully",
		"data":    meal,
	})
}

// GetMeals godoc
// @Summary List meals for a date
// @Description Retrieve the user's meals for the given date (default today) along with day totals
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Meals retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve meals"
// @Router /meals [get]
func (mc *MealController) GetMeals(c *gin.Context) {
	userID := middleware.UserID(c)

	date, ok := parseDateParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   "Date must be in YYYY-MM-DD format",
		})
		return
	}

	meals, err := mc.repo.FindByUserIDAndDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve meals",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meals retrieved successfully",
		"data": gin.H{
			"meals":  meals,
			"totals": stats.SumMeals(meals),
		},
	})
}

// DeleteMeal godoc
// @Summary Delete a meal
// @Description Delete one of the user's meals by ID
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meal ID"
// @Success 200 {object} map[string]interface{} "Meal deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid meal ID"
// @Failure 404 {object} map[string]interface{} "Meal not found"
// @Router /meals/{id} [delete]
func (mc *MealController) DeleteMeal(c *gin.Context) {
	userID := middleware.UserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid meal ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	meal, err := mc.repo.FindByID(uint(id))
	if err != nil || meal.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Meal not found",
			"error":   "No meal exists with the provided ID",
		})
		return
	}

	if err := mc.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete meal",
			"error":   err.Error(),
		})
		return
	}

	invalidateSummary(c, mc.cache, userID)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal deleted successfully",
		"data":    nil,
	})
}
