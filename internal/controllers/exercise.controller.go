package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fittrack/internal/energy"
	"fittrack/internal/middleware"
	"fittrack/internal/models"
	"fittrack/internal/repository"
	"fittrack/internal/stats"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	repo        repository.ExerciseRepository
	profileRepo repository.ProfileRepository
	notifier    AchievementNotifier
	cache       SummaryInvalidator
}

func NewExerciseController(repo repository.ExerciseRepository, profileRepo repository.ProfileRepository, notifier AchievementNotifier, cache SummaryInvalidator) *ExerciseController {
	return &ExerciseController{repo: repo, profileRepo: profileRepo, notifier: notifier, cache: cache}
}

type exerciseRequest struct {
	ExerciseName  string     `json:"exercise_name" binding:"required"`
	ExerciseType  string     `json:"exercise_type" binding:"omitempty,oneof=cardio strength flexibility sports other"`
	Duration      int        `json:"duration" binding:"required,gt=0"`
	CaloriesBurnt int        `json:"calories_burnt"`
	ExerciseDate  *time.Time `json:"exercise_date"`
	Notes         string     `json:"notes"`
}

type estimateRequest struct {
	ExerciseName string `json:"exercise_name" binding:"required"`
	ExerciseType string `json:"exercise_type"`
	Duration     int    `json:"duration" binding:"required"`
}

// profileWeight loads the user's weight, distinguishing "no weight on
// profile" (MissingInput to the estimator) from store errors.
func (ec *ExerciseController) profileWeight(userID uint) (float64, error) {
	profile, err := ec.profileRepo.FindByUserID(userID)
	if err != nil || profile.WeightKg == nil {
		return 0, energy.ErrMissingInput
	}
	return *profile.WeightKg, nil
}

// CreateExercise godoc
// @Summary Log an exercise
// @Description Record an exercise session; when calories_burnt is omitted it is estimated from the MET table and the profile weight
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise body exerciseRequest true "Exercise data"
// @Success 201 {object} map[string]interface{} "Exercise logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to log exercise"
// @Router /exercises [post]
func (ec *ExerciseController) CreateExercise(c *gin.Context) {
	userID := middleware.UserID(c)

	var req exerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.CaloriesBurnt < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "Calories burnt must not be negative",
		})
		return
	}

	caloriesBurnt := req.CaloriesBurnt
	if caloriesBurnt == 0 {
		weight, err := ec.profileWeight(userID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Cannot estimate calories burnt",
				"error":   "Provide calories_burnt or complete your profile with weight information",
			})
			return
		}
		caloriesBurnt, _, err = energy.EstimateExerciseCalories(req.ExerciseName, req.ExerciseType, req.Duration, weight)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Cannot estimate calories burnt",
				"error":   err.Error(),
			})
			return
		}
	}

	exerciseDate := time.Now()
	if req.ExerciseDate != nil {
		exerciseDate = *req.ExerciseDate
	}

	exercise := models.Exercise{
		UserID:        userID,
		ExerciseName:  req.ExerciseName,
		ExerciseType:  req.ExerciseType,
		Duration:      req.Duration,
		CaloriesBurnt: caloriesBurnt,
		ExerciseDate:  exerciseDate,
		Notes:         req.Notes,
	}

	if err := ec.repo.Create(&exercise); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to log exercise",
			"error":   err.Error(),
		})
		return
	}

	if ec.notifier != nil {
		ec.notifier.Enqueue(userID)
	}
	invalidateSummary(c, ec.cache, userID)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Exercise logged successfully",
		"data":    exercise,
	})
}

// EstimateCalories godoc
// @Summary Estimate calories burned for an exercise
// @Description Resolve a MET value for the exercise name/type and compute calories from the profile weight and duration
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise body estimateRequest true "Exercise to estimate"
// @Success 200 {object} map[string]interface{} "Estimate computed"
// @Failure 400 {object} map[string]interface{} "Missing weight or invalid duration"
// @Router /exercises/estimate [post]
func (ec *ExerciseController) EstimateCalories(c *gin.Context) {
	userID := middleware.UserID(c)

	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	weight, err := ec.profileWeight(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Missing profile weight",
			"error":   "Please complete your profile with weight information",
		})
		return
	}

	calories, met, err := energy.EstimateExerciseCalories(req.ExerciseName, req.ExerciseType, req.Duration, weight)
	if err != nil {
		message := "Invalid duration"
		if errors.Is(err, energy.ErrMissingInput) {
			message = "Missing profile weight"
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": message,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Estimate computed",
		"data": gin.H{
			"calories_burned": calories,
			"met":             met,
			"exercise_info":   fmt.Sprintf("Based on your weight (%gkg) and a MET value of %g", weight, met),
		},
	})
}

// GetExercises godoc
// @Summary List exercises for a date
// @Description Retrieve the user's exercises for the given date (default today) along with day totals
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Exercises retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve exercises"
// @Router /exercises [get]
func (ec *ExerciseController) GetExercises(c *gin.Context) {
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

	exercises, err := ec.repo.FindByUserIDAndDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve exercises",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Exercises retrieved successfully",
		"data": gin.H{
			"exercises": exercises,
			"totals":    stats.SumExercises(exercises),
		},
	})
}

// DeleteExercise godoc
// @Summary Delete an exercise
// @Description Delete one of the user's exercises by ID
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Success 200 {object} map[string]interface{} "Exercise deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid exercise ID"
// @Failure 404 {object} map[string]interface{} "Exercise not found"
// @Router /exercises/{id} [delete]
func (ec *ExerciseController) DeleteExercise(c *gin.Context) {
	userID := middleware.UserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid exercise ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	exercise, err := ec.repo.FindByID(uint(id))
	if err != nil || exercise.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Exercise not found",
			"error":   "No exercise exists with the provided ID",
		})
		return
	}

	if err := ec.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete exercise",
			"error":   err.Error(),
		})
		return
	}

	invalidateSummary(c, ec.cache, userID)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Exercise deleted successfully",
		"data":    nil,
	})
}
