package controllers

import (
	"net/http"
	"time"

	"fittrack/internal/middleware"
	"fittrack/internal/repository"
	"fittrack/internal/stats"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardController struct {
	profileRepo  repository.ProfileRepository
	mealRepo     repository.MealRepository
	exerciseRepo repository.ExerciseRepository
	sleepRepo    repository.SleepRepository
}

func NewDashboardController(
	profileRepo repository.ProfileRepository,
	mealRepo repository.MealRepository,
	exerciseRepo repository.ExerciseRepository,
	sleepRepo repository.SleepRepository,
) *DashboardController {
	return &DashboardController{
		profileRepo:  profileRepo,
		mealRepo:     mealRepo,
		exerciseRepo: exerciseRepo,
		sleepRepo:    sleepRepo,
	}
}

// GetDailyDashboard godoc
// @Summary Daily dashboard
// @Description Aggregate meals, exercises and sleep for one date, with remaining calories against the profile goal
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Dashboard retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve dashboard"
// @Router /dashboard/daily [get]
func (dc *DashboardController) GetDailyDashboard(c *gin.Context) {
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

	meals, err := dc.mealRepo.FindByUserIDAndDate(userID, date)
	if err != nil {
		dashboardError(c, err)
		return
	}
	exercises, err := dc.exerciseRepo.FindByUserIDAndDate(userID, date)
	if err != nil {
		dashboardError(c, err)
		return
	}

	var sleepHours float64
	var sleepQuality string
	if log, err := dc.sleepRepo.FindByUserIDAndDate(userID, date); err == nil {
		sleepHours = log.HoursSlept
		sleepQuality = log.SleepQuality
	} else if err != gorm.ErrRecordNotFound {
		dashboardError(c, err)
		return
	}

	mealTotals := stats.SumMeals(meals)
	exerciseTotals := stats.SumExercises(exercises)

	// The goal is zero when no profile exists or biometrics are incomplete;
	// the dashboard still renders, it just cannot show remaining calories.
	calorieGoal := 0
	if profile, err := dc.profileRepo.FindByUserID(userID); err == nil {
		calorieGoal = profile.DailyCalorieGoal
	}

	payload := gin.H{
		"date":      date.Format("2006-01-02"),
		"meals":     mealTotals,
		"exercises": exerciseTotals,
		"sleep": gin.H{
			"hours":   sleepHours,
			"quality": sleepQuality,
		},
		"calorie_goal": calorieGoal,
	}
	if calorieGoal > 0 {
		payload["calories_remaining"] = stats.RemainingCalories(calorieGoal, int(mealTotals.Calories))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Dashboard retrieved successfully",
		"data":    payload,
	})
}

// GetWeeklyDashboard godoc
// @Summary Weekly dashboard
// @Description Aggregate the last seven calendar days (ending at the given date, default today) into per-day buckets
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Dashboard retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve dashboard"
// @Router /dashboard/weekly [get]
func (dc *DashboardController) GetWeeklyDashboard(c *gin.Context) {
	userID := middleware.UserID(c)

	end, ok := parseDateParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   "Date must be in YYYY-MM-DD format",
		})
		return
	}

	start := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).AddDate(0, 0, -6)
	until := start.AddDate(0, 0, 7)

	meals, err := dc.mealRepo.FindByUserIDAndDateRange(userID, start, until)
	if err != nil {
		dashboardError(c, err)
		return
	}
	exercises, err := dc.exerciseRepo.FindByUserIDAndDateRange(userID, start, until)
	if err != nil {
		dashboardError(c, err)
		return
	}
	sleepLogs, err := dc.sleepRepo.FindByUserIDAndDateRange(userID, start, until)
	if err != nil {
		dashboardError(c, err)
		return
	}

	days := stats.WeeklyReport(end, meals, exercises, sleepLogs)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Dashboard retrieved successfully",
		"data": gin.H{
			"start_date":      days[0].Date,
			"end_date":        days[6].Date,
			"days":            days,
			"meal_totals":     stats.SumMeals(meals),
			"exercise_totals": stats.SumExercises(exercises),
			"avg_sleep_hours": stats.AverageSleepHours(sleepLogs),
			"days_with_sleep": len(sleepLogs),
		},
	})
}

func dashboardError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Failed to retrieve dashboard",
		"error":   err.Error(),
	})
}
