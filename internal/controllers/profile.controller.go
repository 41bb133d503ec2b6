package controllers

import (
	"net/http"

	"fittrack/internal/energy"
	"fittrack/internal/middleware"
	"fittrack/internal/models"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileController struct {
	repo repository.ProfileRepository
}

func NewProfileController(repo repository.ProfileRepository) *ProfileController {
	return &ProfileController{repo: repo}
}

type profileRequest struct {
	Name          string   `json:"name"`
	Age           *int     `json:"age"`
	Gender        *string  `json:"gender"`
	HeightCm      *float64 `json:"height"`
	WeightKg      *float64 `json:"weight"`
	ActivityLevel *string  `json:"activity_level"`
	Goal          *string  `json:"goal"`
}

// patchableColumns maps the client-facing json keys to their database
// columns. Patches are allow-listed through this table: anything else —
// identity columns, the derived daily_calorie_goal — is dropped.
var patchableColumns = map[string]string{
	"name":           "name",
	"age":            "age",
	"gender":         "gender",
	"weight":         "weight_kg",
	"height":         "height_cm",
	"activity_level": "activity_level",
	"goal":           "goal",
}

func patchColumns(data map[string]interface{}) map[string]interface{} {
	cols := make(map[string]interface{}, len(data))
	for key, value := range data {
		if col, ok := patchableColumns[key]; ok {
			cols[col] = value
		}
	}
	return cols
}

// computeDailyGoal recomputes the calorie goal from the profile's
// biometrics. Returns false when the profile is incomplete or out of range;
// callers then store zero rather than a goal computed from partial data.
func computeDailyGoal(p *models.Profile) (int, bool) {
	if p.WeightKg == nil || p.HeightCm == nil || p.Age == nil ||
		p.Gender == nil || p.ActivityLevel == nil || p.Goal == nil {
		return 0, false
	}
	goal, err := energy.DailyGoalFor(*p.WeightKg, *p.HeightCm, *p.Age, *p.Gender, *p.ActivityLevel, *p.Goal)
	if err != nil {
		return 0, false
	}
	return goal, true
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Description Retrieve profile information; a stored non-positive calorie goal is recomputed and written back when biometrics allow
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile [get]
func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID := middleware.UserID(c)

	profile, err := pc.repo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for this user",
		})
		return
	}

	// Auto-correct an invalid persisted goal on load.
	if profile.DailyCalorieGoal <= 0 {
		if goal, ok := computeDailyGoal(profile); ok {
			if err := pc.repo.Patch(userID, map[string]interface{}{"daily_calorie_goal": goal}); err == nil {
				profile.DailyCalorieGoal = goal
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    profile,
	})
}

// UpsertProfile godoc
// @Summary Create or replace the authenticated user's profile
// @Description Save profile attributes and recompute the daily calorie goal from the Mifflin-St Jeor pipeline when biometrics are complete
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body profileRequest true "Profile data"
// @Success 200 {object} map[string]interface{} "Profile saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to save profile"
// @Router /profile [put]
func (pc *ProfileController) UpsertProfile(c *gin.Context) {
	userID := middleware.UserID(c)

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	profile, err := pc.repo.FindByUserID(userID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to load profile",
				"error":   err.Error(),
			})
			return
		}
		profile = &models.Profile{UserID: userID}
	}

	profile.Name = req.Name
	profile.Age = req.Age
	profile.Gender = req.Gender
	profile.HeightCm = req.HeightCm
	profile.WeightKg = req.WeightKg
	profile.ActivityLevel = req.ActivityLevel
	profile.Goal = req.Goal

	profile.DailyCalorieGoal = 0
	if goal, ok := computeDailyGoal(profile); ok {
		profile.DailyCalorieGoal = goal
	}

	var saveErr error
	if profile.ID == 0 {
		saveErr = pc.repo.Create(profile)
	} else {
		saveErr = pc.repo.Update(profile)
	}
	if saveErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save profile",
			"error":   saveErr.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile saved successfully",
		"data":    profile,
	})
}

// PatchProfile godoc
// @Summary Partially update the authenticated user's profile
// @Description Apply the provided fields and recompute the daily calorie goal from the merged result
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body profileRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile [patch]
func (pc *ProfileController) PatchProfile(c *gin.Context) {
	userID := middleware.UserID(c)

	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	data = patchColumns(data)

	if _, err := pc.repo.FindByUserID(userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for this user",
		})
		return
	}

	if len(data) > 0 {
		if err := pc.repo.Patch(userID, data); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to update profile",
				"error":   err.Error(),
			})
			return
		}
	}

	profile, err := pc.repo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to reload profile",
			"error":   err.Error(),
		})
		return
	}

	goal, ok := computeDailyGoal(profile)
	if !ok {
		goal = 0
	}
	if goal != profile.DailyCalorieGoal {
		if err := pc.repo.Patch(userID, map[string]interface{}{"daily_calorie_goal": goal}); err == nil {
			profile.DailyCalorieGoal = goal
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    profile,
	})
}
