package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fittrack/internal/controllers"
	"fittrack/internal/models"
	"fittrack/tests/mocks"

	"github.com/stretchr/testify/assert"
)

func TestListAchievements(t *testing.T) {
	mockAchievementRepo := new(mocks.MockAchievementRepository)
	mockUserAchievementRepo := new(mocks.MockUserAchievementRepository)
	mockNotifier := new(mocks.MockNotifier)
	controller := controllers.NewAchievementController(mockAchievementRepo, mockUserAchievementRepo, nil, mockNotifier)

	catalog := []models.Achievement{
		{ID: 1, Name: "First Bite", CriteriaType: "first_meal"},
		{ID: 2, Name: "Meal Tracker", CriteriaType: "total_meals", CriteriaValue: 25},
		{ID: 3, Name: "Getting Moving", CriteriaType: "workouts_completed", CriteriaValue: 5},
	}
	unlocks := []models.UserAchievement{
		{UserID: 1, AchievementID: 1},
	}
	mockAchievementRepo.On("FindAll").Return(catalog, nil)
	mockUserAchievementRepo.On("FindByUserID", uint(1)).Return(unlocks, nil)
	// Listing schedules a catch-up evaluation
	mockNotifier.On("Enqueue", uint(1)).Return()

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/achievements", controller.ListAchievements)

	req := httptest.NewRequest("GET", "/achievements", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, 3.0, data["total"])
	assert.Equal(t, 1.0, data["unlocked"])

	unlockedIDs := data["unlocked_ids"].([]interface{})
	assert.Len(t, unlockedIDs, 1)
	assert.Equal(t, 1.0, unlockedIDs[0])

	mockAchievementRepo.AssertExpectations(t)
	mockUserAchievementRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestListAchievementsRepositoryError(t *testing.T) {
	mockAchievementRepo := new(mocks.MockAchievementRepository)
	controller := controllers.NewAchievementController(mockAchievementRepo, new(mocks.MockUserAchievementRepository), nil, new(mocks.MockNotifier))

	mockAchievementRepo.On("FindAll").Return([]models.Achievement{}, errors.New("database error"))

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/achievements", controller.ListAchievements)

	req := httptest.NewRequest("GET", "/achievements", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockAchievementRepo.AssertExpectations(t)
}
