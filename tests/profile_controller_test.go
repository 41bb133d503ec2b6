package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fittrack/internal/controllers"
	"fittrack/internal/models"
	"fittrack/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func completeProfile() *models.Profile {
	return &models.Profile{
		UserID:        1,
		Name:          "Alex",
		Age:           intPtr(25),
		Gender:        stringPtr("male"),
		HeightCm:      floatPtr(175),
		WeightKg:      floatPtr(70),
		ActivityLevel: stringPtr("moderate"),
		Goal:          stringPtr("lose"),
	}
}

func TestGetProfile(t *testing.T) {
	mockRepo := new(mocks.MockProfileRepository)
	controller := controllers.NewProfileController(mockRepo)

	profile := completeProfile()
	profile.DailyCalorieGoal = 2094
	mockRepo.On("FindByUserID", uint(1)).Return(profile, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/profile", controller.GetProfile)

	req := httptest.NewRequest("GET", "/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, 2094.0, data["daily_calorie_goal"])

	mockRepo.AssertExpectations(t)
}

func TestGetProfileRecomputesInvalidGoal(t *testing.T) {
	mockRepo := new(mocks.MockProfileRepository)
	controller := controllers.NewProfileController(mockRepo)

	// Stored goal is zero but biometrics are complete, so loading the
	// profile writes the corrected value back.
	profile := completeProfile()
	profile.DailyCalorieGoal = 0
	mockRepo.On("FindByUserID", uint(1)).Return(profile, nil)
	mockRepo.On("Patch", uint(1), map[string]interface{}{"daily_calorie_goal": 2094}).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/profile", controller.GetProfile)

	req := httptest.NewRequest("GET", "/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, 2094.0, data["daily_calorie_goal"])

	mockRepo.AssertExpectations(t)
}

func TestGetProfileNotFound(t *testing.T) {
	mockRepo := new(mocks.MockProfileRepository)
	controller := controllers.NewProfileController(mockRepo)

	mockRepo.On("FindByUserID", uint(1)).Return(nil, gorm.ErrRecordNotFound)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/profile", controller.GetProfile)

	req := httptest.NewRequest("GET", "/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestUpsertProfile(t *testing.T) {
	tests := []struct {
		name         string
		requestBody  map[string]interface{}
		existing     *models.Profile
		expectedGoal float64
	}{
		{
			name: "new profile with complete biometrics",
			requestBody: map[string]interface{}{
				"name":           "Alex",
				"age":            25,
				"gender":         "male",
				"height":         175,
				"weight":         70,
				"activity_level": "moderate",
				"goal":           "lose",
			},
			existing: nil,
			// BMR 1673.75 * 1.55 - 500
			expectedGoal: 2094,
		},
		{
			name: "incomplete biometrics store a zero goal",
			requestBody: map[string]interface{}{
				"name":   "Alex",
				"age":    25,
				"gender": "male",
			},
			existing:     nil,
			expectedGoal: 0,
		},
		{
			name: "gain goal",
			requestBody: map[string]interface{}{
				"name":           "Alex",
				"age":            25,
				"gender":         "male",
				"height":         175,
				"weight":         70,
				"activity_level": "moderate",
				"goal":           "gain",
			},
			existing:     nil,
			expectedGoal: 2894,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockProfileRepository)
			controller := controllers.NewProfileController(mockRepo)

			if tt.existing != nil {
				mockRepo.On("FindByUserID", uint(1)).Return(tt.existing, nil)
				mockRepo.On("Update", mock.AnythingOfType("*models.Profile")).Return(nil)
			} else {
				mockRepo.On("FindByUserID", uint(1)).Return(nil, gorm.ErrRecordNotFound)
				mockRepo.On("Create", mock.AnythingOfType("*models.Profile")).Return(nil)
			}

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1))
			router.PUT("/profile", controller.UpsertProfile)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("PUT", "/profile", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)

			data := response["data"].(map[string]interface{})
			assert.Equal(t, tt.expectedGoal, data["daily_calorie_goal"])

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpsertProfileReplacesExisting(t *testing.T) {
	mockRepo := new(mocks.MockProfileRepository)
	controller := controllers.NewProfileController(mockRepo)

	existing := completeProfile()
	existing.ID = 7
	mockRepo.On("FindByUserID", uint(1)).Return(existing, nil)
	mockRepo.On("Update", mock.AnythingOfType("*models.Profile")).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{
		"name":           "Alex",
		"age":            25,
		"gender":         "male",
		"height":         175,
		"weight":         70,
		"activity_level": "moderate",
		"goal":           "maintain",
	})

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.PUT("/profile", controller.UpsertProfile)

	req := httptest.NewRequest("PUT", "/profile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, 2594.0, data["daily_calorie_goal"])

	mockRepo.AssertExpectations(t)
}

func TestPatchProfile(t *testing.T) {
	mockRepo := new(mocks.MockProfileRepository)
	controller := controllers.NewProfileController(mockRepo)

	before := completeProfile()
	before.DailyCalorieGoal = 2094

	after := completeProfile()
	after.Goal = stringPtr("gain")
	after.DailyCalorieGoal = 2094

	mockRepo.On("FindByUserID", uint(1)).Return(before, nil).Once()
	mockRepo.On("Patch", uint(1), map[string]interface{}{"goal": "gain"}).Return(nil)
	mockRepo.On("FindByUserID", uint(1)).Return(after, nil).Once()
	// Recomputed from the merged profile
	mockRepo.On("Patch", uint(1), map[string]interface{}{"daily_calorie_goal": 2894}).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{"goal": "gain"})

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.PATCH("/profile", controller.PatchProfile)

	req := httptest.NewRequest("PATCH", "/profile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, 2894.0, data["daily_calorie_goal"])

	mockRepo.AssertExpectations(t)
}

func TestPatchProfileMapsBiometricColumns(t *testing.T) {
	mockRepo := new(mocks.MockProfileRepository)
	controller := controllers.NewProfileController(mockRepo)

	before := completeProfile()
	before.DailyCalorieGoal = 2094

	after := completeProfile()
	after.WeightKg = floatPtr(80)
	after.HeightCm = floatPtr(180)
	after.DailyCalorieGoal = 2094

	// The json keys differ from the column names, so the patch must reach
	// the store translated: weight -> weight_kg, height -> height_cm.
	mockRepo.On("FindByUserID", uint(1)).Return(before, nil).Once()
	mockRepo.On("Patch", uint(1), map[string]interface{}{
		"weight_kg": 80.0,
		"height_cm": 180.0,
	}).Return(nil)
	mockRepo.On("FindByUserID", uint(1)).Return(after, nil).Once()
	// BMR 1805 * 1.55 - 500
	mockRepo.On("Patch", uint(1), map[string]interface{}{"daily_calorie_goal": 2298}).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{"weight": 80, "height": 180})

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.PATCH("/profile", controller.PatchProfile)

	req := httptest.NewRequest("PATCH", "/profile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, 2298.0, data["daily_calorie_goal"])

	mockRepo.AssertExpectations(t)
}

func TestPatchProfileDropsProtectedFields(t *testing.T) {
	mockRepo := new(mocks.MockProfileRepository)
	controller := controllers.NewProfileController(mockRepo)

	profile := completeProfile()
	profile.DailyCalorieGoal = 2094
	// user_id, id and the derived goal are not patchable; with every key
	// dropped there is nothing left to write.
	mockRepo.On("FindByUserID", uint(1)).Return(profile, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"user_id":            2,
		"id":                 9,
		"daily_calorie_goal": 1,
	})

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.PATCH("/profile", controller.PatchProfile)

	req := httptest.NewRequest("PATCH", "/profile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, 2094.0, data["daily_calorie_goal"])
	assert.Equal(t, 1.0, data["user_id"])

	mockRepo.AssertExpectations(t)
}

func TestPatchProfileIgnoresClientGoal(t *testing.T) {
	mockRepo := new(mocks.MockProfileRepository)
	controller := controllers.NewProfileController(mockRepo)

	profile := completeProfile()
	profile.DailyCalorieGoal = 2094
	// Only the daily_calorie_goal key was sent, so after stripping it there
	// is nothing left to patch and the stored goal already matches.
	mockRepo.On("FindByUserID", uint(1)).Return(profile, nil)

	body, _ := json.Marshal(map[string]interface{}{"daily_calorie_goal": 9999})

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.PATCH("/profile", controller.PatchProfile)

	req := httptest.NewRequest("PATCH", "/profile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, 2094.0, data["daily_calorie_goal"])

	mockRepo.AssertExpectations(t)
}
