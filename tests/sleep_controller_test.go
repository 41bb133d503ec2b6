package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fittrack/internal/controllers"
	"fittrack/internal/models"
	"fittrack/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestUpsertSleep(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockSleepRepository, *mocks.MockNotifier)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful upsert",
			requestBody: map[string]interface{}{
				"hours_slept":   7.5,
				"sleep_quality": "good",
			},
			setupMock: func(s *mocks.MockSleepRepository, n *mocks.MockNotifier) {
				s.On("Upsert", mock.AnythingOfType("*models.SleepLog")).Return(nil)
				n.On("Enqueue", uint(1)).Return()
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Sleep logged successfully",
		},
		{
			name: "missing hours",
			requestBody: map[string]interface{}{
				"sleep_quality": "good",
			},
			setupMock:      func(s *mocks.MockSleepRepository, n *mocks.MockNotifier) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "invalid quality",
			requestBody: map[string]interface{}{
				"hours_slept":   7.5,
				"sleep_quality": "amazing",
			},
			setupMock:      func(s *mocks.MockSleepRepository, n *mocks.MockNotifier) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "zero hours",
			requestBody: map[string]interface{}{
				"hours_slept":   0,
				"sleep_quality": "poor",
			},
			setupMock:      func(s *mocks.MockSleepRepository, n *mocks.MockNotifier) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockSleepRepository)
			mockNotifier := new(mocks.MockNotifier)
			controller := controllers.NewSleepController(mockRepo, mockNotifier, nil)
			tt.setupMock(mockRepo, mockNotifier)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1))
			router.PUT("/sleep", controller.UpsertSleep)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("PUT", "/sleep", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
			mockNotifier.AssertExpectations(t)
		})
	}
}

func TestGetSleep(t *testing.T) {
	mockRepo := new(mocks.MockSleepRepository)
	controller := controllers.NewSleepController(mockRepo, new(mocks.MockNotifier), nil)

	log := &models.SleepLog{UserID: 1, HoursSlept: 8, SleepQuality: "excellent", SleepDate: time.Now()}
	mockRepo.On("FindByUserIDAndDate", uint(1), mock.AnythingOfType("time.Time")).Return(log, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/sleep", controller.GetSleep)

	req := httptest.NewRequest("GET", "/sleep", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, 8.0, data["hours_slept"])
	assert.Equal(t, "excellent", data["sleep_quality"])

	mockRepo.AssertExpectations(t)
}

func TestDeleteSleep(t *testing.T) {
	mockRepo := new(mocks.MockSleepRepository)
	mockCache := new(mocks.MockSummaryInvalidator)
	controller := controllers.NewSleepController(mockRepo, new(mocks.MockNotifier), mockCache)

	mockRepo.On("Delete", uint(1), mock.AnythingOfType("time.Time")).Return(nil)
	// A removed entry changes the 7-day picture, so the cached summary goes
	mockCache.On("InvalidateSummary", mock.Anything, uint(1)).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.DELETE("/sleep", controller.DeleteSleep)

	req := httptest.NewRequest("DELETE", "/sleep?date=2024-03-10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["message"], "Sleep entry deleted successfully")

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestDeleteSleepNotFound(t *testing.T) {
	mockRepo := new(mocks.MockSleepRepository)
	mockCache := new(mocks.MockSummaryInvalidator)
	controller := controllers.NewSleepController(mockRepo, new(mocks.MockNotifier), mockCache)

	mockRepo.On("Delete", uint(1), mock.AnythingOfType("time.Time")).Return(gorm.ErrRecordNotFound)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.DELETE("/sleep", controller.DeleteSleep)

	req := httptest.NewRequest("DELETE", "/sleep", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	// Nothing was deleted, so the cached summary stays
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestDeleteSleepInvalidDate(t *testing.T) {
	mockRepo := new(mocks.MockSleepRepository)
	controller := controllers.NewSleepController(mockRepo, new(mocks.MockNotifier), nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.DELETE("/sleep", controller.DeleteSleep)

	req := httptest.NewRequest("DELETE", "/sleep?date=not-a-date", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestGetSleepNoEntry(t *testing.T) {
	mockRepo := new(mocks.MockSleepRepository)
	controller := controllers.NewSleepController(mockRepo, new(mocks.MockNotifier), nil)

	mockRepo.On("FindByUserIDAndDate", uint(1), mock.AnythingOfType("time.Time")).Return(nil, gorm.ErrRecordNotFound)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/sleep", controller.GetSleep)

	req := httptest.NewRequest("GET", "/sleep", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// A missing entry is not an error, the data is simply null
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Nil(t, response["data"])

	mockRepo.AssertExpectations(t)
}
