package achievements

import (
	"testing"

	"fittrack/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestShouldUnlock(t *testing.T) {
	tests := []struct {
		name        string
		achievement models.Achievement
		stats       Stats
		expected    bool
	}{
		{
			name:        "first meal unlocks at one",
			achievement: models.Achievement{CriteriaType: CriteriaFirstMeal},
			stats:       Stats{MealCount: 1},
			expected:    true,
		},
		{
			name:        "first meal stays locked at zero",
			achievement: models.Achievement{CriteriaType: CriteriaFirstMeal},
			stats:       Stats{MealCount: 0},
			expected:    false,
		},
		{
			name:        "total meals at threshold",
			achievement: models.Achievement{CriteriaType: CriteriaTotalMeals, CriteriaValue: 25},
			stats:       Stats{MealCount: 25},
			expected:    true,
		},
		{
			name:        "total meals below threshold",
			achievement: models.Achievement{CriteriaType: CriteriaTotalMeals, CriteriaValue: 25},
			stats:       Stats{MealCount: 24},
			expected:    false,
		},
		{
			name:        "workouts completed",
			achievement: models.Achievement{CriteriaType: CriteriaWorkoutsCompleted, CriteriaValue: 5},
			stats:       Stats{WorkoutCount: 7},
			expected:    true,
		},
		{
			name:        "exercise minutes",
			achievement: models.Achievement{CriteriaType: CriteriaTotalExerciseMinutes, CriteriaValue: 500},
			stats:       Stats{TotalExerciseMinutes: 499},
			expected:    false,
		},
		{
			name:        "full day log needs all three",
			achievement: models.Achievement{CriteriaType: CriteriaFullDayLog},
			stats:       Stats{HasMealToday: true, HasExerciseToday: true, HasSleepToday: true},
			expected:    true,
		},
		{
			name:        "full day log missing sleep",
			achievement: models.Achievement{CriteriaType: CriteriaFullDayLog},
			stats:       Stats{HasMealToday: true, HasExerciseToday: true},
			expected:    false,
		},
		{
			name:        "unknown criteria never unlocks",
			achievement: models.Achievement{CriteriaType: "moon_landing", CriteriaValue: 1},
			stats:       Stats{MealCount: 1000, WorkoutCount: 1000},
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShouldUnlock(tt.achievement, tt.stats))
		})
	}
}

func TestPending(t *testing.T) {
	catalog := []models.Achievement{
		{ID: 1, Name: "First Bite"},
		{ID: 2, Name: "Meal Tracker"},
		{ID: 3, Name: "Getting Moving"},
	}

	pending := Pending(catalog, map[uint]bool{2: true})
	assert.Len(t, pending, 2)
	assert.Equal(t, uint(1), pending[0].ID)
	assert.Equal(t, uint(3), pending[1].ID)

	// Already-unlocked achievements are never re-evaluated
	pending = Pending(catalog, map[uint]bool{1: true, 2: true, 3: true})
	assert.Empty(t, pending)

	// Nothing unlocked yet
	pending = Pending(catalog, map[uint]bool{})
	assert.Len(t, pending, 3)
}
