package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMR(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		height   float64
		age      int
		gender   string
		expected float64
		err      error
	}{
		{
			name:     "male",
			weight:   70,
			height:   175,
			age:      25,
			gender:   "male",
			expected: 1673.75,
		},
		{
			name:     "female",
			weight:   70,
			height:   175,
			age:      30,
			gender:   "female",
			expected: 1482.75,
		},
		{
			name:     "other gender uses non-male constant",
			weight:   70,
			height:   175,
			age:      30,
			gender:   "other",
			expected: 1482.75,
		},
		{
			name:   "zero weight",
			weight: 0,
			height: 175,
			age:    25,
			gender: "male",
			err:    ErrMissingInput,
		},
		{
			name:   "zero age",
			weight: 70,
			height: 175,
			age:    0,
			gender: "male",
			err:    ErrMissingInput,
		},
		{
			name:   "empty gender",
			weight: 70,
			height: 175,
			age:    25,
			err:    ErrMissingInput,
		},
		{
			name:   "negative height",
			weight: 70,
			height: -175,
			age:    25,
			gender: "male",
			err:    ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bmr, err := CalculateBMR(tt.weight, tt.height, tt.age, tt.gender)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, bmr, 0.001)
		})
	}
}

func TestCalculateTDEE(t *testing.T) {
	bmr := 1673.75

	assert.InDelta(t, 2008.5, CalculateTDEE(bmr, "sedentary"), 0.001)
	assert.InDelta(t, 2594.3125, CalculateTDEE(bmr, "moderate"), 0.001)
	assert.InDelta(t, 3180.125, CalculateTDEE(bmr, "very_active"), 0.001)

	// Unknown levels fall back to sedentary
	assert.InDelta(t, 2008.5, CalculateTDEE(bmr, "couch_potato"), 0.001)
	assert.InDelta(t, 2008.5, CalculateTDEE(bmr, ""), 0.001)
}

func TestCalculateCalorieGoal(t *testing.T) {
	tdee := 2594.3125

	assert.Equal(t, 2094, CalculateCalorieGoal(tdee, "lose"))
	assert.Equal(t, 2894, CalculateCalorieGoal(tdee, "gain"))
	assert.Equal(t, 2594, CalculateCalorieGoal(tdee, "maintain"))

	// Unknown goals behave like maintain
	assert.Equal(t, 2594, CalculateCalorieGoal(tdee, "bulk"))
}

func TestDailyGoalFor(t *testing.T) {
	goal, err := DailyGoalFor(70, 175, 25, "male", "moderate", "lose")
	assert.NoError(t, err)
	assert.Equal(t, 2094, goal)

	_, err = DailyGoalFor(0, 175, 25, "male", "moderate", "lose")
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = DailyGoalFor(70, 175, -1, "male", "moderate", "lose")
	assert.ErrorIs(t, err, ErrInvalidRange)
}
