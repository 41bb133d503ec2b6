package coach

import (
	"strings"
	"testing"
	"time"

	"fittrack/internal/models"

	"github.com/stretchr/testify/assert"
)

func testProfile() *models.Profile {
	age := 25
	gender := "male"
	height := 175.0
	weight := 70.0
	activity := "moderate"
	goal := "lose"
	return &models.Profile{
		UserID:           1,
		Name:             "Alex",
		Age:              &age,
		Gender:           &gender,
		HeightCm:         &height,
		WeightKg:         &weight,
		ActivityLevel:    &activity,
		Goal:             &goal,
		DailyCalorieGoal: 2094,
	}
}

func TestBuildGoalSummaryPrompt(t *testing.T) {
	meals := []models.Meal{
		{MealName: "Oatmeal", Calories: 300, Protein: 12, ConsumedAt: time.Now()},
		{MealName: "Chicken wrap", Calories: 520, Protein: 35, ConsumedAt: time.Now()},
	}
	exercises := []models.Exercise{
		{ExerciseName: "Evening run", Duration: 30, CaloriesBurnt: 280, ExerciseDate: time.Now()},
	}
	sleepLogs := []models.SleepLog{
		{HoursSlept: 7.5, SleepQuality: "good", SleepDate: time.Now()},
	}

	prompt := BuildGoalSummaryPrompt(testProfile(), meals, exercises, sleepLogs)

	assert.Contains(t, prompt, "Name: Alex")
	assert.Contains(t, prompt, "Daily Calorie Goal: 2094 calories")
	assert.Contains(t, prompt, "Meals Logged: 2 meals (Total: 820 calories, 47g protein)")
	assert.Contains(t, prompt, "Exercises: 1 sessions (Total: 30 minutes)")
	assert.Contains(t, prompt, "Average: 7.5 hours/night")
	assert.Contains(t, prompt, "Oatmeal: 300 cal")
	assert.Contains(t, prompt, "SMART")
}

func TestBuildGoalSummaryPromptCapsRecentEntries(t *testing.T) {
	meals := make([]models.Meal, 10)
	for i := range meals {
		meals[i] = models.Meal{MealName: "Meal", Calories: 100, ConsumedAt: time.Now()}
	}

	prompt := BuildGoalSummaryPrompt(testProfile(), meals, nil, nil)

	assert.Contains(t, prompt, "Meals Logged: 10 meals")
	assert.Equal(t, 5, strings.Count(prompt, "- Meal: 100 cal"))
}

func TestBuildGoalSummaryPromptIncompleteProfile(t *testing.T) {
	prompt := BuildGoalSummaryPrompt(&models.Profile{UserID: 1}, nil, nil, nil)

	assert.Contains(t, prompt, "Name: User")
	assert.Contains(t, prompt, "Age: Not set")
	assert.Contains(t, prompt, "Daily Calorie Goal: Not set calories")
}

func TestBuildChatSystemPrompt(t *testing.T) {
	meals := []models.Meal{
		{MealName: "Oatmeal", Calories: 300, Protein: 12, Carbs: 50},
	}
	exercises := []models.Exercise{
		{ExerciseName: "Evening run", ExerciseType: "cardio", Duration: 30, CaloriesBurnt: 280},
	}

	prompt := BuildChatSystemPrompt(testProfile(), meals, exercises, nil)

	assert.Contains(t, prompt, "Calories: 300 / 2094 (1794 remaining)")
	// Protein target defaults to 2g per kg of body weight
	assert.Contains(t, prompt, "Protein: 12g / 140g")
	assert.Contains(t, prompt, "Evening run (30min, cardio)")
	assert.Contains(t, prompt, "No sleep data logged")
}

func TestBuildChatSystemPromptClampsRemaining(t *testing.T) {
	meals := []models.Meal{
		{MealName: "Feast", Calories: 3000},
	}

	prompt := BuildChatSystemPrompt(testProfile(), meals, nil, nil)

	// Over goal shows zero remaining, not a negative number
	assert.Contains(t, prompt, "Calories: 3000 / 2094 (0 remaining)")
}

func TestBuildNutritionMessages(t *testing.T) {
	messages := BuildNutritionMessages("two scrambled eggs on toast")

	assert.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].Role)
	assert.Equal(t, "user", messages[1].Role)
	assert.Contains(t, messages[1].Content, "two scrambled eggs on toast")
}

func TestNutritionTool(t *testing.T) {
	tool := NutritionTool()

	assert.Equal(t, "function", tool.Type)
	assert.Equal(t, "provide_nutrition_info", tool.Function.Name)
	assert.Contains(t, string(tool.Function.Parameters), "serving_description")
}
