package coach

import (
	"encoding/json"
	"fmt"
	"strings"

	"fittrack/internal/models"
	"fittrack/internal/stats"
)

func orNotSet(v interface{}) string {
	switch x := v.(type) {
	case *int:
		if x == nil {
			return "Not set"
		}
		return fmt.Sprintf("%d", *x)
	case *float64:
		if x == nil {
			return "Not set"
		}
		return fmt.Sprintf("%g", *x)
	case *string:
		if x == nil || *x == "" {
			return "Not set"
		}
		return *x
	}
	return "Not set"
}

// buildProfileBlock renders the profile lines shared by the summary and chat
// prompts.
func buildProfileBlock(profile *models.Profile) string {
	name := profile.Name
	if name == "" {
		name = "User"
	}
	goalLine := "Not set"
	if profile.DailyCalorieGoal > 0 {
		goalLine = fmt.Sprintf("%d", profile.DailyCalorieGoal)
	}

	var b strings.Builder
	b.WriteString("User Profile:\n")
	fmt.Fprintf(&b, "- Name: %s\n", name)
	fmt.Fprintf(&b, "- Age: %s, Gender: %s\n", orNotSet(profile.Age), orNotSet(profile.Gender))
	fmt.Fprintf(&b, "- Current Weight: %skg, Height: %scm\n", orNotSet(profile.WeightKg), orNotSet(profile.HeightCm))
	fmt.Fprintf(&b, "- Fitness Goal: %s\n", orNotSet(profile.Goal))
	fmt.Fprintf(&b, "- Activity Level: %s\n", orNotSet(profile.ActivityLevel))
	fmt.Fprintf(&b, "- Daily Calorie Goal: %s calories\n", goalLine)
	return b.String()
}

// BuildGoalSummaryPrompt assembles the single-shot prompt for the weekly goal
// summary: profile, 7-day totals, and up to five recent entries per log.
func BuildGoalSummaryPrompt(profile *models.Profile, meals []models.Meal, exercises []models.Exercise, sleepLogs []models.SleepLog) string {
	mealTotals := stats.SumMeals(meals)
	exerciseTotals := stats.SumExercises(exercises)
	avgSleep := stats.AverageSleepHours(sleepLogs)

	var b strings.Builder
	b.WriteString(buildProfileBlock(profile))
	b.WriteString("\nRecent Activity (Last 7 Days):\n")
	fmt.Fprintf(&b, "- Meals Logged: %d meals (Total: %.0f calories, %.0fg protein)\n",
		len(meals), mealTotals.Calories, mealTotals.Protein)
	fmt.Fprintf(&b, "- Exercises: %d sessions (Total: %d minutes)\n", len(exercises), exerciseTotals.Duration)
	fmt.Fprintf(&b, "- Sleep: %d entries (Average: %.1f hours/night)\n", len(sleepLogs), avgSleep)

	if len(meals) > 0 {
		b.WriteString("\nRecent Meals:\n")
		for i, m := range meals {
			if i == 5 {
				break
			}
			fmt.Fprintf(&b, "- %s: %.0f cal, %.0fg protein (%s)\n",
				m.MealName, m.Calories, m.Protein, m.ConsumedAt.Format("2006-01-02"))
		}
	}
	if len(exercises) > 0 {
		b.WriteString("\nRecent Exercises:\n")
		for i, e := range exercises {
			if i == 5 {
				break
			}
			fmt.Fprintf(&b, "- %s: %d min, %d cal (%s)\n",
				e.ExerciseName, e.Duration, e.CaloriesBurnt, e.ExerciseDate.Format("2006-01-02"))
		}
	}
	if len(sleepLogs) > 0 {
		b.WriteString("\nRecent Sleep:\n")
		for i, s := range sleepLogs {
			if i == 5 {
				break
			}
			quality := s.SleepQuality
			if quality == "" {
				quality = "Not rated"
			}
			fmt.Fprintf(&b, "- %.1f hours, Quality: %s (%s)\n",
				s.HoursSlept, quality, s.SleepDate.Format("2006-01-02"))
		}
	}

	return fmt.Sprintf(`You are an expert fitness coach and goal-setting specialist. Analyze the user's actual fitness data and profile to create:

1. A concise summary of their current progress and patterns
2. Specific insights based on their logged data
3. Specific, measurable, achievable, relevant, and time-bound (SMART) goals
4. An actionable step-by-step plan to achieve those goals
5. Key areas for improvement based on their data
6. Motivational encouragement based on their efforts

%s
Provide a well-structured, personalized response that is encouraging, realistic, and actionable. Format your response clearly with sections and bullet points where appropriate. Be specific and reference their actual data.`, b.String())
}

// BuildChatSystemPrompt assembles the system prompt for the coaching chat:
// today's nutrition and exercise plus the last week of sleep.
func BuildChatSystemPrompt(profile *models.Profile, meals []models.Meal, exercises []models.Exercise, sleepLogs []models.SleepLog) string {
	mealTotals := stats.SumMeals(meals)
	exerciseTotals := stats.SumExercises(exercises)

	calorieGoal := "N/A"
	remaining := "N/A"
	if profile.DailyCalorieGoal > 0 {
		calorieGoal = fmt.Sprintf("%d", profile.DailyCalorieGoal)
		left := stats.RemainingCalories(profile.DailyCalorieGoal, int(mealTotals.Calories))
		if left < 0 {
			left = 0
		}
		remaining = fmt.Sprintf("%d", left)
	}
	proteinTarget := "N/A"
	if profile.WeightKg != nil {
		proteinTarget = fmt.Sprintf("%.0f", *profile.WeightKg*2)
	}

	var b strings.Builder
	b.WriteString(buildProfileBlock(profile))
	b.WriteString("\nToday's Nutrition:\n")
	fmt.Fprintf(&b, "- Calories: %.0f / %s (%s remaining)\n", mealTotals.Calories, calorieGoal, remaining)
	fmt.Fprintf(&b, "- Protein: %.0fg / %sg\n", mealTotals.Protein, proteinTarget)
	fmt.Fprintf(&b, "- Carbs: %.0fg\n", mealTotals.Carbs)
	fmt.Fprintf(&b, "- Meals logged: %d\n", len(meals))

	b.WriteString("\nToday's Exercise:\n")
	fmt.Fprintf(&b, "- Total duration: %d minutes\n", exerciseTotals.Duration)
	fmt.Fprintf(&b, "- Calories burned: %d\n", exerciseTotals.CaloriesBurnt)
	if len(exercises) > 0 {
		names := make([]string, 0, len(exercises))
		for _, e := range exercises {
			typ := e.ExerciseType
			if typ == "" {
				typ = "N/A"
			}
			names = append(names, fmt.Sprintf("%s (%dmin, %s)", e.ExerciseName, e.Duration, typ))
		}
		fmt.Fprintf(&b, "- Exercises: %s\n", strings.Join(names, ", "))
	} else {
		b.WriteString("- Exercises: None logged\n")
	}

	b.WriteString("\nRecent Sleep (last 7 days):\n")
	if len(sleepLogs) > 0 {
		for _, s := range sleepLogs {
			quality := s.SleepQuality
			if quality == "" {
				quality = "N/A"
			}
			fmt.Fprintf(&b, "- %s: %.1f hours (%s)\n", s.SleepDate.Format("2006-01-02"), s.HoursSlept, quality)
		}
	} else {
		b.WriteString("- No sleep data logged\n")
	}

	return fmt.Sprintf(`You are a personal fitness and nutrition AI coach. You have access to the user's complete fitness data and provide personalized, actionable advice.

%s
Provide supportive, evidence-based guidance. Be encouraging and specific. Reference their actual data when giving advice. Keep responses concise but helpful.`, b.String())
}

// NutritionInfo is the structured result of a free-text meal analysis.
type NutritionInfo struct {
	Calories           float64 `json:"calories"`
	Protein            float64 `json:"protein"`
	Carbs              float64 `json:"carbs"`
	Fat                float64 `json:"fat"`
	ServingDescription string  `json:"serving_description"`
}

// NutritionTool is the function tool the gateway fills in when analyzing a
// food description.
func NutritionTool() Tool {
	return Tool{
		Type: "function",
		Function: ToolFunction{
			Name:        "provide_nutrition_info",
			Description: "Provide nutritional information for a food item",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"calories": {"type": "number", "description": "Total calories in kcal"},
					"protein": {"type": "number", "description": "Protein content in grams"},
					"carbs": {"type": "number", "description": "Carbohydrate content in grams"},
					"fat": {"type": "number", "description": "Fat content in grams"},
					"serving_description": {"type": "string", "description": "Description of the serving size analyzed"}
				},
				"required": ["calories", "protein", "carbs", "fat", "serving_description"],
				"additionalProperties": false
			}`),
		},
	}
}

// BuildNutritionMessages builds the two-message exchange for analyzing a
// free-text food description.
func BuildNutritionMessages(foodDescription string) []ChatMessage {
	return []ChatMessage{
		{
			Role:    "system",
			Content: "You are a nutrition expert. Analyze food descriptions and provide accurate nutritional information.",
		},
		{
			Role:    "user",
			Content: fmt.Sprintf("Analyze this food item and provide nutritional information: %q", foodDescription),
		},
	}
}
