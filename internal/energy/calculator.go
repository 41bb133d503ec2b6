package energy

import (
	"errors"
	"math"
)

// The calorie-goal pipeline: BMR (Mifflin-St Jeor) -> TDEE (activity
// multiplier) -> goal adjustment. All functions are pure; callers decide how
// to surface the error kinds.
var (
	ErrMissingInput = errors.New("energy: required input is missing")
	ErrInvalidRange = errors.New("energy: input outside valid range")
)

// activityMultipliers maps an activity level to its TDEE multiplier. Levels
// come from a controlled enumeration at the API boundary; anything
// unrecognized falls back to sedentary rather than failing.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// CalculateBMR computes basal metabolic rate with the Mifflin-St Jeor
// equation. Weight is in kilograms, height in centimeters. A zero weight,
// height or age means the profile field was never set and reports
// ErrMissingInput; a negative value is present but impossible and reports
// ErrInvalidRange. The non-male constant (-161) is applied for both "female"
// and "other".
func CalculateBMR(weightKg, heightCm float64, ageYears int, gender string) (float64, error) {
	if weightKg == 0 || heightCm == 0 || ageYears == 0 || gender == "" {
		return 0, ErrMissingInput
	}
	if weightKg < 0 || heightCm < 0 || ageYears < 0 {
		return 0, ErrInvalidRange
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr, nil
}

// CalculateTDEE scales BMR by the activity multiplier. Unknown levels use the
// sedentary multiplier (1.2).
func CalculateTDEE(bmr float64, activityLevel string) float64 {
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = 1.2
	}
	return bmr * mult
}

// CalculateCalorieGoal adjusts TDEE for the user's goal and rounds to the
// nearest whole calorie: +300 for gain, -500 for lose, unchanged otherwise.
func CalculateCalorieGoal(tdee float64, goal string) int {
	switch goal {
	case "gain":
		return int(math.Round(tdee + 300))
	case "lose":
		return int(math.Round(tdee - 500))
	default:
		return int(math.Round(tdee))
	}
}

// DailyGoalFor chains BMR, TDEE and the goal adjustment. It propagates the
// calculator's error kinds so callers can skip the write instead of
// persisting a goal computed from incomplete biometrics.
func DailyGoalFor(weightKg, heightCm float64, ageYears int, gender, activityLevel, goal string) (int, error) {
	bmr, err := CalculateBMR(weightKg, heightCm, ageYears, gender)
	if err != nil {
		return 0, err
	}
	return CalculateCalorieGoal(CalculateTDEE(bmr, activityLevel), goal), nil
}
