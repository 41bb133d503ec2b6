// Package achievements decides when a badge should unlock. The decision is a
// pure predicate over pre-computed counts; persisting the unlock (exactly
// once per user and achievement) is the caller's job.
package achievements

import "fittrack/internal/models"

// Criteria types recognized by the evaluator. Anything else never unlocks.
const (
	CriteriaFirstMeal            = "first_meal"
	CriteriaTotalMeals           = "total_meals"
	CriteriaWorkoutsCompleted    = "workouts_completed"
	CriteriaTotalExerciseMinutes = "total_exercise_minutes"
	CriteriaFullDayLog           = "full_day_log"
)

// Stats is a snapshot of the user's logged activity, gathered by the caller
// from the store before evaluation.
type Stats struct {
	MealCount            int64
	WorkoutCount         int64
	TotalExerciseMinutes int64
	HasMealToday         bool
	HasExerciseToday     bool
	HasSleepToday        bool
}

// ShouldUnlock reports whether the achievement's criteria are met by the
// given stats. Unknown criteria types return false.
func ShouldUnlock(a models.Achievement, s Stats) bool {
	switch a.CriteriaType {
	case CriteriaFirstMeal:
		return s.MealCount >= 1
	case CriteriaTotalMeals:
		return s.MealCount >= int64(a.CriteriaValue)
	case CriteriaWorkoutsCompleted:
		return s.WorkoutCount >= int64(a.CriteriaValue)
	case CriteriaTotalExerciseMinutes:
		return s.TotalExerciseMinutes >= int64(a.CriteriaValue)
	case CriteriaFullDayLog:
		return s.HasMealToday && s.HasExerciseToday && s.HasSleepToday
	default:
		return false
	}
}

// Pending filters the catalog down to achievements not yet unlocked for the
// user. Unlocking is monotonic: once an ID is in the unlocked set it is never
// evaluated again.
func Pending(catalog []models.Achievement, unlocked map[uint]bool) []models.Achievement {
	pending := make([]models.Achievement, 0, len(catalog))
	for _, a := range catalog {
		if !unlocked[a.ID] {
			pending = append(pending, a)
		}
	}
	return pending
}
