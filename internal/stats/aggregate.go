// Package stats reduces already-fetched log entries into the totals shown on
// the dashboard. Everything here is a pure fold: no queries, no clocks beyond
// the window the caller passes in.
package stats

import (
	"time"

	"fittrack/internal/models"
)

type MealTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Meals    int     `json:"meals"`
}

type ExerciseTotals struct {
	Duration      int `json:"duration"`
	CaloriesBurnt int `json:"calories_burnt"`
	Sessions      int `json:"sessions"`
}

// DayBucket is one calendar day in a weekly report. SleepHours carries the
// single sleep entry for that day (at most one exists); days with no entries
// are present with zero values.
type DayBucket struct {
	Date            string  `json:"date"`
	Calories        float64 `json:"calories"`
	Protein         float64 `json:"protein"`
	ExerciseMinutes int     `json:"exercise_minutes"`
	CaloriesBurnt   int     `json:"calories_burnt"`
	SleepHours      float64 `json:"sleep_hours"`
}

const dayKey = "2006-01-02"

func SumMeals(meals []models.Meal) MealTotals {
	var t MealTotals
	for _, m := range meals {
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
	}
	t.Meals = len(meals)
	return t
}

func SumExercises(exercises []models.Exercise) ExerciseTotals {
	var t ExerciseTotals
	for _, e := range exercises {
		t.Duration += e.Duration
		t.CaloriesBurnt += e.CaloriesBurnt
	}
	t.Sessions = len(exercises)
	return t
}

// RemainingCalories is goal minus consumed. A negative result means the user
// is over goal; that is a classification for the caller, not an error.
func RemainingCalories(goal, consumed int) int {
	return goal - consumed
}

// AverageSleepHours averages hours over the given logs, zero when empty.
func AverageSleepHours(logs []models.SleepLog) float64 {
	if len(logs) == 0 {
		return 0
	}
	var sum float64
	for _, l := range logs {
		sum += l.HoursSlept
	}
	return sum / float64(len(logs))
}

// WeeklyReport buckets entries into the seven calendar days ending at end
// (inclusive). Entries outside the window are ignored; sleep is reported per
// day, not summed, since only one entry can exist per day.
func WeeklyReport(end time.Time, meals []models.Meal, exercises []models.Exercise, sleepLogs []models.SleepLog) []DayBucket {
	buckets := make([]DayBucket, 7)
	index := make(map[string]*DayBucket, 7)
	for i := 0; i < 7; i++ {
		d := end.AddDate(0, 0, i-6)
		key := d.Format(dayKey)
		buckets[i] = DayBucket{Date: key}
		index[key] = &buckets[i]
	}

	for _, m := range meals {
		if b, ok := index[m.ConsumedAt.Format(dayKey)]; ok {
			b.Calories += m.Calories
			b.Protein += m.Protein
		}
	}
	for _, e := range exercises {
		if b, ok := index[e.ExerciseDate.Format(dayKey)]; ok {
			b.ExerciseMinutes += e.Duration
			b.CaloriesBurnt += e.CaloriesBurnt
		}
	}
	for _, s := range sleepLogs {
		if b, ok := index[s.SleepDate.Format(dayKey)]; ok {
			b.SleepHours = s.HoursSlept
		}
	}

	return buckets
}
