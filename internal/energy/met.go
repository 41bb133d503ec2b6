package energy

import (
	"math"
	"strings"
)

// metEntry pairs an exercise keyword with its MET (Metabolic Equivalent of
// Task) value. The table is a slice, not a map: lookup walks it in declared
// order and the first keyword that is a substring of the exercise name wins.
// That makes the tie-break deterministic when several keywords match (e.g.
// "trail running" matches "running" before anything else).
type metEntry struct {
	name string
	met  float64
}

var metTable = []metEntry{
	// Cardio
	{"running", 8.0},
	{"jogging", 7.0},
	{"walking", 3.5},
	{"cycling", 7.5},
	{"swimming", 8.0},
	{"hiking", 6.0},
	{"dancing", 5.0},
	{"aerobics", 6.5},
	{"jump rope", 12.0},
	{"elliptical", 7.0},
	{"stair climbing", 8.5},

	// Strength
	{"weight lifting", 6.0},
	{"bodyweight", 5.5},
	{"resistance training", 5.0},
	{"push ups", 5.5},
	{"pull ups", 8.0},
	{"squats", 5.5},

	// Flexibility and mind-body
	{"yoga", 3.0},
	{"pilates", 4.0},
	{"stretching", 2.5},
	{"tai chi", 3.0},

	// Sports
	{"basketball", 8.0},
	{"soccer", 10.0},
	{"tennis", 7.0},
	{"badminton", 5.5},
	{"volleyball", 4.0},
	{"cricket", 5.0},
	{"football", 8.0},

	// Category fallbacks, matched by exercise type
	{"cardio", 7.0},
	{"strength", 5.5},
	{"flexibility", 3.0},
	{"sports", 7.5},
	{"other", 5.0},
}

// defaultMET applies when neither the name nor the type matches the table.
const defaultMET = 5.5

// METFor resolves a MET value for an exercise: substring match of table
// keywords against the name first, then an exact match on the type, then the
// default.
func METFor(exerciseName, exerciseType string) float64 {
	name := strings.ToLower(exerciseName)
	for _, e := range metTable {
		if strings.Contains(name, e.name) {
			return e.met
		}
	}

	typ := strings.ToLower(exerciseType)
	if typ != "" {
		for _, e := range metTable {
			if e.name == typ {
				return e.met
			}
		}
	}

	return defaultMET
}

// EstimateExerciseCalories estimates calories burned as
// MET * weight(kg) * duration(hours), rounded to the nearest calorie.
// A missing weight is reported as ErrMissingInput, distinct from a
// non-positive duration (ErrInvalidRange), so callers can tell the user to
// complete their profile rather than fix the form input.
func EstimateExerciseCalories(exerciseName, exerciseType string, durationMin int, weightKg float64) (calories int, met float64, err error) {
	if weightKg == 0 {
		return 0, 0, ErrMissingInput
	}
	if weightKg < 0 || durationMin <= 0 {
		return 0, 0, ErrInvalidRange
	}

	met = METFor(exerciseName, exerciseType)
	calories = int(math.Round(met * weightKg * float64(durationMin) / 60))
	return calories, met, nil
}
