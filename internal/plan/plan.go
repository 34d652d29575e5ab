package plan

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when the inputs cannot produce a BMI
// (non-positive height, or a non-positive BMI).
var ErrInvalidInput = errors.New("invalid input")

// InputError records which value was rejected. It matches ErrInvalidInput
// under errors.Is.
type InputError struct {
	Field string
	Value float64
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s must be greater than zero, got %g", e.Field, e.Value)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// Band is the BMI classification a plan is chosen from.
type Band string

const (
	Underweight Band = "underweight"
	Normal      Band = "normal"
	Overweight  Band = "overweight"
	Obesity     Band = "obesity"
)

// Result is the computed plan for one submission.
type Result struct {
	BMI           float64  `json:"bmi"`
	Band          Band     `json:"band"`
	Plan          string   `json:"plan"`
	Exercises     []string `json:"exercises"`
	CalorieTarget int      `json:"calorie_target"`
}

/* ─── Band table ─────────────────────────────────────────────────────── */

// bandRule holds the static plan for one band. Calories are
// baseCalories + perYear*age, truncated.
type bandRule struct {
	band         Band
	plan         string
	exercises    []string
	baseCalories float64
	perYear      float64
}

var (
	underweightRule = bandRule{
		band: Underweight,
		plan: "Underweight → Focus on muscle gain & strength.",
		exercises: []string{
			"🏋️ Strength training (4 days/week)",
			"🚶 20–30 min walking daily",
			"🧘 Posture correction yoga",
		},
		baseCalories: 2300,
		perYear:      2,
	}
	normalRule = bandRule{
		band: Normal,
		plan: "Normal BMI → Maintain fitness with balanced routine.",
		exercises: []string{
			"🏃 Jogging 30 minutes",
			"🚴 Cycling twice weekly",
			"💪 Weight training (3 days/week)",
			"🧘 Yoga on weekends",
		},
		baseCalories: 2000,
		perYear:      1.5,
	}
	overweightRule = bandRule{
		band: Overweight,
		plan: "Overweight → Fat loss + stamina building.",
		exercises: []string{
			"🚶 Brisk walking 45 minutes daily",
			"🏊 Swimming / cycling (3 days/week)",
			"🔥 Light HIIT workouts",
			"🧘 Flexibility yoga",
		},
		baseCalories: 1800,
		perYear:      1.2,
	}
	obesityRule = bandRule{
		band: Obesity,
		plan: "Obesity → Low-impact workouts & high consistency.",
		exercises: []string{
			"🚶 Walking 45–60 minutes (once or twice daily)",
			"🚴 Static cycling",
			"🔥 Beginner HIIT",
			"🧘 Breathing & posture yoga",
		},
		baseCalories: 1600,
		perYear:      1,
	}
)

const (
	postMealWalk  = "🩸 15-minute walk after meals to control sugar spikes"
	cautionFormat = "⚠ Avoid stress due to: %s"
)

// classify picks the band rule for bmi. Rules are checked in order and the
// first match wins. Values in [24.9, 25) match neither Normal nor Overweight
// and fall through to Obesity.
func classify(bmi float64) bandRule {
	switch {
	case bmi < 18.5:
		return underweightRule
	case bmi >= 18.5 && bmi < 24.9:
		return normalRule
	case bmi >= 25 && bmi < 29.9:
		return overweightRule
	default:
		return obesityRule
	}
}

/* ─── Operations ─────────────────────────────────────────────────────── */

// ComputeBMI returns weight / (height in meters)². Height must be positive.
func ComputeBMI(weightKG, heightCM float64) (float64, error) {
	if !(heightCM > 0) {
		return 0, &InputError{Field: "height", Value: heightCM}
	}
	m := heightCM / 100
	return weightKG / (m * m), nil
}

// ClassifyAndPlan maps bmi to its band's plan, then appends the diabetic
// post-meal walk and a health-issue caution when they apply. The calorie
// target is truncated, not rounded.
func ClassifyAndPlan(bmi float64, age int, diabetes DiabetesStatus, healthIssue string) (Result, error) {
	if !(bmi > 0) {
		return Result{}, &InputError{Field: "bmi", Value: bmi}
	}

	rule := classify(bmi)

	// Copy so appends never touch the shared table.
	exercises := make([]string, len(rule.exercises), len(rule.exercises)+2)
	copy(exercises, rule.exercises)
	if diabetes == Diabetic {
		exercises = append(exercises, postMealWalk)
	}
	if strings.TrimSpace(healthIssue) != "" {
		exercises = append(exercises, fmt.Sprintf(cautionFormat, healthIssue))
	}

	calories := rule.baseCalories + float64(age)*rule.perYear

	return Result{
		BMI:           bmi,
		Band:          rule.band,
		Plan:          rule.plan,
		Exercises:     exercises,
		CalorieTarget: int(calories),
	}, nil
}

// Compute runs ComputeBMI and ClassifyAndPlan for one submission.
// ActivityLevel is not consulted.
func Compute(in UserInput) (Result, error) {
	bmi, err := ComputeBMI(in.WeightKG, in.HeightCM)
	if err != nil {
		return Result{}, err
	}
	return ClassifyAndPlan(bmi, in.Age, in.Diabetes, in.HealthIssue)
}

// RoundBMI rounds bmi to two decimal places for display and logging. It
// rounds the exact binary value, so it always agrees with "%.2f".
func RoundBMI(bmi float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(bmi, 'f', 2, 64), 64)
	return v
}
