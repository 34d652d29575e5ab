package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"lg/exercise-guidance-go-api/internal/plan"
)

/* ─── Request / Response types ───────────────────────────────────────── */

// exercisePlanRequest is the body of POST /api/exercise-plan and the form of
// POST /. The binding ranges are the form's input clamps; diabetes and
// activity default to "unknown" and "sedentary" when omitted.
type exercisePlanRequest struct {
	Age         int     `json:"age"          form:"age"          binding:"required,min=5,max=100"`
	WeightKG    float64 `json:"weight_kg"    form:"weight_kg"    binding:"required,min=10,max=250"`
	HeightCM    float64 `json:"height_cm"    form:"height_cm"    binding:"required,min=50,max=250"`
	Diabetes    string  `json:"diabetes"     form:"diabetes"     binding:"omitempty,oneof=unknown diabetic non_diabetic"`
	Activity    string  `json:"activity"     form:"activity"     binding:"omitempty,oneof=sedentary light moderate heavy"`
	HealthIssue string  `json:"health_issue" form:"health_issue"`
}

// toInput converts a bound request into the calculator's input, filling
// defaults for omitted enums.
func (r exercisePlanRequest) toInput() plan.UserInput {
	in := plan.UserInput{
		Age:         r.Age,
		WeightKG:    r.WeightKG,
		HeightCM:    r.HeightCM,
		Diabetes:    plan.DiabetesStatus(r.Diabetes),
		Activity:    plan.ActivityLevel(r.Activity),
		HealthIssue: r.HealthIssue,
	}
	if in.Diabetes == "" {
		in.Diabetes = plan.DiabetesUnknown
	}
	if in.Activity == "" {
		in.Activity = plan.ActivitySedentary
	}
	return in
}

// exercisePlanResponse is the computed plan. BMI is rounded to 2 dp.
type exercisePlanResponse struct {
	BMI           float64   `json:"bmi"`
	Band          plan.Band `json:"band"`
	Plan          string    `json:"plan"`
	Exercises     []string  `json:"exercises"`
	CalorieTarget int       `json:"calorie_target"`
}

func newExercisePlanResponse(res plan.Result) exercisePlanResponse {
	return exercisePlanResponse{
		BMI:           plan.RoundBMI(res.BMI),
		Band:          res.Band,
		Plan:          res.Plan,
		Exercises:     res.Exercises,
		CalorieTarget: res.CalorieTarget,
	}
}

// invalidInputMessage is shown when the calculator rejects the measurements.
const invalidInputMessage = "Enter valid weight & height!"

// describeBindError turns validator errors into a short message naming each
// offending field. Anything else (malformed JSON, wrong types) gets a
// generic message.
func describeBindError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", ")))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return strings.Join(msgs, "; ")
}
