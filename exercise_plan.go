package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/exercise-guidance-go-api/internal/plan"
)

// postExercisePlan computes BMI, plan, exercises and calorie target.
// POST /api/exercise-plan. Body: { "age", "weight_kg", "height_cm",
// "diabetes"?, "activity"?, "health_issue"? }.
// The submission is logged best-effort; a logging failure never changes the
// response.
func (h *Handler) postExercisePlan(c *gin.Context) {
	var body exercisePlanRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, describeBindError(err))
		return
	}

	res, err := h.planner.Submit(c.Request.Context(), body.toInput())
	if err != nil {
		if errors.Is(err, plan.ErrInvalidInput) {
			apiError(c, http.StatusBadRequest, invalidInputMessage)
		} else {
			h.logger.Errorf("[postExercisePlan] unexpected error: %v", err)
			apiError(c, http.StatusInternalServerError, "failed to compute plan")
		}
		return
	}

	c.JSON(http.StatusOK, newExercisePlanResponse(res))
}

// getExerciseInfo returns the ten static educational blurbs.
// GET /api/exercise-info.
func (h *Handler) getExerciseInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.content)
}
