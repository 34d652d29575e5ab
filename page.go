package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/exercise-guidance-go-api/internal/content"
	"lg/exercise-guidance-go-api/internal/plan"
)

// formOption is one <option> of a select input.
type formOption struct {
	Value    string
	Label    string
	Selected bool
}

// pageData is everything index.html renders. Result and Error are empty
// until the form is submitted.
type pageData struct {
	Content  content.Page
	Form     exercisePlanRequest
	Diabetes []formOption
	Activity []formOption
	Result   *exercisePlanResponse
	Error    string
}

// defaultForm mirrors the input minimums, which is what an untouched form
// shows.
func defaultForm() exercisePlanRequest {
	return exercisePlanRequest{
		Age:      plan.MinAge,
		WeightKG: plan.MinWeightKG,
		HeightCM: plan.MinHeightCM,
		Diabetes: string(plan.DiabetesUnknown),
		Activity: string(plan.ActivitySedentary),
	}
}

func (h *Handler) newPageData(form exercisePlanRequest) pageData {
	in := form.toInput()

	diabetes := make([]formOption, 0, len(plan.DiabetesStatuses))
	for _, d := range plan.DiabetesStatuses {
		diabetes = append(diabetes, formOption{Value: string(d), Label: d.Label(), Selected: d == in.Diabetes})
	}
	activity := make([]formOption, 0, len(plan.ActivityLevels))
	for _, a := range plan.ActivityLevels {
		activity = append(activity, formOption{Value: string(a), Label: a.Label(), Selected: a == in.Activity})
	}

	return pageData{
		Content:  h.content,
		Form:     form,
		Diabetes: diabetes,
		Activity: activity,
	}
}

// getPage renders the empty form and the educational content.
// GET /.
func (h *Handler) getPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.newPageData(defaultForm()))
}

// postPage handles the "Generate Exercise & Calorie Plan" button.
// POST / (application/x-www-form-urlencoded). Re-renders the page with the
// plan, or with the rejection message and a 400.
func (h *Handler) postPage(c *gin.Context) {
	var form exercisePlanRequest
	if err := c.ShouldBind(&form); err != nil {
		data := h.newPageData(form)
		data.Error = describeBindError(err)
		c.HTML(http.StatusBadRequest, "index.html", data)
		return
	}

	data := h.newPageData(form)
	res, err := h.planner.Submit(c.Request.Context(), form.toInput())
	if err != nil {
		status := http.StatusInternalServerError
		data.Error = "Something went wrong, please try again."
		if errors.Is(err, plan.ErrInvalidInput) {
			status = http.StatusBadRequest
			data.Error = invalidInputMessage
		} else {
			h.logger.Errorf("[postPage] unexpected error: %v", err)
		}
		c.HTML(status, "index.html", data)
		return
	}

	resp := newExercisePlanResponse(res)
	data.Result = &resp
	c.HTML(http.StatusOK, "index.html", data)
}
