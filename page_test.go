package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lg/exercise-guidance-go-api/internal/logsink"
)

// postForm submits the page form URL-encoded, like a browser would.
func postForm(router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetPage(t *testing.T) {
	router := setupPlanTest(t, logsink.Nop{})

	w := doJSONRequest(router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)

	html := w.Body.String()
	assert.Contains(t, html, "Exercise Guidance for Diabetes")
	assert.Contains(t, html, "1. Walking")
	assert.Contains(t, html, "10. Yoga")
	assert.Contains(t, html, `<option value="unknown" selected>Not Sure</option>`)
	assert.NotContains(t, html, "Your BMI")
}

func TestPostPage_RendersPlan(t *testing.T) {
	router := setupPlanTest(t, logsink.Nop{})

	w := postForm(router, url.Values{
		"age":          {"30"},
		"weight_kg":    {"70"},
		"height_cm":    {"175"},
		"diabetes":     {"diabetic"},
		"activity":     {"moderate"},
		"health_issue": {"BP"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	html := w.Body.String()
	assert.Contains(t, html, "22.86")
	assert.Contains(t, html, "Normal BMI → Maintain fitness with balanced routine.")
	assert.Contains(t, html, "2045 calories per day")
	assert.Contains(t, html, "15-minute walk after meals")
	assert.Contains(t, html, "Avoid stress due to: BP")
	assert.Contains(t, html, `<option value="diabetic" selected>`)
	assert.Contains(t, html, `<option value="moderate" selected>`)
}

// TestPostPage_EscapesHealthIssue verifies user text is HTML-escaped when it
// is echoed back in the caution line.
func TestPostPage_EscapesHealthIssue(t *testing.T) {
	router := setupPlanTest(t, logsink.Nop{})

	w := postForm(router, url.Values{
		"age":          {"30"},
		"weight_kg":    {"70"},
		"height_cm":    {"175"},
		"health_issue": {"<script>alert(1)</script>"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>alert(1)</script>")
	assert.Contains(t, w.Body.String(), "&lt;script&gt;")
}

func TestPostPage_OutOfRange(t *testing.T) {
	router := setupPlanTest(t, logsink.Nop{})

	w := postForm(router, url.Values{
		"age":       {"200"},
		"weight_kg": {"70"},
		"height_cm": {"175"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "age must be at most 100")
	assert.NotContains(t, w.Body.String(), "Your BMI")
}
