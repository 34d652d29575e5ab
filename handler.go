package main

import (
	"embed"
	"html/template"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lg/exercise-guidance-go-api/internal/content"
	"lg/exercise-guidance-go-api/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Handler holds shared dependencies (planner, static content, logger) for all
// route handlers.
type Handler struct {
	planner *service.Planner
	content content.Page
	logger  *zap.SugaredLogger
}

/* ─── Response helpers ───────────────────────────────────────────────── */

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

/* ─── Middleware ─────────────────────────────────────────────────────── */

// requestIDMiddleware ensures every request has a correlation ID, reusing the
// caller's X-Request-ID when one is sent.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("request_id", reqID)
		c.Writer.Header().Set("X-Request-ID", reqID)
		c.Next()
	}
}

// requestLogger logs one line per request once the handler has finished.
func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.Infow("request",
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

/* ─── Validation ─────────────────────────────────────────────────────── */

var registerFieldNames sync.Once

// useJSONFieldNames makes validator report fields by their json tag
// ("weight_kg") instead of the Go field name ("WeightKG").
func useJSONFieldNames() {
	registerFieldNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

/* ─── Server setup ───────────────────────────────────────────────────── */

// newRouter builds the gin engine with middleware, templates and routes.
func newRouter(h *Handler) (*gin.Engine, error) {
	useJSONFieldNames()

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.SetTrustedProxies(nil)
	router.Use(gin.Recovery(), requestIDMiddleware(), h.requestLogger())
	router.SetHTMLTemplate(tmpl)
	h.registerRoutes(router)
	return router, nil
}

// registerRoutes registers the page and API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	router.GET("/", h.getPage)
	router.POST("/", h.postPage)
	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	api.POST("/exercise-plan", h.postExercisePlan)
	api.GET("/exercise-info", h.getExerciseInfo)
}
