package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elidotco/bookingformspace/internal/config"
	"github.com/elidotco/bookingformspace/internal/models"
)

//go:embed templates/form.html
var templateFS embed.FS

var formTemplate = template.Must(template.ParseFS(templateFS, "templates/form.html"))

// formView carries the data the booking page is rendered with. MinDate
// nudges the date picker toward future dates; the server never
// enforces it.
type formView struct {
	AppName    string
	MinDate    string
	EventTypes []models.EventType
	Durations  []models.DurationBand
}

// Register mounts the booking form page on the given engine.
func Register(r *gin.Engine, cfg *config.Config) {
	r.GET("/", func(c *gin.Context) {
		view := formView{
			AppName:    cfg.AppName,
			MinDate:    time.Now().Format("2006-01-02"),
			EventTypes: models.EventTypes,
			Durations:  models.PerformanceDurations,
		}
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		if err := formTemplate.Execute(c.Writer, view); err != nil {
			log.Printf("Failed to render booking form page: %v", err)
		}
	})
}
