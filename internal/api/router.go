package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/elidotco/bookingformspace/internal/api/handlers"
	"github.com/elidotco/bookingformspace/internal/api/middleware"
	"github.com/elidotco/bookingformspace/internal/config"
	"github.com/elidotco/bookingformspace/internal/email"
	"github.com/elidotco/bookingformspace/internal/services"
	"github.com/elidotco/bookingformspace/internal/web"
)

// SetupRouter configures and returns the main Gin engine serving the
// booking form page and the booking submission endpoint.
func SetupRouter(cfg *config.Config, sender email.Sender) *gin.Engine {
	// Initialize services needed by API handlers
	composer := services.NewNotificationComposer(cfg)
	bookingService := services.NewBookingService(cfg, composer, sender)

	r := gin.Default()

	// Initialize Middleware
	rateLimiter := middleware.NewRateLimiterMiddleware(cfg)

	// Apply global middleware first (order matters)
	r.Use(middleware.CORSMiddleware())
	r.Use(rateLimiter.Limit())

	// Initialize handlers
	restBookingHandler := handlers.NewRestBookingHandler(bookingService)

	// Booking form page (embedded static client)
	web.Register(r, cfg)

	api := r.Group("/api")
	{
		api.POST("/booking", restBookingHandler.SubmitBooking)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	return r
}

// SetupServiceRouter configures and returns the service Gin engine,
// an internal control surface for dev and test tooling. Requires the
// Redis client for the getTestEmail method and the live sender for
// sendTestEmail.
func SetupServiceRouter(cfg *config.Config, rdb *redis.Client, sender email.Sender, shutdownChan chan<- struct{}) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.POST("/api", func(c *gin.Context) {
		var req struct {
			Method    string          `json:"method"`
			Arguments json.RawMessage `json:"arguments"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
			return
		}

		switch req.Method {
		case "shutdown":
			log.Println("Received shutdown command via Service API")
			c.JSON(http.StatusOK, gin.H{"success": true, "result": "Shutdown initiated"})
			select {
			case shutdownChan <- struct{}{}:
			default:
				log.Println("Shutdown channel already signaled or blocked.")
			}

		case "getTestEmail":
			if rdb == nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Mock email inbox not configured (REDIS_ADDR unset)"})
				return
			}
			var args []string // Expect [kind, email]
			if err := json.Unmarshal(req.Arguments, &args); err != nil || len(args) != 2 {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid arguments: expected JSON array [kind, email]"})
				return
			}
			kind := args[0]
			emailAddr := args[1]
			redisKey := fmt.Sprintf("mockemail:%s:%s", emailAddr, kind)

			// Poll Redis briefly for the key
			var emailJsonData string
			var getErr error
			found := false
			ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
			defer cancel()
			for i := 0; i < 10; i++ { // Poll up to ~2 seconds
				emailJsonData, getErr = rdb.Get(ctx, redisKey).Result()
				if getErr == nil {
					found = true
					rdb.Del(ctx, redisKey) // Delete after fetching
					break
				}
				if getErr != redis.Nil {
					log.Printf("Service API: Error getting key %s from Redis: %v", redisKey, getErr)
					c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Redis error"})
					return
				}
				// If redis.Nil, wait and retry
				time.Sleep(200 * time.Millisecond)
			}

			if !found {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": fmt.Sprintf("Test email not found in Redis for key %s", redisKey)})
				return
			}

			var emailData map[string]interface{}
			if err := json.Unmarshal([]byte(emailJsonData), &emailData); err != nil {
				log.Printf("Service API: Error unmarshalling email data from key %s: %v", redisKey, err)
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to parse stored email data"})
				return
			}

			c.JSON(http.StatusOK, gin.H{"success": true, "data": emailData})

		case "sendTestEmail":
			var args []string // Expect [recipient]
			if err := json.Unmarshal(req.Arguments, &args); err != nil || len(args) != 1 {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid arguments: expected JSON array [recipient]"})
				return
			}
			msg := email.Message{
				From:    cfg.SmtpFromAddress,
				To:      args[0],
				Subject: fmt.Sprintf("Test Email - %s Booking Form Setup", cfg.AppName),
				Text: fmt.Sprintf("Email test successful!\n\nYour email transport configuration is working correctly.\n\nSent on %s\nFrom: %s\n",
					time.Now().Format("January 2, 2006 at 3:04 PM MST"), cfg.SmtpFromAddress),
			}
			id, err := sender.Send(c.Request.Context(), msg)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "messageId": id})

		default:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": fmt.Sprintf("Unknown service method: %s", req.Method)})
		}
	})
	return r
}
