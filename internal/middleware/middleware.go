package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ilhadomel/passeios/internal/models"
)

const actorKey = "actor"

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", method,
			"path", path,
			"status", statusCode,
			"latency", latency,
			"client_ip", clientIP,
		)
	}
}

// ErrorHandler provides centralized error handling
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID, _ := c.Get("request_id")

			logger.Error("Request error",
				"request_id", requestID,
				"error", err.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)

			c.JSON(500, gin.H{
				"error":      "Internal server error",
				"request_id": requestID,
			})
		}
	}
}

// RequireRole tags the request with an actor from the X-Actor-Role and
// X-Actor-Company headers and rejects roles outside the allowed set. This is
// role tagging only; there is no authentication behind it.
func RequireRole(allowed ...models.ActorRole) gin.HandlerFunc {
	allowedSet := make(map[models.ActorRole]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := models.ActorRole(c.GetHeader("X-Actor-Role"))
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse("X-Actor-Role header is required"))
			return
		}
		if _, ok := allowedSet[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse("role not allowed for this resource"))
			return
		}

		actor := models.Actor{Role: role, CompanyID: c.GetHeader("X-Actor-Company")}
		if role == models.RoleCompany && actor.CompanyID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse("X-Actor-Company header is required for company staff"))
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// GetActor returns the actor tagged by RequireRole, defaulting to an
// anonymous customer when the route carries no role middleware.
func GetActor(c *gin.Context) models.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(models.Actor); ok {
			return actor
		}
	}
	return models.Actor{Role: models.RoleCustomer}
}
