package handlers

import (
	"net/http"

	"huduma-portal/internal/billing"
	intconfig "huduma-portal/internal/config"
	"huduma-portal/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

var (
	jwtSecret      []byte
	gateway        billing.ControlNumberIssuer
	storageBaseURL string
)

// Configure wires env-derived settings and the billing gateway client into
// the handler package. Called once by the router.
func Configure(env intconfig.Env) {
	jwtSecret = []byte(env.JWTSecret)
	storageBaseURL = env.StorageBaseURL
	gateway = billing.NewClient(env.GatewayBaseURL, env.GatewayAPIKey)
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
