package handlers

import (
	"context"
	"net/http"
	"time"

	"card-advisor/internal/errors"
	"card-advisor/internal/services"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker reports whether a backing store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db      HealthChecker
	breaker services.CircuitBreakerInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db HealthChecker, breaker services.CircuitBreakerInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, breaker: breaker}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API and database connectivity status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,catalog=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	catalog := "unknown"
	if h.breaker != nil {
		catalog = h.breaker.GetState().String()
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"time":    time.Now().UTC().Format(time.RFC3339),
		"catalog": catalog,
	})
}
