package handlers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"card-advisor/internal/errors"
	"card-advisor/internal/models"
	"card-advisor/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) HealthCheck(ctx context.Context) error {
	return s.err
}

func TestHealthCheck_Healthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	breaker := service_mocks.NewMockCircuitBreakerInterface(ctrl)
	breaker.EXPECT().GetState().Return(models.CircuitBreakerState(0))

	handler := NewHealthCheckHandler(stubHealthChecker{}, breaker)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "closed", resp["catalog"])
	assert.NotEmpty(t, resp["time"])
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	handler := NewHealthCheckHandler(stubHealthChecker{err: stderrors.New("connection refused")}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-health")

	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(errors.SystemServiceUnavailable), resp.Error.Code)
	assert.Equal(t, "trace-health", resp.Error.TraceID)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
