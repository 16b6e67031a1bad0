package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"card-advisor/internal/errors"
	"card-advisor/internal/models"
	"card-advisor/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormSchemaContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetFormSchema(t *testing.T) {
	handler := NewFormSchemaHandler(services.NewFormSchemaService())

	c, rec := newFormSchemaContext("/api/v1/form-schema?name=spending_form")

	require.NoError(t, handler.GetFormSchema(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.FormSchema `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Fields)
	assert.Equal(t, "amount", resp.Data.Fields[0].Name)
	assert.True(t, resp.Data.Fields[0].Required)
}

func TestGetFormSchema_MissingName(t *testing.T) {
	handler := NewFormSchemaHandler(services.NewFormSchemaService())

	c, rec := newFormSchemaContext("/api/v1/form-schema")

	require.NoError(t, handler.GetFormSchema(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(errors.ValidationRequiredField), resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "available: profile_update_form, spending_form")
}

func TestGetFormSchema_Unknown(t *testing.T) {
	handler := NewFormSchemaHandler(services.NewFormSchemaService())

	c, rec := newFormSchemaContext("/api/v1/form-schema?name=loan_form")

	require.NoError(t, handler.GetFormSchema(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(errors.FormNotFound), resp.Error.Code)
}
