package handlers

import (
	stderrors "errors"
	"strings"

	"card-advisor/internal/errors"
	"card-advisor/internal/services"

	"github.com/labstack/echo/v4"
)

// FormSchemaHandler serves the front-end form definitions
type FormSchemaHandler struct {
	service services.FormSchemaServiceInterface
}

// NewFormSchemaHandler creates a new form schema handler
func NewFormSchemaHandler(service services.FormSchemaServiceInterface) *FormSchemaHandler {
	return &FormSchemaHandler{service: service}
}

// GetFormSchema returns the named form schema
// @Summary Get form schema
// @Tags Forms
// @Produce json
// @Param name query string true "Form name" Enums(spending_form, profile_update_form)
// @Success 200 {object} SuccessResponse{data=models.FormSchema}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - Form name is required"
// @Failure 404 {object} errors.ErrorResponse "FORM_001 - Form schema not found"
// @Router /form-schema [get]
func (h *FormSchemaHandler) GetFormSchema(c echo.Context) error {
	name := strings.TrimSpace(c.QueryParam("name"))
	if name == "" {
		return SendError(c, errors.ValidationRequiredField,
			errors.WithDetails("name: is required", "available: "+strings.Join(h.service.FormNames(), ", ")))
	}

	schema, err := h.service.GetFormSchema(name)
	if stderrors.Is(err, services.ErrFormSchemaNotFound) {
		return SendError(c, errors.FormNotFound, errors.WithDetails("name: "+name))
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendData(c, schema)
}
