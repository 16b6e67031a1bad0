package handlers

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// getDecimalParam parses an optional decimal query parameter. Missing or blank returns nil.
func getDecimalParam(c echo.Context, name string) (*decimal.Decimal, error) {
	param := strings.TrimSpace(c.QueryParam(name))
	if param == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(param)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	if value.IsNegative() {
		return nil, fmt.Errorf("%s cannot be negative", name)
	}
	return &value, nil
}

func getUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Param(name)))
}
