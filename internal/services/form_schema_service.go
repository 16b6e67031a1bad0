package services

import (
	"errors"
	"sort"

	"card-advisor/internal/models"
)

const (
	FormSpending      = "spending_form"
	FormProfileUpdate = "profile_update_form"
)

var ErrFormSchemaNotFound = errors.New("form schema not found")

var formSchemas = map[string]models.FormSchema{
	FormSpending: {
		Fields: []models.FormField{
			{Name: "amount", Label: "Amount", Type: "integer", Required: true},
			{Name: "category", Label: "Category", Type: "select", FetchValuesFrom: "/api/v1/categories"},
			{Name: "subcategory", Label: "Subcategory", Type: "select", FetchValuesFrom: "/api/v1/subcategories"},
			{Name: "brand", Label: "Brand", Type: "select", FetchValuesFrom: "/api/v1/brands"},
			{Name: "channel", Label: "Channel", Type: "select"},
			{Name: "notes", Label: "Notes", Type: "text"},
		},
	},
	FormProfileUpdate: {
		Fields: []models.FormField{
			{Name: "full_name", Label: "Full Name", Type: "text", Required: true},
			{Name: "email", Label: "Email", Type: "email", Required: true},
			{Name: "mobile", Label: "Mobile Number", Type: "text"},
		},
	},
}

type FormSchemaService struct{}

func NewFormSchemaService() FormSchemaServiceInterface {
	return &FormSchemaService{}
}

// GetFormSchema returns a copy of the named schema
func (s *FormSchemaService) GetFormSchema(name string) (*models.FormSchema, error) {
	schema, ok := formSchemas[name]
	if !ok {
		return nil, ErrFormSchemaNotFound
	}

	fields := make([]models.FormField, len(schema.Fields))
	copy(fields, schema.Fields)
	return &models.FormSchema{Fields: fields}, nil
}

// FormNames lists the registered schema names in sorted order
func (s *FormSchemaService) FormNames() []string {
	names := make([]string, 0, len(formSchemas))
	for name := range formSchemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
