package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormSchemaService_GetFormSchema(t *testing.T) {
	service := NewFormSchemaService()

	schema, err := service.GetFormSchema(FormSpending)
	require.NoError(t, err)
	require.NotEmpty(t, schema.Fields)
	assert.Equal(t, "amount", schema.Fields[0].Name)
	assert.True(t, schema.Fields[0].Required)

	var category string
	for _, field := range schema.Fields {
		if field.Name == "category" {
			category = field.FetchValuesFrom
		}
	}
	assert.Equal(t, "/api/v1/categories", category)
}

func TestFormSchemaService_ReturnsCopy(t *testing.T) {
	service := NewFormSchemaService()

	schema, err := service.GetFormSchema(FormProfileUpdate)
	require.NoError(t, err)
	schema.Fields[0].Label = "changed"

	again, err := service.GetFormSchema(FormProfileUpdate)
	require.NoError(t, err)
	assert.Equal(t, "Full Name", again.Fields[0].Label)
}

func TestFormSchemaService_Unknown(t *testing.T) {
	schema, err := NewFormSchemaService().GetFormSchema("missing_form")

	assert.Nil(t, schema)
	assert.ErrorIs(t, err, ErrFormSchemaNotFound)
}

func TestFormSchemaService_FormNames(t *testing.T) {
	assert.Equal(t, []string{FormProfileUpdate, FormSpending}, NewFormSchemaService().FormNames())
}
