package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBenefitValue(t *testing.T) {
	tests := []struct {
		name  string
		value BenefitValue
		want  string
	}{
		{"number", NumericBenefit(decimal.RequireFromString("750.25")), "750.25"},
		{"rupee prefix", TextBenefit("₹500 Amazon voucher"), "500"},
		{"rs prefix with separator", TextBenefit("Rs. 1,200 fuel surcharge waiver"), "1200"},
		{"decimal in text", TextBenefit("Earn 2.5 points per spend"), "2.5"},
		{"first amount wins", TextBenefit("₹250 now and ₹750 later"), "250"},
		{"numeric text", TextBenefit("1500"), "1500"},
		{"no amount", TextBenefit("Complimentary lounge access"), "0"},
		{"empty", BenefitValue{}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBenefitValue(tt.value)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestTextBenefit_EmptyIsEmpty(t *testing.T) {
	assert.Equal(t, BenefitValueEmpty, TextBenefit("").Kind)
}

func TestBenefitValue_JSON(t *testing.T) {
	var values []BenefitValue
	require.NoError(t, json.Unmarshal([]byte(`[500, "₹200 cashback", null]`), &values))
	require.Len(t, values, 3)

	assert.Equal(t, BenefitValueNumeric, values[0].Kind)
	assert.Equal(t, BenefitValueText, values[1].Kind)
	assert.Equal(t, BenefitValueEmpty, values[2].Kind)

	out, err := json.Marshal(values)
	require.NoError(t, err)
	assert.JSONEq(t, `[500, "₹200 cashback", null]`, string(out))
}

func TestBenefitValue_UnmarshalInvalid(t *testing.T) {
	var value BenefitValue
	assert.Error(t, json.Unmarshal([]byte(`true`), &value))
}

func TestBenefitValue_ScanAndValue(t *testing.T) {
	var value BenefitValue

	require.NoError(t, value.Scan([]byte("₹1000 voucher")))
	assert.Equal(t, BenefitValueText, value.Kind)
	assert.True(t, ParseBenefitValue(value).Equal(decimal.NewFromInt(1000)))

	stored, err := value.Value()
	require.NoError(t, err)
	assert.Equal(t, "₹1000 voucher", stored)

	require.NoError(t, value.Scan(int64(300)))
	assert.Equal(t, BenefitValueNumeric, value.Kind)

	require.NoError(t, value.Scan(nil))
	stored, err = value.Value()
	require.NoError(t, err)
	assert.Nil(t, stored)

	assert.Error(t, value.Scan(true))
}
