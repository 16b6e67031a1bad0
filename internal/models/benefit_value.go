package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// BenefitValueKind tags which representation a BenefitValue carries
type BenefitValueKind int

const (
	BenefitValueEmpty BenefitValueKind = iota
	BenefitValueNumeric
	BenefitValueText
)

// benefitAmountPattern finds the first amount, optionally preceded by a currency prefix
// such as "₹", "Rs" or "Rs. ". A single thousands separator or decimal point is allowed.
var benefitAmountPattern = regexp.MustCompile(`[₹Rs. ]*(\d+[.,]?\d*)`)

// BenefitValue is the value of a welcome or card benefit. Catalog data carries
// either a raw number or free text embedding an amount ("₹500 Amazon voucher").
type BenefitValue struct {
	Kind   BenefitValueKind
	Number decimal.Decimal
	Raw    string
}

// NumericBenefit creates a benefit value holding a number
func NumericBenefit(amount decimal.Decimal) BenefitValue {
	return BenefitValue{Kind: BenefitValueNumeric, Number: amount}
}

// TextBenefit creates a benefit value holding free text
func TextBenefit(raw string) BenefitValue {
	if raw == "" {
		return BenefitValue{}
	}
	return BenefitValue{Kind: BenefitValueText, Raw: raw}
}

// String returns the value as it would be displayed
func (v BenefitValue) String() string {
	switch v.Kind {
	case BenefitValueNumeric:
		return v.Number.String()
	case BenefitValueText:
		return v.Raw
	default:
		return ""
	}
}

// ParseBenefitValue is the single resolver for benefit values. Numbers pass through,
// text yields its first embedded amount, and anything unparseable yields zero.
func ParseBenefitValue(v BenefitValue) decimal.Decimal {
	switch v.Kind {
	case BenefitValueNumeric:
		return v.Number
	case BenefitValueText:
		return parseBenefitText(v.Raw)
	default:
		return decimal.Zero
	}
}

func parseBenefitText(raw string) decimal.Decimal {
	match := benefitAmountPattern.FindStringSubmatch(raw)
	if len(match) < 2 {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(match[1], ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// Value implements driver.Valuer interface
func (v BenefitValue) Value() (driver.Value, error) {
	if v.Kind == BenefitValueEmpty {
		return nil, nil
	}
	return v.String(), nil
}

// Scan implements sql.Scanner interface. Stored values are always read back as text;
// a purely numeric text resolves to the same amount.
func (v *BenefitValue) Scan(value interface{}) error {
	switch src := value.(type) {
	case nil:
		*v = BenefitValue{}
	case string:
		*v = TextBenefit(src)
	case []byte:
		*v = TextBenefit(string(src))
	case int64:
		*v = NumericBenefit(decimal.NewFromInt(src))
	case float64:
		*v = NumericBenefit(decimal.NewFromFloat(src))
	default:
		return fmt.Errorf("cannot scan %T into BenefitValue", value)
	}
	return nil
}

// MarshalJSON writes numbers as JSON numbers and text as JSON strings
func (v BenefitValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case BenefitValueNumeric:
		return []byte(v.Number.String()), nil
	case BenefitValueText:
		return json.Marshal(v.Raw)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts null, a JSON number or a JSON string
func (v *BenefitValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*v = BenefitValue{}
		return nil
	}

	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("invalid benefit value: %w", err)
		}
		*v = TextBenefit(raw)
		return nil
	}

	amount, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid benefit value: %w", err)
	}
	*v = NumericBenefit(amount)
	return nil
}
