package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is a list of strings stored as a JSON array in a text column
type StringList []string

// Value implements driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	bytes, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

// Scan implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	bytes, err := scanBytes(value, "StringList")
	if err != nil {
		return err
	}
	if len(bytes) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(bytes, (*[]string)(l))
}

// BrandList holds the brand condition of a cashback rule. The stored JSON may be
// a single string or a list of strings; both decode into the same slice.
type BrandList []string

// Values returns the non-empty brand names in stored order
func (b BrandList) Values() []string {
	values := make([]string, 0, len(b))
	for _, brand := range b {
		if strings.TrimSpace(brand) != "" {
			values = append(values, brand)
		}
	}
	return values
}

// Matches reports whether any brand equals the given brand, ignoring case.
// Empty values on either side never match.
func (b BrandList) Matches(brand string) bool {
	if brand == "" {
		return false
	}
	for _, candidate := range b {
		if candidate != "" && strings.EqualFold(candidate, brand) {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer interface
func (b BrandList) Value() (driver.Value, error) {
	if len(b) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal([]string(b))
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

// Scan implements sql.Scanner interface
func (b *BrandList) Scan(value interface{}) error {
	bytes, err := scanBytes(value, "BrandList")
	if err != nil {
		return err
	}
	if len(bytes) == 0 {
		*b = nil
		return nil
	}
	return b.UnmarshalJSON(bytes)
}

// UnmarshalJSON accepts null, a string or an array of strings
func (b *BrandList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*b = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("invalid brand list: %w", err)
		}
		*b = BrandList(list)
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("invalid brand value: %w", err)
	}
	if single == "" {
		*b = nil
		return nil
	}
	*b = BrandList{single}
	return nil
}

func scanBytes(value interface{}, target string) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("cannot scan %T into %s", value, target)
	}
}
