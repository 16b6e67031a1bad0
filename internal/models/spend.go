package models

import "github.com/shopspring/decimal"

// SpendEntry is a single spending intent supplied by the caller. It is never persisted.
// Descriptors are optional; an empty descriptor matches no rule on that dimension.
type SpendEntry struct {
	Name         string          `json:"name,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category,omitempty"`
	Subcategory  string          `json:"subcategory,omitempty"`
	Brand        string          `json:"brand,omitempty"`
	Platform     string          `json:"platform,omitempty"`
	Channel      string          `json:"channel,omitempty"`
	SpendingType string          `json:"spendingType,omitempty"`
}

// ChannelOrType returns the online/offline channel, falling back to the spending type
func (s SpendEntry) ChannelOrType() string {
	if s.Channel != "" {
		return s.Channel
	}
	return s.SpendingType
}
