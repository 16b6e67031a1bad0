package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PromotionalBanner is a homepage banner, optionally pointing at a card
type PromotionalBanner struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Title       string     `gorm:"type:varchar(100);not null" json:"title"`
	Color       string     `gorm:"type:varchar(50)" json:"color"`
	Icon        string     `gorm:"type:varchar(50)" json:"icon,omitempty"`
	Order       int        `gorm:"column:display_order;not null;default:0" json:"order"`
	CardID      *uuid.UUID `gorm:"type:uuid;index" json:"card_id,omitempty"`
	LinkURL     string     `gorm:"type:varchar(255)" json:"link_url,omitempty"`
	Description string     `gorm:"type:text" json:"description,omitempty"`

	Card *Card `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE" json:"card,omitempty"`
}

func (b *PromotionalBanner) TableName() string {
	return "promotional_banners"
}

func (b *PromotionalBanner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// DisplayTitle is the banner title, falling back to the linked card's name
func (b *PromotionalBanner) DisplayTitle() string {
	if b.Title != "" || b.Card == nil {
		return b.Title
	}
	return b.Card.DisplayName()
}
