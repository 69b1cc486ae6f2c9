package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HikingPackage là một lộ trình leo núi có thể đặt
type HikingPackage struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"not null"`
	Price       int64     `json:"price" gorm:"not null"` // Giá mỗi người
	Duration    string    `json:"duration"`
	Difficulty  string    `json:"difficulty"`
	Distance    string    `json:"distance"`
	Description string    `json:"description"`
	MapURL      string    `json:"mapUrl,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *HikingPackage) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
