package models

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Basecamp là điểm lưu trú trước khi leo núi
type Basecamp struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string         `json:"name" gorm:"not null"`
	Price       int64          `json:"price" gorm:"not null"`
	Capacity    int            `json:"capacity"`
	Facilities  datatypes.JSON `json:"facilities"` // Danh sách tiện ích, dạng JSON array
	Location    string         `json:"location"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (b *Basecamp) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// FacilityList giải mã cột facilities, trả về rỗng nếu dữ liệu hỏng
func (b *Basecamp) FacilityList() []string {
	var facilities []string
	if len(b.Facilities) == 0 {
		return facilities
	}
	if err := json.Unmarshal(b.Facilities, &facilities); err != nil {
		return []string{}
	}
	return facilities
}
