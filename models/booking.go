package models

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Booking struct {
	ID              string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	BookingNumber   string         `json:"bookingNumber" gorm:"uniqueIndex;not null"`
	CustomerName    string         `json:"customerName"`
	CustomerEmail   string         `json:"customerEmail" gorm:"index"`
	CustomerPhone   string         `json:"customerPhone"`
	HikingPackageID *string        `json:"hikingPackageId" gorm:"type:varchar(36);index"`
	HikingPackage   *HikingPackage `json:"hikingPackage,omitempty" gorm:"foreignKey:HikingPackageID"`
	BasecampID      *string        `json:"basecampId" gorm:"type:varchar(36);index"`
	Basecamp        *Basecamp      `json:"basecamp,omitempty" gorm:"foreignKey:BasecampID"`
	HikingDate      time.Time      `json:"hikingDate"`
	NumberOfPeople  int            `json:"numberOfPeople"`
	Participants    datatypes.JSON `json:"participants"`
	TotalPrice      int64          `json:"totalPrice"` // Đơn giá × số người, chốt lúc tạo
	PaymentMethod   *string        `json:"paymentMethod"`
	PaymentStatus   string         `json:"paymentStatus" gorm:"type:varchar(20);default:'pending'"`
	BookingStatus   string         `json:"bookingStatus" gorm:"type:varchar(20);default:'pending';index"`
	Notes           *string        `json:"notes"`
	UserID          *string        `json:"userId" gorm:"type:varchar(36);index"`
	User            *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt       time.Time      `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Participant là một thành viên trong nhóm leo núi
type Participant struct {
	Name     string `json:"name"`
	Age      int    `json:"age,omitempty"`
	Phone    string `json:"phone,omitempty"`
	IDNumber string `json:"idNumber,omitempty"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// ParticipantList giải mã danh sách người tham gia đã lưu
func (b *Booking) ParticipantList() []Participant {
	participants := []Participant{}
	if len(b.Participants) == 0 {
		return participants
	}
	if err := json.Unmarshal(b.Participants, &participants); err != nil {
		return []Participant{}
	}
	return participants
}
