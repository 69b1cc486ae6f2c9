package dto

import (
	"hikebook/models"
)

// PersonalInfoInput là dữ liệu bước 1 của wizard
type PersonalInfoInput struct {
	CustomerName  string `form:"customerName" json:"customerName" validate:"required"`
	CustomerEmail string `form:"customerEmail" json:"customerEmail" validate:"required"`
	CustomerPhone string `form:"customerPhone" json:"customerPhone" validate:"required"`
	HikingDate    string `form:"hikingDate" json:"hikingDate" validate:"required"`
}

// GroupInfoInput là dữ liệu thô của bước 2. Participants có thể là chuỗi
// JSON hoặc mảng JSON.
type GroupInfoInput struct {
	NumberOfPeople string
	Participants   []byte
}

type CheckoutInput struct {
	PaymentMethod string `form:"paymentMethod" json:"paymentMethod"`
}

// DraftSummary là dữ liệu hiển thị ở bước review và payment
type DraftSummary struct {
	Draft               *models.BookingDraft
	Package             *models.HikingPackage
	TotalPrice          int64
	TotalPriceFormatted string
	HikingDateFormatted string
}
