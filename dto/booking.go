package dto

import (
	"hikebook/models"
	"hikebook/utils"

	"github.com/goccy/go-json"
)

// CreateBookingRequest là body của POST /api/bookings
type CreateBookingRequest struct {
	HikingPackageID string          `json:"hikingPackageId"`
	BasecampID      string          `json:"basecampId"`
	HikingDate      string          `json:"hikingDate"`
	NumberOfPeople  FlexInt         `json:"numberOfPeople"`
	Participants    json.RawMessage `json:"participants"`
	PaymentMethod   string          `json:"paymentMethod"`
	Notes           string          `json:"notes"`
	CustomerPhone   string          `json:"customerPhone"`
}

// UpdateBookingRequest là body của PUT /api/bookings/:id, field nil thì giữ nguyên
type UpdateBookingRequest struct {
	HikingDate     *string         `json:"hikingDate"`
	NumberOfPeople *FlexInt        `json:"numberOfPeople"`
	Participants   json.RawMessage `json:"participants"`
	PaymentMethod  *string         `json:"paymentMethod"`
	Notes          *string         `json:"notes"`
}

// EditBookingForm là form sửa booking trên trang HTML
type EditBookingForm struct {
	HikingDate     string `form:"hikingDate"`
	NumberOfPeople string `form:"numberOfPeople"`
	Notes          string `form:"notes"`
}

// BookingView là booking đã định dạng sẵn cho template
type BookingView struct {
	models.Booking
	PackageName         string
	HikingDateFormatted string
	HikingDateInput     string
	CreatedAtFormatted  string
	TotalPriceFormatted string
	ParticipantsList    []models.Participant
	NotesValue          string
	PaymentMethodValue  string
}

func NewBookingView(b *models.Booking) BookingView {
	view := BookingView{
		Booking:             *b,
		HikingDateFormatted: utils.FormatDateID(b.HikingDate, true),
		HikingDateInput:     b.HikingDate.Format(utils.DateLayout),
		CreatedAtFormatted:  utils.FormatDateID(b.CreatedAt, false),
		TotalPriceFormatted: utils.FormatRupiah(b.TotalPrice),
		ParticipantsList:    b.ParticipantList(),
	}
	if b.HikingPackage != nil {
		view.PackageName = b.HikingPackage.Name
	} else if b.Basecamp != nil {
		view.PackageName = b.Basecamp.Name
	}
	if b.Notes != nil {
		view.NotesValue = *b.Notes
	}
	if b.PaymentMethod != nil {
		view.PaymentMethodValue = *b.PaymentMethod
	}
	return view
}

func NewBookingViews(bookings []models.Booking) []BookingView {
	views := make([]BookingView, 0, len(bookings))
	for i := range bookings {
		views = append(views, NewBookingView(&bookings[i]))
	}
	return views
}
