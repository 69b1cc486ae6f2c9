package models

import (
	"hikebook/constants"
	"hikebook/errors"
)

// BookingState quyết định booking ở trạng thái hiện tại có được sửa/xóa không
type BookingState interface {
	Edit(booking *Booking) error
	Delete(booking *Booking) error
}

// OpenState dùng cho pending và confirmed, vẫn sửa/xóa được
type OpenState struct{}

func (s *OpenState) Edit(booking *Booking) error {
	return nil
}

func (s *OpenState) Delete(booking *Booking) error {
	return nil
}

// ClosedState dùng cho completed và cancelled
type ClosedState struct {
	reason error
}

func (s *ClosedState) Edit(booking *Booking) error {
	return s.reason
}

func (s *ClosedState) Delete(booking *Booking) error {
	return s.reason
}

// GetBookingState trả về state tương ứng với trạng thái booking.
// Trạng thái rỗng hoặc lạ được coi như pending.
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusCompleted:
		return &ClosedState{reason: errors.ErrBookingCompleted}
	case constants.BookingStatusCancelled:
		return &ClosedState{reason: errors.ErrBookingCancelled}
	default:
		return &OpenState{}
	}
}
