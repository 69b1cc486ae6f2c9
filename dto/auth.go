package dto

import (
	"time"

	"hikebook/models"
)

// RegisterInput dùng chung cho form HTML và JSON API
type RegisterInput struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Phone           string `json:"phone" form:"phone"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

type LoginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Remember string `json:"remember" form:"remember"`
}

// RememberMe: checkbox gửi "on", JSON có thể gửi "true"
func (in LoginInput) RememberMe() bool {
	switch in.Remember {
	case "", "0", "false", "off":
		return false
	default:
		return true
	}
}

type UserResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}
}

type BookingSummary struct {
	ID            string    `json:"id"`
	BookingNumber string    `json:"bookingNumber"`
	BookingStatus string    `json:"bookingStatus"`
	HikingDate    time.Time `json:"hikingDate"`
	TotalPrice    int64     `json:"totalPrice"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ProfileResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     *string          `json:"phone"`
	CreatedAt time.Time        `json:"createdAt"`
	Bookings  []BookingSummary `json:"bookings"`
}

func NewProfileResponse(user *models.User) ProfileResponse {
	bookings := make([]BookingSummary, 0, len(user.Bookings))
	for _, b := range user.Bookings {
		bookings = append(bookings, BookingSummary{
			ID:            b.ID,
			BookingNumber: b.BookingNumber,
			BookingStatus: b.BookingStatus,
			HikingDate:    b.HikingDate,
			TotalPrice:    b.TotalPrice,
			CreatedAt:     b.CreatedAt,
		})
	}

	return ProfileResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
		Bookings:  bookings,
	}
}
