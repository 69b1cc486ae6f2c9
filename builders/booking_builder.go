package builders

import (
	"time"

	"hikebook/constants"
	"hikebook/models"

	"github.com/goccy/go-json"
	"gorm.io/datatypes"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
	err     error
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{
			PaymentStatus: constants.PaymentStatusPending,
			BookingStatus: constants.BookingStatusPending,
		},
	}
}

func (b *BookingBuilder) WithNumber(number string) *BookingBuilder {
	b.booking.BookingNumber = number
	return b
}

// WithCustomer thêm thông tin người đặt
func (b *BookingBuilder) WithCustomer(name, email, phone string) *BookingBuilder {
	b.booking.CustomerName = name
	b.booking.CustomerEmail = email
	b.booking.CustomerPhone = phone
	return b
}

func (b *BookingBuilder) WithPackage(pkg *models.HikingPackage) *BookingBuilder {
	if pkg != nil {
		id := pkg.ID
		b.booking.HikingPackageID = &id
	}
	return b
}

func (b *BookingBuilder) WithBasecamp(basecamp *models.Basecamp) *BookingBuilder {
	if basecamp != nil {
		id := basecamp.ID
		b.booking.BasecampID = &id
	}
	return b
}

func (b *BookingBuilder) WithHikingDate(date time.Time) *BookingBuilder {
	b.booking.HikingDate = date
	return b
}

// WithGroup thêm số người và danh sách người tham gia
func (b *BookingBuilder) WithGroup(people int, participants []models.Participant) *BookingBuilder {
	if participants == nil {
		participants = []models.Participant{}
	}
	data, err := json.Marshal(participants)
	if err != nil {
		b.err = err
		return b
	}
	b.booking.NumberOfPeople = people
	b.booking.Participants = datatypes.JSON(data)
	return b
}

func (b *BookingBuilder) WithTotalPrice(total int64) *BookingBuilder {
	b.booking.TotalPrice = total
	return b
}

func (b *BookingBuilder) WithPaymentMethod(method string) *BookingBuilder {
	if method != "" {
		b.booking.PaymentMethod = &method
	}
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	if notes != "" {
		b.booking.Notes = &notes
	}
	return b
}

// WithOwner gắn booking với tài khoản, rỗng thì bỏ qua
func (b *BookingBuilder) WithOwner(userID string) *BookingBuilder {
	if userID != "" {
		b.booking.UserID = &userID
	}
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() (*models.Booking, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.booking.Participants) == 0 {
		b.booking.Participants = datatypes.JSON("[]")
	}
	return b.booking, nil
}
