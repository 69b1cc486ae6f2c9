package commands

import (
	"context"
	"time"

	"hikebook/errors"
	"hikebook/models"

	"gorm.io/gorm"
)

// BookingCommand định nghĩa interface cho các command ghi booking
type BookingCommand interface {
	Execute(ctx context.Context) error
}

// CreateBookingCommand tạo booking trong một lần insert
type CreateBookingCommand struct {
	booking *models.Booking
	db      *gorm.DB
}

func NewCreateBookingCommand(booking *models.Booking, db *gorm.DB) *CreateBookingCommand {
	return &CreateBookingCommand{
		booking: booking,
		db:      db,
	}
}

func (c *CreateBookingCommand) Execute(ctx context.Context) error {
	return c.db.WithContext(ctx).Omit("HikingPackage", "Basecamp", "User").Create(c.booking).Error
}

// UpdateBookingCommand chỉ ghi các cột được chọn
type UpdateBookingCommand struct {
	booking *models.Booking
	columns []string
	db      *gorm.DB
}

func NewUpdateBookingCommand(booking *models.Booking, db *gorm.DB, columns ...string) *UpdateBookingCommand {
	return &UpdateBookingCommand{
		booking: booking,
		columns: columns,
		db:      db,
	}
}

func (c *UpdateBookingCommand) Execute(ctx context.Context) error {
	if len(c.columns) == 0 {
		return nil
	}
	c.booking.UpdatedAt = time.Now()
	columns := append(append([]string{}, c.columns...), "updated_at")
	return c.db.WithContext(ctx).Model(c.booking).Select(columns).Updates(c.booking).Error
}

// DeleteBookingCommand xóa hẳn booking
type DeleteBookingCommand struct {
	bookingID string
	db        *gorm.DB
}

func NewDeleteBookingCommand(bookingID string, db *gorm.DB) *DeleteBookingCommand {
	return &DeleteBookingCommand{
		bookingID: bookingID,
		db:        db,
	}
}

func (c *DeleteBookingCommand) Execute(ctx context.Context) error {
	result := c.db.WithContext(ctx).Delete(&models.Booking{}, "id = ?", c.bookingID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.ErrBookingNotFound
	}
	return nil
}
