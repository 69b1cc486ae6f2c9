package controllers

import (
	"net/http"

	"hikebook/dto"
	"hikebook/errors"
	"hikebook/middleware"
	"hikebook/response"
	"hikebook/services"
	"hikebook/services/logger"

	"github.com/gin-gonic/gin"
)

// APIBookingController là CRUD booking theo token, chỉ thấy booking của chính user
type APIBookingController struct {
	bookings *services.BookingService
	log      logger.Logger
}

func NewAPIBookingController(bookings *services.BookingService, log logger.Logger) *APIBookingController {
	return &APIBookingController{bookings: bookings, log: log}
}

// fail trả 404 với kind riêng của booking, các lỗi khác qua ErrorHandler
func (bc *APIBookingController) fail(c *gin.Context, err error, serverMessage string) {
	if errors.HasCode(err, errors.ErrCodeNotFound) {
		response.NotFound(c, "Booking not found", errors.GetAppError(err).Message)
		return
	}
	c.Error(err).SetMeta(serverMessage)
}

func (bc *APIBookingController) List(c *gin.Context) {
	bookings, err := bc.bookings.ListByUser(c.Request.Context(), middleware.Claims(c).ID)
	if err != nil {
		bc.fail(c, err, "Terjadi kesalahan saat mengambil data booking")
		return
	}

	response.Success(c, http.StatusOK, "Bookings retrieved successfully", gin.H{
		"count":    len(bookings),
		"bookings": bookings,
	})
}

func (bc *APIBookingController) Get(c *gin.Context) {
	booking, err := bc.bookings.GetForUser(c.Request.Context(), c.Param("id"), middleware.Claims(c).ID)
	if err != nil {
		bc.fail(c, err, "Terjadi kesalahan saat mengambil data booking")
		return
	}

	response.Success(c, http.StatusOK, "Booking retrieved successfully", gin.H{"booking": booking})
}

func (bc *APIBookingController) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Tanggal hiking dan jumlah peserta harus diisi")
		return
	}

	booking, err := bc.bookings.CreateForUser(c.Request.Context(), middleware.Claims(c), req)
	if err != nil {
		bc.fail(c, err, "Terjadi kesalahan saat membuat booking")
		return
	}

	response.Success(c, http.StatusCreated, "Booking created successfully", gin.H{"booking": booking})
}

func (bc *APIBookingController) Update(c *gin.Context) {
	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Format data tidak valid")
		return
	}

	booking, err := bc.bookings.UpdateForUser(c.Request.Context(), c.Param("id"), middleware.Claims(c).ID, req)
	if err != nil {
		bc.fail(c, err, "Terjadi kesalahan saat update booking")
		return
	}

	response.Success(c, http.StatusOK, "Booking updated successfully", gin.H{"booking": booking})
}

func (bc *APIBookingController) Delete(c *gin.Context) {
	booking, err := bc.bookings.DeleteForUser(c.Request.Context(), c.Param("id"), middleware.Claims(c).ID)
	if err != nil {
		bc.fail(c, err, "Terjadi kesalahan saat menghapus booking")
		return
	}

	response.Success(c, http.StatusOK, "Booking cancelled successfully", gin.H{"bookingNumber": booking.BookingNumber})
}
