package controllers

import (
	"net/http"
	"net/url"

	"hikebook/dto"
	"hikebook/errors"
	"hikebook/middleware"
	"hikebook/services"
	"hikebook/services/logger"
	"hikebook/validator"

	"github.com/gin-gonic/gin"
)

// AccountController xử lý đăng nhập bằng session và các trang booking của user
type AccountController struct {
	auth     *services.AuthService
	bookings *services.BookingService
	sessions *services.SessionIssuer
	log      logger.Logger
}

func NewAccountController(auth *services.AuthService, bookings *services.BookingService, sessions *services.SessionIssuer, log logger.Logger) *AccountController {
	return &AccountController{auth: auth, bookings: bookings, sessions: sessions, log: log}
}

func redirectWithError(c *gin.Context, path, message string) {
	c.Redirect(http.StatusFound, path+"?error="+url.QueryEscape(message))
}

func messageOf(err error, fallback string) string {
	if appErr := errors.GetAppError(err); appErr != nil && !errors.HasCode(err, errors.ErrCodeDBError) {
		return appErr.Message
	}
	return fallback
}

func (ac *AccountController) LoginPage(c *gin.Context) {
	renderPage(c, http.StatusOK, "login", "Login - HikeBook", nil)
}

func (ac *AccountController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		redirectWithError(c, "/login", "Email dan password harus diisi")
		return
	}

	if err := validator.ValidateLogin(&input); err != nil {
		redirectWithError(c, "/login", messageOf(err, "Email dan password harus diisi"))
		return
	}

	user, err := ac.auth.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if !errors.HasCode(err, errors.ErrCodeInvalidCredentials) {
			ac.log.Error("Login lỗi: %v", err)
		}
		redirectWithError(c, "/login", messageOf(err, serverErrorMessage))
		return
	}

	sess := middleware.CurrentSession(c)
	ac.sessions.SignIn(c, sess, user, input.RememberMe())
	c.Redirect(http.StatusFound, sess.ConsumeRedirect("/"))
}

func (ac *AccountController) RegisterPage(c *gin.Context) {
	renderPage(c, http.StatusOK, "register", "Daftar - HikeBook", nil)
}

// Register tạo tài khoản rồi đăng nhập luôn
func (ac *AccountController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		redirectWithError(c, "/register", "Semua field wajib diisi kecuali telepon")
		return
	}

	user, err := ac.auth.Register(c.Request.Context(), input, true)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeDBError) {
			ac.log.Error("Đăng ký lỗi: %v", err)
		}
		redirectWithError(c, "/register", messageOf(err, serverErrorMessage))
		return
	}

	ac.sessions.SignIn(c, middleware.CurrentSession(c), user, false)
	c.Redirect(http.StatusFound, "/?success="+url.QueryEscape("Registrasi berhasil! Selamat datang di HikeBook"))
}

func (ac *AccountController) Logout(c *gin.Context) {
	if err := ac.sessions.SignOut(c, middleware.CurrentSession(c)); err != nil {
		ac.log.Error("Hủy session lỗi: %v", err)
	}
	c.Redirect(http.StatusFound, "/login?success="+url.QueryEscape("Logout berhasil"))
}

// bookingFail ánh xạ lỗi của các trang booking sang text thuần
func (ac *AccountController) bookingFail(c *gin.Context, err error) {
	switch {
	case errors.HasCode(err, errors.ErrCodeNotFound):
		c.String(http.StatusNotFound, "Booking tidak ditemukan")
	case errors.HasCode(err, errors.ErrCodeBookingLocked):
		c.String(http.StatusConflict, errors.GetAppError(err).Message)
	case isValidationError(err):
		c.String(http.StatusBadRequest, errors.GetAppError(err).Message)
	default:
		ac.log.Error("Booking %s lỗi: %v", c.Param("id"), err)
		renderServerError(c)
	}
}

func (ac *AccountController) MyBookings(c *gin.Context) {
	bookings, err := ac.bookings.ListForOwner(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		ac.log.Error("Lấy booking của user lỗi: %v", err)
		renderServerError(c)
		return
	}

	notice := ""
	if c.Query("deleted") == "true" {
		notice = "Booking berhasil dibatalkan"
	}
	renderPage(c, http.StatusOK, "my-bookings", "Booking Saya", gin.H{
		"bookings": dto.NewBookingViews(bookings),
		"notice":   notice,
	})
}

func (ac *AccountController) EditBooking(c *gin.Context) {
	booking, err := ac.bookings.GetOwned(c.Request.Context(), c.Param("id"), middleware.CurrentUser(c))
	if err != nil {
		ac.bookingFail(c, err)
		return
	}

	renderPage(c, http.StatusOK, "edit-booking", "Edit Booking", gin.H{"booking": dto.NewBookingView(booking)})
}

func (ac *AccountController) UpdateBooking(c *gin.Context) {
	var form dto.EditBookingForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Format data tidak valid")
		return
	}

	booking, err := ac.bookings.UpdateFromEdit(c.Request.Context(), c.Param("id"), middleware.CurrentUser(c), form)
	if err != nil {
		ac.bookingFail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/booking/success/"+booking.ID+"?updated=true")
}

func (ac *AccountController) DeleteBooking(c *gin.Context) {
	if _, err := ac.bookings.DeleteOwned(c.Request.Context(), c.Param("id"), middleware.CurrentUser(c)); err != nil {
		ac.bookingFail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/my-bookings?deleted=true")
}
