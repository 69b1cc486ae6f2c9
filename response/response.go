package response

import (
	"net/http"

	apperrors "hikebook/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse định nghĩa cấu trúc response lỗi của API
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Success trả về response thành công, payload được gộp cùng message
func Success(c *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error trả về response lỗi với status tùy ý
func Error(c *gin.Context, status int, kind, message string) {
	c.JSON(status, ErrorResponse{
		Error:   kind,
		Message: message,
	})
}

// ValidationError trả về response lỗi validation
func ValidationError(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, "Validation error", message)
}

// Unauthorized trả về response khi không có token
func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Access denied. No token provided.", "Anda harus login terlebih dahulu")
}

// InvalidCredentials trả về response khi sai email hoặc mật khẩu
func InvalidCredentials(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Invalid credentials", "Email atau password salah")
}

// Forbidden trả về response khi token không hợp lệ hoặc hết hạn
func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Invalid token", "Token tidak valid atau sudah expired")
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context, kind, message string) {
	Error(c, http.StatusNotFound, kind, message)
}

// Conflict trả về response conflict (409)
func Conflict(c *gin.Context, kind, message string) {
	Error(c, http.StatusConflict, kind, message)
}

// ServerError trả về response lỗi server, không lộ lỗi gốc
func ServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, "Internal server error", message)
}

// TooManyRequests trả về response khi vượt giới hạn request
func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, "Too many requests", "Terlalu banyak permintaan, coba lagi nanti")
}

// FromError ánh xạ AppError sang HTTP status. Lỗi không xác định trả về 500
// với serverMessage.
func FromError(c *gin.Context, err error, serverMessage string) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		ServerError(c, serverMessage)
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeValidation, apperrors.ErrCodeRequiredField, apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeInvalidEmail, apperrors.ErrCodeInvalidPassword, apperrors.ErrCodeInvalidPeople,
		apperrors.ErrCodeInvalidOffer, apperrors.ErrCodeInvalidPayment:
		ValidationError(c, appErr.Message)
	case apperrors.ErrCodeInvalidCredentials:
		Error(c, http.StatusUnauthorized, "Invalid credentials", appErr.Message)
	case apperrors.ErrCodeMissingToken:
		Unauthorized(c)
	case apperrors.ErrCodeInvalidToken, apperrors.ErrCodeExpiredToken:
		Forbidden(c)
	case apperrors.ErrCodeUserExists:
		Conflict(c, "Email already exists", appErr.Message)
	case apperrors.ErrCodeBookingLocked:
		Conflict(c, "Booking locked", appErr.Message)
	case apperrors.ErrCodeUserNotFound:
		NotFound(c, "User not found", appErr.Message)
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeDBNotFound:
		NotFound(c, "Not found", appErr.Message)
	default:
		ServerError(c, serverMessage)
	}
}
