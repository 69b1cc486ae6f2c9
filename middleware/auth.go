package middleware

import (
	"net/http"
	"strings"

	"hikebook/constants"
	"hikebook/errors"
	"hikebook/response"
	"hikebook/services"
	"hikebook/services/logger"

	"github.com/gin-gonic/gin"
)

// TokenAuth kiểm tra bearer token cho JSON API, không đụng tới session
func TokenAuth(tokens *services.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		tokenString := ""
		if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
			tokenString = strings.TrimSpace(authHeader[7:])
		}
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Forbidden(c)
			c.Abort()
			return
		}

		// Lưu thông tin user vào context
		c.Set(constants.ContextClaimsKey, claims)
		c.Next()
	}
}

// Claims lấy claims đã được TokenAuth gắn vào context
func Claims(c *gin.Context) *services.TokenClaims {
	v, ok := c.Get(constants.ContextClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*services.TokenClaims)
	return claims
}

// RequireLogin chuyển khách chưa đăng nhập về /login và nhớ trang đang mở
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess != nil && sess.User != nil {
			c.Next()
			return
		}
		if sess != nil {
			sess.RedirectTo = c.Request.URL.RequestURI()
			sess.MarkDirty()
		}
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}

// RequireGuest chuyển user đã đăng nhập về trang chủ
func RequireGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) != nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ErrorHandler ánh xạ lỗi gắn bằng c.Error sang JSON. Meta kiểu string là
// thông báo dùng cho lỗi 500.
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		message := "Terjadi kesalahan pada server"
		if meta, ok := last.Meta.(string); ok && meta != "" {
			message = meta
		}
		if !errors.IsAppError(last.Err) {
			log.Error("Lỗi không xác định tại %s: %v", c.FullPath(), last.Err)
		}
		response.FromError(c, last.Err, message)
	}
}
