package middleware

import (
	"hikebook/constants"
	"hikebook/models"
	"hikebook/services"
	"hikebook/services/logger"

	"github.com/gin-gonic/gin"
)

// Sessions nạp session từ cookie (hoặc tạo mới) và lưu lại sau request
// nếu có thay đổi
func Sessions(issuer *services.SessionIssuer, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var sess *models.Session
		if id, err := c.Cookie(constants.SessionCookieName); err == nil {
			loaded, err := issuer.Load(ctx, id)
			if err != nil {
				log.Error("Đọc session lỗi: %v", err)
			}
			sess = loaded
		}
		if sess == nil {
			sess = issuer.New()
			issuer.SetCookie(c, sess)
		}

		c.Set(constants.ContextSessionKey, sess)
		c.Next()

		if err := issuer.Persist(ctx, sess); err != nil {
			log.Error("Lưu session %s lỗi: %v", sess.ID, err)
		}
	}
}

// CurrentSession trả về session của request, nil nếu route không dùng Sessions
func CurrentSession(c *gin.Context) *models.Session {
	v, ok := c.Get(constants.ContextSessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*models.Session)
	return sess
}

// CurrentUser trả về user đang đăng nhập trong session
func CurrentUser(c *gin.Context) *models.SessionUser {
	sess := CurrentSession(c)
	if sess == nil {
		return nil
	}
	return sess.User
}
