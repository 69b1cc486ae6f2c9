package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"hikebook/constants"
	"hikebook/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionIssuer quản lý cookie session và ghi thông tin user vào session
type SessionIssuer struct {
	store  SessionStore
	secure bool
	now    func() time.Time
}

func NewSessionIssuer(store SessionStore, secure bool) *SessionIssuer {
	return &SessionIssuer{store: store, secure: secure, now: time.Now}
}

func (i *SessionIssuer) Store() SessionStore {
	return i.store
}

// New tạo session ẩn danh với thời hạn mặc định
func (i *SessionIssuer) New() *models.Session {
	return models.NewSession(uuid.NewString(), constants.SessionTTL)
}

// Load đọc session theo id trong cookie, nil nếu không có
func (i *SessionIssuer) Load(ctx context.Context, id string) (*models.Session, error) {
	if strings.TrimSpace(id) == "" {
		return nil, nil
	}
	return i.store.Get(ctx, id)
}

// Persist lưu session nếu có thay đổi
func (i *SessionIssuer) Persist(ctx context.Context, sess *models.Session) error {
	if sess == nil || sess.IsDestroyed() || !sess.IsDirty() {
		return nil
	}
	ttl := sess.ExpiresAt.Sub(i.now())
	if ttl <= 0 {
		return i.store.Delete(ctx, sess.ID)
	}
	return i.store.Save(ctx, sess, ttl)
}

// SetCookie ghi cookie với thời gian sống còn lại của session
func (i *SessionIssuer) SetCookie(c *gin.Context, sess *models.Session) {
	maxAge := int(sess.ExpiresAt.Sub(i.now()).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.SessionCookieName, sess.ID, maxAge, "/", "", i.secure, true)
}

func (i *SessionIssuer) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.SessionCookieName, "", -1, "/", "", i.secure, true)
}

// SignIn ghi user vào session, đổi id session để tránh session fixation.
// remember kéo dài cookie lên 30 ngày.
func (i *SessionIssuer) SignIn(c *gin.Context, sess *models.Session, user *models.User, remember bool) {
	if oldID := sess.ID; oldID != "" {
		_ = i.store.Delete(c.Request.Context(), oldID)
	}
	sess.ID = uuid.NewString()

	sess.User = &models.SessionUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.PhoneValue(),
	}
	sess.Remember = remember

	ttl := constants.SessionTTL
	if remember {
		ttl = constants.RememberMeTTL
	}
	sess.ExpiresAt = i.now().Add(ttl)
	sess.MarkDirty()

	i.SetCookie(c, sess)
}

// SignOut hủy session ở store và xóa cookie
func (i *SessionIssuer) SignOut(c *gin.Context, sess *models.Session) error {
	err := i.store.Delete(c.Request.Context(), sess.ID)
	sess.Destroy()
	i.clearCookie(c)
	return err
}
