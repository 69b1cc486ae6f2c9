package models

import "time"

// DraftStep là trạng thái của wizard đặt chỗ
type DraftStep int

const (
	DraftEmpty DraftStep = iota
	DraftPersonalInfo
	DraftWithGroup
	DraftReviewed
	DraftCheckout
)

func (s DraftStep) String() string {
	switch s {
	case DraftEmpty:
		return "empty"
	case DraftPersonalInfo:
		return "personal_info"
	case DraftWithGroup:
		return "with_group"
	case DraftReviewed:
		return "reviewed"
	case DraftCheckout:
		return "checkout"
	default:
		return "unknown"
	}
}

// BookingDraft là dữ liệu wizard chưa được lưu xuống database
type BookingDraft struct {
	Step           DraftStep     `json:"step"`
	PackageID      string        `json:"packageId"`
	PackageName    string        `json:"packageName"`
	PackagePrice   int64         `json:"packagePrice"`
	CustomerName   string        `json:"customerName,omitempty"`
	CustomerEmail  string        `json:"customerEmail,omitempty"`
	CustomerPhone  string        `json:"customerPhone,omitempty"`
	HikingDate     string        `json:"hikingDate,omitempty"`
	NumberOfPeople int           `json:"numberOfPeople,omitempty"`
	Participants   []Participant `json:"participants,omitempty"`
	PaymentMethod  string        `json:"paymentMethod,omitempty"`
}

// SessionUser là bản rút gọn của User lưu trong session
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Session là trạng thái phía server gắn với cookie của trình duyệt
type Session struct {
	ID         string        `json:"id"`
	User       *SessionUser  `json:"user,omitempty"`
	RedirectTo string        `json:"redirectTo,omitempty"`
	Draft      *BookingDraft `json:"draft,omitempty"`
	Remember   bool          `json:"remember"`
	CreatedAt  time.Time     `json:"createdAt"`
	ExpiresAt  time.Time     `json:"expiresAt"`

	dirty     bool
	destroyed bool
}

func NewSession(id string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
		dirty:     true,
	}
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

func (s *Session) MarkDirty() {
	s.dirty = true
}

func (s *Session) IsDirty() bool {
	return s.dirty
}

// Destroy đánh dấu session đã bị hủy, middleware sẽ không lưu lại
func (s *Session) Destroy() {
	s.destroyed = true
	s.dirty = false
}

func (s *Session) IsDestroyed() bool {
	return s.destroyed
}

func (s *Session) SetDraft(draft *BookingDraft) {
	s.Draft = draft
	s.dirty = true
}

func (s *Session) ClearDraft() {
	s.Draft = nil
	s.dirty = true
}

// ConsumeRedirect trả về đường dẫn đã lưu trước khi login và xóa nó
func (s *Session) ConsumeRedirect(fallback string) string {
	target := s.RedirectTo
	if target == "" {
		return fallback
	}
	s.RedirectTo = ""
	s.dirty = true
	return target
}
