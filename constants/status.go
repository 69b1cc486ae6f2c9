package constants

import "time"

// Booking status
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Payment status
const (
	PaymentStatusPending = "pending"
)

// MaxPeople giới hạn số người trong một booking
const MaxPeople = 50

// Session and token lifetimes
const (
	SessionCookieName = "hikebook_sid"
	SessionTTL        = time.Hour
	RememberMeTTL     = 30 * 24 * time.Hour
	TokenTTL          = 24 * time.Hour
)

// MinPasswordLength applies to both the HTML and the JSON registration.
const MinPasswordLength = 6

// Context keys set by middleware
const (
	ContextSessionKey = "session"
	ContextClaimsKey  = "claims"
)

// Areas for the view composition registry
const (
	AreaSidebar = "sidebar"
)
