package model

import "time"

// Session is a DB-backed login session identified by an opaque token.
// IPAddress is taken from the normalized forwarded-for header at login.
type Session struct {
	Token     string    `json:"-"`
	UserID    string    `json:"userId"`
	IPAddress string    `json:"-"`
	UserAgent string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
