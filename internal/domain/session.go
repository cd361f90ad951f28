package domain

import "time"

// Session associates an opaque identifier delivered via cookie with the
// authenticated customer. A session without a customer ID is never treated
// as authenticated.
type Session struct {
	ID         string
	CustomerID string
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// Expired reports whether the session's TTL has elapsed at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Authenticated reports whether the session carries a principal and is still
// within its TTL.
func (s *Session) Authenticated(now time.Time) bool {
	return s != nil && s.CustomerID != "" && !s.Expired(now)
}
