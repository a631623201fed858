package models

import "time"

// SessionTTL is the fixed lifetime of a locally issued session.
// There is no renewal: TokenExpiry is always IssuedAt + SessionTTL.
const SessionTTL = 24 * time.Hour

// Session is a time-bounded, locally issued proof of a successful login.
// It is not a cryptographically verifiable token; the session ID only has
// to be collision-resistant.
type Session struct {
	AccountID   string    `json:"accountId"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	IssuedAt    time.Time `json:"issuedAt"`
	TokenExpiry time.Time `json:"tokenExpiry"`
	SessionID   string    `json:"sessionId"`
}

// Expired reports whether the session is past its token expiry at the
// given instant.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.TokenExpiry)
}
