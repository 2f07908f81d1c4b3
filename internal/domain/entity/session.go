package entity

import "time"

// SessionToken is a signed credential asserting a user ID
type SessionToken struct {
	Value     string
	UserID    uint64
	IssuedAt  time.Time
	ExpiresAt *time.Time // nil when the token never expires
}

// Identity is the caller resolved from a verified session token
type Identity struct {
	UserID uint64
}
