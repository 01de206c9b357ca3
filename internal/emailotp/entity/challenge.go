package entity

import (
	"strconv"
	"time"
)

// Challenge is the single outstanding code of a session. A session without a
// Challenge has no code, no issue time and no attempts.
type Challenge struct {
	Code     int
	IssuedAt time.Time
	Attempts int
}

// Expired reports whether more than ttl has elapsed between IssuedAt and now.
// Exactly ttl is still valid.
func (c *Challenge) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(c.IssuedAt) > ttl
}

// Matches reports whether input is exactly the decimal form of Code.
func (c *Challenge) Matches(input string) bool {
	return input == strconv.Itoa(c.Code)
}
