package model

import "time"

// VerificationCode is the single-use secret issued to an email address during
// password recovery. At most one live code exists per email; issuing a new
// code replaces the previous one.
type VerificationCode struct {
	Email     string
	Code      string
	CreatedAt time.Time
}
