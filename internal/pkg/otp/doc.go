// Package otp provides helpers for generating numeric one-time passwords (OTP)
// delivered out of band, such as the 6-digit codes sent by email.
//
// Codes are drawn uniformly from a closed integer range using crypto/rand.
package otp
