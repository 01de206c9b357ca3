// Package clock provides a tiny time abstraction.
//
// Code that measures elapsed time (for example an OTP validity window) should
// depend on the Clocker interface instead of calling time.Now() directly, so
// tests can drive time with a Manual clock instead of sleeping.
package clock
