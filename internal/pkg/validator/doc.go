// Package validator provides a small validation abstraction for input and
// domain structs.
//
// Business code should depend on the Validator interface so validation can be
// shared and tested consistently. The go-playground/validator v10
// implementation lives in this package and registers the "otp_email" tag,
// which accepts local-part@<domain> for one configured domain.
package validator
