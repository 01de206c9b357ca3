package entity

// Result is the outcome of an issue or check operation. Callers branch on
// the value; the String texts are for display only.
type Result int

const (
	// ResultUnknown is returned alongside a non-nil error when no outcome was reached.
	ResultUnknown Result = iota

	// ResultEmailSent mean a code was generated and its delivery reported success.
	ResultEmailSent

	// ResultEmailSendFailed mean the address is well-formed but unknown, or delivery failed.
	ResultEmailSendFailed

	// ResultInvalidEmail mean the address is malformed or outside the allowed domain.
	ResultInvalidEmail

	// ResultValid mean the entered code matched within the time and attempt budget.
	ResultValid

	// ResultFailed mean the attempt budget was exhausted without a match.
	ResultFailed

	// ResultTimeout mean no code is outstanding, or its validity window elapsed.
	ResultTimeout
)

func (r Result) String() string {
	switch r {
	case ResultEmailSent:
		return "Email Sent"
	case ResultEmailSendFailed:
		return "Email Failed"
	case ResultInvalidEmail:
		return "Invalid Email"
	case ResultValid:
		return "OTP is valid and checked"
	case ResultFailed:
		return "OTP is wrong after 10 tries. OTP Failed."
	case ResultTimeout:
		return "OTP Timeout"
	default:
		return "Unknown"
	}
}

// Label is a stable lower_snake name used for metric attributes.
func (r Result) Label() string {
	switch r {
	case ResultEmailSent:
		return "email_sent"
	case ResultEmailSendFailed:
		return "email_send_failed"
	case ResultInvalidEmail:
		return "invalid_email"
	case ResultValid:
		return "valid"
	case ResultFailed:
		return "failed"
	case ResultTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}
