package validator

import (
	"errors"
	"testing"
)

type issueInput struct {
	Address string `validate:"otp_email"`
}

func TestV10Validator_OTPEmail(t *testing.T) {
	v, err := NewV10Validator(WithEmailDomain(".dso.org.sg"))
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	tests := []struct {
		address string
		valid   bool
	}{
		{address: "Admin@dso.org.sg", valid: true},
		{address: "dinesh.rajavel@dso.org.sg", valid: true},
		{address: "first_last+tag-1@dso.org.sg", valid: true},
		{address: "newuser@dso.org.sg", valid: true},
		{address: "invalid-email", valid: false},
		{address: "test@gmail.com", valid: false},
		{address: "@dso.org.sg", valid: false},
		{address: "user@mail.dso.org.sg", valid: false},
		{address: "user@dsoXorg.sg", valid: false},
		{address: "user@dso.org.sg.evil", valid: false},
		{address: "us er@dso.org.sg", valid: false},
		{address: " Admin@dso.org.sg", valid: false},
		{address: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			err := v.Validate(issueInput{Address: tt.address})
			if tt.valid && err != nil {
				t.Fatalf("Validate(%q) error = %v, want nil", tt.address, err)
			}
			if !tt.valid && err == nil {
				t.Fatalf("Validate(%q) error = nil, want error", tt.address)
			}
		})
	}
}

func TestV10Validator_ErrorShape(t *testing.T) {
	// Arrange
	v, err := NewV10Validator(WithEmailDomain("dso.org.sg"))
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	// Act
	err = v.Validate(issueInput{Address: "test@gmail.com"})

	// Assert
	var verr V10ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want V10ValidationError", err)
	}
	if got := verr.Values()["address"]; got != "Address must be an address at dso.org.sg" {
		t.Fatalf("message = %q", got)
	}
}

func TestV10Validator_NoDomain(t *testing.T) {
	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	if err := v.Validate(issueInput{Address: "someone@example.com"}); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
	if err := v.Validate(issueInput{Address: "someone"}); err == nil {
		t.Fatal("Validate() error = nil, want error")
	}
}
