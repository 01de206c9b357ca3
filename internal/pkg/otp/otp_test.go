package otp

import (
	"bytes"
	"errors"
	"testing"
)

func TestNumeric_Generate(t *testing.T) {
	g := NewSixDigit()

	for i := 0; i < 1000; i++ {
		code, err := g.Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if code < SixDigitMin || code > SixDigitMax {
			t.Fatalf("Generate() = %d, out of [%d, %d]", code, SixDigitMin, SixDigitMax)
		}
	}
}

func TestNumeric_SingleValueRange(t *testing.T) {
	g, err := NewNumeric(7, 7)
	if err != nil {
		t.Fatalf("NewNumeric() error = %v", err)
	}

	code, err := g.Generate()
	if err != nil || code != 7 {
		t.Fatalf("Generate() = %d, %v; want 7, nil", code, err)
	}
}

func TestNewNumeric_InvalidRange(t *testing.T) {
	if _, err := NewNumeric(10, 1); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("NewNumeric() error = %v, want %v", err, ErrInvalidRange)
	}
}

func TestNumeric_ReaderFailure(t *testing.T) {
	// Arrange
	g := NewSixDigit()
	g.reader = bytes.NewReader(nil)

	// Act
	_, err := g.Generate()

	// Assert
	if err == nil {
		t.Fatal("Generate() error = nil, want error from exhausted reader")
	}
}
