package otp

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

const (
	// SixDigitMin is the smallest 6-digit code.
	SixDigitMin = 100000
	// SixDigitMax is the largest 6-digit code.
	SixDigitMax = 999999
)

// ErrInvalidRange is returned when the low bound is greater than the high bound.
var ErrInvalidRange = errors.New("otp: low bound must not be greater than high bound")

// Generator produces numeric codes.
type Generator interface {
	// Generate returns a code in the generator's range.
	Generate() (int, error)
}

// Numeric generates codes uniformly in [low, high].
type Numeric struct {
	low    int
	span   *big.Int
	reader io.Reader
}

// NewNumeric constructs a Numeric generator for the closed range [low, high].
func NewNumeric(low, high int) (*Numeric, error) {
	if low > high {
		return nil, ErrInvalidRange
	}

	return &Numeric{
		low:    low,
		span:   big.NewInt(int64(high - low + 1)),
		reader: rand.Reader,
	}, nil
}

// NewSixDigit returns a generator for codes in [100000, 999999].
func NewSixDigit() *Numeric {
	//nolint:errcheck // range is constant and valid
	n, _ := NewNumeric(SixDigitMin, SixDigitMax)
	return n
}

// Generate returns a uniformly distributed code.
func (n *Numeric) Generate() (int, error) {
	v, err := rand.Int(n.reader, n.span)
	if err != nil {
		return 0, err
	}

	return n.low + int(v.Int64()), nil
}
