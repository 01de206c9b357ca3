package directory

import (
	"context"
	"strings"

	"github.com/samber/lo"
)

// Static is a fixed in-memory roster.
type Static struct {
	addresses map[string]struct{}
}

// NewStatic builds a roster from addresses. Surrounding whitespace is
// trimmed and blank entries are ignored; case is preserved.
func NewStatic(addresses []string) *Static {
	cleaned := lo.Compact(lo.Map(addresses, func(a string, _ int) string {
		return strings.TrimSpace(a)
	}))

	return &Static{
		addresses: lo.SliceToMap(cleaned, func(a string) (string, struct{}) {
			return a, struct{}{}
		}),
	}
}

// Contains reports whether address is in the roster.
func (s *Static) Contains(_ context.Context, address string) (bool, error) {
	_, ok := s.addresses[address]
	return ok, nil
}

// Len returns the number of distinct addresses.
func (s *Static) Len() int {
	return len(s.addresses)
}
