package directory

import (
	"context"
	"testing"
)

func TestStatic_Contains(t *testing.T) {
	t.Parallel()

	// Arrange
	dir := NewStatic([]string{"admin@dso.org.sg", " user@dso.org.sg ", "", "admin@dso.org.sg"})

	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{name: "known", address: "admin@dso.org.sg", want: true},
		{name: "trimmed on load", address: "user@dso.org.sg", want: true},
		{name: "case sensitive", address: "Admin@dso.org.sg", want: false},
		{name: "unknown", address: "ghost@dso.org.sg", want: false},
		{name: "empty", address: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Act
			got, err := dir.Contains(context.Background(), tt.address)

			// Assert
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Contains(%q) = %v, want %v", tt.address, got, tt.want)
			}
		})
	}

	if dir.Len() != 2 {
		t.Fatalf("expected 2 distinct addresses, got %d", dir.Len())
	}
}
