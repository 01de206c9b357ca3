package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/emailotp/internal/pkg/instrument"
)

// Start clears any outstanding code. Calling it repeatedly is harmless.
func (s *Session) Start() {
	s.clear()
	slog.DebugContext(instrument.SetCorrelationID(context.Background(), s.id), "otp session started")
}

// Close clears any outstanding code at the end of use.
func (s *Session) Close() {
	s.clear()
	slog.DebugContext(instrument.SetCorrelationID(context.Background(), s.id), "otp session closed")
}

func (s *Session) clear() {
	s.challenge = nil
}
