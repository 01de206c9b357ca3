package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/emailotp/internal/emailotp/entity"
)

// CheckCode reads lines from in until one matches the outstanding code, the
// validity window elapses, or the attempt budget is used up.
//
// Expiry is only evaluated before each read, so a read blocked in in is not
// interrupted when the window passes. Without an outstanding code CheckCode
// returns ResultTimeout without reading. A read error ends the check with
// ResultUnknown and the error; the attempt is not counted.
func (s *Session) CheckCode(ctx context.Context, in LineReader) (entity.Result, error) {
	ctx, span := s.startSpan(ctx, "CheckCode")
	defer span.End()

	result, err := s.checkCode(ctx, in)
	if err != nil {
		span.RecordError(err)
		return result, err
	}

	s.record(ctx, s.checkResults, span, result)

	return result, nil
}

func (s *Session) checkCode(ctx context.Context, in LineReader) (entity.Result, error) {
	if s.challenge == nil {
		slog.InfoContext(ctx, "otp check without outstanding code")
		return entity.ResultTimeout, nil
	}

	for s.challenge.Attempts < s.opts.MaxAttempts {
		if s.challenge.Expired(s.clock.Now(), s.opts.Duration) {
			slog.InfoContext(ctx, "otp expired", "issued_at", s.challenge.IssuedAt, "attempts", s.challenge.Attempts)
			s.clear()
			return entity.ResultTimeout, nil
		}

		line, err := in.ReadLine(ctx)
		if err != nil {
			slog.WarnContext(ctx, "failed to read otp input", "error", err)
			return entity.ResultUnknown, err
		}

		if s.challenge.Matches(line) {
			slog.InfoContext(ctx, "otp verified", "attempts", s.challenge.Attempts)
			s.clear()
			return entity.ResultValid, nil
		}

		s.challenge.Attempts++
		slog.InfoContext(ctx, "otp attempt rejected", "attempts", s.challenge.Attempts, "max_attempts", s.opts.MaxAttempts)
		s.notifier.Notify(ctx, InvalidCodeNotice)
	}

	slog.WarnContext(ctx, "otp attempts exhausted", "max_attempts", s.opts.MaxAttempts)
	if s.opts.ResetOnExhaustion {
		s.clear()
	}

	return entity.ResultFailed, nil
}
