package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shandysiswandi/emailotp/internal/emailotp/entity"
	"github.com/shandysiswandi/emailotp/internal/pkg/goerror"
)

type IssueCodeInput struct {
	Address string `validate:"otp_email"`
}

// IssueCode validates address, and when it is well-formed and known,
// replaces any outstanding code with a new one and sends it by email.
//
// Every failure is reported through the result; nothing is returned as an
// error. When delivery fails the new code stays outstanding unless
// Options.RollbackOnSendFailure is set.
func (s *Session) IssueCode(ctx context.Context, address string) entity.Result {
	ctx, span := s.startSpan(ctx, "IssueCode")
	defer span.End()

	result := s.issueCode(ctx, address)
	s.record(ctx, s.issueResults, span, result)

	return result
}

func (s *Session) issueCode(ctx context.Context, address string) entity.Result {
	if err := s.validator.Validate(IssueCodeInput{Address: address}); err != nil {
		slog.InfoContext(ctx, "email address rejected", "email", address, "error", goerror.NewInvalidInput(err))
		return entity.ResultInvalidEmail
	}

	known, err := s.directory.Contains(ctx, address)
	if err != nil {
		slog.ErrorContext(ctx, "failed to look up email address in directory", "email", address, "error", err)
		return entity.ResultEmailSendFailed
	}
	if !known {
		slog.WarnContext(ctx, "email address not found in directory", "email", address)
		return entity.ResultEmailSendFailed
	}

	code, err := s.generator.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp code", "email", address, "error", err)
		return entity.ResultEmailSendFailed
	}

	s.challenge = &entity.Challenge{Code: code, IssuedAt: s.clock.Now()}

	if err := s.send(ctx, address, deliveryBody(code, s.opts.Duration)); err != nil {
		slog.ErrorContext(ctx, "failed to send otp email", "email", address, "error", err)
		if s.opts.RollbackOnSendFailure {
			s.clear()
		}
		return entity.ResultEmailSendFailed
	}

	slog.InfoContext(ctx, "otp email sent", "email", address, "expires_at", s.challenge.IssuedAt.Add(s.opts.Duration))

	return entity.ResultEmailSent
}

// send converts a panicking sender into an error so delivery problems never
// escape IssueCode.
func (s *Session) send(ctx context.Context, address, body string) (err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			err = goerror.NewDelivery(fmt.Errorf("email sender panicked: %v", rvr))
		}
	}()

	return s.sender.Send(ctx, address, body)
}

func deliveryBody(code int, validity time.Duration) string {
	return fmt.Sprintf("Your OTP Code is %d. The code is valid for %s.", code, HumanDuration(validity))
}

// HumanDuration renders d as whole minutes when possible, else seconds.
func HumanDuration(d time.Duration) string {
	unit, n := "second", int(d.Round(time.Second)/time.Second)
	if d%time.Minute == 0 {
		unit, n = "minute", int(d/time.Minute)
	}

	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
