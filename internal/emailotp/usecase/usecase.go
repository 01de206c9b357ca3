package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shandysiswandi/emailotp/internal/emailotp/entity"
	"github.com/shandysiswandi/emailotp/internal/pkg/clock"
	"github.com/shandysiswandi/emailotp/internal/pkg/instrument"
	"github.com/shandysiswandi/emailotp/internal/pkg/otp"
	"github.com/shandysiswandi/emailotp/internal/pkg/uid"
	"github.com/shandysiswandi/emailotp/internal/pkg/validator"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultMaxAttempts is the number of wrong entries tolerated per code.
	DefaultMaxAttempts = 10
	// DefaultOTPDuration is how long an issued code stays valid.
	DefaultOTPDuration = 60 * time.Second
	// DefaultDomainSuffix is the only domain addresses may belong to.
	DefaultDomainSuffix = ".dso.org.sg"

	// InvalidCodeNotice is sent to the Notifier after each wrong entry.
	InvalidCodeNotice = "Invalid OTP. Try again."
)

// ErrNoInput is returned by a LineReader that has no more lines.
var ErrNoInput = errors.New("emailotp: no more input")

type addressDirectory interface {
	Contains(ctx context.Context, address string) (bool, error)
}

type emailSender interface {
	Send(ctx context.Context, address, body string) error
}

// LineReader supplies one line of user input per call. ReadLine may block.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// Notifier receives local notices meant for the person entering codes.
type Notifier interface {
	Notify(ctx context.Context, msg string)
}

// Options holds the session limits. Zero values fall back to the defaults.
type Options struct {
	MaxAttempts int
	Duration    time.Duration

	// RollbackOnSendFailure clears the freshly issued code when delivery fails.
	RollbackOnSendFailure bool
	// ResetOnExhaustion clears the code once the attempt budget is used up.
	ResetOnExhaustion bool
}

func (o Options) withDefaults() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.Duration <= 0 {
		o.Duration = DefaultOTPDuration
	}
	return o
}

// Session owns the lifecycle of at most one outstanding OTP.
//
// A Session is not safe for concurrent use; every instance keeps its own
// state, so separate users need separate sessions.
type Session struct {
	id        string
	directory addressDirectory
	sender    emailSender
	generator otp.Generator
	notifier  Notifier
	validator validator.Validator
	clock     clock.Clocker
	ins       instrument.Instrumentation
	opts      Options

	issueResults metric.Int64Counter
	checkResults metric.Int64Counter

	challenge *entity.Challenge
}

type Dependency struct {
	Directory  addressDirectory
	Sender     emailSender
	Generator  otp.Generator
	Notifier   Notifier
	Validator  validator.Validator
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
	UUID       uid.StringID
	Options    Options
}

func New(dep Dependency) (*Session, error) {
	meter := dep.Instrument.Meter("emailotp.usecase")

	issueResults, err := meter.Int64Counter("emailotp.issue.results",
		metric.WithDescription("OTP issue outcomes by result"))
	if err != nil {
		return nil, err
	}

	checkResults, err := meter.Int64Counter("emailotp.check.results",
		metric.WithDescription("OTP check outcomes by result"))
	if err != nil {
		return nil, err
	}

	return &Session{
		id:           dep.UUID.Generate(),
		directory:    dep.Directory,
		sender:       dep.Sender,
		generator:    dep.Generator,
		notifier:     dep.Notifier,
		validator:    dep.Validator,
		clock:        dep.Clock,
		ins:          dep.Instrument,
		opts:         dep.Options.withDefaults(),
		issueResults: issueResults,
		checkResults: checkResults,
	}, nil
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

// MaxAttempts returns the effective attempt budget.
func (s *Session) MaxAttempts() int {
	return s.opts.MaxAttempts
}

// Duration returns the effective validity window.
func (s *Session) Duration() time.Duration {
	return s.opts.Duration
}

func (s *Session) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	ctx = instrument.SetCorrelationID(ctx, s.id)
	return s.ins.Tracer("emailotp.usecase").Start(ctx, name)
}

func (s *Session) record(ctx context.Context, counter metric.Int64Counter, span trace.Span, r entity.Result) {
	attr := attribute.String("result", r.Label())
	counter.Add(ctx, 1, metric.WithAttributes(attr))
	span.SetAttributes(attr)
}
