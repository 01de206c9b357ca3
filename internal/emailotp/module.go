package emailotp

import (
	"context"
	"io"

	"github.com/shandysiswandi/emailotp/internal/emailotp/inbound/console"
	"github.com/shandysiswandi/emailotp/internal/emailotp/outbound/directory"
	"github.com/shandysiswandi/emailotp/internal/emailotp/outbound/email"
	"github.com/shandysiswandi/emailotp/internal/emailotp/usecase"
	"github.com/shandysiswandi/emailotp/internal/pkg/clock"
	"github.com/shandysiswandi/emailotp/internal/pkg/config"
	"github.com/shandysiswandi/emailotp/internal/pkg/instrument"
	"github.com/shandysiswandi/emailotp/internal/pkg/mail"
	"github.com/shandysiswandi/emailotp/internal/pkg/otp"
	"github.com/shandysiswandi/emailotp/internal/pkg/uid"
	"github.com/shandysiswandi/emailotp/internal/pkg/validator"
)

// Runner drives one interactive OTP dialog.
type Runner interface {
	Run(ctx context.Context) error
}

type Dependency struct {
	Directory  directory.Directory        `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Generator  otp.Generator              `validate:"required"`
	In         io.Reader                  `validate:"required"`
	Out        io.Writer                  `validate:"required"`
}

func New(dep Dependency) (Runner, error) {
	if err := dep.Validator.Validate(dep); err != nil {
		return nil, err
	}

	term := console.New(console.Config{
		In:           dep.In,
		Out:          dep.Out,
		DomainSuffix: dep.Config.GetString("otp.domain_suffix"),
	})

	sender := email.New(dep.Mail, dep.Instrument, email.Config{
		From:    dep.Config.GetString("mail.from"),
		Subject: dep.Config.GetString("mail.subject"),
	})

	session, err := usecase.New(usecase.Dependency{
		Directory:  dep.Directory,
		Sender:     sender,
		Generator:  dep.Generator,
		Notifier:   term,
		Validator:  dep.Validator,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
		UUID:       dep.UUID,
		Options: usecase.Options{
			MaxAttempts:           dep.Config.GetInt("otp.max_attempts"),
			Duration:              dep.Config.GetSecond("otp.duration_seconds"),
			RollbackOnSendFailure: dep.Config.GetBool("otp.rollback_on_send_failure"),
			ResetOnExhaustion:     dep.Config.GetBool("otp.reset_on_exhaustion"),
		},
	})
	if err != nil {
		return nil, err
	}

	term.Bind(session)

	return term, nil
}
