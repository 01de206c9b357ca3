package email

import (
	"context"

	"github.com/shandysiswandi/emailotp/internal/pkg/goerror"
	"github.com/shandysiswandi/emailotp/internal/pkg/instrument"
	"github.com/shandysiswandi/emailotp/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

// DefaultSubject is used when Config.Subject is empty.
const DefaultSubject = "Your OTP Code"

type Config struct {
	From    string
	Subject string
}

type Mail struct {
	client  mail.Mail
	ins     instrument.Instrumentation
	from    string
	subject string
}

func New(client mail.Mail, ins instrument.Instrumentation, cfg Config) *Mail {
	subject := cfg.Subject
	if subject == "" {
		subject = DefaultSubject
	}

	return &Mail{client: client, ins: ins, from: cfg.From, subject: subject}
}

// Send delivers body as a plain-text message to address.
func (m *Mail) Send(ctx context.Context, address, body string) error {
	ctx, span := m.ins.Tracer("emailotp.outbound.email").Start(ctx, "Send")
	defer span.End()

	if err := m.client.Send(ctx, mail.Message{
		From:     m.from,
		To:       []string{address},
		Subject:  m.subject,
		TextBody: body,
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return goerror.NewDelivery(err)
	}

	return nil
}
