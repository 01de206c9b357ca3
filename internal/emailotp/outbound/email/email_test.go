package email

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shandysiswandi/emailotp/internal/pkg/goerror"
	"github.com/shandysiswandi/emailotp/internal/pkg/instrument"
	"github.com/shandysiswandi/emailotp/internal/pkg/mail"
)

type captureMail struct {
	msgs []mail.Message
	err  error
}

func (c *captureMail) Send(_ context.Context, msg mail.Message) error {
	c.msgs = append(c.msgs, msg)
	return c.err
}

func (c *captureMail) Close() error { return nil }

func TestMail_Send(t *testing.T) {
	// Arrange
	client := &captureMail{}
	m := New(client, instrument.NewNoop(), Config{From: "no-reply@dso.org.sg"})

	// Act
	err := m.Send(context.Background(), "User1@dso.org.sg", "Your OTP Code is 100000.")

	// Assert
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if len(client.msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(client.msgs))
	}
	msg := client.msgs[0]
	if msg.From != "no-reply@dso.org.sg" || msg.Subject != DefaultSubject || msg.TextBody != "Your OTP Code is 100000." {
		t.Fatalf("message = %+v", msg)
	}
	if len(msg.To) != 1 || msg.To[0] != "User1@dso.org.sg" {
		t.Fatalf("to = %v", msg.To)
	}
}

func TestMail_SendFailure(t *testing.T) {
	// Arrange
	base := errors.New("relay refused")
	m := New(&captureMail{err: base}, instrument.NewNoop(), Config{Subject: "OTP"})

	// Act
	err := m.Send(context.Background(), "User1@dso.org.sg", "body")

	// Assert
	if !errors.Is(err, base) {
		t.Fatalf("Send() error = %v, want wrapping %v", err, base)
	}
	if goerror.CodeOf(err) != goerror.CodeDeliveryFailed {
		t.Fatalf("code = %s, want %s", goerror.CodeOf(err), goerror.CodeDeliveryFailed)
	}
}

func TestMail_WithLogMailer(t *testing.T) {
	buf := &bytes.Buffer{}
	m := New(mail.NewLog(mail.LogConfig{Output: buf, From: "no-reply@dso.org.sg"}), instrument.NewNoop(), Config{})

	if err := m.Send(context.Background(), "Admin@dso.org.sg", "Your OTP Code is 123456."); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	want := "Sending email to Admin@dso.org.sg with body: Your OTP Code is 123456.\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}
