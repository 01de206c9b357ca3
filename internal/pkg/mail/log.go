package mail

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// LogConfig configures the Log implementation.
type LogConfig struct {
	// Output receives one line per recipient. Defaults to os.Stdout.
	Output io.Writer
	// From is the default sender when Message.From is empty.
	From string
}

// Log is a Mail implementation that prints outgoing messages instead of
// delivering them.
type Log struct {
	mu          sync.Mutex
	out         io.Writer
	defaultFrom string
}

// NewLog constructs a Log mailer.
func NewLog(cfg LogConfig) *Log {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	return &Log{out: out, defaultFrom: cfg.From}
}

// Send writes "Sending email to <address> with body: <body>" for each recipient.
func (l *Log) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	recipients := msg.Recipients()
	if len(recipients) == 0 {
		return ErrNoRecipients
	}

	if msg.From == "" && l.defaultFrom == "" {
		return ErrNoSender
	}

	body := strings.TrimSpace(msg.TextBody)

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, to := range recipients {
		if _, err := fmt.Fprintf(l.out, "Sending email to %s with body: %s\n", to, body); err != nil {
			return err
		}
	}

	return nil
}

// Close implements io.Closer for interface compatibility.
func (l *Log) Close() error {
	return nil
}
