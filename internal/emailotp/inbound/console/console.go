package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/shandysiswandi/emailotp/internal/emailotp/entity"
	"github.com/shandysiswandi/emailotp/internal/emailotp/usecase"
)

const (
	PromptEmail = "Enter your email address:"

	MsgSendFailed = "The provided email address is not exist or sending to the email has failed."
	MsgTryLater   = "Failed to send OTP. Please try again later."
)

type uc interface {
	Start()
	Close()
	IssueCode(ctx context.Context, address string) entity.Result
	CheckCode(ctx context.Context, in usecase.LineReader) (entity.Result, error)
	MaxAttempts() int
	Duration() time.Duration
}

type Config struct {
	In           io.Reader
	Out          io.Writer
	DomainSuffix string
}

type line struct {
	text string
	err  error
}

// Console runs the OTP dialog over a line-oriented terminal. It is also the
// LineReader and Notifier handed to the session.
type Console struct {
	uc           uc
	in           io.Reader
	out          io.Writer
	domainSuffix string

	mu      sync.Mutex
	once    sync.Once
	lines   chan line
}

func New(cfg Config) *Console {
	suffix := cfg.DomainSuffix
	if suffix == "" {
		suffix = usecase.DefaultDomainSuffix
	}

	return &Console{
		in:           cfg.In,
		out:          cfg.Out,
		domainSuffix: suffix,
		lines:        make(chan line),
	}
}

// Bind attaches the session the dialog drives.
func (c *Console) Bind(uc uc) {
	c.uc = uc
}

// ReadLine returns the next input line without its line terminator. It
// returns usecase.ErrNoInput once the input is exhausted and ctx.Err() when
// ctx is done first.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	c.once.Do(func() { go c.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", usecase.ErrNoInput
		}
		return l.text, l.err
	}
}

// scan is the only reader of c.in. A read blocked on a terminal cannot be
// interrupted, so it runs apart from ReadLine and exits with the process.
func (c *Console) scan() {
	defer close(c.lines)

	sc := bufio.NewScanner(c.in)
	for sc.Scan() {
		c.lines <- line{text: strings.TrimRight(sc.Text(), "\r")}
	}
	if err := sc.Err(); err != nil {
		c.lines <- line{err: fmt.Errorf("read input: %w", err)}
	}
}

// Notify prints msg on its own line.
func (c *Console) Notify(_ context.Context, msg string) {
	c.println(msg)
}

// Run performs one issue-and-check dialog. It returns an error only when the
// input cannot be read.
func (c *Console) Run(ctx context.Context) error {
	c.uc.Start()
	defer c.uc.Close()

	c.println(PromptEmail)
	address, err := c.ReadLine(ctx)
	if err != nil {
		return err
	}

	result := c.uc.IssueCode(ctx, strings.TrimSpace(address))
	c.println(result.String())

	switch result {
	case entity.ResultEmailSent:
		c.println(c.codePrompt())

		checked, err := c.uc.CheckCode(ctx, c)
		if err != nil {
			return err
		}
		c.println(checked.String())
	case entity.ResultInvalidEmail:
		c.println(fmt.Sprintf("The provided email address is invalid. Please use a valid %s email.", c.domainSuffix))
	case entity.ResultEmailSendFailed:
		c.println(MsgSendFailed)
	default:
		c.println(MsgTryLater)
	}

	return nil
}

func (c *Console) codePrompt() string {
	return fmt.Sprintf("Please enter the OTP sent to your email (you have %s and %d attempts):",
		usecase.HumanDuration(c.uc.Duration()), c.uc.MaxAttempts())
}

func (c *Console) println(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, _ = fmt.Fprintln(c.out, msg)
}
