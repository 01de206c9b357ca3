package usecase

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/shandysiswandi/emailotp/internal/emailotp/entity"
	"github.com/shandysiswandi/emailotp/internal/pkg/clock"
	"github.com/shandysiswandi/emailotp/internal/pkg/instrument"
	"github.com/shandysiswandi/emailotp/internal/pkg/otp"
	"github.com/shandysiswandi/emailotp/internal/pkg/uid"
	"github.com/shandysiswandi/emailotp/internal/pkg/validator"
)

var testStart = time.Date(2024, 11, 9, 9, 0, 0, 0, time.UTC)

type fakeDirectory struct {
	known map[string]bool
	err   error
}

func (d *fakeDirectory) Contains(_ context.Context, address string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.known[address], nil
}

type sentMail struct {
	address string
	body    string
}

type fakeSender struct {
	sent    []sentMail
	err     error
	panicOn bool
}

func (s *fakeSender) Send(_ context.Context, address, body string) error {
	if s.panicOn {
		panic("transport exploded")
	}
	s.sent = append(s.sent, sentMail{address: address, body: body})
	return s.err
}

type fixedGenerator struct {
	code int
	err  error
}

func (g fixedGenerator) Generate() (int, error) {
	return g.code, g.err
}

// scriptedReader replays lines and returns ErrNoInput once they run out.
// onRead, when set, runs before each line is returned.
type scriptedReader struct {
	lines  []string
	reads  int
	onRead func(n int)
}

func (r *scriptedReader) ReadLine(context.Context) (string, error) {
	if r.reads >= len(r.lines) {
		return "", ErrNoInput
	}
	r.reads++
	if r.onRead != nil {
		r.onRead(r.reads)
	}
	return r.lines[r.reads-1], nil
}

func repeat(line string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = line
	}
	return out
}

type recordingNotifier struct {
	notices []string
}

func (n *recordingNotifier) Notify(_ context.Context, msg string) {
	n.notices = append(n.notices, msg)
}

type fixture struct {
	session   *Session
	directory *fakeDirectory
	sender    *fakeSender
	notifier  *recordingNotifier
	clock     *clock.Manual
}

func newFixture(t *testing.T, gen otp.Generator, opts Options) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator(validator.WithEmailDomain(DefaultDomainSuffix))
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	f := &fixture{
		directory: &fakeDirectory{known: map[string]bool{
			"dinesh.rajavel@dso.org.sg": true,
			"Admin@dso.org.sg":          true,
			"User1@dso.org.sg":          true,
		}},
		sender:   &fakeSender{},
		notifier: &recordingNotifier{},
		clock:    clock.NewManual(testStart),
	}

	f.session, err = New(Dependency{
		Directory:  f.directory,
		Sender:     f.sender,
		Generator:  gen,
		Notifier:   f.notifier,
		Validator:  v,
		Clock:      f.clock,
		Instrument: instrument.NewNoop(),
		UUID:       uid.NewUUID(),
		Options:    opts,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	f.session.Start()

	return f
}

// issue issues a code for a rostered address and returns it as text.
func (f *fixture) issue(t *testing.T) string {
	t.Helper()

	if got := f.session.IssueCode(context.Background(), "Admin@dso.org.sg"); got != entity.ResultEmailSent {
		t.Fatalf("IssueCode() = %s, want %s", got, entity.ResultEmailSent)
	}
	return strconv.Itoa(f.session.challenge.Code)
}

func TestNew_AppliesDefaults(t *testing.T) {
	f := newFixture(t, otp.NewSixDigit(), Options{})

	if f.session.MaxAttempts() != 10 {
		t.Fatalf("MaxAttempts() = %d, want 10", f.session.MaxAttempts())
	}
	if f.session.Duration() != time.Minute {
		t.Fatalf("Duration() = %v, want 1m", f.session.Duration())
	}
	if f.session.ID() == "" {
		t.Fatal("ID() is empty")
	}
}

func TestHumanDuration(t *testing.T) {
	tests := map[time.Duration]string{
		time.Minute:      "1 minute",
		5 * time.Minute:  "5 minutes",
		time.Second:      "1 second",
		90 * time.Second: "90 seconds",
	}

	for d, want := range tests {
		if got := HumanDuration(d); got != want {
			t.Fatalf("HumanDuration(%v) = %q, want %q", d, got, want)
		}
	}
}

var errDirectoryDown = errors.New("directory down")
