package errhandler

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// IsInterrupt reports whether err comes from the user aborting a prompt.
func IsInterrupt(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// Reporter receives failures that the view layer does not surface through
// its own state: transport errors and unsuccessful responses.
type Reporter interface {
	Report(op string, err error)
}

const (
	PolicySilent = "silent"
	PolicyLog    = "log"
	PolicyNotify = "notify"
)

// Silent drops every failure.
type Silent struct{}

func (Silent) Report(string, error) {}

// LogReporter writes failures to a structured logger.
type LogReporter struct {
	logger *pterm.Logger
}

func NewLogReporter(logger *pterm.Logger) *LogReporter {
	if logger == nil {
		logger = &pterm.DefaultLogger
	}
	return &LogReporter{logger: logger}
}

func (r *LogReporter) Report(op string, err error) {
	if IsInterrupt(err) {
		r.logger.Info("operation cancelled", r.logger.Args("op", op))
		return
	}
	r.logger.Warn("operation failed", r.logger.Args("op", op, "error", err.Error()))
}

// Notifier prints failures for the user.
type Notifier struct {
	printer *pterm.PrefixPrinter
}

func NewNotifier(w io.Writer) *Notifier {
	if w == nil {
		w = os.Stderr
	}
	return &Notifier{printer: pterm.Error.WithWriter(w)}
}

func (n *Notifier) Report(op string, err error) {
	if IsInterrupt(err) {
		pterm.Warning.WithWriter(n.printer.Writer).Println("Operation Cancelled")
		return
	}
	n.printer.Printf("%s: %s\n", op, Capitalize(err.Error()))
}

// Tracker forwards failures to next and keeps the first one, so a command
// can turn an asynchronous failure into its exit status.
type Tracker struct {
	next Reporter

	mu    sync.Mutex
	first error
}

func NewTracker(next Reporter) *Tracker {
	if next == nil {
		next = Silent{}
	}
	return &Tracker{next: next}
}

func (t *Tracker) Report(op string, err error) {
	t.mu.Lock()
	if t.first == nil {
		t.first = fmt.Errorf("%s: %w", op, err)
	}
	t.mu.Unlock()
	t.next.Report(op, err)
}

// Err returns the first failure reported since the last Reset.
func (t *Tracker) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.first
}

func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.first = nil
}

// NewReporter builds the reporter for the configured failure policy.
func NewReporter(policy string, logger *pterm.Logger, w io.Writer) (Reporter, error) {
	switch policy {
	case PolicySilent:
		return Silent{}, nil
	case "", PolicyLog:
		return NewLogReporter(logger), nil
	case PolicyNotify:
		return NewNotifier(w), nil
	default:
		return nil, fmt.Errorf("unknown failure policy %q (must be silent, log or notify)", policy)
	}
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}
