package errhandler

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInterrupt(t *testing.T) {
	assert.True(t, IsInterrupt(terminal.InterruptErr))
	assert.True(t, IsInterrupt(fmt.Errorf("prompt: %w", huh.ErrUserAborted)))
	assert.False(t, IsInterrupt(errors.New("connection refused")))
	assert.False(t, IsInterrupt(nil))
}

func TestNewReporter(t *testing.T) {
	r, err := NewReporter("silent", nil, nil)
	require.NoError(t, err)
	assert.IsType(t, Silent{}, r)

	r, err = NewReporter("", nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &LogReporter{}, r)

	r, err = NewReporter("notify", nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &Notifier{}, r)

	_, err = NewReporter("retry", nil, nil)
	assert.Error(t, err)
}

func TestLogReporterWritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := pterm.DefaultLogger.WithWriter(&buf).WithFormatter(pterm.LogFormatterJSON)

	NewLogReporter(logger).Report("remove transaction", errors.New("request was not successful"))

	out := buf.String()
	assert.Contains(t, out, "operation failed")
	assert.Contains(t, out, "remove transaction")
	assert.Contains(t, out, "request was not successful")
}

func TestNotifierPrints(t *testing.T) {
	var buf bytes.Buffer
	NewNotifier(&buf).Report("load account", errors.New("account not found"))

	out := buf.String()
	assert.Contains(t, out, "load account")
	assert.Contains(t, out, "Account not found")
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Boom", Capitalize("boom"))
	assert.Equal(t, "Счёт", Capitalize("счёт"))
}

func TestTrackerKeepsFirstFailure(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewTracker(NewNotifier(&buf))
	require.NoError(t, tracker.Err())

	first := errors.New("connection refused")
	tracker.Report("load account", first)
	tracker.Report("load transactions", errors.New("timeout"))

	require.ErrorIs(t, tracker.Err(), first)
	assert.Contains(t, tracker.Err().Error(), "load account")
	assert.Contains(t, buf.String(), "load transactions")

	tracker.Reset()
	assert.NoError(t, tracker.Err())
}
