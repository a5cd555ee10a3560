package prompts

import (
	"context"
	"strings"

	"github.com/charmbracelet/huh"
)

func run(ctx context.Context, fields ...huh.Field) error {
	return huh.NewForm(huh.NewGroup(fields...)).RunWithContext(ctx)
}

// PromptInput prompts for a text value. An empty answer falls back to
// defaultValue when one is given.
func PromptInput(ctx context.Context, message, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(func(s string) error {
			if s == "" && defaultValue != "" {
				return nil
			}
			return validator(s)
		})
	}

	if err := run(ctx, input); err != nil {
		return "", err
	}

	if strings.TrimSpace(inputVal) == "" && defaultValue != "" {
		return defaultValue, nil
	}

	return strings.TrimSpace(inputVal), nil
}

// PromptSelect prompts for one of options, preselecting defaultOption.
func PromptSelect[T comparable](ctx context.Context, message string, options []huh.Option[T], defaultOption T) (T, error) {
	selected := defaultOption

	selectField := huh.NewSelect[T]().
		Title(message).
		Options(options...).
		Value(&selected).
		Height(10)

	err := run(ctx, selectField)
	return selected, err
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(ctx context.Context, message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	field := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm)

	err := run(ctx, field)
	return confirm, err
}
