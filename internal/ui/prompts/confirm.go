package prompts

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/bills/internal/ui"
)

// Confirmer asks the user to approve a destructive action. The call
// returns once the user has decided.
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, message string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, message string) (bool, error) {
	return f(ctx, message)
}

// Always answers every confirmation with answer, without asking.
func Always(answer bool) Confirmer {
	return ConfirmFunc(func(context.Context, string) (bool, error) {
		return answer, nil
	})
}

type HuhConfirmer struct{}

func (HuhConfirmer) Confirm(ctx context.Context, message string) (bool, error) {
	return PromptConfirm(ctx, message, false)
}

type SurveyConfirmer struct{}

func (SurveyConfirmer) Confirm(ctx context.Context, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var confirmation bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmation, ui.IconOption()); err != nil {
		return false, err
	}
	return confirmation, nil
}

// NewConfirmer picks the prompt implementation named in the config.
func NewConfirmer(kind string) (Confirmer, error) {
	switch kind {
	case "", "huh":
		return HuhConfirmer{}, nil
	case "survey":
		return SurveyConfirmer{}, nil
	default:
		return nil, fmt.Errorf("unknown prompt kind %q (must be huh or survey)", kind)
	}
}
