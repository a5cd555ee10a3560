package account

import (
	"context"
	"fmt"

	"github.com/hance08/bills/internal/app"
	"github.com/hance08/bills/internal/ui"
	"github.com/hance08/bills/internal/ui/forms"
	"github.com/hance08/bills/internal/ui/prompts"
	"github.com/hance08/bills/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Name string
}

type CreateCommandRunner struct {
	app   *app.App
	flags *createFlags
}

func NewCreateCmd(getApp app.Provider) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account",
		Long: `Create a new account on the backend.

	Examples:
	# Interactive mode
	bills account create

	# Quick mode with flags
	bills account create --name "Cash"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd.Context())
			if err != nil {
				return err
			}
			runner := &CreateCommandRunner{app: a, flags: flags}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Account name")

	return cmd
}

func (r *CreateCommandRunner) Run(ctx context.Context) error {
	name := r.flags.Name
	if name == "" {
		ui.PrintL1Title("Create New Account")

		var err error
		name, err = prompts.PromptInput(ctx, "Account name:", "", validation.ValidateName)
		if err != nil {
			return err
		}
	}

	form, err := r.app.Form(forms.KindAccount)
	if err != nil {
		return err
	}

	form.Set("name", name)
	if err := form.Submit(ctx); err != nil {
		return err
	}

	if err := r.app.Wait(); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	pterm.Success.Printf("Account '%s' created successfully\n", name)
	return nil
}
