package account

import (
	"github.com/hance08/bills/internal/app"
	"github.com/spf13/cobra"
)

func NewAccountCmd(getApp app.Provider) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "It can create, remove account and show the list of all accounts.",
		Long:  `It can create, remove account and show the list of all accounts.`,
	}

	accountCmd.AddCommand(NewListCmd(getApp))
	accountCmd.AddCommand(NewCreateCmd(getApp))
	accountCmd.AddCommand(NewRemoveCmd(getApp))

	return accountCmd
}
