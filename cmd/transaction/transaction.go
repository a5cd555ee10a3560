package transaction

import (
	"github.com/hance08/bills/internal/app"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(getApp app.Provider) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:   "transaction",
		Short: "Manage transactions",
		Long:  "Manage transactions: list the transactions of an account, add or delete them.",
	}

	transactionCmd.AddCommand(NewListCmd(getApp))
	transactionCmd.AddCommand(NewAddCmd(getApp))
	transactionCmd.AddCommand(NewDeleteCmd(getApp))

	return transactionCmd
}
