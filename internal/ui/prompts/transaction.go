package prompts

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hance08/bills/internal/constants"
	"github.com/hance08/bills/internal/model"
	"github.com/hance08/bills/internal/validation"
)

// PromptTransactionType prompts for income or expense
func PromptTransactionType(ctx context.Context, defaultType string) (string, error) {
	options := []huh.Option[string]{
		huh.NewOption("Record Expense", constants.TypeExpense),
		huh.NewOption("Record Income", constants.TypeIncome),
	}

	if defaultType == "" {
		defaultType = constants.TypeExpense
	}

	return PromptSelect(ctx, "Choose the transaction type:", options, defaultType)
}

// PromptAccountSelection prompts for one of the given accounts and returns its ID.
func PromptAccountSelection(ctx context.Context, accounts []model.Account, message string) (int64, error) {
	if len(accounts) == 0 {
		return 0, fmt.Errorf("no available accounts")
	}

	opts := make([]huh.Option[int64], 0, len(accounts))
	for _, acc := range accounts {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (#%d)", acc.Name, acc.ID), acc.ID))
	}

	return PromptSelect(ctx, message, opts, accounts[0].ID)
}

// PromptTransactionDetails asks for the name and sum that were not given.
func PromptTransactionDetails(ctx context.Context, name, sum string) (string, string, error) {
	var err error
	if name == "" {
		name, err = PromptInput(ctx, "Name:", "", validation.ValidateName)
		if err != nil {
			return "", "", err
		}
	}

	if sum == "" {
		sum, err = PromptInput(ctx, "Sum (e.g., 150 or 150.50):", "", validation.ValidateSum)
		if err != nil {
			return "", "", err
		}
	}

	return name, sum, nil
}
