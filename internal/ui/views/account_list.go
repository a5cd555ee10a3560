package views

import (
	"fmt"
	"io"

	"github.com/hance08/bills/internal/model"
	"github.com/pterm/pterm"
)

type AccountListView struct {
	writer io.Writer
}

func NewAccountListView(w io.Writer) *AccountListView {
	return &AccountListView{writer: w}
}

func (v *AccountListView) Render(accounts []model.Account) error {
	tableData := pterm.TableData{{"ID", "Name"}}

	for _, acc := range accounts {
		tableData = append(tableData, []string{fmt.Sprint(acc.ID), pterm.Cyan(acc.Name)})
	}

	pterm.DefaultSection.WithWriter(v.writer).Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithWriter(v.writer).WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.WithWriter(v.writer).Printf("Total: %d accounts\n", len(accounts))

	return nil
}
