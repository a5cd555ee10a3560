package views

import (
	"github.com/hance08/bills/internal/ui"
	"github.com/pterm/pterm"
)

func RenderTransactionDeletePreview(row TransactionRow) {
	pterm.Warning.Printf("About to delete transaction #%s:\n", row.ID)

	deletionInfo := pterm.TableData{
		{"Date", row.Date},
		{"Name", row.Name},
		{"Sum", row.Sum},
	}

	_ = pterm.DefaultTable.WithData(deletionInfo).Render()
	pterm.Warning.Println("This action cannot be undone!")
}

func RenderDeleted(what string) {
	pterm.Success.Printf("%s deleted successfully\n", what)
	ui.Separator()
}
