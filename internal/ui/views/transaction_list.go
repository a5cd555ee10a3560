package views

import (
	"fmt"
	"html/template"
	"io"

	"github.com/hance08/bills/internal/constants"
	"github.com/hance08/bills/internal/ui"
	"github.com/pterm/pterm"
)

type TransactionListView struct {
	writer io.Writer
}

func NewTransactionListView(w io.Writer) *TransactionListView {
	return &TransactionListView{writer: w}
}

// RenderFormat renders the region as a table, or as markup when format is
// "html".
func (v *TransactionListView) RenderFormat(region *TransactionsRegion, format string) error {
	if format == "html" {
		return v.RenderHTML(region)
	}
	return v.Render(region)
}

// Render prints the region as a terminal table.
func (v *TransactionListView) Render(region *TransactionsRegion) error {
	if _, err := fmt.Fprintln(v.writer, ui.L1Title("%s", region.Title())); err != nil {
		return err
	}

	rows := region.Rows()
	if len(rows) == 0 {
		pterm.Warning.WithWriter(v.writer).Println("No transactions found")
		return nil
	}

	tableData := pterm.TableData{
		{"ID", "Date", "Type", "Name", "Sum"},
	}

	for _, el := range rows {
		row := el.Row
		sum := fmt.Sprintf("%s %s", row.Sum, constants.CurrencySign)

		var coloredType, coloredSum string
		switch row.Type {
		case constants.TypeExpense:
			coloredType = pterm.Red(row.Type)
			coloredSum = pterm.Red("-" + sum)
		case constants.TypeIncome:
			coloredType = pterm.Green(row.Type)
			coloredSum = pterm.Green("+" + sum)
		default:
			coloredType = row.Type
			coloredSum = sum
		}

		tableData = append(tableData, []string{row.ID, row.Date, coloredType, row.Name, coloredSum})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithWriter(v.writer).WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.WithWriter(v.writer).Printf("Total: %d transactions\n", len(rows))
	return nil
}

// RenderHTML writes the list region markup.
func (v *TransactionListView) RenderHTML(region *TransactionsRegion) error {
	markup, err := region.Markup()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(v.writer, "<h1 class=\"content-title\">%s</h1>\n<div class=\"content\">\n%s</div>\n",
		template.HTMLEscapeString(region.Title()), markup)
	return err
}
