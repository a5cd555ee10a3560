package views

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/hance08/bills/internal/constants"
	"github.com/hance08/bills/internal/model"
)

var monthsGenitive = [12]string{
	"Января", "Февраля", "Марта", "Апреля", "Мая", "Июня",
	"Июля", "Августа", "Сентября", "Октября", "Ноября", "Декабря",
}

// FormatDate renders t as "10 Марта 2019 г. в 03:20".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d г. в %02d:%02d",
		t.Day(), monthsGenitive[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// TransactionRow is the display fragment of one transaction.
type TransactionRow struct {
	ID   string
	Type string
	Name string
	Date string
	Sum  string
}

func FormatTransaction(tx model.Transaction) TransactionRow {
	date := ""
	if !tx.CreatedAt.IsZero() {
		date = FormatDate(tx.CreatedAt.Time)
	}

	return TransactionRow{
		ID:   strconv.FormatInt(tx.ID, 10),
		Type: tx.Type,
		Name: tx.Name,
		Date: date,
		Sum:  tx.Sum.String(),
	}
}

var rowTemplate = template.Must(template.New("transaction").Parse(`<div class="transaction transaction_{{.Row.Type}} row">
  <div class="col-md-7 transaction__details">
    <div class="transaction__icon">
      <span class="fa fa-money fa-2x"></span>
    </div>
    <div class="transaction__info">
      <h4 class="transaction__title">{{.Row.Name}}</h4>
      <div class="transaction__date">{{.Row.Date}}</div>
    </div>
  </div>
  <div class="col-md-3">
    <div class="transaction__summ">
      {{.Row.Sum}} <span class="currency">{{.Currency}}</span>
    </div>
  </div>
  <div class="col-md-2 transaction__controls">
    <button class="btn btn-danger transaction__remove" data-id="{{.Row.ID}}">
      <i class="fa fa-trash"></i>
    </button>
  </div>
</div>
`))

// Markup renders the row as an HTML fragment.
func (r TransactionRow) Markup() (string, error) {
	var buf bytes.Buffer
	err := rowTemplate.Execute(&buf, struct {
		Row      TransactionRow
		Currency string
	}{Row: r, Currency: constants.CurrencySign})
	if err != nil {
		return "", fmt.Errorf("failed to render transaction %s: %w", r.ID, err)
	}
	return buf.String(), nil
}
