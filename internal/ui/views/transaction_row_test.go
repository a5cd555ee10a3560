package views

import (
	"strings"
	"testing"
	"time"

	"github.com/hance08/bills/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTimestamp(t *testing.T, s string) model.Timestamp {
	t.Helper()
	ts, err := model.ParseTimestamp(s)
	require.NoError(t, err)
	return ts
}

func TestFormatDate(t *testing.T) {
	ts := mustTimestamp(t, "2019-03-10 03:20:41")
	assert.Equal(t, "10 Марта 2019 г. в 03:20", FormatDate(ts.Time))
}

func TestFormatDateMonthsAndPadding(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), "1 Января 2020 г. в 00:00"},
		{time.Date(2021, time.December, 31, 23, 59, 59, 0, time.UTC), "31 Декабря 2021 г. в 23:59"},
		{time.Date(2022, time.May, 9, 9, 5, 0, 0, time.UTC), "9 Мая 2022 г. в 09:05"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatDate(tc.in))
	}
}

func TestFormatDateNoZoneConversion(t *testing.T) {
	zone := time.FixedZone("UTC+10", 10*60*60)
	in := time.Date(2019, time.March, 10, 3, 20, 0, 0, zone)
	assert.Equal(t, "10 Марта 2019 г. в 03:20", FormatDate(in))
}

func TestFormatTransaction(t *testing.T) {
	tx := model.Transaction{
		ID:        12,
		Type:      "expense",
		Name:      "Coffee",
		Sum:       decimal.RequireFromString("150.50"),
		CreatedAt: mustTimestamp(t, "2019-03-10 03:20:41"),
		AccountID: 7,
	}

	row := FormatTransaction(tx)
	assert.Equal(t, TransactionRow{
		ID:   "12",
		Type: "expense",
		Name: "Coffee",
		Date: "10 Марта 2019 г. в 03:20",
		Sum:  "150.5",
	}, row)
}

func TestFormatTransactionWithoutDate(t *testing.T) {
	row := FormatTransaction(model.Transaction{ID: 1})
	assert.Empty(t, row.Date)
}

func TestRowMarkup(t *testing.T) {
	row := TransactionRow{ID: "5", Type: "income", Name: "<b>Salary</b>", Date: "1 Января 2020 г. в 00:00", Sum: "100"}

	html, err := row.Markup()
	require.NoError(t, err)

	assert.Contains(t, html, `class="transaction transaction_income row"`)
	assert.Contains(t, html, `data-id="5"`)
	assert.Contains(t, html, "&lt;b&gt;Salary&lt;/b&gt;")
	assert.Contains(t, html, "100 <span class=\"currency\">₽</span>")
	assert.Equal(t, 1, strings.Count(html, "transaction__remove"))
}
