package views

import (
	"strings"
	"sync"
)

// RowElement is a rendered transaction together with its remove control.
type RowElement struct {
	Row    TransactionRow
	Remove *Control
}

// TransactionsRegion is the part of the page owned by the transactions
// view: a title, the account remove control and the transaction list.
type TransactionsRegion struct {
	mu            sync.RWMutex
	title         string
	rows          []*RowElement
	removeAccount *Control
}

func NewTransactionsRegion() *TransactionsRegion {
	return &TransactionsRegion{removeAccount: NewControl("")}
}

func (r *TransactionsRegion) SetTitle(title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.title = title
}

func (r *TransactionsRegion) Title() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.title
}

// SetRows replaces the whole list. Every row gets a fresh, unbound remove
// control; an empty slice clears the list.
func (r *TransactionsRegion) SetRows(rows []TransactionRow) {
	elements := make([]*RowElement, 0, len(rows))
	for _, row := range rows {
		elements = append(elements, &RowElement{Row: row, Remove: NewControl(row.ID)})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = elements
}

func (r *TransactionsRegion) Rows() []*RowElement {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*RowElement, len(r.rows))
	copy(out, r.rows)
	return out
}

// RemoveControls returns the remove controls of all rendered rows.
func (r *TransactionsRegion) RemoveControls() []*Control {
	r.mu.RLock()
	defer r.mu.RUnlock()
	controls := make([]*Control, 0, len(r.rows))
	for _, row := range r.rows {
		controls = append(controls, row.Remove)
	}
	return controls
}

// RemoveControl finds the remove control carrying id.
func (r *TransactionsRegion) RemoveControl(id string) (*Control, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.Remove.ID == id {
			return row.Remove, true
		}
	}
	return nil, false
}

func (r *TransactionsRegion) RemoveAccountControl() *Control {
	return r.removeAccount
}

// Markup renders the list region as HTML.
func (r *TransactionsRegion) Markup() (string, error) {
	var b strings.Builder
	for _, row := range r.Rows() {
		html, err := row.Row.Markup()
		if err != nil {
			return "", err
		}
		b.WriteString(html)
	}
	return b.String(), nil
}
