package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/hance08/bills/internal/model"
	"github.com/hance08/bills/internal/service"
	"github.com/hance08/bills/internal/store"
	"github.com/hance08/bills/internal/validation"
)

const maxFormMemory = 1 << 20

type handler struct {
	svc *service.Service
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

func (h *handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	var userID int64
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeFailure(w, "invalid user_id")
			return
		}
		userID = id
	}

	accounts, err := h.svc.Account.GetAccounts(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]model.Account, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, toAccount(acc))
	}
	writeSuccess(w, out)
}

func (h *handler) getAccount(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeFailure(w, err.Error())
		return
	}

	acc, err := h.svc.Account.GetAccountByID(id)
	if err != nil {
		h.storeFailure(w, err)
		return
	}
	writeSuccess(w, toAccount(acc))
}

func (h *handler) createAccount(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeFailure(w, err.Error())
		return
	}

	var userID int64
	if raw := r.FormValue("user_id"); raw != "" {
		id, err := validation.ParseID(raw)
		if err != nil {
			writeFailure(w, err.Error())
			return
		}
		userID = id
	}

	acc, err := h.svc.Account.CreateAccount(service.AccountInput{
		Name:   r.FormValue("name"),
		UserID: userID,
	})
	if err != nil {
		h.storeFailure(w, err)
		return
	}
	writeSuccess(w, toAccount(acc))
}

func (h *handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Account.DeleteAccount(id); err != nil {
		h.storeFailure(w, err)
		return
	}
	writeSuccess(w, nil)
}

func (h *handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	var accountID int64
	if raw := r.URL.Query().Get("account_id"); raw != "" {
		id, err := validation.ParseID(raw)
		if err != nil {
			writeFailure(w, "invalid account_id")
			return
		}
		accountID = id
	}

	txs, err := h.svc.Transaction.GetTransactions(accountID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransaction(tx))
	}
	writeSuccess(w, out)
}

func (h *handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeFailure(w, err.Error())
		return
	}

	accountID, err := validation.ParseID(r.FormValue("account_id"))
	if err != nil {
		writeFailure(w, "invalid account_id")
		return
	}

	created, err := h.svc.Transaction.CreateTransaction(service.TransactionInput{
		Type:      r.FormValue("type"),
		Name:      r.FormValue("name"),
		Sum:       r.FormValue("sum"),
		AccountID: accountID,
	})
	if err != nil {
		h.storeFailure(w, err)
		return
	}
	writeSuccess(w, toTransaction(created))
}

func (h *handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Transaction.DeleteTransaction(id); err != nil {
		h.storeFailure(w, err)
		return
	}
	writeSuccess(w, nil)
}

func (h *handler) storeFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, store.ErrRecordNotFound),
		errors.Is(err, store.ErrConstraintViolation):
		writeFailure(w, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func parseForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return errors.New("invalid form body")
		}
		return nil
	}
	if err := r.ParseForm(); err != nil {
		return errors.New("invalid form body")
	}
	return nil
}

func formID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	if err := parseForm(r); err != nil {
		writeFailure(w, err.Error())
		return 0, false
	}

	id, err := validation.ParseID(r.FormValue("id"))
	if err != nil {
		writeFailure(w, err.Error())
		return 0, false
	}
	return id, true
}

func toAccount(acc *store.Account) model.Account {
	return model.Account{ID: acc.ID, Name: acc.Name}
}

func toTransaction(tx *store.Transaction) model.Transaction {
	return model.Transaction{
		ID:        tx.ID,
		Type:      tx.Type,
		Name:      tx.Name,
		Sum:       tx.Sum,
		CreatedAt: model.NewTimestamp(tx.CreatedAt),
		AccountID: tx.AccountID,
	}
}
