package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/hance08/bills/internal/api"
	"github.com/hance08/bills/internal/model"
	"github.com/hance08/bills/internal/store"
	"github.com/hance08/bills/internal/transport"
	"github.com/hance08/bills/internal/ui/pages"
	"github.com/hance08/bills/internal/ui/prompts"
	"github.com/hance08/bills/internal/ui/views"
	"github.com/hance08/bills/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	repo, err := store.NewStore(filepath.Join(t.TempDir(), "bills.db"), migrations.FS)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	srv := httptest.NewServer(NewRouter(repo, Options{}))
	t.Cleanup(srv.Close)
	return srv, repo
}

type rawEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// do sends form fields as multipart, the way the transport does for
// non-read methods.
func do(t *testing.T, method, target string, form url.Values) rawEnvelope {
	t.Helper()
	body := &bytes.Buffer{}
	contentType := ""
	if form != nil {
		mw := multipart.NewWriter(body)
		for key, values := range form {
			for _, v := range values {
				require.NoError(t, mw.WriteField(key, v))
			}
		}
		require.NoError(t, mw.Close())
		contentType = mw.FormDataContentType()
	}
	req, err := http.NewRequest(method, target, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var env rawEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	env := do(t, http.MethodGet, srv.URL+"/health", nil)
	assert.True(t, env.Success)
}

func TestAccountEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	env := do(t, http.MethodPost, srv.URL+"/account", url.Values{"name": {"Cash"}, "user_id": {"3"}})
	require.True(t, env.Success, env.Error)
	var created model.Account
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Cash", created.Name)

	env = do(t, http.MethodGet, srv.URL+"/account/1", nil)
	require.True(t, env.Success)
	var got model.Account
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, created, got)

	env = do(t, http.MethodGet, srv.URL+"/account?user_id=3", nil)
	require.True(t, env.Success)
	var list []model.Account
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)

	env = do(t, http.MethodGet, srv.URL+"/account?user_id=4", nil)
	require.True(t, env.Success)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Empty(t, list)

	env = do(t, http.MethodDelete, srv.URL+"/account", url.Values{"id": {"1"}})
	assert.True(t, env.Success)

	env = do(t, http.MethodGet, srv.URL+"/account/1", nil)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "not found")
}

func TestAccountValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	env := do(t, http.MethodPost, srv.URL+"/account", url.Values{"name": {"  "}})
	assert.False(t, env.Success)

	env = do(t, http.MethodGet, srv.URL+"/account/abc", nil)
	assert.False(t, env.Success)

	env = do(t, http.MethodDelete, srv.URL+"/account", url.Values{"id": {"42"}})
	assert.False(t, env.Success)
}

func TestTransactionEndpoints(t *testing.T) {
	srv, repo := newTestServer(t)
	acc, err := repo.CreateAccount("Card", 0)
	require.NoError(t, err)

	env := do(t, http.MethodPost, srv.URL+"/transaction", url.Values{
		"type":       {"expense"},
		"name":       {"Coffee"},
		"sum":        {"150,50"},
		"account_id": {"1"},
	})
	require.True(t, env.Success, env.Error)
	var created model.Transaction
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, acc.ID, created.AccountID)
	assert.True(t, decimal.RequireFromString("150.5").Equal(created.Sum))
	assert.False(t, created.CreatedAt.IsZero())

	env = do(t, http.MethodGet, srv.URL+"/transaction?account_id=1", nil)
	require.True(t, env.Success)
	var list []model.Transaction
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Coffee", list[0].Name)

	env = do(t, http.MethodDelete, srv.URL+"/transaction", url.Values{"id": {"1"}})
	assert.True(t, env.Success)

	env = do(t, http.MethodGet, srv.URL+"/transaction?account_id=1", nil)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Empty(t, list)
}

func TestCreateTransactionRejectsBadInput(t *testing.T) {
	srv, repo := newTestServer(t)
	_, err := repo.CreateAccount("Card", 0)
	require.NoError(t, err)

	cases := []url.Values{
		{"type": {"gift"}, "name": {"x"}, "sum": {"1"}, "account_id": {"1"}},
		{"type": {"income"}, "name": {""}, "sum": {"1"}, "account_id": {"1"}},
		{"type": {"income"}, "name": {"x"}, "sum": {"-1"}, "account_id": {"1"}},
		{"type": {"income"}, "name": {"x"}, "sum": {"1"}, "account_id": {"zero"}},
		{"type": {"income"}, "name": {"x"}, "sum": {"1"}, "account_id": {"99"}},
	}
	for _, form := range cases {
		env := do(t, http.MethodPost, srv.URL+"/transaction", form)
		assert.False(t, env.Success, form.Encode())
		assert.NotEmpty(t, env.Error)
	}
}

// The full client stack against the real backend: transport, API client and
// the page controller.
func TestTransactionsPageAgainstServer(t *testing.T) {
	srv, repo := newTestServer(t)
	acc, err := repo.CreateAccount("Card", 0)
	require.NoError(t, err)
	for _, name := range []string{"Coffee", "Salary"} {
		_, err := repo.CreateTransaction(store.Transaction{
			AccountID: acc.ID,
			Type:      "income",
			Name:      name,
			Sum:       decimal.NewFromInt(10),
		})
		require.NoError(t, err)
	}

	tr := transport.NewHTTPTransport()
	client := api.NewClient(tr, srv.URL)
	region := views.NewTransactionsRegion()
	refreshed := 0
	page, err := pages.NewTransactionsPage(region, pages.Deps{
		Accounts:     client.Accounts,
		Transactions: client.Transactions,
		Confirm:      prompts.Always(true),
		Refresh:      pages.RefreshFunc(func() { refreshed++ }),
	})
	require.NoError(t, err)

	ctx := context.Background()
	page.Render(ctx, &pages.Params{AccountID: acc.ID})
	tr.Wait()

	assert.Equal(t, "Card", region.Title())
	require.Len(t, region.Rows(), 2)
	assert.Equal(t, "Salary", region.Rows()[0].Row.Name)

	require.NoError(t, page.RemoveTransaction(ctx, region.Rows()[0].Row.ID))
	tr.Wait()
	assert.Equal(t, 1, refreshed)

	page.Update(ctx)
	tr.Wait()
	require.Len(t, region.Rows(), 1)
	assert.Equal(t, "Coffee", region.Rows()[0].Row.Name)

	require.NoError(t, page.RemoveAccount(ctx))
	tr.Wait()
	assert.Equal(t, 2, refreshed)
	assert.Nil(t, page.LastOptions())
	assert.Empty(t, region.Rows())

	accounts, err := repo.GetAccounts(0)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}
