package app

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/hance08/bills/internal/config"
	"github.com/hance08/bills/internal/server"
	"github.com/hance08/bills/internal/store"
	"github.com/hance08/bills/internal/ui/forms"
	"github.com/hance08/bills/internal/ui/pages"
	"github.com/hance08/bills/migrations"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *pterm.Logger {
	return pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
}

func newBackend(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	repo, err := store.NewStore(filepath.Join(t.TempDir(), "bills.db"), migrations.FS)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	srv := httptest.NewServer(server.NewRouter(repo, server.Options{}))
	t.Cleanup(srv.Close)
	return srv, repo
}

func newTestApp(t *testing.T, baseURL string) *App {
	t.Helper()
	cfg := config.NewDefault()
	cfg.Server.BaseURL = baseURL
	cfg.Failures.Policy = "silent"

	a, err := NewApp(context.Background(), cfg, quietLogger(), &bytes.Buffer{})
	require.NoError(t, err)
	return a
}

func TestNewAppRejectsBadConfig(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Failures.Policy = "loud"
	_, err := NewApp(context.Background(), cfg, quietLogger(), nil)
	assert.Error(t, err)

	cfg = config.NewDefault()
	cfg.UI.Prompt = "gui"
	_, err = NewApp(context.Background(), cfg, quietLogger(), nil)
	assert.Error(t, err)
}

func TestNewAppRegistersForms(t *testing.T) {
	a := newTestApp(t, "http://127.0.0.1:1")

	for _, kind := range []string{forms.KindIncome, forms.KindExpense, forms.KindAccount} {
		form, err := a.Form(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, form.ID)
	}
	_, err := a.Form("transfer")
	assert.Error(t, err)
}

func TestRefreshReloadsPageAndForms(t *testing.T) {
	srv, repo := newBackend(t)
	acc, err := repo.CreateAccount("Cash", 0)
	require.NoError(t, err)

	a := newTestApp(t, srv.URL)
	a.Page.Render(context.Background(), &pages.Params{AccountID: acc.ID})
	require.NoError(t, a.Wait())
	assert.Equal(t, "Cash", a.Region.Title())

	_, err = repo.CreateAccount("Card", 0)
	require.NoError(t, err)

	a.Refresh()
	require.NoError(t, a.Wait())

	income, err := a.Form(forms.KindIncome)
	require.NoError(t, err)
	assert.Len(t, income.AccountOptions(), 2)

	account, err := a.Form(forms.KindAccount)
	require.NoError(t, err)
	assert.Empty(t, account.AccountOptions())
}

func TestSubmitRefreshesPage(t *testing.T) {
	srv, repo := newBackend(t)
	acc, err := repo.CreateAccount("Cash", 0)
	require.NoError(t, err)

	a := newTestApp(t, srv.URL)
	ctx := context.Background()
	a.Page.Render(ctx, &pages.Params{AccountID: acc.ID})
	require.NoError(t, a.Wait())
	assert.Empty(t, a.Region.Rows())

	form, err := a.Form(forms.KindExpense)
	require.NoError(t, err)
	form.Set("name", "Coffee")
	form.Set("sum", "150")
	form.Set("account_id", "1")
	require.NoError(t, form.Submit(ctx))
	require.NoError(t, a.Wait())

	assert.Empty(t, form.Values())
	require.Len(t, a.Region.Rows(), 1)
	assert.Equal(t, "expense", a.Region.Rows()[0].Row.Type)
}

func TestWaitReturnsFailure(t *testing.T) {
	srv, _ := newBackend(t)
	a := newTestApp(t, srv.URL)

	a.Page.Render(context.Background(), &pages.Params{AccountID: 42})
	err := a.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load account")

	assert.NoError(t, a.Wait())
}

func TestDatabasePath(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Path = "/tmp/custom.db"
	path, err := DatabasePath(cfg)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", path)

	cfg.Database.Path = ""
	path, err = DatabasePath(cfg)
	require.NoError(t, err)
	assert.Equal(t, "bills.db", filepath.Base(path))
}
