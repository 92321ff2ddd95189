package journal

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	ds, err := NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ds.Close() })

	return ds
}

func testAccount(userID string) Account {
	return Account{
		ID:             "A1",
		UserID:         userID,
		Name:           "Main",
		Broker:         "IC Markets",
		Type:           AccountLive,
		Balance:        1000,
		InitialBalance: 1000,
		CreatedAt:      time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func testTrade(id, accountID string, when time.Time) Trade {
	tr := Trade{
		ID:         id,
		AccountID:  accountID,
		Pair:       "EUR/USD",
		Direction:  Buy,
		LotSize:    0.5,
		ProfitLoss: 50,
		Commission: 2,
		Spread:     1,
		Time:       when,
		Emotion:    Confident,
		Notes:      "breakout",
		CreatedAt:  when,
	}
	tr.NetPL = tr.ComputeNetPL()
	return tr
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test.db")
	ds, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, ds.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('accounts','trades')`)
	require.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	require.NoError(t, rows.Err())

	assert.True(t, found["accounts"])
	assert.True(t, found["trades"])
}

func TestInsertAccountReturnsRow(t *testing.T) {
	t.Parallel()

	ds := newTestSQLite(t)
	ctx := context.Background()

	want := testAccount("u1")
	got, err := ds.InsertAccount(ctx, want)
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Broker, got.Broker)
	assert.Equal(t, want.Type, got.Type)
	assert.InDelta(t, want.Balance, got.Balance, 1e-9)
	assert.InDelta(t, want.InitialBalance, got.InitialBalance, 1e-9)
	assert.True(t, got.CreatedAt.Equal(want.CreatedAt))
}

func TestListAccountsScopedAndOrdered(t *testing.T) {
	t.Parallel()

	ds := newTestSQLite(t)
	ctx := context.Background()

	a1 := testAccount("u1")
	a2 := testAccount("u1")
	a2.ID = "A2"
	a2.Name = "Second"
	a2.CreatedAt = a1.CreatedAt.Add(time.Hour)
	other := testAccount("u2")
	other.ID = "A3"

	for _, a := range []Account{a2, a1, other} {
		_, err := ds.InsertAccount(ctx, a)
		require.NoError(t, err)
	}

	got, err := ds.ListAccounts(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A1", got[0].ID)
	assert.Equal(t, "A2", got[1].ID)
}

func TestTradeRoundTrip(t *testing.T) {
	t.Parallel()

	ds := newTestSQLite(t)
	ctx := context.Background()

	_, err := ds.InsertAccount(ctx, testAccount("u1"))
	require.NoError(t, err)

	when := time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC)
	want := testTrade("T1", "A1", when)
	_, err = ds.InsertTrade(ctx, want)
	require.NoError(t, err)

	got, err := ds.GetTrade(ctx, "T1")
	require.NoError(t, err)

	assert.Equal(t, want.Pair, got.Pair)
	assert.Equal(t, want.Direction, got.Direction)
	assert.InDelta(t, want.LotSize, got.LotSize, 1e-9)
	assert.InDelta(t, want.NetPL, got.NetPL, 1e-9)
	assert.InDelta(t, 47.0, got.NetPL, 1e-9)
	assert.Equal(t, want.Emotion, got.Emotion)
	assert.Equal(t, want.Notes, got.Notes)
	assert.True(t, got.Time.Equal(want.Time))
}

func TestListTradesOrderedByTime(t *testing.T) {
	t.Parallel()

	ds := newTestSQLite(t)
	ctx := context.Background()

	_, err := ds.InsertAccount(ctx, testAccount("u1"))
	require.NoError(t, err)

	base := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	for _, tr := range []Trade{
		testTrade("T2", "A1", base.Add(time.Hour)),
		testTrade("T1", "A1", base),
	} {
		_, err := ds.InsertTrade(ctx, tr)
		require.NoError(t, err)
	}

	got, err := ds.ListTrades(ctx, "A1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "T1", got[0].ID)
	assert.Equal(t, "T2", got[1].ID)
}

func TestListTradesForUserJoinsAccounts(t *testing.T) {
	t.Parallel()

	ds := newTestSQLite(t)
	ctx := context.Background()

	mine := testAccount("u1")
	theirs := testAccount("u2")
	theirs.ID = "A2"
	for _, a := range []Account{mine, theirs} {
		_, err := ds.InsertAccount(ctx, a)
		require.NoError(t, err)
	}

	when := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	_, err := ds.InsertTrade(ctx, testTrade("T1", "A1", when))
	require.NoError(t, err)
	_, err = ds.InsertTrade(ctx, testTrade("T2", "A2", when))
	require.NoError(t, err)

	got, err := ds.ListTradesForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "T1", got[0].ID)
}

func TestUpdateAccount(t *testing.T) {
	t.Parallel()

	ds := newTestSQLite(t)
	ctx := context.Background()

	a := testAccount("u1")
	_, err := ds.InsertAccount(ctx, a)
	require.NoError(t, err)

	a.Name = "Renamed"
	a.Broker = "FTMO"
	a.Type = AccountChallenge
	require.NoError(t, ds.UpdateAccount(ctx, a))

	got, err := ds.GetAccount(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, "FTMO", got.Broker)
	assert.Equal(t, AccountChallenge, got.Type)
	assert.InDelta(t, 1000.0, got.InitialBalance, 1e-9)
}

func TestUpdateAccountBalance(t *testing.T) {
	t.Parallel()

	ds := newTestSQLite(t)
	ctx := context.Background()

	_, err := ds.InsertAccount(ctx, testAccount("u1"))
	require.NoError(t, err)

	require.NoError(t, ds.UpdateAccountBalance(ctx, "A1", 1047))

	got, err := ds.GetAccount(ctx, "A1")
	require.NoError(t, err)
	assert.InDelta(t, 1047.0, got.Balance, 1e-9)
	// initial balance must not move
	assert.InDelta(t, 1000.0, got.InitialBalance, 1e-9)
}

func TestDeleteAccountCascadesToTrades(t *testing.T) {
	t.Parallel()

	ds := newTestSQLite(t)
	ctx := context.Background()

	_, err := ds.InsertAccount(ctx, testAccount("u1"))
	require.NoError(t, err)
	when := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	_, err = ds.InsertTrade(ctx, testTrade("T1", "A1", when))
	require.NoError(t, err)

	require.NoError(t, ds.DeleteAccount(ctx, "A1"))

	_, err = ds.GetTrade(ctx, "T1")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestNotFoundErrors(t *testing.T) {
	t.Parallel()

	ds := newTestSQLite(t)
	ctx := context.Background()

	_, err := ds.GetAccount(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = ds.GetTrade(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))

	assert.True(t, errors.Is(ds.DeleteTrade(ctx, "missing"), ErrNotFound))
	assert.True(t, errors.Is(ds.DeleteAccount(ctx, "missing"), ErrNotFound))
	assert.True(t, errors.Is(ds.UpdateAccountBalance(ctx, "missing", 1), ErrNotFound))

	ghost := testAccount("u1")
	ghost.ID = "missing"
	assert.True(t, errors.Is(ds.UpdateAccount(ctx, ghost), ErrNotFound))
}
