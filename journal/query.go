package journal

import (
	"context"
	"database/sql"
	"fmt"
)

const accountCols = `account_id, user_id, name, broker, account_type, balance, initial_balance, created_at`

const tradeCols = `trade_id, account_id, pair, direction, lot_size, profit_loss, commission, spread, net_pl, trade_time, emotion, notes, created_at`

// GetAccount returns a single account by ID.
func (s *SQLite) GetAccount(ctx context.Context, id string) (Account, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+accountCols+`
		FROM accounts
		WHERE account_id = ?`, id)

	a, err := scanAccount(row)
	if err == sql.ErrNoRows {
		return Account{}, fmt.Errorf("account %q: %w", id, ErrNotFound)
	}
	return a, err
}

// ListAccounts returns the user's accounts ordered by creation time.
func (s *SQLite) ListAccounts(ctx context.Context, userID string) ([]Account, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+accountCols+`
		FROM accounts
		WHERE user_id = ?
		ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetTrade returns a single trade by ID.
func (s *SQLite) GetTrade(ctx context.Context, id string) (Trade, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+tradeCols+`
		FROM trades
		WHERE trade_id = ?`, id)

	t, err := scanTrade(row)
	if err == sql.ErrNoRows {
		return Trade{}, fmt.Errorf("trade %q: %w", id, ErrNotFound)
	}
	return t, err
}

// ListTrades returns one account's trades ordered by trade time.
func (s *SQLite) ListTrades(ctx context.Context, accountID string) ([]Trade, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+tradeCols+`
		FROM trades
		WHERE account_id = ?
		ORDER BY trade_time ASC`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTrades(rows)
}

// ListTradesForUser returns every trade across the user's accounts,
// ordered by trade time.
func (s *SQLite) ListTradesForUser(ctx context.Context, userID string) ([]Trade, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.`+joinedTradeCols+`
		FROM trades t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE a.user_id = ?
		ORDER BY t.trade_time ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTrades(rows)
}

// tradeCols with each column qualified for the join in ListTradesForUser.
const joinedTradeCols = `trade_id, t.account_id, t.pair, t.direction, t.lot_size, t.profit_loss, t.commission, t.spread, t.net_pl, t.trade_time, t.emotion, t.notes, t.created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(r rowScanner) (Account, error) {
	var a Account
	var typ string
	err := r.Scan(
		&a.ID, &a.UserID, &a.Name, &a.Broker, &typ,
		&a.Balance, &a.InitialBalance, &a.CreatedAt,
	)
	a.Type = AccountType(typ)
	return a, err
}

func scanTrade(r rowScanner) (Trade, error) {
	var t Trade
	var dir, emo string
	err := r.Scan(
		&t.ID, &t.AccountID, &t.Pair, &dir, &t.LotSize,
		&t.ProfitLoss, &t.Commission, &t.Spread, &t.NetPL,
		&t.Time, &emo, &t.Notes, &t.CreatedAt,
	)
	t.Direction = Direction(dir)
	t.Emotion = Emotion(emo)
	return t, err
}

func collectTrades(rows *sql.Rows) ([]Trade, error) {
	var out []Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
