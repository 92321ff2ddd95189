package journal

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite implements Datastore on a local SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database at path and
// applies the schema. Foreign keys are enabled so deleting an account
// cascades to its trades.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) InsertAccount(ctx context.Context, a Account) (Account, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO accounts
		(account_id, user_id, name, broker, account_type, balance, initial_balance, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.UserID, a.Name, a.Broker, string(a.Type),
		a.Balance, a.InitialBalance, a.CreatedAt,
	)
	if err != nil {
		return Account{}, err
	}
	return s.GetAccount(ctx, a.ID)
}

func (s *SQLite) UpdateAccount(ctx context.Context, a Account) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE accounts
		SET name = ?, broker = ?, account_type = ?, balance = ?
		WHERE account_id = ?`,
		a.Name, a.Broker, string(a.Type), a.Balance, a.ID,
	)
	if err != nil {
		return err
	}
	return oneRow(res, a.ID)
}

func (s *SQLite) UpdateAccountBalance(ctx context.Context, id string, balance float64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE accounts SET balance = ? WHERE account_id = ?`, balance, id)
	if err != nil {
		return err
	}
	return oneRow(res, id)
}

func (s *SQLite) DeleteAccount(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM accounts WHERE account_id = ?`, id)
	if err != nil {
		return err
	}
	return oneRow(res, id)
}

func (s *SQLite) InsertTrade(ctx context.Context, t Trade) (Trade, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO trades
		(trade_id, account_id, pair, direction, lot_size, profit_loss, commission, spread, net_pl, trade_time, emotion, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.AccountID, t.Pair, string(t.Direction), t.LotSize,
		t.ProfitLoss, t.Commission, t.Spread, t.NetPL,
		t.Time, string(t.Emotion), t.Notes, t.CreatedAt,
	)
	if err != nil {
		return Trade{}, err
	}
	return s.GetTrade(ctx, t.ID)
}

func (s *SQLite) DeleteTrade(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM trades WHERE trade_id = ?`, id)
	if err != nil {
		return err
	}
	return oneRow(res, id)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func oneRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	return nil
}
