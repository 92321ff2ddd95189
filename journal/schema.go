// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS accounts (
	account_id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	name TEXT NOT NULL,
	broker TEXT NOT NULL DEFAULT '',
	account_type TEXT NOT NULL,
	balance REAL NOT NULL,
	initial_balance REAL NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_accounts_user ON accounts(user_id);

CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	account_id TEXT NOT NULL REFERENCES accounts(account_id) ON DELETE CASCADE,
	pair TEXT NOT NULL,
	direction TEXT NOT NULL,
	lot_size REAL NOT NULL,
	profit_loss REAL NOT NULL,
	commission REAL NOT NULL,
	spread REAL NOT NULL,
	net_pl REAL NOT NULL,
	trade_time DATETIME NOT NULL,
	emotion TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_account ON trades(account_id);
CREATE INDEX IF NOT EXISTS idx_trades_time ON trades(trade_time);
`
