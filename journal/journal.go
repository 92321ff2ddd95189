// Package journal defines the trading journal entities, their
// validation rules and the Datastore they persist through.
package journal

import (
	"context"
	"errors"
	"time"
)

// AccountType enumerates the kinds of trading account a user may hold.
type AccountType string

const (
	AccountLive      AccountType = "Live"
	AccountDemo      AccountType = "Demo"
	AccountChallenge AccountType = "Challenge"
)

// Direction is the side of a trade.
type Direction string

const (
	Buy  Direction = "Buy"
	Sell Direction = "Sell"
)

// Emotion is the free-text-adjacent mood tag recorded with a trade.
type Emotion string

const (
	Confident Emotion = "Confident"
	Neutral   Emotion = "Neutral"
	Anxious   Emotion = "Anxious"
	Greedy    Emotion = "Greedy"
	Fearful   Emotion = "Fearful"
)

// Account is a user-owned ledger trades are recorded against.
// InitialBalance is immutable after creation; Balance is maintained by
// hand at every trade insert/delete and deposit/withdrawal.
type Account struct {
	ID             string      `json:"id" yaml:"id"`
	UserID         string      `json:"user_id" yaml:"user_id"`
	Name           string      `json:"name" yaml:"name"`
	Broker         string      `json:"broker,omitempty" yaml:"broker,omitempty"`
	Type           AccountType `json:"type" yaml:"type"`
	Balance        float64     `json:"balance" yaml:"balance"`
	InitialBalance float64     `json:"initial_balance" yaml:"initial_balance"`
	CreatedAt      time.Time   `json:"created_at" yaml:"created_at"`
}

// Trade is a single recorded transaction belonging to one account.
// NetPL is derived from ProfitLoss, Commission and Spread and is never
// edited independently of them.
type Trade struct {
	ID         string    `json:"id" yaml:"id"`
	AccountID  string    `json:"account_id" yaml:"account_id"`
	Pair       string    `json:"pair" yaml:"pair"`
	Direction  Direction `json:"direction" yaml:"direction"`
	LotSize    float64   `json:"lot_size" yaml:"lot_size"`
	ProfitLoss float64   `json:"profit_loss" yaml:"profit_loss"`
	Commission float64   `json:"commission" yaml:"commission"`
	Spread     float64   `json:"spread" yaml:"spread"`
	NetPL      float64   `json:"net_pl" yaml:"net_pl"`
	Time       time.Time `json:"time" yaml:"time"`
	Emotion    Emotion   `json:"emotion,omitempty" yaml:"emotion,omitempty"`
	Notes      string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// ComputeNetPL returns profit/loss minus commission minus spread.
// Commission and spread are positive magnitudes, always subtracted.
func (t Trade) ComputeNetPL() float64 {
	return t.ProfitLoss - t.Commission - t.Spread
}

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("not found")

// Datastore is the row store behind the journal: per-table CRUD with
// equality filters and ordered selects, rows scoped to one user.
type Datastore interface {
	InsertAccount(ctx context.Context, a Account) (Account, error)
	GetAccount(ctx context.Context, id string) (Account, error)
	ListAccounts(ctx context.Context, userID string) ([]Account, error)
	UpdateAccount(ctx context.Context, a Account) error
	UpdateAccountBalance(ctx context.Context, id string, balance float64) error
	DeleteAccount(ctx context.Context, id string) error

	InsertTrade(ctx context.Context, t Trade) (Trade, error)
	GetTrade(ctx context.Context, id string) (Trade, error)
	ListTrades(ctx context.Context, accountID string) ([]Trade, error)
	ListTradesForUser(ctx context.Context, userID string) ([]Trade, error)
	DeleteTrade(ctx context.Context, id string) error

	Close() error
}
