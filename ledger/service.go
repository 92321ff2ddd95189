// Package ledger orchestrates journal mutations: it validates input,
// writes through the datastore, mirrors results into the client store
// and announces changes on the bus. Errors are converted to
// user-facing notifications at this layer and returned to the caller;
// nothing propagates as an unhandled fault.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/pkg/bus"
	"github.com/rustyeddy/tradejournal/pkg/id"
	"github.com/rustyeddy/tradejournal/pkg/notify"
	"github.com/rustyeddy/tradejournal/store"
)

// DefaultMaxAccounts caps how many accounts a user may hold.
const DefaultMaxAccounts = 3

var (
	// ErrAccountLimit rejects account creation past the cap.
	ErrAccountLimit = fmt.Errorf("%w: account limit reached", journal.ErrValidation)
	// ErrInsufficientBalance rejects withdrawals below zero.
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", journal.ErrValidation)
)

// Service carries one user's journal mutations.
type Service struct {
	ds       journal.Datastore
	cache    *store.Store
	bus      *bus.Bus
	notifier notify.Notifier

	userID      string
	maxAccounts int
}

// New wires a service for userID. A nil notifier discards messages;
// maxAccounts <= 0 falls back to DefaultMaxAccounts.
func New(ds journal.Datastore, cache *store.Store, b *bus.Bus, n notify.Notifier, userID string, maxAccounts int) *Service {
	if n == nil {
		n = notify.Discard{}
	}
	if maxAccounts <= 0 {
		maxAccounts = DefaultMaxAccounts
	}
	return &Service{
		ds:          ds,
		cache:       cache,
		bus:         b,
		notifier:    n,
		userID:      userID,
		maxAccounts: maxAccounts,
	}
}

// CreateAccount validates and creates an account with balance equal to
// its initial balance. The first account becomes active.
func (s *Service) CreateAccount(ctx context.Context, name, broker string, typ journal.AccountType, initialBalance float64) (journal.Account, error) {
	a := journal.Account{
		ID:             id.NewAccountID(),
		UserID:         s.userID,
		Name:           name,
		Broker:         broker,
		Type:           typ,
		Balance:        initialBalance,
		InitialBalance: initialBalance,
		CreatedAt:      time.Now().UTC(),
	}

	if err := journal.ValidateAccount(a); err != nil {
		s.notifier.Error(err.Error())
		return journal.Account{}, err
	}

	existing, err := s.ds.ListAccounts(ctx, s.userID)
	if err != nil {
		s.notifier.Error("could not check account limit")
		return journal.Account{}, fmt.Errorf("list accounts: %w", err)
	}
	if len(existing) >= s.maxAccounts {
		s.notifier.Error(fmt.Sprintf("maximum %d accounts allowed", s.maxAccounts))
		return journal.Account{}, ErrAccountLimit
	}

	created, err := s.ds.InsertAccount(ctx, a)
	if err != nil {
		s.notifier.Error("account creation failed")
		return journal.Account{}, fmt.Errorf("insert account: %w", err)
	}

	s.cache.UpsertAccount(created)
	if len(existing) == 0 {
		s.cache.SetActiveAccount(created.ID)
	}
	s.bus.Publish(bus.AccountsChanged)
	s.notifier.Success("account created")
	return created, nil
}

// Deposit adds amount to the account balance.
func (s *Service) Deposit(ctx context.Context, accountID string, amount float64) error {
	if amount <= 0 {
		err := fmt.Errorf("%w: deposit amount must be positive", journal.ErrValidation)
		s.notifier.Error(err.Error())
		return err
	}
	return s.adjustBalance(ctx, accountID, amount, "deposit")
}

// Withdraw removes amount from the account balance. The balance may
// not go below zero.
func (s *Service) Withdraw(ctx context.Context, accountID string, amount float64) error {
	if amount <= 0 {
		err := fmt.Errorf("%w: withdrawal amount must be positive", journal.ErrValidation)
		s.notifier.Error(err.Error())
		return err
	}
	return s.adjustBalance(ctx, accountID, -amount, "withdrawal")
}

func (s *Service) adjustBalance(ctx context.Context, accountID string, delta float64, what string) error {
	a, err := s.ds.GetAccount(ctx, accountID)
	if err != nil {
		s.notifier.Error(what + " failed")
		return fmt.Errorf("get account: %w", err)
	}

	balance := a.Balance + delta
	if balance < 0 {
		s.notifier.Error("insufficient balance for withdrawal")
		return ErrInsufficientBalance
	}

	if err := s.ds.UpdateAccountBalance(ctx, accountID, balance); err != nil {
		s.notifier.Error(what + " failed")
		return fmt.Errorf("update balance: %w", err)
	}

	a.Balance = balance
	s.cache.UpsertAccount(a)
	s.bus.Publish(bus.AccountsChanged)
	s.notifier.Success(what + " completed")
	return nil
}

// AddTrade validates the trade, derives its net P/L, inserts it and
// then applies the net P/L to the owning account's balance.
//
// The balance write is a second remote step. If it fails the inserted
// trade stays in place and the account balance drifts from its trades
// until corrected; see DESIGN.md, this is a tracked defect.
func (s *Service) AddTrade(ctx context.Context, t journal.Trade) (journal.Trade, error) {
	if t.ID == "" {
		t.ID = id.NewTradeID()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	t.NetPL = t.ComputeNetPL()

	if err := journal.ValidateTrade(t); err != nil {
		s.notifier.Error(err.Error())
		return journal.Trade{}, err
	}

	a, err := s.ds.GetAccount(ctx, t.AccountID)
	if err != nil {
		s.notifier.Error("account lookup failed")
		return journal.Trade{}, fmt.Errorf("get account: %w", err)
	}

	created, err := s.ds.InsertTrade(ctx, t)
	if err != nil {
		s.notifier.Error("trade not saved")
		return journal.Trade{}, fmt.Errorf("insert trade: %w", err)
	}

	s.cache.UpsertTrade(created)
	s.bus.Publish(bus.TradesChanged)

	if err := s.ds.UpdateAccountBalance(ctx, a.ID, a.Balance+created.NetPL); err != nil {
		s.notifier.Error("trade saved but balance update failed")
		return created, fmt.Errorf("update balance: %w", err)
	}

	a.Balance += created.NetPL
	s.cache.UpsertAccount(a)
	s.bus.Publish(bus.AccountsChanged)
	s.notifier.Success("trade added")
	return created, nil
}

// DeleteTrade removes the trade and reverses its net P/L contribution
// from the owning account's balance.
func (s *Service) DeleteTrade(ctx context.Context, tradeID string) error {
	t, err := s.ds.GetTrade(ctx, tradeID)
	if err != nil {
		s.notifier.Error("trade lookup failed")
		return fmt.Errorf("get trade: %w", err)
	}

	if err := s.ds.DeleteTrade(ctx, tradeID); err != nil {
		s.notifier.Error("trade not deleted")
		return fmt.Errorf("delete trade: %w", err)
	}

	s.cache.RemoveTrade(tradeID)
	s.bus.Publish(bus.TradesChanged)

	a, err := s.ds.GetAccount(ctx, t.AccountID)
	if err != nil {
		s.notifier.Error("trade deleted but balance update failed")
		return fmt.Errorf("get account: %w", err)
	}
	if err := s.ds.UpdateAccountBalance(ctx, a.ID, a.Balance-t.NetPL); err != nil {
		s.notifier.Error("trade deleted but balance update failed")
		return fmt.Errorf("update balance: %w", err)
	}

	a.Balance -= t.NetPL
	s.cache.UpsertAccount(a)
	s.bus.Publish(bus.AccountsChanged)
	s.notifier.Success("trade deleted")
	return nil
}

// UpdateAccount edits an account's name, broker and type. Balances
// are never edited here.
func (s *Service) UpdateAccount(ctx context.Context, accountID, name, broker string, typ journal.AccountType) error {
	a, err := s.ds.GetAccount(ctx, accountID)
	if err != nil {
		s.notifier.Error("account lookup failed")
		return fmt.Errorf("get account: %w", err)
	}

	a.Name = name
	a.Broker = broker
	a.Type = typ
	if err := journal.ValidateAccount(a); err != nil {
		s.notifier.Error(err.Error())
		return err
	}

	if err := s.ds.UpdateAccount(ctx, a); err != nil {
		s.notifier.Error("account update failed")
		return fmt.Errorf("update account: %w", err)
	}

	s.cache.UpsertAccount(a)
	s.bus.Publish(bus.AccountsChanged)
	s.notifier.Success("account updated")
	return nil
}

// DeleteAccount removes the account; the datastore cascades to its
// trades. The client store only drops the account itself: cached
// trades for it linger until the next full trade fetch.
func (s *Service) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.ds.DeleteAccount(ctx, accountID); err != nil {
		s.notifier.Error("account not deleted")
		return fmt.Errorf("delete account: %w", err)
	}

	s.cache.RemoveAccount(accountID)
	s.bus.Publish(bus.AccountsChanged)
	s.bus.Publish(bus.TradesChanged)
	s.notifier.Success("account deleted")
	return nil
}

// SignOut wipes the client store. Remote data is untouched.
func (s *Service) SignOut() {
	s.cache.Reset()
}
