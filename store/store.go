// Package store holds the client-side cache of accounts and trades:
// the single in-memory source of truth screens read from, shielding
// them from redundant remote fetches.
package store

import (
	"sync"

	"github.com/rustyeddy/tradejournal/journal"
)

// Collection names one of the cached entity collections.
type Collection string

const (
	Accounts Collection = "accounts"
	Trades   Collection = "trades"
)

// Store keeps ordered account and trade slices, the active account
// pointer and the per-collection loaded flags. Every operation is a
// pure in-memory mutation; none can fail. Callers must not mutate the
// store after a failed remote call.
type Store struct {
	mu sync.RWMutex

	accounts []journal.Account
	trades   []journal.Trade
	activeID string
	loaded   map[Collection]bool
}

func New() *Store {
	return &Store{loaded: make(map[Collection]bool)}
}

// ReplaceAccounts overwrites the accounts collection. Used after a
// full remote fetch; the contents are trusted as-is.
func (s *Store) ReplaceAccounts(accounts []journal.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append([]journal.Account(nil), accounts...)
}

// ReplaceTrades overwrites the trades collection.
func (s *Store) ReplaceTrades(trades []journal.Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trades = append([]journal.Trade(nil), trades...)
}

// UpsertAccount appends the account or, if one with the same ID is
// cached, overwrites it whole (later write wins per field).
func (s *Store) UpsertAccount(a journal.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].ID == a.ID {
			s.accounts[i] = a
			return
		}
	}
	s.accounts = append(s.accounts, a)
}

// UpsertTrade appends or overwrites a trade by ID.
func (s *Store) UpsertTrade(t journal.Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.trades {
		if s.trades[i].ID == t.ID {
			s.trades[i] = t
			return
		}
	}
	s.trades = append(s.trades, t)
}

// RemoveAccount drops the account from the cache. If it was active,
// the active pointer falls back to the first remaining account, or
// clears when none remain. The account's cached trades are NOT
// removed; they linger until the next full trade fetch.
func (s *Store) RemoveAccount(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.accounts[:0]
	for _, a := range s.accounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.accounts = kept

	if s.activeID == id {
		if len(s.accounts) > 0 {
			s.activeID = s.accounts[0].ID
		} else {
			s.activeID = ""
		}
	}
}

// RemoveTrade drops the trade from the cache. It does not touch any
// account balance; the caller issues that update separately.
func (s *Store) RemoveTrade(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.trades[:0]
	for _, t := range s.trades {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.trades = kept
}

// MarkLoaded records that the collection's initial fetch completed.
func (s *Store) MarkLoaded(c Collection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded[c] = true
}

// ResetLoaded clears one collection's fetch guard so the next
// consumer refetches.
func (s *Store) ResetLoaded(c Collection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.loaded, c)
}

// ResetLoadedAll clears every fetch guard, forcing a full refetch.
func (s *Store) ResetLoadedAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = make(map[Collection]bool)
}

// Loaded reports whether the collection's initial fetch completed.
func (s *Store) Loaded(c Collection) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded[c]
}

// Reset wipes the store back to its initial empty state. Called on
// sign-out.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = nil
	s.trades = nil
	s.activeID = ""
	s.loaded = make(map[Collection]bool)
}

// Accounts returns a copy of the cached accounts in order.
func (s *Store) Accounts() []journal.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]journal.Account(nil), s.accounts...)
}

// Trades returns a copy of the cached trades in order.
func (s *Store) Trades() []journal.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]journal.Trade(nil), s.trades...)
}

// AccountByID looks up a cached account.
func (s *Store) AccountByID(id string) (journal.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return journal.Account{}, false
}

// TradeByID looks up a cached trade.
func (s *Store) TradeByID(id string) (journal.Trade, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.trades {
		if t.ID == id {
			return t, true
		}
	}
	return journal.Trade{}, false
}

// TradesForAccount returns the cached trades belonging to one account.
func (s *Store) TradesForAccount(accountID string) []journal.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []journal.Trade
	for _, t := range s.trades {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	return out
}

// SetActiveAccount points the active-account selector at id.
func (s *Store) SetActiveAccount(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeID = id
}

// ActiveAccountID returns the active account's ID, or "" if none.
func (s *Store) ActiveAccountID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

// ActiveAccount returns the active account if it is cached.
func (s *Store) ActiveAccount() (journal.Account, bool) {
	s.mu.RLock()
	id := s.activeID
	s.mu.RUnlock()
	if id == "" {
		return journal.Account{}, false
	}
	return s.AccountByID(id)
}
