package journal

import (
	"errors"
	"fmt"

	"github.com/rustyeddy/tradejournal/market"
)

// ErrValidation marks rejections that happen before any remote call.
// Callers can match it with errors.Is to distinguish bad input from
// datastore failures.
var ErrValidation = errors.New("validation failed")

// ValidateAccount checks an account before it is created.
func ValidateAccount(a Account) error {
	if a.Name == "" {
		return fmt.Errorf("%w: account name is required", ErrValidation)
	}
	if a.InitialBalance < 0 {
		return fmt.Errorf("%w: initial balance must not be negative", ErrValidation)
	}
	switch a.Type {
	case AccountLive, AccountDemo, AccountChallenge:
	default:
		return fmt.Errorf("%w: unknown account type %q", ErrValidation, a.Type)
	}
	return nil
}

// ValidateTrade checks a trade before it is inserted. NetPL is not
// checked here; it is recomputed from its inputs at insert time.
func ValidateTrade(t Trade) error {
	if t.AccountID == "" {
		return fmt.Errorf("%w: account is required", ErrValidation)
	}
	if !market.Valid(t.Pair) {
		return fmt.Errorf("%w: unknown pair %q", ErrValidation, t.Pair)
	}
	if t.Direction != Buy && t.Direction != Sell {
		return fmt.Errorf("%w: direction must be Buy or Sell", ErrValidation)
	}
	if t.LotSize <= 0 {
		return fmt.Errorf("%w: lot size must be positive", ErrValidation)
	}
	if t.Commission < 0 {
		return fmt.Errorf("%w: commission is a positive magnitude", ErrValidation)
	}
	if t.Spread < 0 {
		return fmt.Errorf("%w: spread is a positive magnitude", ErrValidation)
	}
	if t.Time.IsZero() {
		return fmt.Errorf("%w: trade time is required", ErrValidation)
	}
	switch t.Emotion {
	case "", Confident, Neutral, Anxious, Greedy, Fearful:
	default:
		return fmt.Errorf("%w: unknown emotion %q", ErrValidation, t.Emotion)
	}
	return nil
}
