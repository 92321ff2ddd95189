package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/rustyeddy/tradejournal/journal"
)

// DraftState is the phase of a two-step trade entry: the user edits
// the trade, reviews its computed net P/L, then commits or backs out.
type DraftState int

const (
	Editing DraftState = iota
	PendingConfirmation
	Submitting
	Committed
	Failed
)

func (s DraftState) String() string {
	switch s {
	case Editing:
		return "editing"
	case PendingConfirmation:
		return "pending-confirmation"
	case Submitting:
		return "submitting"
	case Committed:
		return "committed"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// ErrDraftState rejects an operation not valid in the current state.
var ErrDraftState = errors.New("invalid draft state")

// Draft walks a trade through Editing -> PendingConfirmation ->
// Submitting -> Committed, with Failed permitting a retry and Reject
// returning to Editing. Draft is not safe for concurrent use.
type Draft struct {
	svc   *Service
	state DraftState
	trade journal.Trade
	err   error
}

// NewDraft starts a draft in the Editing state.
func NewDraft(svc *Service) *Draft {
	return &Draft{svc: svc, state: Editing}
}

func (d *Draft) State() DraftState { return d.state }

// Err returns the submission error after a Failed transition.
func (d *Draft) Err() error { return d.err }

// Trade returns the draft's current trade, with NetPL populated once
// Review has run.
func (d *Draft) Trade() journal.Trade { return d.trade }

// Edit replaces the draft's trade fields. Allowed while Editing, and
// from Failed to rework a rejected submission.
func (d *Draft) Edit(t journal.Trade) error {
	if d.state != Editing && d.state != Failed {
		return fmt.Errorf("%w: cannot edit while %s", ErrDraftState, d.state)
	}
	d.trade = t
	d.state = Editing
	d.err = nil
	return nil
}

// Review validates the trade and computes its net P/L for the user to
// inspect before committing. On success the draft moves to
// PendingConfirmation; a validation failure keeps it in Editing.
func (d *Draft) Review() (journal.Trade, error) {
	if d.state != Editing {
		return journal.Trade{}, fmt.Errorf("%w: cannot review while %s", ErrDraftState, d.state)
	}

	d.trade.NetPL = d.trade.ComputeNetPL()
	if err := journal.ValidateTrade(d.trade); err != nil {
		return journal.Trade{}, err
	}

	d.state = PendingConfirmation
	return d.trade, nil
}

// Reject abandons the pending confirmation and returns to Editing.
func (d *Draft) Reject() error {
	if d.state != PendingConfirmation {
		return fmt.Errorf("%w: cannot reject while %s", ErrDraftState, d.state)
	}
	d.state = Editing
	return nil
}

// Confirm submits the reviewed trade. Valid from PendingConfirmation,
// or from Failed to retry. On success the draft is Committed and the
// stored trade (with its assigned ID) is returned.
func (d *Draft) Confirm(ctx context.Context) (journal.Trade, error) {
	if d.state != PendingConfirmation && d.state != Failed {
		return journal.Trade{}, fmt.Errorf("%w: cannot confirm while %s", ErrDraftState, d.state)
	}

	d.state = Submitting
	created, err := d.svc.AddTrade(ctx, d.trade)
	if err != nil {
		d.state = Failed
		d.err = err
		return journal.Trade{}, err
	}

	d.state = Committed
	d.trade = created
	d.err = nil
	return created, nil
}
