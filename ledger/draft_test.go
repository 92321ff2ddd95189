package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradejournal/journal"
)

func TestDraftHappyPath(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	a := e.createAccount(t, 1000)

	d := NewDraft(e.svc)
	assert.Equal(t, Editing, d.State())

	require.NoError(t, d.Edit(eurusd(a.ID, 50, 2, 1)))

	preview, err := d.Review()
	require.NoError(t, err)
	assert.Equal(t, PendingConfirmation, d.State())
	assert.InDelta(t, 47.0, preview.NetPL, 1e-9)

	created, err := d.Confirm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Committed, d.State())
	assert.NotEmpty(t, created.ID)

	got, err := e.ds.GetAccount(context.Background(), a.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1047.0, got.Balance, 1e-9)
}

func TestDraftRejectReturnsToEditing(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	a := e.createAccount(t, 1000)

	d := NewDraft(e.svc)
	require.NoError(t, d.Edit(eurusd(a.ID, 50, 2, 1)))
	_, err := d.Review()
	require.NoError(t, err)

	require.NoError(t, d.Reject())
	assert.Equal(t, Editing, d.State())

	// nothing was written
	trades, err := e.ds.ListTrades(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestDraftReviewValidationStaysEditing(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	a := e.createAccount(t, 1000)

	bad := eurusd(a.ID, 50, 2, 1)
	bad.LotSize = 0

	d := NewDraft(e.svc)
	require.NoError(t, d.Edit(bad))

	_, err := d.Review()
	assert.True(t, errors.Is(err, journal.ErrValidation))
	assert.Equal(t, Editing, d.State())
}

func TestDraftFailedPermitsRetry(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	a := e.createAccount(t, 1000)

	// Trade against a vanished account fails at submission.
	gone := eurusd(a.ID, 50, 2, 1)
	d := NewDraft(e.svc)
	require.NoError(t, d.Edit(gone))
	_, err := d.Review()
	require.NoError(t, err)

	require.NoError(t, e.svc.DeleteAccount(context.Background(), a.ID))

	_, err = d.Confirm(context.Background())
	require.Error(t, err)
	assert.Equal(t, Failed, d.State())
	assert.Error(t, d.Err())

	// Recreate the account, rework the draft from Failed, retry.
	b := e.createAccount(t, 500)
	reworked := eurusd(b.ID, 10, 1, 1)
	require.NoError(t, d.Edit(reworked))
	assert.Equal(t, Editing, d.State())

	_, err = d.Review()
	require.NoError(t, err)
	created, err := d.Confirm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Committed, d.State())
	assert.InDelta(t, 8.0, created.NetPL, 1e-9)
}

func TestDraftInvalidTransitions(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	a := e.createAccount(t, 1000)

	d := NewDraft(e.svc)

	// cannot confirm or reject before review
	_, err := d.Confirm(context.Background())
	assert.True(t, errors.Is(err, ErrDraftState))
	assert.True(t, errors.Is(d.Reject(), ErrDraftState))

	require.NoError(t, d.Edit(eurusd(a.ID, 50, 2, 1)))
	_, err = d.Review()
	require.NoError(t, err)

	// cannot edit or re-review while pending confirmation
	assert.True(t, errors.Is(d.Edit(eurusd(a.ID, 1, 0, 0)), ErrDraftState))
	_, err = d.Review()
	assert.True(t, errors.Is(err, ErrDraftState))

	_, err = d.Confirm(context.Background())
	require.NoError(t, err)

	// committed drafts are final
	assert.True(t, errors.Is(d.Edit(eurusd(a.ID, 1, 0, 0)), ErrDraftState))
	_, err = d.Confirm(context.Background())
	assert.True(t, errors.Is(err, ErrDraftState))
}

func TestDraftStateStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "editing", Editing.String())
	assert.Equal(t, "pending-confirmation", PendingConfirmation.String())
	assert.Equal(t, "submitting", Submitting.String())
	assert.Equal(t, "committed", Committed.String())
	assert.Equal(t, "failed", Failed.String())
}
