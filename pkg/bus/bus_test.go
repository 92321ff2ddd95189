package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	t.Parallel()

	b := New()
	var a, c int
	b.Subscribe(AccountsChanged, func() { a++ })
	b.Subscribe(AccountsChanged, func() { c++ })

	b.Publish(AccountsChanged)
	b.Publish(AccountsChanged)

	assert.Equal(t, 2, a)
	assert.Equal(t, 2, c)
}

func TestTopicsAreIndependent(t *testing.T) {
	t.Parallel()

	b := New()
	var accounts, trades int
	b.Subscribe(AccountsChanged, func() { accounts++ })
	b.Subscribe(TradesChanged, func() { trades++ })

	b.Publish(TradesChanged)

	assert.Zero(t, accounts)
	assert.Equal(t, 1, trades)
}

func TestUnsubscribe(t *testing.T) {
	t.Parallel()

	b := New()
	var n int
	cancel := b.Subscribe(TradesChanged, func() { n++ })

	b.Publish(TradesChanged)
	cancel()
	b.Publish(TradesChanged)

	assert.Equal(t, 1, n)
}

func TestPublishWithNoSubscribers(t *testing.T) {
	t.Parallel()

	b := New()
	// must not panic
	b.Publish(AccountsChanged)
}

func TestHandlerMayPublish(t *testing.T) {
	t.Parallel()

	b := New()
	var chained int
	b.Subscribe(TradesChanged, func() { chained++ })
	b.Subscribe(AccountsChanged, func() { b.Publish(TradesChanged) })

	b.Publish(AccountsChanged)
	assert.Equal(t, 1, chained)
}
