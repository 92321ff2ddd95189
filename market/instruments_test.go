package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Valid("EUR/USD"))
	assert.True(t, Valid("XAU/USD"))
	assert.False(t, Valid("BTC/USD"))
	assert.False(t, Valid("eur/usd"))
}

func TestSymbolsSortedAndComplete(t *testing.T) {
	t.Parallel()

	syms := Symbols()
	assert.Len(t, syms, len(Instruments))
	for i := 1; i < len(syms); i++ {
		assert.Less(t, syms[i-1], syms[i])
	}
}

func TestMetadataConsistent(t *testing.T) {
	t.Parallel()

	for sym, meta := range Instruments {
		assert.Equal(t, sym, meta.Symbol)
		assert.Equal(t, sym, meta.BaseCurrency+"/"+meta.QuoteCurrency)
	}
}
