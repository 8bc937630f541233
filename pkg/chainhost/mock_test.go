package chainhost

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEntropyDeterministic(t *testing.T) {
	ledger := newMockLedger()

	first, err := ledger.entropyAt(1)
	require.NoError(t, err)
	second, err := ledger.entropyAt(1)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := ledger.entropyAt(0)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestMockEntropyFutureHeight(t *testing.T) {
	ledger := newMockLedger()
	_, err := ledger.entropyAt(ledger.height() + 1000)
	assert.Error(t, err)
	_, err = ledger.entropyAt(-1)
	assert.Error(t, err)
}

func TestMockTransfer(t *testing.T) {
	ledger := newMockLedger()

	require.NoError(t, ledger.transfer("alice", "custody", 300))
	assert.Equal(t, mockOpeningBalance-300, ledger.balances["alice"])
	assert.Equal(t, mockOpeningBalance+300, ledger.balances["custody"])

	// Overdrafts are rejected and leave both balances untouched
	err := ledger.transfer("alice", "custody", mockOpeningBalance)
	assert.Error(t, err)
	assert.Equal(t, mockOpeningBalance-300, ledger.balances["alice"])
	assert.Equal(t, mockOpeningBalance+300, ledger.balances["custody"])

	assert.Error(t, ledger.transfer("alice", "custody", 0))
	assert.Error(t, ledger.transfer("alice", "custody", -5))
}

func TestClientMockMode(t *testing.T) {
	client := NewClient("", "", true)
	ctx := context.Background()

	height, err := client.Height(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, height, int64(1))

	entropy, err := client.EntropyAt(ctx, height)
	require.NoError(t, err)
	again, err := client.EntropyAt(ctx, height)
	require.NoError(t, err)
	assert.Equal(t, entropy, again)

	assert.NoError(t, client.Transfer(ctx, "alice", "custody", 100))
}
