package chainhost

import (
	"fmt"
	"sync"
	"time"
)

// mockOpeningBalance is granted to every account the first time the mock ledger sees it.
const mockOpeningBalance int64 = 1_000_000_000

// mockLedger is a deterministic in-process stand-in for the execution host: one block
// per second, entropy derived from the height, and a balance map with all-or-nothing
// transfers.
type mockLedger struct {
	mu       sync.Mutex
	started  time.Time
	balances map[string]int64
}

func newMockLedger() *mockLedger {
	return &mockLedger{
		started:  time.Now(),
		balances: make(map[string]int64),
	}
}

func (m *mockLedger) height() int64 {
	return 1 + int64(time.Since(m.started)/time.Second)
}

func (m *mockLedger) entropyAt(height int64) (uint64, error) {
	if height < 0 || height > m.height() {
		return 0, fmt.Errorf("no block at height %d", height)
	}
	// FNV-1a over the height bytes: stable across calls for the same height.
	const offset, prime = uint64(14695981039346656037), uint64(1099511628211)
	h := offset
	for i := 0; i < 8; i++ {
		h ^= uint64(byte(height >> (8 * i)))
		h *= prime
	}
	return h, nil
}

func (m *mockLedger) transfer(from, to string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("transfer amount must be > 0")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seed(from)
	m.seed(to)
	if m.balances[from] < amount {
		return fmt.Errorf("insufficient balance: have %d, need %d", m.balances[from], amount)
	}
	m.balances[from] -= amount
	m.balances[to] += amount
	return nil
}

func (m *mockLedger) seed(account string) {
	if _, ok := m.balances[account]; !ok {
		m.balances[account] = mockOpeningBalance
	}
}
