// Package chain defines the execution-host capabilities the lottery engine consumes.
// The host supplies a monotonically increasing block height, per-height entropy, and an
// all-or-nothing value-transfer primitive; the engine never assumes more than that.
package chain

import "context"

// Clock exposes the host's logical clock.
type Clock interface {
	// Height returns the current block height.
	Height(ctx context.Context) (int64, error)
}

// EntropySource exposes a reproducible unsigned integer for a given past height,
// nominally the timestamp of that block. Selection keyed on a height-derived value is
// predictable by whoever controls the block producing it; see DESIGN.md.
type EntropySource interface {
	EntropyAt(ctx context.Context, height int64) (uint64, error)
}

// TransferService moves value between accounts. A transfer either completes immediately
// or fails immediately; no partial-transfer state is observable.
type TransferService interface {
	Transfer(ctx context.Context, from, to string, amount int64) error
}

// Host bundles the three capabilities a full execution host provides.
type Host interface {
	Clock
	EntropySource
	TransferService
}
