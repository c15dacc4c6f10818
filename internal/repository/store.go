// Package repository provides best-effort cart snapshot storage.
package repository

import (
	"context"

	"github.com/floramar/flower-service/internal/domain/model"
)

// SnapshotStore persists cart snapshots keyed by cart ID. Implementations
// must round-trip: a saved cart loads back with identical line IDs,
// quantities, and accessory selections.
//
// The store is a narrow side channel, not a source of truth: callers treat
// a nil cart (no snapshot, or one that failed to deserialize) as an empty
// cart, and save errors as non-fatal.
type SnapshotStore interface {
	// Load returns the stored cart, or nil when no usable snapshot exists.
	Load(ctx context.Context, cartID string) (*model.Cart, error)
	// Save overwrites the snapshot for the cart.
	Save(ctx context.Context, cartID string, cart *model.Cart) error
	// Delete removes the snapshot if present.
	Delete(ctx context.Context, cartID string) error
}
