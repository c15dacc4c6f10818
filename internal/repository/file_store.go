package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog/log"

	"github.com/floramar/flower-service/internal/domain/model"
)

// cartFileName restricts cart IDs to characters safe in a file name.
var cartFileName = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// FileStore persists one JSON snapshot file per cart under a data
// directory. It is the default backend: local, dependency-free, and
// resilient to corruption (an unreadable snapshot degrades to an empty
// cart).
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(cartID string) string {
	return filepath.Join(s.dir, cartFileName.ReplaceAllString(cartID, "_")+".json")
}

// Load reads and deserializes the cart snapshot. A missing or corrupt file
// yields a nil cart, never an error that would surface to the user.
func (s *FileStore) Load(_ context.Context, cartID string) (*model.Cart, error) {
	data, err := os.ReadFile(s.path(cartID))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var cart model.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		log.Warn().Err(err).Str("cart_id", cartID).Msg("Corrupt cart snapshot, discarding")
		return nil, nil
	}
	if cart.Lines == nil {
		cart.Lines = []model.CartLine{}
	}
	return &cart, nil
}

// Save serializes the full cart and overwrites the snapshot atomically.
func (s *FileStore) Save(_ context.Context, cartID string, cart *model.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	tmp := s.path(cartID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path(cartID)); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Delete removes the snapshot file if present.
func (s *FileStore) Delete(_ context.Context, cartID string) error {
	err := os.Remove(s.path(cartID))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
