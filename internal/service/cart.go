package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/floramar/flower-service/internal/domain/model"
	"github.com/floramar/flower-service/internal/metrics"
	"github.com/floramar/flower-service/internal/repository"
)

// CartStore defines the cart operations. All operations are total: unknown
// cart, line, or accessory IDs are silently ignored. The store is the only
// writer of cart state; callers always receive copies.
type CartStore interface {
	// AddLine adds one unit of the product with the given accessory bundle.
	// An existing line with the same configuration is merged instead.
	AddLine(ctx context.Context, cartID string, product model.Product, selections []model.AccessorySelection)
	// RemoveLine deletes the line with the given ID if present.
	RemoveLine(ctx context.Context, cartID, lineID string)
	// SetQuantity sets a line's quantity to an absolute value. A value of
	// zero or below removes the line.
	SetQuantity(ctx context.Context, cartID, lineID string, quantity int)
	// RemoveAccessory strips one accessory from every line of a product.
	// Lines are kept even when their selection set becomes empty.
	RemoveAccessory(ctx context.Context, cartID, productID, accessoryID string)
	// RemoveMostRecentLine decrements the most recently added line of a
	// product by one unit, removing the line when it reaches zero.
	RemoveMostRecentLine(ctx context.Context, cartID, productID string)
	// Clear empties the cart unconditionally.
	Clear(ctx context.Context, cartID string)
	// Cart returns a snapshot of the cart.
	Cart(ctx context.Context, cartID string) model.Cart
	// QuantityOf returns the summed quantity of a product across all lines.
	QuantityOf(ctx context.Context, cartID, productID string) int
	// TotalPrice returns the cart total.
	TotalPrice(ctx context.Context, cartID string) float64
	// TotalItems returns the summed line quantities.
	TotalItems(ctx context.Context, cartID string) int
}

// CartOption configures a CartService.
type CartOption func(*CartService)

// CartService implements CartStore. Live carts are kept in memory under a
// single lock and synced to the snapshot store after every mutation. The
// snapshot store is best-effort: load and save failures are logged and the
// in-memory cart stays authoritative for the session.
type CartService struct {
	mu          sync.Mutex
	carts       map[string]*model.Cart
	snapshots   repository.SnapshotStore
	saveTimeout time.Duration
}

// NewCartService creates a new CartService with the given options.
func NewCartService(opts ...CartOption) *CartService {
	s := &CartService{
		carts:       make(map[string]*model.Cart),
		saveTimeout: 3 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithSnapshotStore enables best-effort cart persistence.
func WithSnapshotStore(store repository.SnapshotStore) CartOption {
	return func(s *CartService) {
		s.snapshots = store
	}
}

// WithSaveTimeout sets the per-save deadline for the snapshot store.
func WithSaveTimeout(d time.Duration) CartOption {
	return func(s *CartService) {
		if d > 0 {
			s.saveTimeout = d
		}
	}
}

// cart returns the live cart for the given ID, restoring it from the
// snapshot store on first access. Must be called with the lock held.
func (s *CartService) cart(ctx context.Context, cartID string) *model.Cart {
	if c, ok := s.carts[cartID]; ok {
		return c
	}

	c := &model.Cart{Lines: []model.CartLine{}}
	if s.snapshots != nil {
		restored, err := s.snapshots.Load(ctx, cartID)
		if err != nil {
			log.Warn().Err(err).Str("cart_id", cartID).Msg("Cart snapshot load failed, starting empty")
		} else if restored != nil {
			c = restored
		}
	}

	s.carts[cartID] = c
	metrics.ActiveCarts.Set(float64(len(s.carts)))
	return c
}

// sync writes the cart snapshot after a mutation. Failures are swallowed.
// Must be called with the lock held.
func (s *CartService) sync(cartID string, c *model.Cart) {
	if s.snapshots == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
	defer cancel()

	if err := s.snapshots.Save(ctx, cartID, c); err != nil {
		metrics.SnapshotOperationsTotal.WithLabelValues("save", "error").Inc()
		log.Warn().Err(err).Str("cart_id", cartID).Msg("Cart snapshot save failed")
		return
	}
	metrics.SnapshotOperationsTotal.WithLabelValues("save", "ok").Inc()
}

// AddLine adds one unit of the product with the given accessory bundle.
func (s *CartService) AddLine(ctx context.Context, cartID string, product model.Product, selections []model.AccessorySelection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(ctx, cartID)
	normalized := NormalizeSelections(selections)
	key := SelectionKey(normalized)

	for i := range c.Lines {
		if c.Lines[i].Product.ID == product.ID && SelectionKey(c.Lines[i].Selections) == key {
			c.Lines[i].Quantity++
			metrics.CartOperationsTotal.WithLabelValues("add_line", "merged").Inc()
			s.sync(cartID, c)
			return
		}
	}

	c.Lines = append(c.Lines, model.CartLine{
		LineID:     uuid.New().String(),
		Product:    product,
		Quantity:   1,
		Selections: normalized,
	})
	metrics.CartOperationsTotal.WithLabelValues("add_line", "created").Inc()
	s.sync(cartID, c)
}

// RemoveLine deletes the line with the given ID if present.
func (s *CartService) RemoveLine(ctx context.Context, cartID, lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(ctx, cartID)
	for i := range c.Lines {
		if c.Lines[i].LineID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			metrics.CartOperationsTotal.WithLabelValues("remove_line", "removed").Inc()
			s.sync(cartID, c)
			return
		}
	}
}

// SetQuantity sets a line's quantity; zero or below removes the line.
func (s *CartService) SetQuantity(ctx context.Context, cartID, lineID string, quantity int) {
	if quantity <= 0 {
		s.RemoveLine(ctx, cartID, lineID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(ctx, cartID)
	for i := range c.Lines {
		if c.Lines[i].LineID == lineID {
			c.Lines[i].Quantity = quantity
			metrics.CartOperationsTotal.WithLabelValues("set_quantity", "updated").Inc()
			s.sync(cartID, c)
			return
		}
	}
}

// RemoveAccessory strips the accessory from every line of the product. The
// line itself always survives; an empty selection set is a valid
// configuration as long as the quantity is positive.
func (s *CartService) RemoveAccessory(ctx context.Context, cartID, productID, accessoryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(ctx, cartID)
	changed := false
	for i := range c.Lines {
		if c.Lines[i].Product.ID != productID {
			continue
		}
		for j := range c.Lines[i].Selections {
			if c.Lines[i].Selections[j].Accessory.ID == accessoryID {
				c.Lines[i].Selections = append(c.Lines[i].Selections[:j], c.Lines[i].Selections[j+1:]...)
				changed = true
				break
			}
		}
	}

	if changed {
		metrics.CartOperationsTotal.WithLabelValues("remove_accessory", "removed").Inc()
		s.sync(cartID, c)
	}
}

// RemoveMostRecentLine decrements the most recently inserted line of the
// product by one unit. The tie-break is insertion order: the last matching
// line in the sequence is the most recent.
func (s *CartService) RemoveMostRecentLine(ctx context.Context, cartID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(ctx, cartID)
	for i := len(c.Lines) - 1; i >= 0; i-- {
		if c.Lines[i].Product.ID != productID {
			continue
		}
		if c.Lines[i].Quantity > 1 {
			c.Lines[i].Quantity--
		} else {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}
		metrics.CartOperationsTotal.WithLabelValues("remove_most_recent", "removed").Inc()
		s.sync(cartID, c)
		return
	}
}

// Clear empties the cart unconditionally.
func (s *CartService) Clear(ctx context.Context, cartID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(ctx, cartID)
	c.Lines = []model.CartLine{}
	metrics.CartOperationsTotal.WithLabelValues("clear", "cleared").Inc()
	s.sync(cartID, c)
}

// Cart returns a deep copy of the cart.
func (s *CartService) Cart(ctx context.Context, cartID string) model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart(ctx, cartID).Clone()
}

// QuantityOf returns the summed quantity of a product across all lines.
func (s *CartService) QuantityOf(ctx context.Context, cartID, productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, line := range s.cart(ctx, cartID).Lines {
		if line.Product.ID == productID {
			count += line.Quantity
		}
	}
	return count
}

// TotalPrice returns the cart total.
func (s *CartService) TotalPrice(ctx context.Context, cartID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart(ctx, cartID).TotalPrice()
}

// TotalItems returns the summed line quantities.
func (s *CartService) TotalItems(ctx context.Context, cartID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart(ctx, cartID).TotalItems()
}
