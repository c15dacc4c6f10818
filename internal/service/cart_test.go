package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floramar/flower-service/internal/domain/model"
	"github.com/floramar/flower-service/internal/repository"
	"github.com/floramar/flower-service/internal/service"
)

func product(id string, price float64) model.Product {
	return model.Product{ID: id, Name: id, Price: price}
}

func TestCartService_AddLine_MergesEqualConfigurations(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCartService()
	roses := product("rosas-rojas", 1200)
	bundle := []model.AccessorySelection{selection("peluche-oso", 350, 1)}

	for i := 0; i < 3; i++ {
		svc.AddLine(ctx, "cart-1", roses, bundle)
	}

	cart := svc.Cart(ctx, "cart-1")
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.Equal(t, "rosas-rojas", cart.Lines[0].Product.ID)
}

func TestCartService_AddLine_MergesRegardlessOfSelectionOrder(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCartService()
	roses := product("rosas-rojas", 1200)

	svc.AddLine(ctx, "cart-1", roses, []model.AccessorySelection{
		selection("a", 10, 1),
		selection("b", 20, 2),
	})
	svc.AddLine(ctx, "cart-1", roses, []model.AccessorySelection{
		selection("b", 20, 2),
		selection("a", 10, 1),
	})

	cart := svc.Cart(ctx, "cart-1")
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestCartService_AddLine_DistinctConfigurationsStaySeparate(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCartService()
	roses := product("rosas-rojas", 1200)

	svc.AddLine(ctx, "cart-1", roses, nil)
	svc.AddLine(ctx, "cart-1", roses, []model.AccessorySelection{selection("peluche-oso", 350, 1)})
	svc.AddLine(ctx, "cart-1", roses, []model.AccessorySelection{selection("peluche-oso", 350, 2)})

	cart := svc.Cart(ctx, "cart-1")
	require.Len(t, cart.Lines, 3)
	for _, line := range cart.Lines {
		assert.Equal(t, 1, line.Quantity)
	}

	seen := make(map[string]bool)
	for _, line := range cart.Lines {
		assert.False(t, seen[line.LineID], "line IDs must be unique")
		seen[line.LineID] = true
	}
}

func TestCartService_RemoveLine(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCartService()

	svc.AddLine(ctx, "cart-1", product("a", 100), nil)
	svc.AddLine(ctx, "cart-1", product("b", 200), nil)

	cart := svc.Cart(ctx, "cart-1")
	require.Len(t, cart.Lines, 2)

	svc.RemoveLine(ctx, "cart-1", cart.Lines[0].LineID)

	cart = svc.Cart(ctx, "cart-1")
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "b", cart.Lines[0].Product.ID)

	// Unknown line IDs are ignored
	svc.RemoveLine(ctx, "cart-1", "no-such-line")
	assert.Len(t, svc.Cart(ctx, "cart-1").Lines, 1)
}

func TestCartService_SetQuantity(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		expectedLines int
		expectedQty   int
	}{
		{name: "positive value updates the line", quantity: 5, expectedLines: 1, expectedQty: 5},
		{name: "zero removes the line", quantity: 0, expectedLines: 0},
		{name: "negative removes the line", quantity: -3, expectedLines: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc := service.NewCartService()
			svc.AddLine(ctx, "cart-1", product("a", 100), nil)
			lineID := svc.Cart(ctx, "cart-1").Lines[0].LineID

			svc.SetQuantity(ctx, "cart-1", lineID, tt.quantity)

			cart := svc.Cart(ctx, "cart-1")
			require.Len(t, cart.Lines, tt.expectedLines)
			if tt.expectedLines > 0 {
				assert.Equal(t, tt.expectedQty, cart.Lines[0].Quantity)
			}
		})
	}
}

func TestCartService_RemoveAccessory_KeepsEmptiedLines(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCartService()
	roses := product("rosas-rojas", 1200)

	svc.AddLine(ctx, "cart-1", roses, []model.AccessorySelection{selection("peluche-oso", 350, 1)})
	svc.AddLine(ctx, "cart-1", roses, []model.AccessorySelection{
		selection("peluche-oso", 350, 2),
		selection("caja-bombones", 280, 1),
	})
	svc.AddLine(ctx, "cart-1", product("girasoles", 950), []model.AccessorySelection{selection("peluche-oso", 350, 1)})

	svc.RemoveAccessory(ctx, "cart-1", "rosas-rojas", "peluche-oso")

	cart := svc.Cart(ctx, "cart-1")
	require.Len(t, cart.Lines, 3)

	// First roses line lost its only accessory but survives with an empty set
	assert.Empty(t, cart.Lines[0].Selections)
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	// Second roses line keeps the other accessory
	require.Len(t, cart.Lines[1].Selections, 1)
	assert.Equal(t, "caja-bombones", cart.Lines[1].Selections[0].Accessory.ID)

	// The other product is untouched
	require.Len(t, cart.Lines[2].Selections, 1)
	assert.Equal(t, "peluche-oso", cart.Lines[2].Selections[0].Accessory.ID)
}

func TestCartService_RemoveMostRecentLine(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCartService()
	roses := product("rosas-rojas", 1200)

	svc.AddLine(ctx, "cart-1", roses, nil)
	svc.AddLine(ctx, "cart-1", roses, []model.AccessorySelection{selection("peluche-oso", 350, 1)})
	svc.AddLine(ctx, "cart-1", roses, []model.AccessorySelection{selection("peluche-oso", 350, 1)})

	// Two lines: plain (qty 1) and with teddy (qty 2). The teddy line is
	// the most recently inserted.
	cart := svc.Cart(ctx, "cart-1")
	require.Len(t, cart.Lines, 2)
	require.Equal(t, 2, cart.Lines[1].Quantity)

	svc.RemoveMostRecentLine(ctx, "cart-1", "rosas-rojas")
	cart = svc.Cart(ctx, "cart-1")
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 1, cart.Lines[1].Quantity)

	svc.RemoveMostRecentLine(ctx, "cart-1", "rosas-rojas")
	cart = svc.Cart(ctx, "cart-1")
	require.Len(t, cart.Lines, 1)
	assert.Empty(t, cart.Lines[0].Selections)

	svc.RemoveMostRecentLine(ctx, "cart-1", "rosas-rojas")
	assert.True(t, svc.Cart(ctx, "cart-1").IsEmpty())

	// No matching product left: a no-op
	svc.RemoveMostRecentLine(ctx, "cart-1", "rosas-rojas")
	assert.True(t, svc.Cart(ctx, "cart-1").IsEmpty())
}

func TestCartService_QuantityOf_AggregatesAcrossLines(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCartService()
	roses := product("rosas-rojas", 1200)

	svc.AddLine(ctx, "cart-1", roses, nil)
	svc.AddLine(ctx, "cart-1", roses, nil)
	svc.AddLine(ctx, "cart-1", roses, []model.AccessorySelection{selection("peluche-oso", 350, 1)})
	svc.AddLine(ctx, "cart-1", product("girasoles", 950), nil)

	assert.Equal(t, 3, svc.QuantityOf(ctx, "cart-1", "rosas-rojas"))
	assert.Equal(t, 1, svc.QuantityOf(ctx, "cart-1", "girasoles"))
	assert.Equal(t, 0, svc.QuantityOf(ctx, "cart-1", "no-such-product"))
	assert.Equal(t, 4, svc.TotalItems(ctx, "cart-1"))
}

func TestCartService_TotalPrice_AccessoryCostScalesWithLineQuantity(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCartService()

	// Product at 10 with an accessory at 5 selected three times, line
	// quantity two: 10*2 + 5*3*2 = 50.
	svc.AddLine(ctx, "cart-1", product("p", 10), []model.AccessorySelection{selection("a", 5, 3)})
	svc.AddLine(ctx, "cart-1", product("p", 10), []model.AccessorySelection{selection("a", 5, 3)})

	assert.InDelta(t, 50.0, svc.TotalPrice(ctx, "cart-1"), 1e-9)
}

func TestCartService_Clear(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCartService()

	svc.AddLine(ctx, "cart-1", product("a", 100), nil)
	svc.AddLine(ctx, "cart-1", product("b", 200), nil)
	svc.Clear(ctx, "cart-1")

	cart := svc.Cart(ctx, "cart-1")
	assert.True(t, cart.IsEmpty())
	assert.Zero(t, svc.TotalPrice(ctx, "cart-1"))
	assert.Zero(t, svc.TotalItems(ctx, "cart-1"))
}

func TestCartService_CartsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCartService()

	svc.AddLine(ctx, "cart-1", product("a", 100), nil)
	svc.AddLine(ctx, "cart-2", product("b", 200), nil)

	assert.Equal(t, "a", svc.Cart(ctx, "cart-1").Lines[0].Product.ID)
	assert.Equal(t, "b", svc.Cart(ctx, "cart-2").Lines[0].Product.ID)
}

func TestCartService_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCartService()
	svc.AddLine(ctx, "cart-1", product("a", 100), []model.AccessorySelection{selection("x", 5, 1)})

	cart := svc.Cart(ctx, "cart-1")
	cart.Lines[0].Quantity = 99
	cart.Lines[0].Selections[0].Quantity = 99

	fresh := svc.Cart(ctx, "cart-1")
	assert.Equal(t, 1, fresh.Lines[0].Quantity)
	assert.Equal(t, 1, fresh.Lines[0].Selections[0].Quantity)
}

func TestCartService_MixedScenarioTotal(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCartService()

	// A 100 product with a 20 accessory plus a plain 100 product:
	// (100 + 20) + 100 = 220 across two lines.
	svc.AddLine(ctx, "cart-1", product("p", 100), []model.AccessorySelection{selection("a", 20, 1)})
	svc.AddLine(ctx, "cart-1", product("p", 100), nil)

	cart := svc.Cart(ctx, "cart-1")
	require.Len(t, cart.Lines, 2)
	assert.InDelta(t, 220.0, svc.TotalPrice(ctx, "cart-1"), 1e-9)
	assert.Equal(t, 2, svc.TotalItems(ctx, "cart-1"))
	assert.Equal(t, 2, svc.QuantityOf(ctx, "cart-1", "p"))
}

func TestCartService_SnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)

	svc := service.NewCartService(service.WithSnapshotStore(store))
	svc.AddLine(ctx, "cart-1", product("rosas-rojas", 1200), []model.AccessorySelection{selection("peluche-oso", 350, 2)})
	svc.AddLine(ctx, "cart-1", product("girasoles", 950), nil)
	before := svc.Cart(ctx, "cart-1")

	// A fresh service over the same store restores the cart from disk.
	restored := service.NewCartService(service.WithSnapshotStore(store))
	after := restored.Cart(ctx, "cart-1")

	beforeJSON, err := json.Marshal(before)
	require.NoError(t, err)
	afterJSON, err := json.Marshal(after)
	require.NoError(t, err)
	assert.JSONEq(t, string(beforeJSON), string(afterJSON))
	assert.InDelta(t, before.TotalPrice(), after.TotalPrice(), 1e-9)
}

func TestCartService_SnapshotStoreFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCartService(service.WithSnapshotStore(failingStore{}))

	svc.AddLine(ctx, "cart-1", product("a", 100), nil)

	cart := svc.Cart(ctx, "cart-1")
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "a", cart.Lines[0].Product.ID)
}

type failingStore struct{}

func (failingStore) Load(context.Context, string) (*model.Cart, error) {
	return nil, assert.AnError
}

func (failingStore) Save(context.Context, string, *model.Cart) error {
	return assert.AnError
}

func (failingStore) Delete(context.Context, string) error {
	return assert.AnError
}
