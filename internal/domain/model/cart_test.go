package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floramar/flower-service/internal/domain/model"
)

func line(productID string, price float64, qty int, selections ...model.AccessorySelection) model.CartLine {
	return model.CartLine{
		LineID:     "line-" + productID,
		Product:    model.Product{ID: productID, Name: productID, Price: price},
		Quantity:   qty,
		Selections: selections,
	}
}

func TestCartLine_Subtotal(t *testing.T) {
	tests := []struct {
		name     string
		line     model.CartLine
		expected float64
	}{
		{
			name:     "no accessories",
			line:     line("p", 100, 3),
			expected: 300,
		},
		{
			name: "accessory cost scales with line quantity",
			line: line("p", 10, 2, model.AccessorySelection{
				Accessory: model.Accessory{ID: "a", Price: 5},
				Quantity:  3,
			}),
			// 10*2 + 5*3*2
			expected: 50,
		},
		{
			name: "multiple accessories",
			line: line("p", 100, 1,
				model.AccessorySelection{Accessory: model.Accessory{ID: "a", Price: 20}, Quantity: 1},
				model.AccessorySelection{Accessory: model.Accessory{ID: "b", Price: 30}, Quantity: 2},
			),
			expected: 180,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.line.Subtotal(), 1e-9)
		})
	}
}

func TestCart_Totals(t *testing.T) {
	cart := model.Cart{Lines: []model.CartLine{
		line("a", 100, 2),
		line("b", 50, 1, model.AccessorySelection{
			Accessory: model.Accessory{ID: "x", Price: 10},
			Quantity:  2,
		}),
	}}

	assert.InDelta(t, 270.0, cart.TotalPrice(), 1e-9)
	assert.Equal(t, 3, cart.TotalItems())
	assert.False(t, cart.IsEmpty())
	assert.True(t, model.Cart{}.IsEmpty())
}

func TestCart_Clone(t *testing.T) {
	original := model.Cart{Lines: []model.CartLine{
		line("a", 100, 1, model.AccessorySelection{
			Accessory: model.Accessory{ID: "x", Price: 10},
			Quantity:  1,
		}),
	}}

	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.Lines[0].Quantity = 99
	clone.Lines[0].Selections[0].Quantity = 99

	assert.Equal(t, 1, original.Lines[0].Quantity)
	assert.Equal(t, 1, original.Lines[0].Selections[0].Quantity)
}

func TestCart_CloneEmpty(t *testing.T) {
	clone := model.Cart{}.Clone()
	assert.NotNil(t, clone.Lines)
	assert.Empty(t, clone.Lines)
}
