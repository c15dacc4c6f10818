package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floramar/flower-service/internal/domain/model"
	"github.com/floramar/flower-service/internal/service"
)

func accessory(id string, price float64) model.Accessory {
	return model.Accessory{ID: id, Name: id, Price: price}
}

func selection(id string, price float64, qty int) model.AccessorySelection {
	return model.AccessorySelection{Accessory: accessory(id, price), Quantity: qty}
}

func TestResolveSelections(t *testing.T) {
	teddy := accessory("peluche-oso", 350)
	chocolates := accessory("caja-bombones", 280)

	tests := []struct {
		name     string
		current  []model.AccessorySelection
		target   model.Accessory
		delta    int
		expected []model.AccessorySelection
	}{
		{
			name:     "positive delta on absent accessory appends it",
			current:  []model.AccessorySelection{},
			target:   teddy,
			delta:    1,
			expected: []model.AccessorySelection{{Accessory: teddy, Quantity: 1}},
		},
		{
			name:     "positive delta on present accessory increments it",
			current:  []model.AccessorySelection{{Accessory: teddy, Quantity: 1}},
			target:   teddy,
			delta:    2,
			expected: []model.AccessorySelection{{Accessory: teddy, Quantity: 3}},
		},
		{
			name:     "negative delta on absent accessory is a no-op",
			current:  []model.AccessorySelection{},
			target:   teddy,
			delta:    -1,
			expected: []model.AccessorySelection{},
		},
		{
			name:     "delta driving quantity to zero drops the entry",
			current:  []model.AccessorySelection{{Accessory: teddy, Quantity: 2}},
			target:   teddy,
			delta:    -2,
			expected: []model.AccessorySelection{},
		},
		{
			name:     "delta driving quantity below zero drops the entry",
			current:  []model.AccessorySelection{{Accessory: teddy, Quantity: 1}},
			target:   teddy,
			delta:    -5,
			expected: []model.AccessorySelection{},
		},
		{
			name: "other accessories are untouched",
			current: []model.AccessorySelection{
				{Accessory: teddy, Quantity: 1},
				{Accessory: chocolates, Quantity: 2},
			},
			target: teddy,
			delta:  -1,
			expected: []model.AccessorySelection{
				{Accessory: chocolates, Quantity: 2},
			},
		},
		{
			name:     "zero delta on present accessory keeps it",
			current:  []model.AccessorySelection{{Accessory: chocolates, Quantity: 2}},
			target:   chocolates,
			delta:    0,
			expected: []model.AccessorySelection{{Accessory: chocolates, Quantity: 2}},
		},
		{
			name:     "zero delta on absent accessory is a no-op",
			current:  []model.AccessorySelection{},
			target:   chocolates,
			delta:    0,
			expected: []model.AccessorySelection{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.ResolveSelections(tt.current, tt.target, tt.delta)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestResolveSelections_DoesNotMutateInput(t *testing.T) {
	teddy := accessory("peluche-oso", 350)
	current := []model.AccessorySelection{{Accessory: teddy, Quantity: 2}}

	_ = service.ResolveSelections(current, teddy, 3)

	assert.Equal(t, 2, current[0].Quantity)
}

func TestNormalizeSelections(t *testing.T) {
	tests := []struct {
		name     string
		input    []model.AccessorySelection
		expected []model.AccessorySelection
	}{
		{
			name:     "nil input yields empty set",
			input:    nil,
			expected: []model.AccessorySelection{},
		},
		{
			name: "duplicate IDs merge by summing quantities",
			input: []model.AccessorySelection{
				selection("a", 10, 1),
				selection("b", 20, 2),
				selection("a", 10, 3),
			},
			expected: []model.AccessorySelection{
				selection("a", 10, 4),
				selection("b", 20, 2),
			},
		},
		{
			name: "non-positive quantities are dropped",
			input: []model.AccessorySelection{
				selection("a", 10, 0),
				selection("b", 20, 2),
				selection("c", 30, -1),
			},
			expected: []model.AccessorySelection{
				selection("b", 20, 2),
			},
		},
		{
			name: "duplicates cancelling out drop the entry",
			input: []model.AccessorySelection{
				selection("a", 10, 2),
				selection("a", 10, -2),
				selection("b", 20, 1),
			},
			expected: []model.AccessorySelection{
				selection("b", 20, 1),
			},
		},
		{
			name: "first-seen order is preserved",
			input: []model.AccessorySelection{
				selection("c", 30, 1),
				selection("a", 10, 1),
				selection("b", 20, 1),
			},
			expected: []model.AccessorySelection{
				selection("c", 30, 1),
				selection("a", 10, 1),
				selection("b", 20, 1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.NormalizeSelections(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSelectionKey(t *testing.T) {
	tests := []struct {
		name     string
		input    []model.AccessorySelection
		expected string
	}{
		{
			name:     "empty set has empty key",
			input:    []model.AccessorySelection{},
			expected: "",
		},
		{
			name:     "single selection",
			input:    []model.AccessorySelection{selection("peluche-oso", 350, 2)},
			expected: "peluche-oso:2",
		},
		{
			name: "pairs are sorted by accessory ID",
			input: []model.AccessorySelection{
				selection("tarjeta", 50, 1),
				selection("bombones", 280, 3),
			},
			expected: "bombones:3|tarjeta:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.SelectionKey(tt.input))
		})
	}
}

func TestSelectionKey_OrderIndependent(t *testing.T) {
	a := []model.AccessorySelection{
		selection("x", 1, 1),
		selection("y", 2, 2),
	}
	b := []model.AccessorySelection{
		selection("y", 2, 2),
		selection("x", 1, 1),
	}

	assert.Equal(t, service.SelectionKey(a), service.SelectionKey(b))
}

func TestSelectionKey_QuantityMatters(t *testing.T) {
	a := []model.AccessorySelection{selection("x", 1, 1)}
	b := []model.AccessorySelection{selection("x", 1, 2)}

	assert.NotEqual(t, service.SelectionKey(a), service.SelectionKey(b))
}
