package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/floramar/flower-service/internal/domain/model"
)

// ResolveSelections adjusts one accessory's quantity within a selection set
// and returns the new normalized set. A positive delta on an absent accessory
// appends it; a delta that drives the quantity to zero or below drops the
// entry. Negative quantities never survive. The empty result is the valid
// "no accessories" state.
func ResolveSelections(current []model.AccessorySelection, accessory model.Accessory, delta int) []model.AccessorySelection {
	result := make([]model.AccessorySelection, 0, len(current)+1)
	found := false

	for _, sel := range current {
		if sel.Accessory.ID == accessory.ID {
			found = true
			if q := sel.Quantity + delta; q > 0 {
				result = append(result, model.AccessorySelection{Accessory: sel.Accessory, Quantity: q})
			}
			continue
		}
		result = append(result, sel)
	}

	if !found && delta > 0 {
		result = append(result, model.AccessorySelection{Accessory: accessory, Quantity: delta})
	}

	return NormalizeSelections(result)
}

// NormalizeSelections merges duplicate accessory IDs by summing quantities
// and drops entries whose quantity ends up below 1. First-seen order is
// preserved.
func NormalizeSelections(selections []model.AccessorySelection) []model.AccessorySelection {
	if len(selections) == 0 {
		return []model.AccessorySelection{}
	}

	index := make(map[string]int, len(selections))
	merged := make([]model.AccessorySelection, 0, len(selections))
	for _, sel := range selections {
		if i, ok := index[sel.Accessory.ID]; ok {
			merged[i].Quantity += sel.Quantity
			continue
		}
		index[sel.Accessory.ID] = len(merged)
		merged = append(merged, sel)
	}

	result := merged[:0]
	for _, sel := range merged {
		if sel.Quantity > 0 {
			result = append(result, sel)
		}
	}
	return result
}

// SelectionKey returns the canonical configuration key for a selection set:
// (id, quantity) pairs sorted by accessory ID. Two selection sets describe
// the same configuration iff their keys are equal, regardless of insertion
// order. The input is expected to be normalized.
func SelectionKey(selections []model.AccessorySelection) string {
	if len(selections) == 0 {
		return ""
	}

	pairs := make([]string, len(selections))
	for i, sel := range selections {
		pairs[i] = sel.Accessory.ID + ":" + strconv.Itoa(sel.Quantity)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "|")
}
