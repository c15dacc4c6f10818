package model

// AccessorySelection attaches an accessory to a cart line with a quantity.
// A selection with quantity below 1 is never stored; it is dropped instead.
type AccessorySelection struct {
	Accessory Accessory `json:"accessory" bson:"accessory"`
	// Quantity is always >= 1 while the selection exists
	Quantity int `json:"quantity" bson:"quantity" example:"1"`
}

// CartLine is one orderable configuration: a product plus a specific
// accessory bundle, with its own quantity. The same product may appear in
// several lines when the accessory bundles differ.
//
// LineID is the line identity, distinct from Product.ID. The product and
// accessory data are snapshots taken at add time, so later catalog changes
// do not alter lines already in the cart.
type CartLine struct {
	// LineID is the unique, opaque line identifier
	LineID string `json:"line_id" bson:"line_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Product is the catalog item snapshot
	Product Product `json:"product" bson:"product"`
	// Quantity is the number of units of this configuration, always >= 1
	Quantity int `json:"quantity" bson:"quantity" example:"2"`
	// Selections is the accessory bundle, possibly empty
	Selections []AccessorySelection `json:"selections,omitempty" bson:"selections,omitempty"`
}

// Subtotal returns the price of this line: product price times quantity plus
// the accessory bundle cost, which scales with the line quantity (each unit
// of the line carries its own bundle instance).
func (l CartLine) Subtotal() float64 {
	total := l.Product.Price * float64(l.Quantity)
	for _, sel := range l.Selections {
		total += sel.Accessory.Price * float64(sel.Quantity) * float64(l.Quantity)
	}
	return total
}

// Cart is the ordered sequence of cart lines. Insertion order is preserved
// for display and for the most-recent-line tie-break; it carries no other
// meaning.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// TotalPrice returns the sum of all line subtotals.
func (c Cart) TotalPrice() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.Subtotal()
	}
	return total
}

// TotalItems returns the sum of line quantities. Accessories do not count
// as separate items.
func (c Cart) TotalItems() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clone returns a deep copy of the cart. Handlers and stores always work on
// copies; the live cart is only touched by the cart service.
func (c Cart) Clone() Cart {
	if len(c.Lines) == 0 {
		return Cart{Lines: []CartLine{}}
	}
	lines := make([]CartLine, len(c.Lines))
	for i, line := range c.Lines {
		lines[i] = line
		if len(line.Selections) > 0 {
			lines[i].Selections = make([]AccessorySelection, len(line.Selections))
			copy(lines[i].Selections, line.Selections)
		}
	}
	return Cart{Lines: lines}
}
