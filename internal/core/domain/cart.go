package domain

// CartItem pairs a product snapshot with a quantity. The snapshot is taken at
// add time; later catalog changes do not propagate into open carts.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the session-scoped list of cart items. It is never written to the
// catalog database; its lifetime is the shopping session. All mutations are
// applied by a single logical writer per session, so the operations need no
// internal locking.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add merges the product into the cart: when the product id already exists
// its quantity is incremented by qty, otherwise a new entry is appended.
// Quantities below 1 are treated as 1. No upper bound is enforced here;
// clamping happens in UpdateQuantity.
func (c *Cart) Add(product Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID {
			c.Items[i].Quantity += qty
			return
		}
	}
	c.Items = append(c.Items, CartItem{Product: product, Quantity: qty})
}

// UpdateQuantity sets the quantity for productID, clamped into
// [1, product stock]. The cap at stock runs first and the floor at 1 last,
// so a zero-stock snapshot still holds quantity 1. Absent ids are a no-op.
func (c *Cart) UpdateQuantity(productID string, qty int) {
	for i := range c.Items {
		if c.Items[i].Product.ID != productID {
			continue
		}
		if stock := c.Items[i].Product.Stock; qty > stock {
			qty = stock
		}
		if qty < 1 {
			qty = 1
		}
		c.Items[i].Quantity = qty
		return
	}
}

// Remove drops the entry for productID. Absent ids are a no-op.
func (c *Cart) Remove(productID string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Total returns the sum of price times quantity across all items.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// Count returns the number of distinct entries in the cart.
func (c *Cart) Count() int {
	return len(c.Items)
}
