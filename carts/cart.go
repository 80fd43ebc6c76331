package carts

// Cart mirrors the storefront session cart: a small list of product
// lines priced at the moment they were added. The authoritative stock
// and price checks happen at checkout, inside the sale transaction.
type Cart struct {
	Items []Item `json:"items"`
}

type Item struct {
	ProductID      uint   `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
	ImageURL       string `json:"image_url"`
}

func (c *Cart) Find(productID uint) *Item {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// Add merges the line into an existing one for the same product, or
// appends it.
func (c *Cart) Add(item Item) {
	if existing := c.Find(item.ProductID); existing != nil {
		existing.Quantity += item.Quantity
		return
	}
	c.Items = append(c.Items, item)
}

// SetQuantity updates a line; a quantity of zero or less removes it.
func (c *Cart) SetQuantity(productID uint, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	if existing := c.Find(productID); existing != nil {
		existing.Quantity = quantity
	}
}

func (c *Cart) Remove(productID uint) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) TotalCents() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.UnitPriceCents * int64(it.Quantity)
	}
	return total
}
