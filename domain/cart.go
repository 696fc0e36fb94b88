package domain

// CartItem is appended by backend-driven cart updates.
type CartItem struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency,omitempty"`
	InStock  *bool   `json:"in_stock,omitempty"`
}

// Cart is replaced wholesale, never merged.
type Cart []CartItem

func (c Cart) Len() int {
	return len(c)
}

// Total sums the integer part of every price, the way the cart sidebar shows it.
func (c Cart) Total() int64 {
	var total int64
	for _, item := range c {
		total += int64(item.Price)
	}
	return total
}
