package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// parsePrice reads a price sent either as a JSON number or as a numeric string
// ("15000", "15 000", "12,5"). Anything else is an unknown price, i.e. 0.
func parsePrice(raw json.RawMessage) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0
	}
	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return number
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0
	}
	text = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f':
			return -1
		case ',':
			return '.'
		}
		return r
	}, text)
	price, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return price
}

func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	var wire struct {
		plain
		Price json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*p = Product(wire.plain)
	p.Price = parsePrice(wire.Price)
	return nil
}

func (i *CartItem) UnmarshalJSON(data []byte) error {
	type plain CartItem
	var wire struct {
		plain
		Price json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*i = CartItem(wire.plain)
	i.Price = parsePrice(wire.Price)
	return nil
}
