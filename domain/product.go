package domain

// DefaultCurrency is used whenever the backend omits the currency of a price.
const DefaultCurrency = "FCFA"

// Product is always nested inside a message or a search result, never persisted on its own.
type Product struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Price       float64 `json:"price,omitempty"`
	Currency    string  `json:"currency,omitempty"`
	Description string  `json:"description,omitempty"`
	InStock     *bool   `json:"in_stock,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Category    string  `json:"category,omitempty"`
}

func (p Product) CurrencyOrDefault() string {
	if p.Currency == "" {
		return DefaultCurrency
	}
	return p.Currency
}

// Reaction is the transient like/dislike state of a product card.
// It is never persisted and is lost when the conversation is reloaded.
type Reaction string

const (
	ReactionNone    Reaction = ""
	ReactionLike    Reaction = "like"
	ReactionDislike Reaction = "dislike"
)
