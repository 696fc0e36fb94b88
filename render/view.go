package render

import (
	"context"
	"log/slog"
	"smartshop/domain"
	"smartshop/errors"
	"smartshop/format"
	"sync"
)

// MaxStars is the top of the hand-over rating scale.
const MaxStars = 5

// RateFunc submits the star rating of a message.
type RateFunc func(ctx context.Context, messageID string, rating int) error

// ReactFunc submits a like or dislike on a product.
type ReactFunc func(ctx context.Context, productID string, reaction domain.Reaction) error

type Callbacks struct {
	Rate  RateFunc
	React ReactFunc
}

// MessageView renders one message and keeps the presentation state the user
// builds on top of it: image loading, the reaction and the rating.
type MessageView struct {
	msg       domain.ChatMessage
	images    []Image
	cleanText string
	messages  format.Catalogue
	callbacks Callbacks
	log       *slog.Logger

	mu       sync.Mutex
	loaded   bool
	failed   map[int]bool
	reaction domain.Reaction
	rating   int
	rated    bool
}

func NewMessageView(msg domain.ChatMessage, messages format.Catalogue, callbacks Callbacks, log *slog.Logger) *MessageView {
	images, cleanText := CollectImages(msg)
	return &MessageView{
		msg:       msg,
		images:    images,
		cleanText: cleanText,
		messages:  messages,
		callbacks: callbacks,
		log:       log,
		failed:    make(map[int]bool),
		rating:    min(max(msg.Rating, 0), MaxStars),
		rated:     msg.Rated,
	}
}

func (v *MessageView) Message() domain.ChatMessage {
	return v.msg
}

// Images returns the images the view will try to show, in display order.
func (v *MessageView) Images() []Image {
	if v.isCard() {
		return v.images[:1]
	}
	return v.images
}

func (v *MessageView) isCard() bool {
	return !v.msg.IsUser() && len(v.images) > 0
}

// Render builds the node list for the current state. It has no side effects.
func (v *MessageView) Render() []Node {
	v.mu.Lock()
	defer v.mu.Unlock()

	var nodes []Node
	if v.isCard() {
		nodes = append(nodes, v.productCard())
		if v.cleanText != "" {
			nodes = append(nodes, v.textBubble())
		}
	} else {
		if v.cleanText != "" {
			nodes = append(nodes, v.textBubble())
		}
		if len(v.images) > 0 {
			nodes = append(nodes, v.gallery())
		}
	}

	nodes = append(nodes, Timestamp{Role: v.msg.Role, Text: format.FormatTime(v.msg.Timestamp)})

	if v.msg.Rateable() {
		nodes = append(nodes, RatingWidget{
			Stars:  MaxStars,
			Rating: v.rating,
			Rated:  v.rated,
			Prompt: v.messages.RatingPrompt,
			Thanks: v.messages.RatingThanks,
		})
	}
	if !v.msg.IsUser() {
		if choices := format.DetectChoices(v.cleanText); len(choices) > 0 {
			nodes = append(nodes, QuickReplies{Choices: choices})
		}
	}
	return nodes
}

func (v *MessageView) textBubble() TextBubble {
	return TextBubble{Role: v.msg.Role, Markup: format.ParseMarkdown(v.cleanText)}
}

func (v *MessageView) picture(index int, loading bool) Node {
	image := v.images[index]
	if v.failed[index] {
		return ImageError{URL: image.URL, Notice: v.messages.ImageError}
	}
	return Picture{Image: image, Loading: loading}
}

func (v *MessageView) productCard() ProductCard {
	return ProductCard{
		Picture:      v.picture(0, !v.loaded),
		Product:      v.msg.Product,
		Reaction:     v.reaction,
		InStock:      v.messages.InStock,
		OutOfStock:   v.messages.OutOfStock,
		LikeLabel:    v.messages.Like,
		DislikeLabel: v.messages.Dislike,
	}
}

func (v *MessageView) gallery() Gallery {
	items := make([]Node, len(v.images))
	for i := range v.images {
		items[i] = v.picture(i, false)
	}
	return Gallery{Items: items}
}

// ImageLoaded lifts the spinner of the product card.
func (v *MessageView) ImageLoaded() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loaded = true
}

// ImageFailed swaps the image at index for an error notice. It is never retried.
func (v *MessageView) ImageFailed(index int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if index < 0 || index >= len(v.images) {
		return
	}
	v.log.Warn("Image failed to load", "url", v.images[index].URL)
	v.failed[index] = true
}

// React records the reaction and forwards it when the card shows a product with an id.
// A failed forward is logged; the local reaction stays.
func (v *MessageView) React(ctx context.Context, reaction domain.Reaction) {
	v.mu.Lock()
	v.reaction = reaction
	v.mu.Unlock()

	if v.msg.Product == nil || v.msg.Product.ID == "" || v.callbacks.React == nil {
		return
	}
	if err := v.callbacks.React(ctx, v.msg.Product.ID, reaction); err != nil {
		v.log.Warn("Feedback error", "product_id", v.msg.Product.ID, "error", err)
	}
}

func (v *MessageView) Reaction() domain.Reaction {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.reaction
}

// Rate freezes the rating at stars and submits it. Only the first valid call goes out.
func (v *MessageView) Rate(ctx context.Context, stars int) error {
	if !v.msg.Rateable() {
		return errors.ErrNotRateable
	}
	if stars < 1 || stars > MaxStars {
		return errors.ErrInvalidRating
	}

	v.mu.Lock()
	if v.rated {
		v.mu.Unlock()
		return errors.ErrAlreadyRated
	}
	v.rating = stars
	v.rated = true
	v.mu.Unlock()

	if v.callbacks.Rate == nil {
		return nil
	}
	return v.callbacks.Rate(ctx, v.msg.ID, stars)
}

func (v *MessageView) Rating() (int, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rating, v.rated
}
