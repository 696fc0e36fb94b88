package render

import (
	"smartshop/domain"
)

// Node is one block of a rendered message.
type Node interface {
	node()
}

type TextBubble struct {
	Role domain.Role
	// Markup is the text with emphasis converted to <strong>, <em> and <br/>.
	Markup string
}

type Picture struct {
	Image   Image
	Loading bool
}

// ImageError stands in for an image that could not be fetched.
type ImageError struct {
	URL    string
	Notice string
}

// ProductCard is the assistant's product presentation: one image,
// the product block when a product is attached, and the like/dislike controls.
type ProductCard struct {
	// Picture is either a Picture or an ImageError.
	Picture      Node
	Product      *domain.Product
	Reaction     domain.Reaction
	InStock      string
	OutOfStock   string
	LikeLabel    string
	DislikeLabel string
}

// Gallery holds Picture or ImageError items, one per collected image.
type Gallery struct {
	Items []Node
}

type Timestamp struct {
	Role domain.Role
	Text string
}

type RatingWidget struct {
	Stars  int
	Rating int
	Rated  bool
	Prompt string
	Thanks string
}

type QuickReplies struct {
	Choices []string
}

func (TextBubble) node()   {}
func (Picture) node()      {}
func (ImageError) node()   {}
func (ProductCard) node()  {}
func (Gallery) node()      {}
func (Timestamp) node()    {}
func (RatingWidget) node() {}
func (QuickReplies) node() {}
