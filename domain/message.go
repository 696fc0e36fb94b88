// Package domain contains the core concepts of the storefront client.
// This file defines chat messages exchanged with the shopping assistant.
// Messages are immutable once created, except for their rating.
package domain

import (
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type MessageType string

// MessageTypeContactAgent marks the assistant message that hands the shopper over to a human agent.
const MessageTypeContactAgent MessageType = "CONTACT_AGENT"

// ChatMessage represents one entry of the visible conversation.
type ChatMessage struct {
	ID        string      `json:"id"`
	Role      Role        `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
	Product   *Product    `json:"product,omitempty"`
	ImageURL  string      `json:"image_url,omitempty"`
	Type      MessageType `json:"type,omitempty"`
	Rating    int         `json:"rating,omitempty"`
	Rated     bool        `json:"rated,omitempty"`
}

func (m ChatMessage) IsUser() bool {
	return m.Role == RoleUser
}

// Rateable reports whether the message carries the 1-5 star widget.
func (m ChatMessage) Rateable() bool {
	return m.Type == MessageTypeContactAgent && !m.IsUser()
}

// WithRating returns a copy of the message with its rating frozen.
func (m ChatMessage) WithRating(rating int) ChatMessage {
	m.Rating = rating
	m.Rated = true
	return m
}
