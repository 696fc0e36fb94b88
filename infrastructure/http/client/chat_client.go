package client

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"smartshop/contract"
	"smartshop/domain"
	"time"

	"github.com/samber/lo"
)

// ChatClient talks to the shopper-facing backend.
type ChatClient struct {
	transport *Transport
}

var _ contract.IChatAPI = (*ChatClient)(nil)

func NewChatClient(baseURL string, timeout time.Duration, log *slog.Logger, opts ...Option) *ChatClient {
	return &ChatClient{transport: NewTransport(baseURL, timeout, log, opts...)}
}

type chatRequest struct {
	Message        string  `json:"message"`
	ConversationID *string `json:"conversation_id"`
}

// SendMessage advances the conversation and decodes the typed answer.
func (c *ChatClient) SendMessage(ctx context.Context, message, conversationID string) (contract.ChatResponse, error) {
	var raw json.RawMessage
	err := c.transport.DoJSON(ctx, http.MethodPost, "/chat", nil, "",
		chatRequest{Message: message, ConversationID: lo.EmptyableToPtr(conversationID)}, &raw)
	if err != nil {
		return nil, err
	}
	return contract.DecodeChatResponse(raw)
}

func (c *ChatClient) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	var resp struct {
		Products []domain.Product `json:"products"`
	}
	err := c.transport.DoJSON(ctx, http.MethodGet, "/products/search", url.Values{"q": {query}}, "", nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *ChatClient) AddToCart(ctx context.Context, product domain.Product, conversationID string) (domain.Cart, error) {
	var resp struct {
		Cart domain.Cart `json:"cart"`
	}
	body := struct {
		Product        domain.Product `json:"product"`
		ConversationID *string        `json:"conversation_id"`
	}{product, lo.EmptyableToPtr(conversationID)}
	if err := c.transport.DoJSON(ctx, http.MethodPost, "/cart/add", nil, "", body, &resp); err != nil {
		return nil, err
	}
	return resp.Cart, nil
}

func (c *ChatClient) GetCart(ctx context.Context, conversationID string) (contract.CartSnapshot, error) {
	var snapshot contract.CartSnapshot
	err := c.transport.DoJSON(ctx, http.MethodGet, "/cart", conversationQuery(conversationID), "", nil, &snapshot)
	return snapshot, err
}

func (c *ChatClient) ClearCart(ctx context.Context, conversationID string) error {
	return c.transport.DoJSON(ctx, http.MethodDelete, "/cart", conversationQuery(conversationID), "", nil, nil)
}

// SubmitRating sends the star rating of the contact-agent message identified by messageID.
func (c *ChatClient) SubmitRating(ctx context.Context, rating int, messageID string) error {
	body := struct {
		Rating       int    `json:"rating"`
		MessageIndex string `json:"message_index"`
	}{rating, messageID}
	return c.transport.DoJSON(ctx, http.MethodPost, "/feedback", nil, "", body, nil)
}

func (c *ChatClient) SendReaction(ctx context.Context, productID string, reaction domain.Reaction) error {
	body := struct {
		ProductID string          `json:"product_id"`
		Reaction  domain.Reaction `json:"reaction"`
	}{productID, reaction}
	return c.transport.DoJSON(ctx, http.MethodPost, "/feedback", nil, "", body, nil)
}

// ResetConversation asks for a fresh conversation and returns its id (empty if none was given).
func (c *ChatClient) ResetConversation(ctx context.Context, conversationID string) (string, error) {
	var resp struct {
		ConversationID string `json:"conversation_id"`
	}
	body := struct {
		ConversationID *string `json:"conversation_id"`
	}{lo.EmptyableToPtr(conversationID)}
	if err := c.transport.DoJSON(ctx, http.MethodPost, "/conversation/reset", nil, "", body, &resp); err != nil {
		return "", err
	}
	return resp.ConversationID, nil
}

func conversationQuery(conversationID string) url.Values {
	if conversationID == "" {
		return nil
	}
	return url.Values{"conversation_id": {conversationID}}
}
