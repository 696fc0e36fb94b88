package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"smartshop/contract"
	"smartshop/domain"
	"smartshop/errors"
	"smartshop/format"
	"smartshop/render"
	"smartshop/storage"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
)

// ContactAgentRequest is the phrase the assistant backend understands as a hand-over request.
const ContactAgentRequest = "Je veux parler à un agent"

type IChatService interface {
	Restore()
	Send(ctx context.Context, text string) (domain.ChatMessage, error)
	SendPhoto(ctx context.Context, path string) (domain.ChatMessage, error)
	ContactAgent(ctx context.Context) (domain.ChatMessage, error)
	Rate(ctx context.Context, messageID string, rating int) error
	React(ctx context.Context, messageID string, reaction domain.Reaction) error
	NewOrder(ctx context.Context) error
	ClearCart(ctx context.Context) error
	Checkout() string
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
	AddToCart(ctx context.Context, product domain.Product) error
	RefreshCart(ctx context.Context) (float64, error)
	Messages() []domain.ChatMessage
	Cart() domain.Cart
	Views() []*render.MessageView
	Busy() bool
	Catalogue() format.Catalogue
}

// ChatService owns the visible conversation and the cart, and is the only
// component talking to the chat backend. Every committed change is written to the store.
type ChatService struct {
	api    contract.IChatAPI
	store  storage.IStore
	locale format.Locale
	log    *slog.Logger
	now    func() time.Time

	mu             sync.Mutex
	messages       []domain.ChatMessage
	cart           domain.Cart
	conversationID string
	loading        bool
	views          map[string]*render.MessageView
}

var _ IChatService = (*ChatService)(nil)

func NewChatService(api contract.IChatAPI, store storage.IStore, locale format.Locale, log *slog.Logger) *ChatService {
	return &ChatService{
		api:    api,
		store:  store,
		locale: locale,
		log:    log,
		now:    time.Now,
		views:  make(map[string]*render.MessageView),
	}
}

// Restore reloads the previous session, or seeds the welcome message.
func (s *ChatService) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = storage.Get(s.store, storage.KeyMessages, []domain.ChatMessage{})
	s.cart = storage.Get(s.store, storage.KeyCart, domain.Cart{})
	if len(s.messages) == 0 {
		s.messages = []domain.ChatMessage{s.assistantMessage(s.Catalogue().Welcome)}
		s.persistMessages()
	}
	s.log.Debug("Conversation restored", "messages", len(s.messages), "cart_items", s.cart.Len())
}

func (s *ChatService) Catalogue() format.Catalogue {
	return format.Messages(s.locale)
}

// Send appends the user message, asks the backend and appends its answer.
// A transport failure is reported both as the returned error and as an error message in the conversation.
func (s *ChatService) Send(ctx context.Context, text string) (domain.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return domain.ChatMessage{}, errors.ErrEmptyMessage
	}

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return domain.ChatMessage{}, errors.ErrSendInFlight
	}
	s.loading = true
	s.append(domain.ChatMessage{
		ID:        format.GenerateID(),
		Role:      domain.RoleUser,
		Content:   text,
		Timestamp: s.now(),
	})
	conversationID := s.conversationID
	s.mu.Unlock()

	resp, err := s.api.SendMessage(ctx, text, conversationID)

	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	messages := format.Messages(format.DetectLanguage(text, s.locale))
	switch {
	case err == nil:
	case stderrors.Is(err, errors.ErrInvalidResponse):
		// The backend answered; show what can be read of it instead of a network error.
		s.log.Warn("Unreadable chat response", "error", err)
		if resp == nil {
			resp = contract.UnknownResponse{}
		}
	default:
		s.log.Error("Error sending message", "error", err)
		reply := s.assistantMessage(messages.NetworkError)
		s.append(reply)
		return reply, fmt.Errorf("sending message: %w", err)
	}

	if id := resp.Meta().ConversationID; id != "" {
		s.conversationID = id
	}
	reply := s.dispatch(resp, messages)
	s.append(reply)
	return reply, nil
}

// dispatch turns a backend answer into the assistant message to show. Callers hold mu.
func (s *ChatService) dispatch(resp contract.ChatResponse, messages format.Catalogue) domain.ChatMessage {
	reply := s.assistantMessage(resp.Meta().Message)

	switch r := resp.(type) {
	case contract.TextResponse:
	case contract.ProductImageResponse:
		if r.Product != nil {
			product := *r.Product
			reply.Product = &product
			reply.ImageURL = product.ImageURL
		}
	case contract.CartUpdatedResponse:
		if r.Cart != nil {
			s.cart = r.Cart
			s.persistCart()
		}
	case contract.ContactAgentResponse:
		reply.Type = domain.MessageTypeContactAgent
		reply.Rated = false
		reply.Rating = 0
	default:
		s.log.Debug("Unknown response type", "type", resp.Kind())
		if reply.Content == "" {
			reply.Content = messages.DefaultReply
		}
	}
	return reply
}

// SendPhoto records that the shopper picked a picture. No upload endpoint exists yet.
func (s *ChatService) SendPhoto(_ context.Context, path string) (domain.ChatMessage, error) {
	if err := checkImage(path); err != nil {
		return domain.ChatMessage{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	msg := domain.ChatMessage{
		ID:        format.GenerateID(),
		Role:      domain.RoleUser,
		Content:   s.Catalogue().PhotoSent,
		Timestamp: s.now(),
	}
	s.append(msg)
	s.log.Info("Photo selected", "path", path)
	return msg, nil
}

func (s *ChatService) ContactAgent(ctx context.Context) (domain.ChatMessage, error) {
	return s.Send(ctx, ContactAgentRequest)
}

// Rate goes through the message view so the rating widget and the conversation agree.
func (s *ChatService) Rate(ctx context.Context, messageID string, rating int) error {
	view, err := s.view(messageID)
	if err != nil {
		return err
	}
	return view.Rate(ctx, rating)
}

func (s *ChatService) React(ctx context.Context, messageID string, reaction domain.Reaction) error {
	view, err := s.view(messageID)
	if err != nil {
		return err
	}
	view.React(ctx, reaction)
	return nil
}

// submitRating is the rating callback of every view.
// The rating is persisted only once the backend accepted it.
func (s *ChatService) submitRating(ctx context.Context, messageID string, rating int) error {
	if err := s.api.SubmitRating(ctx, rating, messageID); err != nil {
		s.log.Error("Error submitting rating", "message_id", messageID, "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, index, found := lo.FindIndexOf(s.messages, func(m domain.ChatMessage) bool {
		return m.ID == messageID
	})
	if !found {
		return errors.ErrMessageNotFound
	}
	s.messages[index] = s.messages[index].WithRating(rating)
	s.persistMessages()
	return nil
}

func (s *ChatService) submitReaction(ctx context.Context, productID string, reaction domain.Reaction) error {
	return s.api.SendReaction(ctx, productID, reaction)
}

// NewOrder starts a fresh conversation. The cart and the messages are reset whatever the backend says.
func (s *ChatService) NewOrder(ctx context.Context) error {
	s.mu.Lock()
	conversationID := s.conversationID
	s.mu.Unlock()

	newID, err := s.api.ResetConversation(ctx, conversationID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.log.Error("Error resetting conversation", "error", err)
		s.conversationID = ""
	} else if newID != "" {
		s.conversationID = newID
	}
	s.messages = []domain.ChatMessage{s.assistantMessage(s.Catalogue().NewSession)}
	s.views = make(map[string]*render.MessageView)
	s.cart = domain.Cart{}
	s.persistMessages()
	s.persistCart()
	return err
}

// ClearCart empties the cart locally even when the backend call fails.
func (s *ChatService) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	conversationID := s.conversationID
	s.mu.Unlock()

	err := s.api.ClearCart(ctx, conversationID)
	if err != nil {
		s.log.Error("Error clearing cart", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = domain.Cart{}
	s.persistCart()
	return err
}

// Checkout confirms the order and empties the cart. Nothing is sent to the backend.
func (s *ChatService) Checkout() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = domain.Cart{}
	s.persistCart()
	return s.Catalogue().CheckoutDone
}

func (s *ChatService) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.ErrEmptyQuery
	}
	return s.api.SearchProducts(ctx, query)
}

// AddToCart replaces the cart with the one the backend answers with.
func (s *ChatService) AddToCart(ctx context.Context, product domain.Product) error {
	s.mu.Lock()
	conversationID := s.conversationID
	s.mu.Unlock()

	cart, err := s.api.AddToCart(ctx, product, conversationID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = cart
	s.persistCart()
	return nil
}

// RefreshCart pulls the server side cart and returns the total the backend computed.
func (s *ChatService) RefreshCart(ctx context.Context) (float64, error) {
	s.mu.Lock()
	conversationID := s.conversationID
	s.mu.Unlock()

	snapshot, err := s.api.GetCart(ctx, conversationID)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = snapshot.Cart
	s.persistCart()
	return snapshot.Total, nil
}

func (s *ChatService) Messages() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ChatMessage(nil), s.messages...)
}

func (s *ChatService) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(domain.Cart(nil), s.cart...)
}

func (s *ChatService) ConversationID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversationID
}

func (s *ChatService) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Views returns one view per message, in order. A view outlives the calls so its
// loading, reaction and rating state survive redraws.
func (s *ChatService) Views() []*render.MessageView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Map(s.messages, func(m domain.ChatMessage, _ int) *render.MessageView {
		return s.viewOf(m)
	})
}

func (s *ChatService) view(messageID string) (*render.MessageView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, found := lo.Find(s.messages, func(m domain.ChatMessage) bool {
		return m.ID == messageID
	})
	if !found {
		return nil, errors.ErrMessageNotFound
	}
	return s.viewOf(msg), nil
}

// viewOf returns the cached view of msg. Callers hold mu.
func (s *ChatService) viewOf(msg domain.ChatMessage) *render.MessageView {
	if view, ok := s.views[msg.ID]; ok {
		return view
	}
	view := render.NewMessageView(msg, s.Catalogue(), render.Callbacks{
		Rate:  s.submitRating,
		React: s.submitReaction,
	}, s.log)
	s.views[msg.ID] = view
	return view
}

func (s *ChatService) assistantMessage(content string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        format.GenerateID(),
		Role:      domain.RoleAssistant,
		Content:   content,
		Timestamp: s.now(),
	}
}

// append adds msg and persists the list. Callers hold mu.
func (s *ChatService) append(msg domain.ChatMessage) {
	s.messages = append(s.messages, msg)
	s.persistMessages()
}

func (s *ChatService) persistMessages() {
	if !storage.Set(s.store, storage.KeyMessages, s.messages) {
		s.log.Warn("Messages not persisted")
	}
}

func (s *ChatService) persistCart() {
	if !storage.Set(s.store, storage.KeyCart, s.cart) {
		s.log.Warn("Cart not persisted")
	}
}
