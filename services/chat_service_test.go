package services

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"smartshop/contract"
	"smartshop/domain"
	"smartshop/errors"
	"smartshop/format"
	"smartshop/mocks"
	"smartshop/render"
	"smartshop/storage"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errOffline = stderrors.New("connection refused")

func newStore(t *testing.T) *storage.BadgerStore {
	t.Helper()
	store, err := storage.OpenInMemory(slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newChatService(t *testing.T) (*ChatService, *mocks.MockIChatAPI, *storage.BadgerStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockIChatAPI(ctrl)
	store := newStore(t)
	svc := NewChatService(api, store, format.French, logs.GetLoggerFromLevel(slog.LevelDebug))
	svc.Restore()
	return svc, api, store
}

func TestChatService_Restore(t *testing.T) {
	t.Run("should seed the welcome message", func(t *testing.T) {
		req := require.New(t)
		svc, _, store := newChatService(t)

		messages := svc.Messages()

		req.Len(messages, 1)
		req.Equal(domain.RoleAssistant, messages[0].Role)
		req.Equal(format.Messages(format.French).Welcome, messages[0].Content)
		req.Len(storage.Get(store, storage.KeyMessages, []domain.ChatMessage{}), 1)
		req.Empty(svc.Cart())
	})

	t.Run("should resume a stored conversation", func(t *testing.T) {
		req := require.New(t)
		store := newStore(t)
		req.True(storage.Set(store, storage.KeyMessages, []domain.ChatMessage{
			{ID: "1", Role: domain.RoleUser, Content: "un polo"},
			{ID: "2", Role: domain.RoleAssistant, Content: "Voici un polo"},
		}))
		req.True(storage.Set(store, storage.KeyCart, domain.Cart{{Name: "Polo", Price: 8000}}))
		svc := NewChatService(mocks.NewMockIChatAPI(gomock.NewController(t)), store, format.French, slog.Default())

		svc.Restore()

		req.Len(svc.Messages(), 2)
		req.Equal(int64(8000), svc.Cart().Total())
	})
}

func TestChatService_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("should replace the cart on cart_updated", func(t *testing.T) {
		req := require.New(t)
		svc, api, store := newChatService(t)
		api.EXPECT().SendMessage(ctx, "ajoute la chemise", "").Return(contract.CartUpdatedResponse{
			ResponseMeta: contract.ResponseMeta{Message: "ok", ConversationID: "c-1"},
			Cart:         domain.Cart{{Name: "Chemise", Price: 15000}},
		}, nil)

		reply, err := svc.Send(ctx, "ajoute la chemise")

		req.NoError(err)
		req.Equal("ok", reply.Content)
		messages := svc.Messages()
		req.Len(messages, 3)
		req.Equal(domain.RoleUser, messages[1].Role)
		req.Equal("ok", messages[2].Content)
		req.Equal(domain.Cart{{Name: "Chemise", Price: 15000}}, svc.Cart())
		req.Equal("c-1", svc.ConversationID())
		req.Equal(domain.Cart{{Name: "Chemise", Price: 15000}}, storage.Get(store, storage.KeyCart, domain.Cart{}))
		req.Len(storage.Get(store, storage.KeyMessages, []domain.ChatMessage{}), 3)
		req.False(svc.Busy())
	})

	t.Run("should keep the cart when cart_updated carries none", func(t *testing.T) {
		req := require.New(t)
		svc, api, _ := newChatService(t)
		api.EXPECT().AddToCart(ctx, gomock.Any(), "").Return(domain.Cart{{Name: "Polo", Price: 8000}}, nil)
		req.NoError(svc.AddToCart(ctx, domain.Product{ID: "P2", Name: "Polo", Price: 8000}))
		api.EXPECT().SendMessage(ctx, "et alors ?", "").Return(contract.CartUpdatedResponse{
			ResponseMeta: contract.ResponseMeta{Message: "rien"},
		}, nil)

		_, err := svc.Send(ctx, "et alors ?")

		req.NoError(err)
		req.Equal(domain.Cart{{Name: "Polo", Price: 8000}}, svc.Cart())
	})

	t.Run("should attach the product of a product_image", func(t *testing.T) {
		req := require.New(t)
		svc, api, _ := newChatService(t)
		product := domain.Product{ID: "P1", Name: "Chemise", Price: 15000, ImageURL: "https://cdn/c.png"}
		api.EXPECT().SendMessage(ctx, "montre", "").Return(contract.ProductImageResponse{
			ResponseMeta: contract.ResponseMeta{Message: "🖼️ Chemise"},
			Product:      &product,
		}, nil)

		reply, err := svc.Send(ctx, "montre")

		req.NoError(err)
		req.Equal(&product, reply.Product)
		req.Equal("https://cdn/c.png", reply.ImageURL)
	})

	t.Run("should fall back on a default reply for unknown types", func(t *testing.T) {
		req := require.New(t)
		svc, api, _ := newChatService(t)
		api.EXPECT().SendMessage(ctx, "salut", "").Return(contract.UnknownResponse{Type: "carousel"}, nil)

		reply, err := svc.Send(ctx, "salut")

		req.NoError(err)
		req.Equal("Réponse reçue", reply.Content)
	})

	t.Run("should keep the message of a product_image without product", func(t *testing.T) {
		req := require.New(t)
		svc, api, _ := newChatService(t)
		api.EXPECT().SendMessage(ctx, "montre", "").Return(contract.ProductImageResponse{
			ResponseMeta: contract.ResponseMeta{Message: "Voici la chemise", ConversationID: "c1"},
		}, nil)

		reply, err := svc.Send(ctx, "montre")

		req.NoError(err)
		req.Equal("Voici la chemise", reply.Content)
		req.Nil(reply.Product)
		req.Empty(reply.ImageURL)
		req.Equal("c1", svc.ConversationID())
	})

	t.Run("should not report an unreadable answer as a network error", func(t *testing.T) {
		req := require.New(t)
		svc, api, _ := newChatService(t)
		api.EXPECT().SendMessage(ctx, "ajoute", "").Return(
			contract.UnknownResponse{ResponseMeta: contract.ResponseMeta{Message: "Ajouté !", ConversationID: "c2"}},
			fmt.Errorf("%w: cart is not a list", errors.ErrInvalidResponse))

		reply, err := svc.Send(ctx, "ajoute")

		req.NoError(err)
		req.Equal("Ajouté !", reply.Content)
		req.NotEqual(format.Messages(format.French).NetworkError, reply.Content)
		req.Equal("c2", svc.ConversationID())
	})

	t.Run("should use the default reply when nothing of the answer is readable", func(t *testing.T) {
		req := require.New(t)
		svc, api, _ := newChatService(t)
		api.EXPECT().SendMessage(ctx, "ajoute", "").Return(nil, errors.ErrInvalidResponse)

		reply, err := svc.Send(ctx, "ajoute")

		req.NoError(err)
		req.Equal(format.Messages(format.French).DefaultReply, reply.Content)
		req.False(svc.Busy())
	})

	t.Run("should append an error message when the backend is down", func(t *testing.T) {
		req := require.New(t)
		svc, api, _ := newChatService(t)
		api.EXPECT().SendMessage(ctx, "bonjour", "").Return(nil, errOffline)

		reply, err := svc.Send(ctx, "bonjour")

		req.ErrorIs(err, errOffline)
		req.Equal("❌ Erreur: Vérifiez que le backend est lancé", reply.Content)
		req.Len(svc.Messages(), 3)
		req.False(svc.Busy())
	})

	t.Run("should ignore blank input", func(t *testing.T) {
		req := require.New(t)
		svc, _, _ := newChatService(t)

		_, err := svc.Send(ctx, "   ")

		req.ErrorIs(err, errors.ErrEmptyMessage)
		req.Len(svc.Messages(), 1)
	})

	t.Run("should refuse a second send while one is in flight", func(t *testing.T) {
		req := require.New(t)
		svc, api, _ := newChatService(t)
		entered := make(chan struct{})
		release := make(chan struct{})
		api.EXPECT().SendMessage(ctx, "premier", "").DoAndReturn(
			func(context.Context, string, string) (contract.ChatResponse, error) {
				close(entered)
				<-release
				return contract.TextResponse{ResponseMeta: contract.ResponseMeta{Message: "ok"}}, nil
			}).Times(1)

		done := make(chan error)
		go func() {
			_, err := svc.Send(ctx, "premier")
			done <- err
		}()
		<-entered

		req.True(svc.Busy())
		_, err := svc.Send(ctx, "second")
		req.ErrorIs(err, errors.ErrSendInFlight)

		close(release)
		req.NoError(<-done)
		req.Len(svc.Messages(), 3)
	})

	t.Run("should reuse the conversation id", func(t *testing.T) {
		req := require.New(t)
		svc, api, _ := newChatService(t)
		gomock.InOrder(
			api.EXPECT().SendMessage(ctx, "un", "").Return(contract.TextResponse{
				ResponseMeta: contract.ResponseMeta{Message: "a", ConversationID: "c-7"},
			}, nil),
			api.EXPECT().SendMessage(ctx, "deux", "c-7").Return(contract.TextResponse{
				ResponseMeta: contract.ResponseMeta{Message: "b"},
			}, nil),
		)

		_, err := svc.Send(ctx, "un")
		req.NoError(err)
		_, err = svc.Send(ctx, "deux")
		req.NoError(err)
		req.Equal("c-7", svc.ConversationID())
	})
}

func TestChatService_ContactAgent_And_Rate(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc, api, store := newChatService(t)
	api.EXPECT().SendMessage(ctx, ContactAgentRequest, "").Return(contract.ContactAgentResponse{
		ResponseMeta: contract.ResponseMeta{Message: "Connecting..."},
	}, nil)

	// Given a hand-over message
	reply, err := svc.ContactAgent(ctx)
	req.NoError(err)
	req.Equal(domain.MessageTypeContactAgent, reply.Type)
	req.False(reply.Rated)

	views := svc.Views()
	widget, ok := views[len(views)-1].Render()[2].(render.RatingWidget)
	req.True(ok)
	req.False(widget.Rated)

	// When the shopper gives four stars, twice
	api.EXPECT().SubmitRating(ctx, 4, reply.ID).Return(nil).Times(1)
	req.NoError(svc.Rate(ctx, reply.ID, 4))
	req.ErrorIs(svc.Rate(ctx, reply.ID, 5), errors.ErrAlreadyRated)

	// Then only the first one is sent and persisted
	stored := storage.Get(store, storage.KeyMessages, []domain.ChatMessage{})
	last := stored[len(stored)-1]
	req.True(last.Rated)
	req.Equal(4, last.Rating)
	widget = svc.Views()[len(views)-1].Render()[2].(render.RatingWidget)
	req.True(widget.Rated)
	req.Equal(4, widget.Rating)

	req.ErrorIs(svc.Rate(ctx, "missing", 3), errors.ErrMessageNotFound)
}

func TestChatService_Rate_Failure_Is_Not_Persisted(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc, api, store := newChatService(t)
	api.EXPECT().SendMessage(ctx, ContactAgentRequest, "").Return(contract.ContactAgentResponse{
		ResponseMeta: contract.ResponseMeta{Message: "Connecting..."},
	}, nil)
	reply, err := svc.ContactAgent(ctx)
	req.NoError(err)
	api.EXPECT().SubmitRating(ctx, 2, reply.ID).Return(errOffline)

	req.ErrorIs(svc.Rate(ctx, reply.ID, 2), errOffline)

	stored := storage.Get(store, storage.KeyMessages, []domain.ChatMessage{})
	req.False(stored[len(stored)-1].Rated)
}

func TestChatService_React(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc, api, _ := newChatService(t)
	api.EXPECT().SendMessage(ctx, "montre", "").Return(contract.ProductImageResponse{
		ResponseMeta: contract.ResponseMeta{Message: "Chemise"},
		Product:      &domain.Product{ID: "P1", Name: "Chemise", ImageURL: "https://cdn/c.png"},
	}, nil)
	reply, err := svc.Send(ctx, "montre")
	req.NoError(err)
	api.EXPECT().SendReaction(ctx, "P1", domain.ReactionLike).Return(nil)

	req.NoError(svc.React(ctx, reply.ID, domain.ReactionLike))

	card := svc.Views()[2].Render()[0].(render.ProductCard)
	req.Equal(domain.ReactionLike, card.Reaction)
}

func TestChatService_NewOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("should reset everything even when the backend fails", func(t *testing.T) {
		req := require.New(t)
		svc, api, store := newChatService(t)
		api.EXPECT().SendMessage(ctx, "ajoute", "").Return(contract.CartUpdatedResponse{
			ResponseMeta: contract.ResponseMeta{Message: "ok", ConversationID: "c-1"},
			Cart:         domain.Cart{{Name: "Chemise", Price: 15000}},
		}, nil)
		_, err := svc.Send(ctx, "ajoute")
		req.NoError(err)
		api.EXPECT().ResetConversation(ctx, "c-1").Return("", errOffline)

		err = svc.NewOrder(ctx)

		req.ErrorIs(err, errOffline)
		req.Empty(svc.Cart())
		req.Empty(svc.ConversationID())
		messages := svc.Messages()
		req.Len(messages, 1)
		req.Equal("👋 Nouvelle session ! Que puis-je vous proposer ?", messages[0].Content)
		req.Empty(storage.Get(store, storage.KeyCart, domain.Cart{{Name: "x"}}))
		req.Len(storage.Get(store, storage.KeyMessages, []domain.ChatMessage{}), 1)
	})

	t.Run("should adopt the new conversation id", func(t *testing.T) {
		req := require.New(t)
		svc, api, _ := newChatService(t)
		api.EXPECT().ResetConversation(ctx, "").Return("c-2", nil)

		req.NoError(svc.NewOrder(ctx))
		req.Equal("c-2", svc.ConversationID())
	})
}

func TestChatService_Cart(t *testing.T) {
	ctx := context.Background()

	t.Run("should empty the cart when clearing fails", func(t *testing.T) {
		req := require.New(t)
		svc, api, _ := newChatService(t)
		api.EXPECT().AddToCart(ctx, gomock.Any(), "").Return(domain.Cart{{Name: "Polo", Price: 8000}}, nil)
		req.NoError(svc.AddToCart(ctx, domain.Product{Name: "Polo"}))
		api.EXPECT().ClearCart(ctx, "").Return(errOffline)

		req.ErrorIs(svc.ClearCart(ctx), errOffline)
		req.Empty(svc.Cart())
	})

	t.Run("should empty the cart on checkout", func(t *testing.T) {
		req := require.New(t)
		svc, api, _ := newChatService(t)
		api.EXPECT().GetCart(ctx, "").Return(contract.CartSnapshot{
			Cart:  domain.Cart{{Name: "Polo", Price: 8000}, {Name: "Chemise", Price: 15000}},
			Total: 23000,
		}, nil)

		total, err := svc.RefreshCart(ctx)
		req.NoError(err)
		req.Equal(float64(23000), total)
		req.Equal(2, svc.Cart().Len())

		req.Equal("🎉 Commande envoyée ! Merci pour votre achat.", svc.Checkout())
		req.Empty(svc.Cart())
	})

	t.Run("should refuse an empty search", func(t *testing.T) {
		svc, _, _ := newChatService(t)

		_, err := svc.SearchProducts(ctx, " ")

		require.ErrorIs(t, err, errors.ErrEmptyQuery)
	})

	t.Run("should search products", func(t *testing.T) {
		req := require.New(t)
		svc, api, _ := newChatService(t)
		api.EXPECT().SearchProducts(ctx, "polo").Return([]domain.Product{{Name: "Polo"}}, nil)

		products, err := svc.SearchProducts(ctx, " polo ")

		req.NoError(err)
		req.Len(products, 1)
	})
}

func TestChatService_SendPhoto(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	png := filepath.Join(dir, "photo.txt")
	require.NoError(t, os.WriteFile(png, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0o600))
	text := filepath.Join(dir, "photo.png")
	require.NoError(t, os.WriteFile(text, []byte("just some text"), 0o600))

	t.Run("should record an image whatever its extension", func(t *testing.T) {
		req := require.New(t)
		svc, _, _ := newChatService(t)

		msg, err := svc.SendPhoto(ctx, png)

		req.NoError(err)
		req.Equal("📷 Image envoyée", msg.Content)
		req.Equal(domain.RoleUser, msg.Role)
		req.Len(svc.Messages(), 2)
	})

	t.Run("should refuse anything else", func(t *testing.T) {
		req := require.New(t)
		svc, _, _ := newChatService(t)

		_, err := svc.SendPhoto(ctx, text)

		req.ErrorIs(err, errors.ErrNotImage)
		req.Len(svc.Messages(), 1)
	})
}

func TestChatService_Unwritable_Store(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockIChatAPI(ctrl)
	store := mocks.NewMockIStore(ctrl)
	var logged bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logged, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// Given a store that can neither be read nor written
	store.EXPECT().Read(gomock.Any()).Return(nil, errors.ErrKeyNotFound).AnyTimes()
	store.EXPECT().Write(gomock.Any(), gomock.Any()).Return(stderrors.New("read-only file system")).AnyTimes()
	api.EXPECT().SendMessage(ctx, "bonjour", "").Return(contract.TextResponse{
		ResponseMeta: contract.ResponseMeta{Message: "Bonjour !"},
	}, nil)

	// When the conversation goes on
	svc := NewChatService(api, store, format.French, log)
	svc.Restore()
	reply, err := svc.Send(ctx, "bonjour")

	// Then it keeps working in memory and the lost writes are reported
	req.NoError(err)
	req.Equal("Bonjour !", reply.Content)
	req.Len(svc.Messages(), 3)
	req.Contains(logged.String(), "Messages not persisted")
}
