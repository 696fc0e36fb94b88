package ui

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"smartshop/auth"
	"smartshop/contract"
	"smartshop/domain"
	"smartshop/errors"
	"smartshop/format"
	"smartshop/mocks"
	"smartshop/services"
	"smartshop/storage"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMemoryStore(t *testing.T) *storage.BadgerStore {
	t.Helper()
	store, err := storage.OpenInMemory(slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// runShop plays script against a shop backed by a mocked chat API and returns what was printed.
func runShop(t *testing.T, script string, expect func(api *mocks.MockIChatAPI)) string {
	t.Helper()
	api := mocks.NewMockIChatAPI(gomock.NewController(t))
	expect(api)
	log := slog.Default()
	chat := services.NewChatService(api, newMemoryStore(t), format.French, log)
	input := services.NewInputBar(strings.NewReader(script), chat.Busy, log)
	printer, out := newTestPrinter()

	err := NewShop(chat, input, printer, NewImageProbe(time.Second, log), time.Second, log).Run(context.Background())

	require.NoError(t, err)
	return out.String()
}

func TestShop_Run(t *testing.T) {
	t.Run("should send text and stop at /quit", func(t *testing.T) {
		req := require.New(t)

		out := runShop(t, "bonjour\n/quit\nencore\n", func(api *mocks.MockIChatAPI) {
			api.EXPECT().SendMessage(gomock.Any(), "bonjour", "").Return(contract.TextResponse{
				ResponseMeta: contract.ResponseMeta{Message: "Bienvenue !"},
			}, nil)
		})

		req.Contains(out, "🧑 bonjour")
		req.Contains(out, "🤖 Bienvenue !")
	})

	t.Run("should clear the cart only once confirmed", func(t *testing.T) {
		req := require.New(t)

		out := runShop(t, "/clear\nn\n/clear\noui\n", func(api *mocks.MockIChatAPI) {
			api.EXPECT().ClearCart(gomock.Any(), "").Return(nil).Times(1)
		})

		req.Equal(2, strings.Count(out, format.Messages(format.French).ClearCartAsk))
		req.Contains(out, format.Messages(format.French).EmptyCart)
	})

	t.Run("should bound /add to the last search results", func(t *testing.T) {
		req := require.New(t)
		polo := domain.Product{ID: "P1", Name: "Polo", Price: 8000}

		out := runShop(t, "/add 3\n/search polo\n/add 1\n/add 2\n", func(api *mocks.MockIChatAPI) {
			api.EXPECT().SearchProducts(gomock.Any(), "polo").Return([]domain.Product{polo}, nil)
			api.EXPECT().AddToCart(gomock.Any(), polo, "").Return(domain.Cart{{Name: "Polo", Price: 8000}}, nil).Times(1)
		})

		req.Contains(out, "no search result 3")
		req.Contains(out, "1. Polo")
		req.Contains(out, "• Polo")
		req.Contains(out, "no search result 2")
	})

	t.Run("should print the usage on /help", func(t *testing.T) {
		out := runShop(t, "/help\n", func(*mocks.MockIChatAPI) {})

		require.Contains(t, out, services.Usage)
	})
}

func TestAdminConsole_Logs_In_Again_After_Expiry(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	api := mocks.NewMockIAdminAPI(ctrl)
	log := slog.Default()
	session := auth.NewSession(newMemoryStore(t), auth.AdminKeys, log)
	admin := services.NewAdminService(api, session, log)
	login := contract.LoginResult{Token: "tok", User: domain.AdminUser{Email: "admin@shop.io", Role: "admin"}}
	refused := fmt.Errorf("%w: token expired", errors.ErrUnauthorized)

	// Given a token the backend stops accepting after the first dashboard
	gomock.InOrder(
		api.EXPECT().Login(gomock.Any(), "admin@shop.io", " pass ").Return(login, nil),
		api.EXPECT().Stats(gomock.Any(), "tok").Return(domain.DocumentStats{}, nil),
		api.EXPECT().Documents(gomock.Any(), "tok").Return(nil, domain.DocumentStats{}, nil),
		api.EXPECT().Stats(gomock.Any(), "tok").Return(domain.DocumentStats{}, refused),
		api.EXPECT().Login(gomock.Any(), "admin@shop.io", " pass ").Return(login, nil),
		api.EXPECT().Stats(gomock.Any(), "tok").Return(domain.DocumentStats{}, nil),
		api.EXPECT().Documents(gomock.Any(), "tok").Return(nil, domain.DocumentStats{}, nil),
	)
	script := " admin@shop.io \n pass \nrefresh\nadmin@shop.io\n pass \nquit\n"
	input := services.NewInputBar(strings.NewReader(script), nil, log)
	var out bytes.Buffer
	printer := NewPrinter(&out, false, format.Messages(format.French))

	// When the console runs the script
	err := NewAdminConsole(admin, input, printer, time.Second, log).Run(context.Background())

	// Then the expired session asks for credentials again and the console carries on
	req.NoError(err)
	req.Contains(out.String(), errors.ErrSessionExpired.Error())
	req.Contains(out.String(), "Session expired, please log in again")
	req.Equal(2, strings.Count(out.String(), "✅ Logged in"))
	req.Equal(auth.Authenticated, session.State())
}

func TestParseBudget(t *testing.T) {
	t.Run("should accept an amount and an on/off switch only", func(t *testing.T) {
		req := require.New(t)
		_, _, err := parseBudget([]string{"abc", "on"})
		req.ErrorIs(err, errors.ErrInvalidCommand)
		_, _, err = parseBudget([]string{"100"})
		req.ErrorIs(err, errors.ErrInvalidCommand)
		budget, autoSwitch, err := parseBudget([]string{"100", "off"})
		req.NoError(err)
		req.Equal(100.0, budget)
		req.False(autoSwitch)
	})
}
