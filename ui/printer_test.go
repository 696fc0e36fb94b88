package ui

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"smartshop/domain"
	"smartshop/format"
	"smartshop/render"
	"smartshop/services"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var pngHead = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func newTestPrinter() (*Printer, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrinter(&out, false, format.Messages(format.French)), &out
}

func productView(imageURL string) *render.MessageView {
	inStock := true
	msg := domain.ChatMessage{
		ID: "1-abcdefghi", Role: domain.RoleAssistant, Content: "Et en **bleu** ?",
		Timestamp: time.Now(), ImageURL: imageURL,
		Product: &domain.Product{ID: "P1", Name: "Chemise", Price: 15000, InStock: &inStock},
	}
	return render.NewMessageView(msg, format.Messages(format.French), render.Callbacks{}, slog.Default())
}

func TestPrinter_PrintView(t *testing.T) {
	t.Run("should draw a product card", func(t *testing.T) {
		req := require.New(t)
		printer, out := newTestPrinter()
		view := productView("https://cdn/c.png")
		view.ImageLoaded()
		view.React(context.Background(), domain.ReactionLike)

		printer.PrintView(view)

		text := out.String()
		req.Contains(text, "🖼  Product https://cdn/c.png")
		req.Contains(text, "Chemise")
		req.Contains(text, "15\u202f000 FCFA")
		req.Contains(text, "✅ En stock")
		req.Contains(text, "👍 J'aime")
		req.Contains(text, "🤖 Et en bleu ?")
	})

	t.Run("should draw the notice of a broken image", func(t *testing.T) {
		req := require.New(t)
		printer, out := newTestPrinter()
		view := productView("https://cdn/missing.png")
		view.ImageFailed(0)

		printer.PrintView(view)

		req.Contains(out.String(), "❌ Impossible de charger l'image")
		req.NotContains(out.String(), "https://cdn/missing.png")
	})

	t.Run("should draw the rating widget", func(t *testing.T) {
		req := require.New(t)
		printer, out := newTestPrinter()
		msg := domain.ChatMessage{ID: "2", Role: domain.RoleAssistant, Content: "Connecting...",
			Type: domain.MessageTypeContactAgent, Rating: 4, Rated: true}
		view := render.NewMessageView(msg, format.Messages(format.French), render.Callbacks{}, slog.Default())

		printer.PrintView(view)

		req.Contains(out.String(), "★★★★☆")
		req.Contains(out.String(), "Merci pour votre retour")
	})

	t.Run("should draw a rating widget whose rating is out of range", func(t *testing.T) {
		req := require.New(t)
		printer, out := newTestPrinter()

		req.NotPanics(func() {
			printer.printRating(render.RatingWidget{Stars: 5, Rating: 9, Rated: true})
			printer.printRating(render.RatingWidget{Stars: 5, Rating: -1})
		})
		req.Contains(out.String(), "★★★★★")
		req.Contains(out.String(), "☆☆☆☆☆")
	})
}

func TestPrinter_PrintCart(t *testing.T) {
	req := require.New(t)
	printer, out := newTestPrinter()

	printer.PrintCart(domain.Cart{{Name: "Chemise", Price: 15000}, {Name: "Polo", Price: 8000.5}}, 0)

	req.Contains(out.String(), "Mon panier (2)")
	req.Contains(out.String(), "Total: 23\u202f000 FCFA")

	out.Reset()
	printer.PrintCart(domain.Cart{}, 0)
	req.Contains(out.String(), "Votre panier est vide")
}

func TestPrinter_PrintModelDashboard(t *testing.T) {
	req := require.New(t)
	printer, out := newTestPrinter()

	printer.PrintModelDashboard(services.ModelDashboard{
		Models: domain.ModelCatalogue{"groq": {"llama-3.1-8b-instant": {Name: "Llama 3.1 8B", CostPer1MTokens: 0.05}}},
		Snapshot: domain.ConfigSnapshot{
			Config: domain.LLMConfig{CurrentProvider: "groq", CurrentModel: "llama-3.1-8b-instant", MonthlyBudget: 100},
		},
		Usage: domain.Usage{
			Stats:  domain.UsageStats{TotalTokens: 1500, ByModel: map[string]domain.UsageBucket{"llama-3.1-8b-instant": {Tokens: 1500, Requests: 2}}},
			Budget: domain.Budget{MonthlyLimit: 100, Used: 95, Remaining: 5, PercentUsed: 95},
		},
	})

	text := out.String()
	req.Contains(text, "groq/llama-3.1-8b-instant")
	req.Contains(text, "●")
	req.Contains(text, "95.0%")
	req.Contains(text, "remaining $5.00")
}

func TestImageProbe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			_, _ = w.Write(pngHead)
		case "/page.png":
			_, _ = w.Write([]byte("<html><body>not found</body></html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	probe := NewImageProbe(time.Second, slog.Default())

	t.Run("should lift the spinner of a reachable image", func(t *testing.T) {
		view := productView(srv.URL + "/ok.png")

		probe.Probe(context.Background(), view)

		card := view.Render()[0].(render.ProductCard)
		require.Equal(t, render.Picture{Image: render.Image{URL: srv.URL + "/ok.png", Alt: render.ImageURLAlt}}, card.Picture)
	})

	for _, path := range []string{"/missing.png", "/page.png"} {
		t.Run("should flag "+path, func(t *testing.T) {
			view := productView(srv.URL + path)

			probe.Probe(context.Background(), view)

			card := view.Render()[0].(render.ProductCard)
			require.IsType(t, render.ImageError{}, card.Picture)
		})
	}
}
