// Package ui draws the storefront and the consoles on a terminal.
// It reads the render tree and the dashboards; it never changes domain state itself.
package ui

import (
	"fmt"
	"io"
	"smartshop/domain"
	"smartshop/format"
	"smartshop/render"
	"strings"

	"github.com/gookit/color"
)

var (
	userStyle      = color.New(color.FgCyan)
	assistantStyle = color.New(color.FgMagenta)
	mutedStyle     = color.New(color.FgGray)
	errorStyle     = color.New(color.FgRed)
	successStyle   = color.New(color.FgGreen)
	titleStyle     = color.New(color.OpBold)
	selectedStyle  = color.New(color.BgGreen, color.FgBlack)
	warningColour  = color.RGB(255, 140, 0)
)

// markupReplacer maps the emphasis markup of a text bubble to ANSI sequences.
var markupReplacer = strings.NewReplacer(
	"<strong>", "\x1b[1m", "</strong>", "\x1b[22m",
	"<em>", "\x1b[3m", "</em>", "\x1b[23m",
	"<br/>", "\n",
)

var plainReplacer = strings.NewReplacer(
	"<strong>", "", "</strong>", "",
	"<em>", "", "</em>", "",
	"<br/>", "\n",
)

type Printer struct {
	out      io.Writer
	colours  bool
	messages format.Catalogue
}

func NewPrinter(out io.Writer, colours bool, messages format.Catalogue) *Printer {
	return &Printer{out: out, colours: colours, messages: messages}
}

func (p *Printer) paint(style color.Style, text string) string {
	if !p.colours {
		return text
	}
	return style.Render(text)
}

func (p *Printer) printf(layout string, args ...any) {
	_, _ = fmt.Fprintf(p.out, layout, args...)
}

func (p *Printer) Println(text string) {
	p.printf("%s\n", text)
}

func (p *Printer) Prompt(label string) {
	p.printf("%s", p.paint(titleStyle, label))
}

func (p *Printer) Error(err error) {
	p.printf("%s\n", p.paint(errorStyle, "❌ "+err.Error()))
}

func (p *Printer) Success(text string) {
	p.printf("%s\n", p.paint(successStyle, text))
}

func (p *Printer) Warning(text string) {
	if p.colours {
		text = warningColour.Sprint(text)
	}
	p.printf("%s\n", text)
}

// PrintView draws one message.
func (p *Printer) PrintView(view *render.MessageView) {
	for _, node := range view.Render() {
		p.printNode(node)
	}
	p.printf("\n")
}

func (p *Printer) printNode(node render.Node) {
	switch n := node.(type) {
	case render.TextBubble:
		p.printBubble(n)
	case render.ProductCard:
		p.printCard(n)
	case render.Gallery:
		for _, item := range n.Items {
			p.printNode(item)
		}
	case render.Picture:
		p.printPicture(n)
	case render.ImageError:
		p.printf("  %s\n", p.paint(errorStyle, n.Notice))
	case render.Timestamp:
		p.printf("  %s\n", p.paint(mutedStyle, n.Text))
	case render.RatingWidget:
		p.printRating(n)
	case render.QuickReplies:
		p.printf("  %s\n", p.paint(mutedStyle, "↪ "+strings.Join(n.Choices, "  ")))
	}
}

func (p *Printer) printBubble(bubble render.TextBubble) {
	text := plainReplacer.Replace(bubble.Markup)
	if p.colours {
		text = markupReplacer.Replace(bubble.Markup)
	}
	prefix, style := "🤖 ", assistantStyle
	if bubble.Role == domain.RoleUser {
		prefix, style = "🧑 ", userStyle
	}
	lines := strings.Split(text, "\n")
	p.printf("%s%s\n", p.paint(style, prefix), lines[0])
	for _, line := range lines[1:] {
		p.printf("   %s\n", line)
	}
}

func (p *Printer) printPicture(picture render.Picture) {
	if picture.Loading {
		p.printf("  ⏳ %s\n", p.paint(mutedStyle, picture.Image.URL))
		return
	}
	p.printf("  🖼  %s %s\n", picture.Image.Alt, p.paint(mutedStyle, picture.Image.URL))
}

func (p *Printer) printCard(card render.ProductCard) {
	p.printf("  ┌──────────────\n")
	p.printNode(card.Picture)
	if product := card.Product; product != nil {
		p.printf("  │ %s\n", p.paint(titleStyle, product.Name))
		if product.Price != 0 {
			p.printf("  │ %s\n", p.paint(assistantStyle, format.FormatPrice(product.Price, product.CurrencyOrDefault())))
		}
		if product.Description != "" {
			p.printf("  │ %s\n", product.Description)
		}
		if product.InStock != nil {
			if *product.InStock {
				p.printf("  │ %s\n", p.paint(successStyle, card.InStock))
			} else {
				p.printf("  │ %s\n", p.paint(errorStyle, card.OutOfStock))
			}
		}
	}
	like := "👍 " + card.LikeLabel
	dislike := "👎 " + card.DislikeLabel
	switch card.Reaction {
	case domain.ReactionLike:
		like = p.paint(selectedStyle, like)
	case domain.ReactionDislike:
		dislike = p.paint(selectedStyle, dislike)
	}
	p.printf("  │ [%s]  [%s]\n", like, dislike)
	p.printf("  └──────────────\n")
}

func (p *Printer) printRating(widget render.RatingWidget) {
	filled := min(max(widget.Rating, 0), widget.Stars)
	stars := strings.Repeat("★", filled) + strings.Repeat("☆", widget.Stars-filled)
	p.printf("  %s %s\n", widget.Prompt, stars)
	if widget.Rated {
		p.printf("  %s\n", p.paint(successStyle, widget.Thanks))
	} else {
		p.printf("  %s\n", p.paint(mutedStyle, "/rate 1-5"))
	}
}

// PrintCart draws the cart with its total. backendTotal is shown instead when known.
func (p *Printer) PrintCart(cart domain.Cart, backendTotal float64) {
	p.printf("%s (%d)\n", p.paint(titleStyle, "🛒 "+p.messages.CartTitle), cart.Len())
	if cart.Len() == 0 {
		p.printf("  %s\n", p.paint(mutedStyle, p.messages.EmptyCart))
		return
	}
	for _, item := range cart {
		p.printf("  • %-30s %s\n", item.Name, format.FormatPrice(item.Price, currencyOf(item)))
	}
	total := float64(cart.Total())
	if backendTotal != 0 {
		total = backendTotal
	}
	p.printf("  %s: %s\n", p.messages.CartTotal, p.paint(titleStyle, format.FormatPrice(total, currencyOf(cart[0]))))
}

func currencyOf(item domain.CartItem) string {
	if item.Currency == "" {
		return domain.DefaultCurrency
	}
	return item.Currency
}

// PrintProducts lists search results numbered from 1, for /add.
func (p *Printer) PrintProducts(products []domain.Product) {
	if len(products) == 0 {
		p.printf("  %s\n", p.paint(mutedStyle, "∅"))
		return
	}
	for i, product := range products {
		stock := ""
		if product.InStock != nil {
			stock = p.messages.InStock
			if !*product.InStock {
				stock = p.messages.OutOfStock
			}
		}
		p.printf("  %d. %s  %s  %s\n", i+1, p.paint(titleStyle, product.Name),
			format.FormatPrice(product.Price, product.CurrencyOrDefault()), stock)
	}
}
