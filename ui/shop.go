package ui

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"smartshop/domain"
	"smartshop/errors"
	"smartshop/render"
	"smartshop/services"
	"time"
)

// Shop is the storefront chat loop: one command in, the new messages out.
type Shop struct {
	chat    services.IChatService
	input   *services.InputBar
	printer *Printer
	probe   *ImageProbe
	timeout time.Duration
	log     *slog.Logger

	printed int
	results []domain.Product
}

func NewShop(chat services.IChatService, input *services.InputBar, printer *Printer, probe *ImageProbe, timeout time.Duration, log *slog.Logger) *Shop {
	return &Shop{chat: chat, input: input, printer: printer, probe: probe, timeout: timeout, log: log}
}

// Run restores the previous session and serves commands until /quit, EOF or ctx is done.
func (s *Shop) Run(ctx context.Context) error {
	s.chat.Restore()
	s.printNew(ctx)

	for {
		if ctx.Err() != nil {
			return nil
		}
		s.printer.Prompt("> ")
		cmd, err := s.input.Next()
		if stderrors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			s.printer.Error(err)
			continue
		}
		if cmd.Kind == services.CommandQuit {
			return nil
		}
		if err = s.handle(ctx, cmd); err != nil {
			s.log.Debug("Command failed", "kind", cmd.Kind, "error", err)
		}
	}
}

func (s *Shop) handle(ctx context.Context, cmd services.Command) error {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	switch cmd.Kind {
	case services.CommandText:
		_, err := s.chat.Send(callCtx, cmd.Text)
		s.printNew(ctx)
		return err
	case services.CommandContactAgent:
		_, err := s.chat.ContactAgent(callCtx)
		s.printNew(ctx)
		return err
	case services.CommandPhoto:
		if _, err := s.chat.SendPhoto(callCtx, cmd.Text); err != nil {
			s.printer.Error(err)
			return err
		}
		s.printNew(ctx)
	case services.CommandNewOrder:
		err := s.chat.NewOrder(callCtx)
		s.printed = 0
		s.results = nil
		s.printNew(ctx)
		return err
	case services.CommandCart:
		total, err := s.chat.RefreshCart(callCtx)
		if err != nil {
			s.log.Warn("Cart refresh failed, showing local cart", "error", err)
		}
		s.printer.PrintCart(s.chat.Cart(), total)
		return err
	case services.CommandClearCart:
		s.printer.Prompt(s.chat.Catalogue().ClearCartAsk + " [y/N] ")
		if !s.input.Confirm() {
			return nil
		}
		err := s.chat.ClearCart(callCtx)
		s.printer.PrintCart(s.chat.Cart(), 0)
		return err
	case services.CommandCheckout:
		s.printer.Success(s.chat.Checkout())
	case services.CommandRate:
		return s.rate(callCtx, cmd.Number)
	case services.CommandLike:
		return s.react(callCtx, domain.ReactionLike)
	case services.CommandDislike:
		return s.react(callCtx, domain.ReactionDislike)
	case services.CommandSearch:
		products, err := s.chat.SearchProducts(callCtx, cmd.Text)
		if err != nil {
			s.printer.Error(err)
			return err
		}
		s.results = products
		s.printer.PrintProducts(products)
	case services.CommandAdd:
		if cmd.Number > len(s.results) {
			err := fmt.Errorf("%w: no search result %d", errors.ErrInvalidCommand, cmd.Number)
			s.printer.Error(err)
			return err
		}
		if err := s.chat.AddToCart(callCtx, s.results[cmd.Number-1]); err != nil {
			s.printer.Error(err)
			return err
		}
		s.printer.PrintCart(s.chat.Cart(), 0)
	case services.CommandHelp:
		s.printer.Println(services.Usage)
	}
	return nil
}

// printNew draws the messages appended since the last call, probing their images first.
func (s *Shop) printNew(ctx context.Context) {
	views := s.chat.Views()
	if s.printed > len(views) {
		s.printed = 0
	}
	for _, view := range views[s.printed:] {
		s.probe.Probe(ctx, view)
		s.printer.PrintView(view)
	}
	s.printed = len(views)
}

// last returns the most recent view matching keep.
func (s *Shop) last(keep func(*render.MessageView) bool) (*render.MessageView, bool) {
	views := s.chat.Views()
	for i := len(views) - 1; i >= 0; i-- {
		if keep(views[i]) {
			return views[i], true
		}
	}
	return nil, false
}

func (s *Shop) rate(ctx context.Context, stars int) error {
	view, ok := s.last(func(v *render.MessageView) bool { return v.Message().Rateable() })
	if !ok {
		s.printer.Error(errors.ErrNotRateable)
		return errors.ErrNotRateable
	}
	if err := s.chat.Rate(ctx, view.Message().ID, stars); err != nil {
		s.printer.Error(err)
		return err
	}
	s.printer.PrintView(view)
	return nil
}

func (s *Shop) react(ctx context.Context, reaction domain.Reaction) error {
	view, ok := s.last(func(v *render.MessageView) bool {
		return !v.Message().IsUser() && len(v.Images()) > 0
	})
	if !ok {
		err := fmt.Errorf("%w: no product to react to", errors.ErrInvalidCommand)
		s.printer.Error(err)
		return err
	}
	if err := s.chat.React(ctx, view.Message().ID, reaction); err != nil {
		return err
	}
	s.printer.PrintView(view)
	return nil
}
