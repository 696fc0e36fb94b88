package services

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"smartshop/domain/mimetypes"
	"smartshop/errors"
	"strconv"
	"strings"
)

type CommandKind int

const (
	CommandText CommandKind = iota
	CommandPhoto
	CommandContactAgent
	CommandNewOrder
	CommandCart
	CommandClearCart
	CommandCheckout
	CommandRate
	CommandLike
	CommandDislike
	CommandSearch
	CommandAdd
	CommandHelp
	CommandQuit
)

// Command is one submission of the input bar.
type Command struct {
	Kind CommandKind
	// Text is the message, the search query or the photo path.
	Text string
	// Number is the star count of /rate or the 1-based result index of /add.
	Number int
}

// Usage lists the slash commands, one per line.
const Usage = `/new            start a new order
/cart           show the cart
/clear          empty the cart
/checkout       place the order
/agent          talk to a human agent
/photo <path>   send a picture
/rate <1-5>     rate the last agent hand-over
/like /dislike  react to the last product
/search <text>  search the catalogue
/add <n>        add the n-th search result to the cart
/help           show this help
/quit           leave`

// ParseCommand reads one trimmed, non-empty line.
func ParseCommand(line string) (Command, error) {
	if !strings.HasPrefix(line, "/") {
		return Command{Kind: CommandText, Text: line}, nil
	}
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "/new":
		return Command{Kind: CommandNewOrder}, nil
	case "/cart":
		return Command{Kind: CommandCart}, nil
	case "/clear":
		return Command{Kind: CommandClearCart}, nil
	case "/checkout":
		return Command{Kind: CommandCheckout}, nil
	case "/agent":
		return Command{Kind: CommandContactAgent}, nil
	case "/like":
		return Command{Kind: CommandLike}, nil
	case "/dislike":
		return Command{Kind: CommandDislike}, nil
	case "/help", "/?":
		return Command{Kind: CommandHelp}, nil
	case "/quit", "/exit":
		return Command{Kind: CommandQuit}, nil
	case "/search":
		if arg == "" {
			return Command{}, errors.ErrEmptyQuery
		}
		return Command{Kind: CommandSearch, Text: arg}, nil
	case "/photo":
		if arg == "" {
			return Command{}, fmt.Errorf("%w: /photo needs a path", errors.ErrInvalidCommand)
		}
		return Command{Kind: CommandPhoto, Text: arg}, nil
	case "/rate":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q", errors.ErrInvalidRating, arg)
		}
		return Command{Kind: CommandRate, Number: n}, nil
	case "/add":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return Command{}, fmt.Errorf("%w: /add needs a result number", errors.ErrInvalidCommand)
		}
		return Command{Kind: CommandAdd, Number: n}, nil
	default:
		return Command{}, fmt.Errorf("%w: %s", errors.ErrInvalidCommand, name)
	}
}

// InputBar turns lines typed by the shopper into commands.
// Submissions are refused while busy reports an outstanding send.
type InputBar struct {
	scanner *bufio.Scanner
	busy    func() bool
	log     *slog.Logger
}

func NewInputBar(r io.Reader, busy func() bool, log *slog.Logger) *InputBar {
	return &InputBar{scanner: bufio.NewScanner(r), busy: busy, log: log}
}

// Next blocks until a usable command is typed. It returns io.EOF once input is exhausted.
// A photo command is only returned for files that really are images.
func (b *InputBar) Next() (Command, error) {
	for b.scanner.Scan() {
		line := strings.TrimSpace(b.scanner.Text())
		if line == "" {
			continue
		}
		cmd, err := ParseCommand(line)
		if err != nil {
			return Command{}, err
		}
		if b.busy != nil && b.busy() && isSubmission(cmd.Kind) {
			b.log.Debug("Input ignored while sending", "line", line)
			return Command{}, errors.ErrSendInFlight
		}
		if cmd.Kind == CommandPhoto {
			if err = checkImage(cmd.Text); err != nil {
				return Command{}, err
			}
		}
		return cmd, nil
	}
	if err := b.scanner.Err(); err != nil {
		return Command{}, err
	}
	return Command{}, io.EOF
}

func isSubmission(kind CommandKind) bool {
	return kind == CommandText || kind == CommandPhoto || kind == CommandContactAgent
}

func checkImage(path string) error {
	detected, err := mimetypes.DetectFile(path)
	if err != nil {
		return err
	}
	if !mimetypes.IsImage(detected) {
		return fmt.Errorf("%w: %s is %s", errors.ErrNotImage, path, detected)
	}
	return nil
}

// Confirm reads one answer and reports whether it was a yes.
func (b *InputBar) Confirm() bool {
	if !b.scanner.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(b.scanner.Text())) {
	case "y", "yes", "o", "oui":
		return true
	default:
		return false
	}
}

// ReadLine returns the next line as typed, without its line ending.
// Passwords are read through it, so surrounding spaces are kept.
func (b *InputBar) ReadLine() (string, error) {
	if !b.scanner.Scan() {
		if err := b.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(b.scanner.Text(), "\r"), nil
}
