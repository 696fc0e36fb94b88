// Package format holds the presentation helpers shared by the chat and admin surfaces.
package format

import (
	"fmt"
	"regexp"
	"smartshop/domain"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PriceUnavailable is shown in place of a zero or missing price.
const PriceUnavailable = "Prix non disponible"

// groupSeparator is the narrow no-break space used by fr-FR digit grouping.
const groupSeparator = '\u202f'

var validate = validator.New()

var (
	strongStars      = regexp.MustCompile(`\*\*(.*?)\*\*`)
	strongUnderscore = regexp.MustCompile(`__(.*?)__`)
	emStar           = regexp.MustCompile(`\*(.*?)\*`)
	emUnderscore     = regexp.MustCompile(`_(.*?)_`)
)

// FormatPrice renders a price the way the storefront shows it, e.g. "15 000 FCFA".
func FormatPrice(price float64, currency string) string {
	if price == 0 {
		return PriceUnavailable
	}
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return FormatNumber(price) + " " + currency
}

// FormatNumber groups thousands and keeps at most three decimals, fr-FR style.
func FormatNumber(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	raw := strconv.FormatFloat(value, 'f', 3, 64)
	integer, fraction, _ := strings.Cut(raw, ".")
	fraction = strings.TrimRight(fraction, "0")

	var b strings.Builder
	b.WriteString(sign)
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteRune(groupSeparator)
		}
		b.WriteRune(digit)
	}
	if fraction != "" {
		b.WriteByte(',')
		b.WriteString(fraction)
	}
	return b.String()
}

// FormatTime renders a timestamp as a 24h "HH:MM" in the local zone.
func FormatTime(t time.Time) string {
	return t.Local().Format("15:04")
}

// GenerateID returns "<unix millis>-<9 random alphanumerics>".
func GenerateID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}

// ParseMarkdown converts the emphasis subset used by the assistant to markup.
// Only bold, italic and line breaks are supported.
func ParseMarkdown(text string) string {
	if text == "" {
		return ""
	}
	text = strongStars.ReplaceAllString(text, "<strong>$1</strong>")
	text = strongUnderscore.ReplaceAllString(text, "<strong>$1</strong>")
	text = emStar.ReplaceAllString(text, "<em>$1</em>")
	text = emUnderscore.ReplaceAllString(text, "<em>$1</em>")
	return strings.ReplaceAll(text, "\n", "<br/>")
}

func IsValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
