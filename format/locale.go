package format

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

type Locale string

const (
	French  Locale = "fr"
	English Locale = "en"
)

// ParseLocale maps a configured locale to a supported one, French by default.
func ParseLocale(value string) Locale {
	switch Locale(strings.ToLower(strings.TrimSpace(value))) {
	case English:
		return English
	default:
		return French
	}
}

// minDetectableRunes keeps very short inputs ("ok", "oui") on the fallback locale.
const minDetectableRunes = 12

// detectOptions restricts detection to the locales the catalogue carries,
// so a clear winner between them is never discarded as unreliable.
var detectOptions = whatlanggo.Options{
	Whitelist: map[whatlanggo.Lang]bool{
		whatlanggo.Fra: true,
		whatlanggo.Eng: true,
	},
}

// DetectLanguage guesses the shopper's language from what they typed.
func DetectLanguage(text string, fallback Locale) Locale {
	if len([]rune(strings.TrimSpace(text))) < minDetectableRunes {
		return fallback
	}
	info := whatlanggo.DetectWithOptions(text, detectOptions)
	switch info.Lang.Iso6391() {
	case string(French):
		return French
	case string(English):
		return English
	default:
		return fallback
	}
}

// Catalogue holds every user-visible string the client generates itself.
type Catalogue struct {
	Welcome      string
	NewSession   string
	NetworkError string
	DefaultReply string
	PhotoSent    string
	CheckoutDone string
	ClearCartAsk string
	RatingPrompt string
	RatingThanks string
	ImageError   string
	InStock      string
	OutOfStock   string
	Like         string
	Dislike      string
	EmptyCart    string
	CartTitle    string
	CartTotal    string
}

var catalogues = map[Locale]Catalogue{
	French: {
		Welcome:      "👋 Bonjour ! Je suis votre assistant SmartShop. Que recherchez-vous aujourd'hui ?",
		NewSession:   "👋 Nouvelle session ! Que puis-je vous proposer ?",
		NetworkError: "❌ Erreur: Vérifiez que le backend est lancé",
		DefaultReply: "Réponse reçue",
		PhotoSent:    "📷 Image envoyée",
		CheckoutDone: "🎉 Commande envoyée ! Merci pour votre achat.",
		ClearCartAsk: "Voulez-vous vraiment vider le panier ?",
		RatingPrompt: "⭐ Notez cette mise en relation",
		RatingThanks: "Merci pour votre retour ! 🙏",
		ImageError:   "❌ Impossible de charger l'image",
		InStock:      "✅ En stock",
		OutOfStock:   "❌ Rupture",
		Like:         "J'aime",
		Dislike:      "Pas pour moi",
		EmptyCart:    "Votre panier est vide",
		CartTitle:    "Mon panier",
		CartTotal:    "Total",
	},
	English: {
		Welcome:      "👋 Hello! I am your SmartShop assistant. What are you looking for today?",
		NewSession:   "👋 New session! What can I offer you?",
		NetworkError: "❌ Error: check that the backend is running",
		DefaultReply: "Response received",
		PhotoSent:    "📷 Image sent",
		CheckoutDone: "🎉 Order sent! Thank you for your purchase.",
		ClearCartAsk: "Do you really want to empty the cart?",
		RatingPrompt: "⭐ Rate this hand-over",
		RatingThanks: "Thanks for your feedback! 🙏",
		ImageError:   "❌ Unable to load the image",
		InStock:      "✅ In stock",
		OutOfStock:   "❌ Out of stock",
		Like:         "Like",
		Dislike:      "Not for me",
		EmptyCart:    "Your cart is empty",
		CartTitle:    "My cart",
		CartTotal:    "Total",
	},
}

// Messages returns the catalogue of locale, falling back to French.
func Messages(locale Locale) Catalogue {
	if c, ok := catalogues[locale]; ok {
		return c
	}
	return catalogues[French]
}
