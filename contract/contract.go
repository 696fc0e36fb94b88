//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"io"
	"smartshop/domain"
)

// IChatAPI is the shopper-facing backend.
type IChatAPI interface {
	SendMessage(ctx context.Context, message, conversationID string) (ChatResponse, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
	AddToCart(ctx context.Context, product domain.Product, conversationID string) (domain.Cart, error)
	GetCart(ctx context.Context, conversationID string) (CartSnapshot, error)
	ClearCart(ctx context.Context, conversationID string) error
	SubmitRating(ctx context.Context, rating int, messageID string) error
	SendReaction(ctx context.Context, productID string, reaction domain.Reaction) error
	ResetConversation(ctx context.Context, conversationID string) (string, error)
}

// IAdminAPI is the document and vector index console backend.
type IAdminAPI interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Documents(ctx context.Context, token string) ([]domain.Document, domain.DocumentStats, error)
	Stats(ctx context.Context, token string) (domain.DocumentStats, error)
	UploadPDF(ctx context.Context, token, filename string, content io.Reader) (domain.UploadedDocument, error)
	DeleteDocument(ctx context.Context, token, documentID string) error
	SearchTest(ctx context.Context, token, query string, topK int) ([]domain.SearchHit, error)
}

// ISuperAdminAPI is the LLM model and cost console backend.
type ISuperAdminAPI interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Models(ctx context.Context, token string) (domain.ModelCatalogue, error)
	Config(ctx context.Context, token string) (domain.ConfigSnapshot, error)
	Usage(ctx context.Context, token string) (domain.Usage, error)
	SwitchModel(ctx context.Context, token, provider, model string) (string, error)
	ResetUsage(ctx context.Context, token string) error
	UpdateConfig(ctx context.Context, token string, monthlyBudget float64, autoSwitch bool) (domain.LLMConfig, error)
}

type LoginResult struct {
	Token string           `json:"token"`
	User  domain.AdminUser `json:"user"`
}

type CartSnapshot struct {
	Cart  domain.Cart `json:"cart"`
	Total float64     `json:"total"`
}

// Envelope is the success flag and error text every console endpoint answers with.
type Envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}
