package client

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"smartshop/contract"
	"smartshop/domain"
	"time"
)

// DocumentTypeCatalog is the only document type the console uploads.
const DocumentTypeCatalog = "product_catalog"

// AdminClient talks to the document and vector index backend.
type AdminClient struct {
	transport *Transport
}

var _ contract.IAdminAPI = (*AdminClient)(nil)

func NewAdminClient(baseURL string, timeout time.Duration, log *slog.Logger, opts ...Option) *AdminClient {
	return &AdminClient{transport: NewTransport(baseURL, timeout, log, opts...)}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *AdminClient) Login(ctx context.Context, email, password string) (contract.LoginResult, error) {
	var result contract.LoginResult
	err := c.transport.DoEnvelope(ctx, http.MethodPost, "/admin/login", "", credentials{email, password}, &result)
	return result, err
}

func (c *AdminClient) Documents(ctx context.Context, token string) ([]domain.Document, domain.DocumentStats, error) {
	var resp struct {
		Documents []domain.Document    `json:"documents"`
		Stats     domain.DocumentStats `json:"stats"`
	}
	if err := c.transport.DoEnvelope(ctx, http.MethodGet, "/admin/documents", token, nil, &resp); err != nil {
		return nil, domain.DocumentStats{}, err
	}
	return resp.Documents, resp.Stats, nil
}

func (c *AdminClient) Stats(ctx context.Context, token string) (domain.DocumentStats, error) {
	var resp struct {
		Stats domain.DocumentStats `json:"stats"`
	}
	err := c.transport.DoEnvelope(ctx, http.MethodGet, "/admin/stats", token, nil, &resp)
	return resp.Stats, err
}

// UploadPDF streams the file to the ingestion endpoint, tagged as a product catalogue.
func (c *AdminClient) UploadPDF(ctx context.Context, token, filename string, content io.Reader) (domain.UploadedDocument, error) {
	var resp struct {
		Document domain.UploadedDocument `json:"document"`
	}
	err := c.transport.DoMultipart(ctx, "/admin/upload-pdf", token,
		Part{Field: "file", Filename: filename, Content: content},
		map[string]string{"document_type": DocumentTypeCatalog},
		&resp)
	return resp.Document, err
}

func (c *AdminClient) DeleteDocument(ctx context.Context, token, documentID string) error {
	return c.transport.DoEnvelope(ctx, http.MethodDelete, "/admin/document/"+url.PathEscape(documentID), token, nil, nil)
}

func (c *AdminClient) SearchTest(ctx context.Context, token, query string, topK int) ([]domain.SearchHit, error) {
	var resp struct {
		Results []domain.SearchHit `json:"results"`
	}
	body := struct {
		Query string `json:"query"`
		TopK  int    `json:"top_k"`
	}{query, topK}
	if err := c.transport.DoEnvelope(ctx, http.MethodPost, "/admin/search-test", token, body, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}
