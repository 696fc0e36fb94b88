package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"smartshop/auth"
	"smartshop/contract"
	"smartshop/domain"
	"smartshop/domain/mimetypes"
	"smartshop/errors"
	"strings"
	"sync"
)

// SearchTestTopK is how many chunks a test search asks for.
const SearchTestTopK = 5

type IAdminService interface {
	Restore() auth.State
	Login(ctx context.Context, email, password string) (domain.AdminUser, error)
	Logout()
	Session() *auth.Session
	Refresh(ctx context.Context) (AdminDashboard, error)
	UploadPDF(ctx context.Context, path string) (domain.UploadedDocument, error)
	DeleteDocument(ctx context.Context, documentID string) error
	SearchTest(ctx context.Context, query string) ([]domain.SearchHit, error)
	Dashboard() AdminDashboard
}

// AdminDashboard is what the document console shows after its last refresh.
type AdminDashboard struct {
	Documents []domain.Document
	Stats     domain.DocumentStats
}

type AdminService struct {
	api     contract.IAdminAPI
	session *auth.Session
	log     *slog.Logger

	mu        sync.Mutex
	dashboard AdminDashboard
}

var _ IAdminService = (*AdminService)(nil)

func NewAdminService(api contract.IAdminAPI, session *auth.Session, log *slog.Logger) *AdminService {
	return &AdminService{api: api, session: session, log: log}
}

func (s *AdminService) Restore() auth.State {
	return s.session.Restore()
}

func (s *AdminService) Session() *auth.Session {
	return s.session
}

func (s *AdminService) Login(ctx context.Context, email, password string) (domain.AdminUser, error) {
	if err := auth.ValidateCredentials(email, password); err != nil {
		return domain.AdminUser{}, err
	}
	result, err := s.api.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		s.log.Warn("Admin login failed", "email", email, "error", err)
		return domain.AdminUser{}, err
	}
	s.session.Login(result.Token, result.User)
	s.log.Info("Admin logged in", "email", result.User.Email, "role", result.User.Role)
	return result.User, nil
}

func (s *AdminService) Logout() {
	s.session.Logout()
	s.mu.Lock()
	s.dashboard = AdminDashboard{}
	s.mu.Unlock()
}

// Refresh reloads the stats, then the document list whose totals override them.
func (s *AdminService) Refresh(ctx context.Context) (AdminDashboard, error) {
	stats, err := withToken(s.session, func(token string) (domain.DocumentStats, error) {
		return s.api.Stats(ctx, token)
	})
	if err != nil {
		s.log.Error("Failed to load stats", "error", err)
		return s.Dashboard(), err
	}

	var documentStats domain.DocumentStats
	documents, err := withToken(s.session, func(token string) ([]domain.Document, error) {
		var docs []domain.Document
		var innerErr error
		docs, documentStats, innerErr = s.api.Documents(ctx, token)
		return docs, innerErr
	})
	if err != nil {
		s.log.Error("Failed to load documents", "error", err)
		return s.Dashboard(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboard = AdminDashboard{Documents: documents, Stats: stats.Merge(documentStats)}
	return s.dashboard, nil
}

func (s *AdminService) Dashboard() AdminDashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard
}

// UploadPDF sends a product catalogue PDF for ingestion and refreshes the dashboard.
// Files are recognised by content, not by extension.
func (s *AdminService) UploadPDF(ctx context.Context, path string) (domain.UploadedDocument, error) {
	detected, err := mimetypes.DetectFile(path)
	if err != nil {
		return domain.UploadedDocument{}, err
	}
	if _, ok := mimetypes.Matches(detected, mimetypes.ApplicationPDF); !ok {
		return domain.UploadedDocument{}, fmt.Errorf("%w: %s is %s", errors.ErrNotPDF, path, detected)
	}

	file, err := os.Open(path)
	if err != nil {
		return domain.UploadedDocument{}, err
	}
	defer func() { _ = file.Close() }()

	filename := filepath.Base(path)
	s.log.Info("📤 Uploading file...", "filename", filename)
	document, err := withToken(s.session, func(token string) (domain.UploadedDocument, error) {
		s.log.Info("📄 Extracting text...", "filename", filename)
		return s.api.UploadPDF(ctx, token, filename, file)
	})
	if err != nil {
		s.log.Error("Upload failed", "filename", filename, "error", err)
		return domain.UploadedDocument{}, err
	}
	s.log.Info("✅ Upload successful!", "filename", document.Filename,
		"chunks", document.Chunks, "vectors", document.VectorsUploaded)

	if _, err = s.Refresh(ctx); err != nil {
		return document, err
	}
	return document, nil
}

func (s *AdminService) DeleteDocument(ctx context.Context, documentID string) error {
	err := withTokenErr(s.session, func(token string) error {
		return s.api.DeleteDocument(ctx, token, documentID)
	})
	if err != nil {
		s.log.Error("Delete failed", "document_id", documentID, "error", err)
		return err
	}
	s.log.Info("Document deleted", "document_id", documentID)
	_, err = s.Refresh(ctx)
	return err
}

// SearchTest runs a query against the vector index. A blank query returns nothing and calls nothing.
func (s *AdminService) SearchTest(ctx context.Context, query string) ([]domain.SearchHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	return withToken(s.session, func(token string) ([]domain.SearchHit, error) {
		return s.api.SearchTest(ctx, token, query, SearchTestTopK)
	})
}
