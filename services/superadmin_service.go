package services

import (
	"context"
	"fmt"
	"log/slog"
	"smartshop/auth"
	"smartshop/contract"
	"smartshop/domain"
	"smartshop/errors"
	"strings"
	"sync"
)

type ISuperAdminService interface {
	Restore() auth.State
	Login(ctx context.Context, email, password string) error
	Logout()
	Session() *auth.Session
	Load(ctx context.Context) (ModelDashboard, error)
	SwitchModel(ctx context.Context, provider, model string) (string, error)
	ResetUsage(ctx context.Context) error
	UpdateConfig(ctx context.Context, monthlyBudget float64, autoSwitch bool) error
	Dashboard() ModelDashboard
}

// ModelDashboard is what the model console shows after its last load.
type ModelDashboard struct {
	Models   domain.ModelCatalogue
	Snapshot domain.ConfigSnapshot
	Usage    domain.Usage
}

type SuperAdminService struct {
	api     contract.ISuperAdminAPI
	session *auth.Session
	log     *slog.Logger

	mu        sync.Mutex
	dashboard ModelDashboard
}

var _ ISuperAdminService = (*SuperAdminService)(nil)

func NewSuperAdminService(api contract.ISuperAdminAPI, session *auth.Session, log *slog.Logger) *SuperAdminService {
	return &SuperAdminService{api: api, session: session, log: log}
}

func (s *SuperAdminService) Restore() auth.State {
	return s.session.Restore()
}

func (s *SuperAdminService) Session() *auth.Session {
	return s.session
}

func (s *SuperAdminService) Login(ctx context.Context, email, password string) error {
	if err := auth.ValidateCredentials(email, password); err != nil {
		return err
	}
	result, err := s.api.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		s.log.Warn("Super admin login failed", "email", email, "error", err)
		return err
	}
	s.session.Login(result.Token, result.User)
	s.log.Info("Super admin logged in", "email", email)
	return nil
}

func (s *SuperAdminService) Logout() {
	s.session.Logout()
	s.mu.Lock()
	s.dashboard = ModelDashboard{}
	s.mu.Unlock()
}

// Load fetches the catalogue, the active configuration and the usage, in that order.
func (s *SuperAdminService) Load(ctx context.Context) (ModelDashboard, error) {
	models, err := withToken(s.session, func(token string) (domain.ModelCatalogue, error) {
		return s.api.Models(ctx, token)
	})
	if err != nil {
		s.log.Error("Failed to load models", "error", err)
		return s.Dashboard(), err
	}
	snapshot, err := withToken(s.session, func(token string) (domain.ConfigSnapshot, error) {
		return s.api.Config(ctx, token)
	})
	if err != nil {
		s.log.Error("Failed to load config", "error", err)
		return s.Dashboard(), err
	}
	usage, err := withToken(s.session, func(token string) (domain.Usage, error) {
		return s.api.Usage(ctx, token)
	})
	if err != nil {
		s.log.Error("Failed to load usage", "error", err)
		return s.Dashboard(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboard = ModelDashboard{Models: models, Snapshot: snapshot, Usage: usage}
	return s.dashboard, nil
}

func (s *SuperAdminService) Dashboard() ModelDashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard
}

// SwitchModel activates a model of the loaded catalogue and reloads the dashboard.
func (s *SuperAdminService) SwitchModel(ctx context.Context, provider, model string) (string, error) {
	if _, ok := s.Dashboard().Models.Lookup(provider, model); !ok {
		return "", fmt.Errorf("%w: %s/%s", errors.ErrUnknownModel, provider, model)
	}
	message, err := withToken(s.session, func(token string) (string, error) {
		return s.api.SwitchModel(ctx, token, provider, model)
	})
	if err != nil {
		s.log.Error("Switch failed", "provider", provider, "model", model, "error", err)
		return "", err
	}
	s.log.Info("Model switched", "provider", provider, "model", model)
	_, err = s.Load(ctx)
	return message, err
}

func (s *SuperAdminService) ResetUsage(ctx context.Context) error {
	err := withTokenErr(s.session, func(token string) error {
		return s.api.ResetUsage(ctx, token)
	})
	if err != nil {
		s.log.Error("Reset failed", "error", err)
		return err
	}
	s.log.Info("Usage statistics reset")
	_, err = s.Load(ctx)
	return err
}

func (s *SuperAdminService) UpdateConfig(ctx context.Context, monthlyBudget float64, autoSwitch bool) error {
	_, err := withToken(s.session, func(token string) (domain.LLMConfig, error) {
		return s.api.UpdateConfig(ctx, token, monthlyBudget, autoSwitch)
	})
	if err != nil {
		s.log.Error("Update failed", "error", err)
		return err
	}
	s.log.Info("Configuration updated", "monthly_budget", monthlyBudget, "auto_switch", autoSwitch)
	_, err = s.Load(ctx)
	return err
}
