package client

import (
	"context"
	"log/slog"
	"net/http"
	"smartshop/contract"
	"smartshop/domain"
	"time"
)

// SuperAdminClient talks to the LLM model and cost backend.
type SuperAdminClient struct {
	transport *Transport
}

var _ contract.ISuperAdminAPI = (*SuperAdminClient)(nil)

func NewSuperAdminClient(baseURL string, timeout time.Duration, log *slog.Logger, opts ...Option) *SuperAdminClient {
	return &SuperAdminClient{transport: NewTransport(baseURL, timeout, log, opts...)}
}

func (c *SuperAdminClient) Login(ctx context.Context, email, password string) (contract.LoginResult, error) {
	var result contract.LoginResult
	err := c.transport.DoEnvelope(ctx, http.MethodPost, "/superadmin/login", "", credentials{email, password}, &result)
	return result, err
}

func (c *SuperAdminClient) Models(ctx context.Context, token string) (domain.ModelCatalogue, error) {
	var resp struct {
		Models domain.ModelCatalogue `json:"models"`
	}
	if err := c.transport.DoEnvelope(ctx, http.MethodGet, "/superadmin/models", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Models, nil
}

func (c *SuperAdminClient) Config(ctx context.Context, token string) (domain.ConfigSnapshot, error) {
	var snapshot domain.ConfigSnapshot
	err := c.transport.DoEnvelope(ctx, http.MethodGet, "/superadmin/config", token, nil, &snapshot)
	return snapshot, err
}

func (c *SuperAdminClient) Usage(ctx context.Context, token string) (domain.Usage, error) {
	var usage domain.Usage
	err := c.transport.DoEnvelope(ctx, http.MethodGet, "/superadmin/usage", token, nil, &usage)
	return usage, err
}

// SwitchModel activates provider/model and returns the backend confirmation text.
func (c *SuperAdminClient) SwitchModel(ctx context.Context, token, provider, model string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	body := struct {
		Provider string `json:"provider"`
		Model    string `json:"model"`
	}{provider, model}
	if err := c.transport.DoEnvelope(ctx, http.MethodPost, "/superadmin/switch-model", token, body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *SuperAdminClient) ResetUsage(ctx context.Context, token string) error {
	return c.transport.DoEnvelope(ctx, http.MethodPost, "/superadmin/usage/reset", token, nil, nil)
}

func (c *SuperAdminClient) UpdateConfig(ctx context.Context, token string, monthlyBudget float64, autoSwitch bool) (domain.LLMConfig, error) {
	var resp struct {
		Config domain.LLMConfig `json:"config"`
	}
	body := struct {
		MonthlyBudget     float64 `json:"monthly_budget"`
		AutoSwitchEnabled bool    `json:"auto_switch_enabled"`
	}{monthlyBudget, autoSwitch}
	if err := c.transport.DoEnvelope(ctx, http.MethodPost, "/superadmin/config/update", token, body, &resp); err != nil {
		return domain.LLMConfig{}, err
	}
	return resp.Config, nil
}
