package client

import (
	"context"
	"net/http"
	"smartshop/domain"
	"smartshop/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSuperAdminClient(t *testing.T) {
	t.Run("models catalogue", func(t *testing.T) {
		req := require.New(t)
		srv, seen := fakeBackend(t, http.StatusOK, `{"success":true,"models":{
			"mistral":{"mistral-tiny":{"name":"Mistral Tiny","provider":"Mistral AI","cost_per_1m_tokens":0.14}},
			"groq":{"llama-3.1-8b-instant":{"name":"Llama 3.1 8B (Groq)","provider":"Groq","cost_per_1m_tokens":0.05}}}}`)
		c := NewSuperAdminClient(srv.URL, time.Second, testLogger())

		models, err := c.Models(context.Background(), "tok")

		req.NoError(err)
		req.Equal("/superadmin/models", seen.path)
		req.Equal("Bearer tok", seen.auth)
		info, ok := models.Lookup("mistral", "mistral-tiny")
		req.True(ok)
		req.Equal(0.14, info.CostPer1MTokens)
		req.Equal([]string{"groq", "mistral"}, models.Providers())
	})

	t.Run("config snapshot", func(t *testing.T) {
		req := require.New(t)
		srv, _ := fakeBackend(t, http.StatusOK, `{"success":true,
			"config":{"current_provider":"mistral","current_model":"mistral-small-latest","auto_switch_enabled":false,"monthly_budget":100.0},
			"current_model_info":{"name":"Mistral Small"},
			"usage_summary":{"total_tokens":1200,"total_cost":0.4,"requests_count":3}}`)
		c := NewSuperAdminClient(srv.URL, time.Second, testLogger())

		snapshot, err := c.Config(context.Background(), "tok")

		req.NoError(err)
		req.Equal("mistral-small-latest", snapshot.Config.CurrentModel)
		req.Equal("Mistral Small", snapshot.CurrentModelInfo.Name)
		req.Equal(int64(3), snapshot.UsageSummary.RequestsCount)
	})

	t.Run("usage with budget", func(t *testing.T) {
		req := require.New(t)
		srv, _ := fakeBackend(t, http.StatusOK, `{"success":true,
			"stats":{"total_tokens":5000,"total_cost":75.5,"requests_count":10,
				"by_model":{"mistral-small-latest":{"tokens":5000,"cost":75.5,"requests":10}},
				"by_date":{"2026-01-02":{"tokens":5000,"cost":75.5,"requests":10}},"last_reset":"2026-01-01T00:00:00"},
			"budget":{"monthly_limit":100,"used":75.5,"remaining":24.5,"percent_used":75.5}}`)
		c := NewSuperAdminClient(srv.URL, time.Second, testLogger())

		usage, err := c.Usage(context.Background(), "tok")

		req.NoError(err)
		req.Equal(int64(10), usage.Stats.ByModel["mistral-small-latest"].Requests)
		req.Equal(domain.BudgetWarning, usage.Budget.Level())
	})

	t.Run("switch model", func(t *testing.T) {
		req := require.New(t)
		srv, seen := fakeBackend(t, http.StatusOK, `{"success":true,"message":"Switched to Mistral Tiny","config":{}}`)
		c := NewSuperAdminClient(srv.URL, time.Second, testLogger())

		message, err := c.SwitchModel(context.Background(), "tok", "mistral", "mistral-tiny")

		req.NoError(err)
		req.Equal("mistral", seen.body["provider"])
		req.Equal("mistral-tiny", seen.body["model"])
		req.Equal("Switched to Mistral Tiny", message)
	})

	t.Run("unknown provider is reported verbatim", func(t *testing.T) {
		req := require.New(t)
		srv, _ := fakeBackend(t, http.StatusBadRequest, `{"error":"Provider inconnu: openai"}`)
		c := NewSuperAdminClient(srv.URL, time.Second, testLogger())

		_, err := c.SwitchModel(context.Background(), "tok", "openai", "gpt")

		req.ErrorIs(err, errors.ErrBackend)
		req.Contains(err.Error(), "Provider inconnu: openai")
	})

	t.Run("update config", func(t *testing.T) {
		req := require.New(t)
		srv, seen := fakeBackend(t, http.StatusOK, `{"success":true,"config":{"monthly_budget":250,"auto_switch_enabled":true}}`)
		c := NewSuperAdminClient(srv.URL, time.Second, testLogger())

		config, err := c.UpdateConfig(context.Background(), "tok", 250, true)

		req.NoError(err)
		req.Equal("/superadmin/config/update", seen.path)
		req.Equal(float64(250), seen.body["monthly_budget"])
		req.Equal(true, seen.body["auto_switch_enabled"])
		req.True(config.AutoSwitchEnabled)
	})

	t.Run("reset usage", func(t *testing.T) {
		req := require.New(t)
		srv, seen := fakeBackend(t, http.StatusOK, `{"success":true,"message":"Usage statistics reset"}`)
		c := NewSuperAdminClient(srv.URL, time.Second, testLogger())

		req.NoError(c.ResetUsage(context.Background(), "tok"))
		req.Equal(http.MethodPost, seen.method)
		req.Equal("/superadmin/usage/reset", seen.path)
	})
}
