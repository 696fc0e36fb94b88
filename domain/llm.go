package domain

import (
	"sort"
)

// ModelInfo describes one selectable LLM.
type ModelInfo struct {
	Name            string  `json:"name"`
	Provider        string  `json:"provider"`
	CostPer1MTokens float64 `json:"cost_per_1m_tokens"`
	Speed           string  `json:"speed"`
	Quality         string  `json:"quality"`
	Description     string  `json:"description"`
}

// ModelCatalogue maps a provider key to its models keyed by model id.
type ModelCatalogue map[string]map[string]ModelInfo

// Lookup returns the model registered under provider/model.
func (c ModelCatalogue) Lookup(provider, model string) (ModelInfo, bool) {
	models, ok := c[provider]
	if !ok {
		return ModelInfo{}, false
	}
	info, ok := models[model]
	return info, ok
}

// Providers returns the provider keys in lexical order.
func (c ModelCatalogue) Providers() []string {
	providers := make([]string, 0, len(c))
	for p := range c {
		providers = append(providers, p)
	}
	sort.Strings(providers)
	return providers
}

// ModelIDs returns the model ids of a provider in lexical order.
func (c ModelCatalogue) ModelIDs(provider string) []string {
	ids := make([]string, 0, len(c[provider]))
	for id := range c[provider] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type LLMConfig struct {
	CurrentProvider   string  `json:"current_provider"`
	CurrentModel      string  `json:"current_model"`
	AutoSwitchEnabled bool    `json:"auto_switch_enabled"`
	MonthlyBudget     float64 `json:"monthly_budget"`
	FallbackModel     string  `json:"fallback_model"`
}

type UsageSummary struct {
	TotalTokens   int64   `json:"total_tokens"`
	TotalCost     float64 `json:"total_cost"`
	RequestsCount int64   `json:"requests_count"`
}

// ConfigSnapshot is what the model console shows about the active model.
type ConfigSnapshot struct {
	Config           LLMConfig    `json:"config"`
	CurrentModelInfo *ModelInfo   `json:"current_model_info"`
	UsageSummary     UsageSummary `json:"usage_summary"`
}

type UsageBucket struct {
	Tokens   int64   `json:"tokens"`
	Cost     float64 `json:"cost"`
	Requests int64   `json:"requests"`
}

type UsageStats struct {
	TotalTokens   int64                  `json:"total_tokens"`
	TotalCost     float64                `json:"total_cost"`
	RequestsCount int64                  `json:"requests_count"`
	ByModel       map[string]UsageBucket `json:"by_model"`
	ByDate        map[string]UsageBucket `json:"by_date"`
	LastReset     string                 `json:"last_reset"`
}

type Budget struct {
	MonthlyLimit float64 `json:"monthly_limit"`
	Used         float64 `json:"used"`
	Remaining    float64 `json:"remaining"`
	PercentUsed  float64 `json:"percent_used"`
}

// BudgetLevel buckets the consumed budget the way the console colours its gauge.
type BudgetLevel int

const (
	BudgetHealthy BudgetLevel = iota
	BudgetWarning
	BudgetCritical
)

func (b Budget) Level() BudgetLevel {
	switch {
	case b.PercentUsed > 90:
		return BudgetCritical
	case b.PercentUsed > 70:
		return BudgetWarning
	default:
		return BudgetHealthy
	}
}

type Usage struct {
	Stats  UsageStats `json:"stats"`
	Budget Budget     `json:"budget"`
}
