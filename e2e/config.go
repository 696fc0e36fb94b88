package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ChatAPIURL       string `envconfig:"CHAT_API_URL"`
	AdminAPIURL      string `envconfig:"ADMIN_API_URL"`
	SuperAdminAPIURL string `envconfig:"SUPERADMIN_API_URL"`

	AdminEmail         string `envconfig:"E2E_ADMIN_EMAIL"`
	AdminPassword      string `envconfig:"E2E_ADMIN_PASSWORD"`
	SuperAdminEmail    string `envconfig:"E2E_SUPERADMIN_EMAIL"`
	SuperAdminPassword string `envconfig:"E2E_SUPERADMIN_PASSWORD"`

	// E2E_DEBUG_JSON dumps full request/response bodies
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
