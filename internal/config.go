package internal

import (
	"time"
)

// Config is shared by the storefront and both consoles. Each executable reads only what it needs.
type Config struct {
	ChatAPIURL       string        `env:"CHAT_API_URL,default=http://localhost:8000"`
	AdminAPIURL      string        `env:"ADMIN_API_URL,default=http://localhost:5003"`
	SuperAdminAPIURL string        `env:"SUPERADMIN_API_URL,default=http://localhost:5004"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT,default=30s"`
	BadgerFilepath   string        `env:"BADGER_FILEPATH,default=.smartshop"`
	LogLevel         string        `env:"LOG_LEVEL,default=WARN"`
	Locale           string        `env:"LOCALE,default=fr"`
	Colours          bool          `env:"COLOURS,default=true"`
}
