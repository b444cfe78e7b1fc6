package client

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Settings holds the connection parameters for the Joplin Data API. A Settings
// value is treated as immutable once handed to [NewAPIClient] or [New].
type Settings struct {
	Protocol       string `koanf:"protocol"         validate:"required,oneof=http:// https://"`
	Host           string `koanf:"host"             validate:"required"`
	Port           int    `koanf:"port"             validate:"min=1,max=65535"`
	PageSize       int    `koanf:"page_size"        validate:"min=1,max=100"`
	PingRoute      string `koanf:"ping_route"       validate:"required"`
	AuthInitRoute  string `koanf:"auth_init_route"  validate:"required"`
	AuthCheckRoute string `koanf:"auth_check_route" validate:"required"`
	SearchRoute    string `koanf:"search_route"     validate:"required"`
}

// DefaultSettings returns the settings documented by Joplin for a local
// desktop installation.
func DefaultSettings() Settings {
	return Settings{
		Protocol:       "http://",
		Host:           "localhost",
		Port:           41184,
		PageSize:       100,
		PingRoute:      "ping",
		AuthInitRoute:  "auth",
		AuthCheckRoute: "auth/check",
		SearchRoute:    "search",
	}
}

// BaseURL returns protocol + host + ":" + port.
func (s Settings) BaseURL() string {
	return s.Protocol + s.Host + ":" + strconv.Itoa(s.Port)
}

// Validate checks the settings against their struct tags.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	return nil
}
