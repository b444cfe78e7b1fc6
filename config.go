package client

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of the environment variables read by [LoadSettings],
// e.g. JOPLIN_HOST or JOPLIN_PAGE_SIZE.
const EnvPrefix = "JOPLIN_"

// LoadSettings builds a [Settings] from three layers, lowest priority first:
// [DefaultSettings], the YAML file at path (skipped when path is empty) and
// JOPLIN_* environment variables. The result is validated before it is
// returned.
func LoadSettings(path string) (Settings, error) {
	k := koanf.New(".")

	defaults := DefaultSettings()
	if err := k.Load(structs.Provider(&defaults, "koanf"), nil); err != nil {
		return Settings{}, fmt.Errorf("failed to load default settings: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Settings{}, fmt.Errorf("failed to load settings file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return Settings{}, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// envTransformFunc maps JOPLIN_PAGE_SIZE to page_size.
func envTransformFunc(key string) string {
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
}
