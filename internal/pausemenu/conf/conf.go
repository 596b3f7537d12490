package conf

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sjzar/pausemenu/internal/errors"
	"github.com/sjzar/pausemenu/internal/inventory"
	"github.com/sjzar/pausemenu/pkg/config"
)

const (
	AppName      = "pausemenu"
	EnvPrefix    = "PAUSEMENU"
	EnvConfigDir = "PAUSEMENU_DIR"
)

type Config struct {
	ConfigDir string `mapstructure:"-" json:"config_dir"`

	// Launchers are process names never shown as a parent.
	Launchers []string `mapstructure:"launchers" json:"launchers"`

	// HideChildren is the initial state of the hide-children toggle.
	HideChildren bool `mapstructure:"hide_children" json:"hide_children"`
}

func Defaults() map[string]any {
	return map[string]any{
		"launchers":     inventory.DefaultLaunchers(),
		"hide_children": false,
	}
}

// Load reads pausemenu.json from configPath, $PAUSEMENU_DIR or
// ~/.pausemenu. The file is optional and never written back.
func Load(configPath string, overrides map[string]any) (*Config, *config.Manager, error) {
	if configPath == "" {
		configPath = os.Getenv(EnvConfigDir)
	}

	cm, err := config.New(AppName, configPath, "", EnvPrefix)
	if err != nil {
		log.Error().Err(err).Msg("load config failed")
		return nil, nil, errors.Config("failed to init config", err)
	}

	conf := &Config{}
	config.SetDefaults(cm.Viper, Defaults())

	for key, value := range overrides {
		cm.Viper.Set(key, value)
	}

	if err := cm.Load(conf); err != nil {
		log.Error().Err(err).Msg("load config failed")
		return nil, nil, errors.Config("failed to load config", err)
	}
	conf.ConfigDir = cm.Path

	if err := conf.Validate(); err != nil {
		return nil, nil, err
	}

	b, _ := json.Marshal(conf)
	log.Debug().Msgf("config: %s", string(b))

	return conf, cm, nil
}

func (c *Config) Validate() error {
	for i, name := range c.Launchers {
		name = strings.TrimSpace(name)
		if name == "" {
			return errors.ConfigInvalid("launchers", nil)
		}
		c.Launchers[i] = name
	}
	return nil
}
