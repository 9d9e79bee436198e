package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/htmlify/pkg/errors"
	"github.com/arthur-debert/htmlify/pkg/logging"
)

const (
	// EnvPrefix starts every environment variable read as configuration
	EnvPrefix = "HTMLIFY_"

	// ConfigFileName is the config file looked up in the XDG config dir
	ConfigFileName = "htmlify.toml"

	// LocalConfigFileName is the config file looked up in the working dir
	LocalConfigFileName = ".htmlify.toml"
)

// LoadOptions selects the configuration layers
type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist
	ConfigFile string

	// Overrides are applied last, keyed by dotted path (e.g. "output.mode")
	Overrides map[string]interface{}

	SkipUserConfig bool
	SkipEnv        bool
}

// Load reads the configuration layers and validates the result
func Load(opts LoadOptions) (*Config, error) {
	cfg, err := load(opts)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")
	var sources []string

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	sources = append(sources, "defaults")

	// 2. User config file
	if !opts.SkipUserConfig || opts.ConfigFile != "" {
		path := opts.ConfigFile
		if path == "" {
			path = FindUserConfig(xdg.ConfigHome, ".")
		} else if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", path).
				WithDetail("path", path)
		}
		if path != "" {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
					WithDetail("path", path)
			}
			sources = append(sources, path)
		}
	}

	// 3. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
		sources = append(sources, "env")
	}

	// 4. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
		sources = append(sources, "flags")
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	cfg.Sources = sources

	logger.Debug().
		Strs("sources", sources).
		Str("mode", cfg.Output.Mode).
		Int("tags", len(cfg.Tags)).
		Msg("Loaded configuration")
	return cfg, nil
}

// envKey maps HTMLIFY_LINKS_TRIM_PREFIX to links.trim_prefix. Only the
// first underscore separates section from key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

// FindUserConfig returns the first existing config file: the one in
// configHome/htmlify, then the one in workDir. It returns "" when
// neither exists.
func FindUserConfig(configHome, workDir string) string {
	var candidates []string
	if configHome != "" {
		candidates = append(candidates, filepath.Join(configHome, "htmlify", ConfigFileName))
	}
	if workDir != "" {
		candidates = append(candidates, filepath.Join(workDir, LocalConfigFileName))
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				trimStringHookFunc(),
				lowerModeHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// trimStringHookFunc drops surrounding whitespace from strings decoded
// into numbers and booleans (HTMLIFY_WORKERS=" 4")
func trimStringHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() == reflect.String {
			return data, nil
		}
		return strings.TrimSpace(data.(string)), nil
	}
}

// lowerModeHookFunc accepts the output mode in any case
func lowerModeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.Map || t != reflect.TypeOf(Output{}) {
			return data, nil
		}
		m, ok := data.(map[string]interface{})
		if !ok {
			return data, nil
		}
		if mode, ok := m["mode"].(string); ok {
			m["mode"] = strings.ToLower(strings.TrimSpace(mode))
		}
		return m, nil
	}
}
