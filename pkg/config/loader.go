package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/arthur-debert/volt/pkg/logging"
	"github.com/arthur-debert/volt/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every volt environment variable.
const EnvPrefix = "VOLT_"

// DotEnvFile is read from the project directory when present.
const DotEnvFile = ".env"

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// InvocationDir is where the project search starts. Defaults to the
	// working directory.
	InvocationDir string

	// ProjectDir skips the search when set.
	ProjectDir string

	// Overrides are applied last, keyed by dotted path.
	Overrides map[string]interface{}
}

// Load resolves the configuration of the project enclosing
// opts.InvocationDir.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")

	invocation := opts.InvocationDir
	if invocation == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "could not determine working directory")
		}
		invocation = wd
	}
	invocation, err := filepath.Abs(paths.ExpandHome(invocation))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "invalid invocation directory %q", opts.InvocationDir)
	}

	projectDir := opts.ProjectDir
	if projectDir == "" {
		projectDir, err = paths.FindProjectDir(invocation, FileNames...)
		if err != nil {
			return nil, err
		}
	}
	projectDir, err = filepath.Abs(paths.ExpandHome(projectDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "invalid project directory %q", opts.ProjectDir)
	}

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Project file
	configPath := findConfigFile(projectDir)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), parserFor(configPath)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configPath).
				WithDetail("path", configPath)
		}
		logger.Debug().Str("path", configPath).Msg("Loaded project config")
	}

	// 3. Project .env, never shadowing the real environment
	dotenv, err := readDotEnv(filepath.Join(projectDir, DotEnvFile))
	if err != nil {
		return nil, err
	}
	if len(dotenv) > 0 {
		if err := k.Load(confmap.Provider(dotenv, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load .env values")
		}
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", EnvKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	cfg.ProjectDir = projectDir
	cfg.InvocationDir = invocation
	cfg.ConfigPath = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the embedded defaults rooted at projectDir, without
// reading any file or the environment.
func Default(projectDir string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}
	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	cfg.ProjectDir = projectDir
	cfg.InvocationDir = projectDir
	return cfg, nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Raw = k.Raw()
	return &cfg, nil
}

// EnvKey maps an environment variable name to a config key.
func EnvKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func findConfigFile(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// readDotEnv returns the VOLT_ variables of a .env file as config keys,
// skipping variables already set in the environment.
func readDotEnv(path string) (map[string]interface{}, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path).
			WithDetail("path", path)
	}

	out := make(map[string]interface{})
	for name, value := range vars {
		if !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		if _, set := os.LookupEnv(name); set {
			continue
		}
		out[EnvKey(name)] = value
	}
	return out, nil
}
