package enumgen

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "ENUMGEN_"

// Config holds one generation run: the target package and the enums to
// emit into it.
type Config struct {
	Package string    `koanf:"package"`
	Enums   []EnumDef `koanf:"enums"`
}

// EnumDef declares a single enum type. Value order is load-bearing: it
// fixes each value's position, and with it the integer constants and
// every container's iteration order. Appending is safe, reordering is a
// wire-format change.
type EnumDef struct {
	Name   string   `koanf:"name"`
	Values []string `koanf:"values"`
}

// Load reads the YAML config at path and applies ENUMGEN_ environment
// overrides on top, so ENUMGEN_PACKAGE=models beats the package key in
// the file. The result is validated before it is returned.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.TrimPrefix(key, envPrefix)
			key = strings.ToLower(key)
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
