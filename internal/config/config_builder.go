package config

import (
	"errors"
	"fmt"
	"slices"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	// flagsAt is the position of the flags config in configs, or -1.
	flagsAt int
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 3),
		flagsAt: -1,
	}
}

// build merges the collected configs in order; non-empty fields of later
// configs override earlier ones.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

// withEnv reads the CONFIG variable and the given sections of
// [StructuredConfig] from environ. Sections that are not listed are left
// untouched, so a malformed client variable never breaks the server.
func (b *configBuilder) withEnv(environ map[string]string, sections ...func(cfg *StructuredConfig) any) *configBuilder {
	envCfg := &StructuredConfig{}

	var file struct {
		JSONFilePath string `env:"CONFIG"`
	}
	targets := []any{&file}
	for _, section := range sections {
		targets = append(targets, section(envCfg))
	}

	for _, target := range targets {
		if err := parseEnv(target, environ); err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
	}
	envCfg.JSONFilePath = file.JSONFilePath

	b.configs = append(b.configs, envCfg)
	return b
}

func serverSection(cfg *StructuredConfig) any { return &cfg.Server }

func clientSection(cfg *StructuredConfig) any { return &cfg.Client }

func (b *configBuilder) withFlags(parse func(args []string) (*StructuredConfig, error), args []string) *configBuilder {
	flags, err := parse(args)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error parsing flags: %w", err))
		return b
	}

	b.flagsAt = len(b.configs)
	b.configs = append(b.configs, flags)
	return b
}

// withJSON loads the JSON file named by any config collected so far and
// places it right before the flags, so that flags keep the last word.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	if b.flagsAt < 0 {
		b.configs = append(b.configs, jsonCfg)
		return b
	}

	b.configs = slices.Insert(b.configs, b.flagsAt, jsonCfg)
	b.flagsAt++
	return b
}
