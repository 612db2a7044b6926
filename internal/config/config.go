// Package config содержит логику чтения конфигурации демо-приложения коффибанка.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/mtbank/coffeebank/internal/gamification"
)

// Config содержит параметры конфигурации демо-приложения.
type Config struct {
	RunAddress string `env:"RUN_ADDRESS"`
	RulesFile  string `env:"RULES_FILE"`
	Preset     string `env:"PRESET"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
// Значения из окружения имеют приоритет над флагами.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envRulesFile := cfg.RulesFile
	envPreset := cfg.Preset

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.RulesFile, "f", "", "path to TOML file with rule overrides")
	flag.StringVar(&cfg.Preset, "p", gamification.PresetClassic, "rules preset name")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envRulesFile != "" {
		cfg.RulesFile = envRulesFile
	}
	if envPreset != "" {
		cfg.Preset = envPreset
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}

	return cfg, nil
}
