package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Sim     SimConfig     `toml:"sim"`
	Logging LoggingConfig `toml:"logging"`
}

type SimConfig struct {
	TickRate    time.Duration `toml:"tick_rate"`
	Duration    time.Duration `toml:"duration"` // 0 = run until signal
	Seed        int64         `toml:"seed"`
	SpawnFile   string        `toml:"spawn_file"`
	ScriptsDir  string        `toml:"scripts_dir"`
	ReportEvery int           `toml:"report_every"` // ticks between yield reports
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Sim: SimConfig{
			TickRate:    200 * time.Millisecond,
			Duration:    0,
			Seed:        1,
			SpawnFile:   "data/spawn_list.yaml",
			ScriptsDir:  "scripts",
			ReportEvery: 25, // 5 seconds at the default tick rate
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
