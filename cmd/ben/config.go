package main

import "github.com/BurntSushi/toml"

// Config is the shape of an optional --config TOML file. It only covers
// CLI-level defaults; the library packages never read configuration of
// their own.
type Config struct {
	DefaultVariant string `toml:"default_variant"`
	LogLevel       string `toml:"log_level"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
