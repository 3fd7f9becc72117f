package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/memocache/memo"
)

// Backend names a memo store implementation.
type Backend string

const (
	BackendMap     Backend = "map"
	BackendTrie    Backend = "trie"
	BackendSharded Backend = "sharded"
	BackendMemDB   Backend = "memdb"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Name       string  `yaml:"name"`
	Backend    Backend `yaml:"backend"`
	Concurrent bool    `yaml:"concurrent"`
	Shards     int     `yaml:"shards"`
	Log        Log     `yaml:"log"`
}

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() Config {
	return Config{
		Name:    "memocalc",
		Backend: BackendMap,
		Shards:  memo.DefaultShards,
		Log:     Log{Level: "info"},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendMap, BackendTrie, BackendSharded, BackendMemDB:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	if c.Shards < 0 {
		return fmt.Errorf("%w: shards must not be negative, got %d", ErrInvalidConfig, c.Shards)
	}
	if c.Concurrent && (c.Backend == BackendMap || c.Backend == BackendTrie) {
		return fmt.Errorf("%w: backend %q is not safe for concurrent use", ErrInvalidConfig, c.Backend)
	}
	return nil
}

// Options maps the config onto memo options.
func (c Config) Options(logger *zap.Logger) []memo.Option {
	opts := []memo.Option{
		memo.WithName(c.Name),
		memo.WithLogger(logger),
	}
	if c.Concurrent {
		opts = append(opts, memo.WithConcurrency(c.Shards))
	}
	return opts
}
