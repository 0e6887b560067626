// Package config holds the tunables of a SlotDB table and loads them from YAML.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	bplus "SlotDB/bplustree"
	"SlotDB/types"
)

var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	Tree   bplus.Config `yaml:"tree"`
	Store  Store        `yaml:"store"`
	Logger Logger       `yaml:"logger"`
}

// Store sizes the block store.
type Store struct {
	BlockSize int `yaml:"block_size"`
	CacheSize int `yaml:"cache_size"` // decoded records kept in memory, 0 disables the cache
}

// Logger mirrors the usual rotation knobs of a file logger.
type Logger struct {
	LogLevel    string `yaml:"log_level"`
	FileLogName string `yaml:"file_log_name"` // empty logs to stderr
	MaxBackups  int    `yaml:"max_backups"`
	MaxAge      int    `yaml:"max_age"`  // days
	MaxSize     int    `yaml:"max_size"` // megabytes
	Compress    bool   `yaml:"compress"`
}

func Default() Config {
	return Config{
		Tree: bplus.DefaultConfig(),
		Store: Store{
			BlockSize: types.DefaultBlockSize,
			CacheSize: 1024,
		},
		Logger: Logger{
			LogLevel:   "info",
			MaxBackups: 3,
			MaxAge:     7,
			MaxSize:    10,
		},
	}
}

func (c Config) Validate() error {
	if err := c.Tree.Validate(); err != nil {
		return errors.Wrapf(ErrInvalid, "tree: %v", err)
	}
	if c.Store.BlockSize <= 0 {
		return errors.Wrapf(ErrInvalid, "store.block_size must be positive, got %d", c.Store.BlockSize)
	}
	if c.Store.CacheSize < 0 {
		return errors.Wrapf(ErrInvalid, "store.cache_size must not be negative, got %d", c.Store.CacheSize)
	}
	if c.Logger.MaxBackups < 0 || c.Logger.MaxAge < 0 || c.Logger.MaxSize < 0 {
		return errors.Wrap(ErrInvalid, "logger rotation limits must not be negative")
	}
	return nil
}

// Load reads a YAML file over Default, so omitted keys keep their defaults.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	return Parse(raw)
}

// Parse decodes YAML bytes over Default and validates the result.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrapf(ErrInvalid, "decode yaml: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
