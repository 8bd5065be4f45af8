package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/betbot/polyapis/pkg/logger"
)

// Config wires the client library: wallet key, chain, API hosts, logging.
// Values come from an optional YAML file with environment overrides; the
// private key is env-only so it never lands in a config file.
type Config struct {
	PrivateKey string `yaml:"-"`
	ChainID    int64  `yaml:"chain_id"`

	ClobHost    string `yaml:"clob_host"`
	DataHost    string `yaml:"data_host"`
	SubgraphURL string `yaml:"subgraph_url"`

	Log logger.Config `yaml:"log"`
}

func defaults() Config {
	return Config{
		ChainID: 137,
		Log:     logger.Config{Level: "info"},
	}
}

// Load reads .env (if present), the YAML file at path (if non-empty), and
// finally the environment.
func Load(path string) (Config, error) {
	// Missing .env is fine; explicit config errors are not.
	_ = godotenv.Load()

	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %s", path)
		}
	}

	if v := os.Getenv("POLYMARKET_PRIVATE_KEY"); v != "" {
		cfg.PrivateKey = v
	}
	if v := os.Getenv("POLYMARKET_CHAIN_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, errors.Wrap(err, "parse POLYMARKET_CHAIN_ID")
		}
		cfg.ChainID = id
	}
	if v := os.Getenv("POLYMARKET_CLOB_HOST"); v != "" {
		cfg.ClobHost = v
	}
	if v := os.Getenv("POLYMARKET_DATA_HOST"); v != "" {
		cfg.DataHost = v
	}
	if v := os.Getenv("POLYMARKET_SUBGRAPH_URL"); v != "" {
		cfg.SubgraphURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	return cfg, nil
}
