package config

import (
	"io"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type Config struct {
	LogLevel string     `mapstructure:"log_level"`
	Dump     DumpConfig `mapstructure:"dump"`
}

type DumpConfig struct {
	Format          string `mapstructure:"format"`
	MaxPayloadBytes int    `mapstructure:"max_payload_bytes"`
}

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	return config, nil
}
