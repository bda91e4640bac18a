package config

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestGenerateDefaultConfigFile(t *testing.T) {
	generatedCfg := GenerateDefaultConfigFile()
	cfg, err := ReadConfig(bytes.NewReader(generatedCfg))
	require.NoError(t, err)
	require.EqualValues(t, DefaultConfig, *cfg)
}

func TestReadConfig_Partial(t *testing.T) {
	in := []byte("log_level = \"debug\"\n")
	cfg, err := ReadConfig(bytes.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Zero(t, cfg.Dump.MaxPayloadBytes)
}
