package config

import (
	"encoding/json"
	"io"
	"os"
)

type Config struct {
	LogLevel          string
	LogToFile         bool
	MockSeed          uint64
	SnowflakeWorkerID int64
	ShowMembers       bool
}

func defaults() *Config {
	return &Config{
		LogLevel:    "info",
		ShowMembers: true,
	}
}

// Load reads a JSON config file. A missing file is not an error; the client
// runs fine on defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()

	configFile, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	defer configFile.Close()

	bytes, err := io.ReadAll(configFile)
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal(bytes, cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
