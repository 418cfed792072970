package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	coreconfig "github.com/go-core-fx/config"
)

type Config struct {
	BaseURL     string        `koanf:"base_url"`
	Timeout     time.Duration `koanf:"timeout"`
	SessionFile string        `koanf:"session_file"`
	LogFile     string        `koanf:"log_file"`
	Debug       bool          `koanf:"debug"`
	PageSize    int           `koanf:"page_size"`
}

func New() (Config, error) {
	cfg := Config{
		BaseURL:     "http://localhost:3000",
		Timeout:     10 * time.Second,
		SessionFile: defaultSessionFile(),
		LogFile:     "./erpctl.log",
		Debug:       false,
		PageSize:    10,
	}

	if err := coreconfig.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "./erpctl-session.json"
	}
	return filepath.Join(dir, "erpctl", "session.json")
}
