// Package config loads driver settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	envLearningRate = "GRADNET_LR"
	envTarget       = "GRADNET_TARGET"
)

// Config holds the settings of the gradnet demo driver.
type Config struct {
	LearningRate float32 // Step size for the parameter update (default: 1.0)
	Target       float32 // Training target y for the worked example (default: 64)
}

// Load reads the driver configuration from environment variables.
// It attempts to find a .env file in the current or parent directories.
func Load() (*Config, error) {
	_ = loadEnvFile()

	cfg := &Config{
		LearningRate: 1.0,
		Target:       64,
	}

	if v := os.Getenv(envLearningRate); v != "" {
		lr, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return nil, fmt.Errorf("config: invalid %s %q: %w", envLearningRate, v, err)
		}
		cfg.LearningRate = float32(lr)
	}

	if v := os.Getenv(envTarget); v != "" {
		target, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return nil, fmt.Errorf("config: invalid %s %q: %w", envTarget, v, err)
		}
		cfg.Target = float32(target)
	}

	return cfg, nil
}

// loadEnvFile attempts to look up until it finds a .env file.
func loadEnvFile() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	// Look up to 5 levels
	for i := 0; i < 5; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil
}
