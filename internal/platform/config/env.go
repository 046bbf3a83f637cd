package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DotEnvFiles are read by LoadDotEnv in order; earlier files win.
var DotEnvFiles = []string{".env.local", ".env"}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDotEnv copies variables from the given dotenv files into the process
// environment. Missing files are skipped and variables already set in the
// environment are never overwritten.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = DotEnvFiles
	}
	for _, name := range files {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}
