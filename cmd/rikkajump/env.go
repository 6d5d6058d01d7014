package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// envFile is read from the working directory before flags are resolved.
const envFile = ".env"

// envFlags maps environment variables to the flags they default.
var envFlags = map[string]string{
	"RIKKAJUMP_FPS":          "fps",
	"RIKKAJUMP_SEED":         "seed",
	"RIKKAJUMP_DB":           "db",
	"RIKKAJUMP_LOG_FILE":     "log-file",
	"RIKKAJUMP_CONFIG":       "config",
	"RIKKAJUMP_DIFFICULTY":   "difficulty",
	"RIKKAJUMP_SSH":          "ssh",
	"RIKKAJUMP_HOST_KEY":     "host-key",
	"RIKKAJUMP_IDLE_TIMEOUT": "idle-timeout",
}

// loadEnvFile loads path into the process environment. A missing file is
// fine; variables already set in the environment win.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("cannot load %s: %w", path, err)
	}
	return nil
}

// applyEnv fills flags the user did not pass from RIKKAJUMP_* variables.
func applyEnv(cmd *cobra.Command) error {
	flags := cmd.Flags()
	for env, name := range envFlags {
		val, ok := os.LookupEnv(env)
		if !ok || val == "" {
			continue
		}
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if err := flags.Set(name, val); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}

func envPreRun(cmd *cobra.Command, _ []string) error {
	if err := loadEnvFile(envFile); err != nil {
		return err
	}
	return applyEnv(cmd)
}
