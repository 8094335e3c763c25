package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate confirms the configuration is internally consistent.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must not be empty")
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir must not be empty")
	}
	if c.Store.Filename == "" {
		return errors.New("store.filename must not be empty")
	}
	if strings.ContainsAny(c.Store.Filename, "/\\") {
		return fmt.Errorf("store.filename %q must be a bare file name", c.Store.Filename)
	}
	if c.Store.LockDirName == "" {
		return errors.New("store.lock_dir_name must not be empty")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
