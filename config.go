package pathfs

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

const (
	DefaultDirMode fs.FileMode = 0744
	// UmaskOverrideMode is the directory mode used when UmaskOverride is set.
	UmaskOverrideMode fs.FileMode = 0777

	// UmaskOverrideEnv is the environment variable read by ConfigFromEnv.
	UmaskOverrideEnv = "PATHFS_UMASK_SET"
)

// Config holds the settings used when directories are created.
type Config struct {
	DirMode       fs.FileMode `toml:"dir_mode"`
	UmaskOverride bool        `toml:"umask_override"`
}

func DefaultConfig() Config {
	return Config{DirMode: DefaultDirMode}
}

// EffectiveDirMode returns the mode new directories are created with.
func (c Config) EffectiveDirMode() fs.FileMode {
	if c.UmaskOverride {
		return UmaskOverrideMode
	}
	if c.DirMode == 0 {
		return DefaultDirMode
	}
	return c.DirMode
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigFromEnv applies UmaskOverrideEnv to cfg. An unset variable leaves cfg unchanged.
func ConfigFromEnv(cfg Config) (Config, error) {
	v, ok := os.LookupEnv(UmaskOverrideEnv)
	if !ok || v == "" {
		return cfg, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s=%q: %w", UmaskOverrideEnv, v, err)
	}
	cfg.UmaskOverride = b
	return cfg, nil
}
