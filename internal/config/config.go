package config

import (
	"os"
	"path/filepath"

	"github.com/refsync-dev/refsync/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	// KeyTSConfig is the per-package compiler config filename.
	KeyTSConfig = "tsconfig"
	// KeyManager is the package-manager binary used for workspace listing.
	KeyManager = "manager"
	// KeyRoot overrides workspace root discovery.
	KeyRoot = "root"
)

// Dir returns the path to the config directory (~/.refsync/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.refsync/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
// Environment variables use the REFSYNC_ prefix (REFSYNC_TSCONFIG,
// REFSYNC_MANAGER, REFSYNC_ROOT).
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyTSConfig, "tsconfig.json")
	viper.SetDefault(KeyManager, "yarn")
	viper.SetDefault(KeyRoot, "")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// TSConfigName returns the compiler config filename probed in every package.
func TSConfigName() string {
	return viper.GetString(KeyTSConfig)
}

// Manager returns the package-manager binary name.
func Manager() string {
	return viper.GetString(KeyManager)
}

// Root returns the workspace root override, or "" to discover it.
func Root() string {
	return viper.GetString(KeyRoot)
}
