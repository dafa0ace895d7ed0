package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Color   string        `mapstructure:"color"` // auto, always, never
	Corpus  CorpusConfig  `mapstructure:"corpus"`
	Install InstallConfig `mapstructure:"install"`
	Lint    LintConfig    `mapstructure:"lint"`
}

type CorpusConfig struct {
	UseBuiltin bool   `mapstructure:"use_builtin"`
	UserDir    string `mapstructure:"user_dir"`
	ProjectDir string `mapstructure:"project_dir"`
}

type InstallConfig struct {
	Target string `mapstructure:"target"`
}

type LintConfig struct {
	Ignore []string `mapstructure:"ignore"`
}

func Load() (*Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config dir: %w", err)
	}

	configPath := filepath.Join(configDir, "skilldeck")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath(".")

	// Set defaults
	viper.SetDefault("color", "auto")
	viper.SetDefault("corpus.use_builtin", true)
	viper.SetDefault("corpus.user_dir", configPath)
	viper.SetDefault("corpus.project_dir", ".skilldeck")
	viper.SetDefault("install.target", ".claude")

	// Read config file (optional - won't error if missing)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand environment variables and ~ in directories
	cfg.Corpus.UserDir = expandPath(cfg.Corpus.UserDir)
	cfg.Corpus.ProjectDir = expandPath(cfg.Corpus.ProjectDir)
	cfg.Install.Target = expandPath(cfg.Install.Target)

	return &cfg, nil
}

// expandPath expands ${VAR}, $VAR, and a leading ~ in a path
func expandPath(s string) string {
	if strings.HasPrefix(s, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			s = filepath.Join(home, strings.TrimPrefix(s[1:], "/"))
		}
	}
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}
	if strings.HasPrefix(s, "$") {
		return os.Getenv(s[1:])
	}
	return s
}

// GetConfigPath returns the path where the config file should be located
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "skilldeck", "config.yaml"), nil
}

// Exists returns true if a config file exists
func Exists() bool {
	path, err := GetConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Save writes the config to disk
func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	content := fmt.Sprintf(`color: %s

corpus:
  use_builtin: %t
  user_dir: %s
  project_dir: %s

install:
  target: %s
`, cfg.Color, cfg.Corpus.UseBuiltin, cfg.Corpus.UserDir, cfg.Corpus.ProjectDir, cfg.Install.Target)

	return os.WriteFile(path, []byte(content), 0600)
}
