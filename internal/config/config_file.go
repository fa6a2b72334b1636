package config

import (
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape. TOML by default; .yaml/.yml files are read as YAML.
type FileConfig struct {
	URL      string `toml:"url" yaml:"url"`
	IDs      string `toml:"ids" yaml:"ids"`
	LogFile  string `toml:"log_file" yaml:"log_file"`
	LogLevel string `toml:"log_level" yaml:"log_level"`
	Format   string `toml:"format" yaml:"format"`
}

func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &fc)
	default:
		err = toml.Unmarshal(b, &fc)
	}
	return fc, err
}

func ApplyFile(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := setter{changed: changed}
	s.setString(FlagURL, fc.URL, &cfg.URL)
	s.setString(FlagIDs, fc.IDs, &cfg.IDs)
	s.setString(FlagLogFile, fc.LogFile, &cfg.LogFile)
	s.setString(FlagLogLevel, fc.LogLevel, &cfg.LogLevel)
	s.setString(FlagFormat, fc.Format, &cfg.Format)
}

func ApplyEnv(cfg *Config, changed map[string]bool) {
	s := setter{changed: changed}
	s.setString(FlagURL, os.Getenv("POSTBOARD_URL"), &cfg.URL)
	s.setString(FlagIDs, os.Getenv("POSTBOARD_IDS"), &cfg.IDs)
	s.setString(FlagLogFile, os.Getenv("POSTBOARD_LOG_FILE"), &cfg.LogFile)
	s.setString(FlagLogLevel, os.Getenv("POSTBOARD_LOG_LEVEL"), &cfg.LogLevel)
	s.setString(FlagFormat, os.Getenv("POSTBOARD_FORMAT"), &cfg.Format)
}
