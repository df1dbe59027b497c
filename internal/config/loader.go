// Package config loads screenshot run configuration and the external tool
// settings used to carry it out.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration file at path. A non-empty destination
// replaces destination_path from the file. Relative paths are resolved
// against the directory containing the configuration file.
func Load(path, destination string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Err: ErrConfigNotFound, Cause: err}
	}

	var cfg Config
	if err := decode(path, data, &cfg); err != nil {
		return nil, &Error{Path: path, Err: ErrConfigParse, Cause: err}
	}

	if destination != "" {
		cfg.DestinationPath = destination
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, &Error{Path: path, Err: ErrConfigNotFound, Cause: err}
	}
	cfg.Dir = filepath.Dir(absPath)

	if cfg.DestinationPath != "" {
		cfg.DestinationPath = ResolvePath(cfg.Dir, cfg.DestinationPath)
	}
	if cfg.ProjectPath != "" {
		cfg.ProjectPath = ResolvePath(cfg.Dir, cfg.ProjectPath)
	}

	return &cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Unmarshal(data, cfg)
	default:
		return json.Unmarshal(data, cfg)
	}
}

// ResolvePath expands a leading ~ and, if the result is still relative,
// joins it with baseDir.
func ResolvePath(baseDir, p string) string {
	p = ExpandHome(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Clean(filepath.Join(baseDir, p))
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
