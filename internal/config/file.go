// Package config loads the optional YAML defaults file. File values only
// fill in settings the command line left unset; explicit flags always win.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// EnvVar is consulted for a defaults file path when no --config flag is
// given.
const EnvVar = "CARVE_CONFIG"

// File is the defaults file schema. Unknown keys are ignored.
type File struct {
	Delimiter     string `yaml:"delimiter"`
	InputEncoding string `yaml:"inputEncoding"`
	Summary       bool   `yaml:"summary"`
	Verbose       bool   `yaml:"verbose"`
}

// Resolve picks the defaults file to load: the explicit path wins, then
// the CARVE_CONFIG environment variable, then none (empty string).
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}

	return os.Getenv(EnvVar)
}

// Load reads and parses a YAML defaults file. Once a path has been
// resolved the file must load; an unreadable or malformed file is an
// error for the caller to treat as fatal.
func Load(path string) (File, error) {
	var f File

	raw, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(raw, &f); err != nil {
		return f, fmt.Errorf("parse config %s: %w", path, err)
	}

	return f, nil
}
