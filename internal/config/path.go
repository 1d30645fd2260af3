package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "DOCNAV_CONFIG"

// ResolvePath returns the config file to load for a run.
// Priority order:
//  1. explicit path from --config (if set)
//  2. DOCNAV_CONFIG environment variable (if set)
//  3. .docnav.yaml inside the documentation root
//
// An explicit path must exist; the other two may be absent and fall back to
// defaults when loaded.
func ResolvePath(root, explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}

	return filepath.Join(root, FileName), nil
}
