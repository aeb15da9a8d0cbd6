package config

import (
	"os"
	"path/filepath"

	"github.com/vatwatch/vatwatch/internal/errors"
	"gopkg.in/yaml.v3"
)

// fileHeader is written at the top of generated config files.
const fileHeader = `# vatwatch configuration
# Created by 'vatwatch init'. Edit freely.
`

// Write marshals the config to YAML and writes it to path, creating
// parent directories as needed.
func Write(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config",
			"This is a bug; please report it")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot create config directory: "+dir,
				"Check directory permissions")
		}
	}

	content := append([]byte(fileHeader), data...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot write config file: "+path,
			"Check file permissions")
	}

	return nil
}
