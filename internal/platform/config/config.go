package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	HomePath     string
	DocumentPath string
	DBPath       string
	PluginsPath  string
	AgendaPath   string
}

// New resolves all paths from the daytrack home directory. An empty homePath
// falls back to ~/.daytrack.
func New(homePath string) (Config, error) {
	if homePath == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve user home: %w", err)
		}
		homePath = filepath.Join(userHome, ".daytrack")
	}
	return Config{
		HomePath:     homePath,
		DocumentPath: filepath.Join(homePath, "daytrack.json"),
		DBPath:       filepath.Join(homePath, "index.db"),
		PluginsPath:  filepath.Join(homePath, "plugins"),
		AgendaPath:   filepath.Join(homePath, "agenda"),
	}, nil
}
