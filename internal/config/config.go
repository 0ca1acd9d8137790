package config

import (
	"os"
	"path/filepath"
)

// Token returns the API access token from the FIGMA_TOKEN env var.
// An empty result means the caller must supply one via flag.
func Token() string {
	return os.Getenv("FIGMA_TOKEN")
}

// CachePath returns the document cache location: FIGLENS_CACHE if set,
// else the XDG data directory.
func CachePath() string {
	if env := os.Getenv("FIGLENS_CACHE"); env != "" {
		return env
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "figlens", "cache.db")
}
