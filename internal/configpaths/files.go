// Package configpaths locates inputsync configuration files.
package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName   = "inputsync"
	systemDir = "/etc/inputsync"
)

// baseNames are searched in every location: a shared file and one per command.
var baseNames = []string{"config", "run"}

// DefaultConfigDir returns the platform-specific configuration directory.
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, appName), nil
		}
		return "", errors.New("AppData not set")
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", appName), nil
	}
	return "", errors.New("HOME not set")
}

// Ext maps a format name to its file extension. Unknown formats map to json.
func Ext(format string) string {
	switch format {
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return "json"
	}
}

// DefaultNamedConfigPath returns the config file path for baseName in the
// default config directory.
func DefaultNamedConfigPath(baseName, format string) (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, baseName+"."+Ext(format)), nil
}

// EnsureDir creates the parent directory of filePath.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// Candidates holds config file paths per loader, in priority order.
type Candidates struct {
	JSON, YAML, TOML []string
}

func (c *Candidates) addUser(p string) {
	switch filepath.Ext(p) {
	case ".yaml", ".yml":
		c.YAML = append(c.YAML, p)
	case ".toml":
		c.TOML = append(c.TOML, p)
	default:
		c.JSON = append(c.JSON, p)
	}
}

func (c *Candidates) addDir(dir string, bases []string) {
	for _, base := range bases {
		p := filepath.Join(dir, base)
		c.JSON = append(c.JSON, p+".json")
		c.YAML = append(c.YAML, p+".yaml", p+".yml")
		c.TOML = append(c.TOML, p+".toml")
	}
}

// ConfigCandidatePaths lists config files to try. userPath, when set, comes
// first and is routed to a loader by its extension, then the working
// directory, the user config dir and finally the system dir.
func ConfigCandidatePaths(userPath string) Candidates {
	var c Candidates
	if userPath != "" {
		c.addUser(userPath)
	}
	if wd, err := os.Getwd(); err == nil {
		c.addDir(wd, append([]string{appName}, baseNames...))
	}
	if dir, err := DefaultConfigDir(); err == nil {
		c.addDir(dir, baseNames)
	}
	if runtime.GOOS != "windows" {
		c.addDir(systemDir, baseNames)
	}
	return c
}
