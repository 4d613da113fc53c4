package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "nxpad"

// configBases are the base names searched for config files, most specific first.
var configBases = []string{appName, "config", "replay"}

// DefaultConfigDir returns the platform-specific configuration directory for nxpad.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, appName), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", appName), nil
		}
		return "", errors.New("HOME not set")
	}
}

// DefaultNamedConfigPath returns the default config file path for the given format and base name (e.g., "replay").
func DefaultNamedConfigPath(baseName, format string) (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, baseName+"."+Ext(format)), nil
}

// Ext returns the file extension used for a config format.
func Ext(format string) string {
	switch format {
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	}
	return "json"
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	dir := filepath.Dir(filePath)
	return os.MkdirAll(dir, 0o755)
}

// ConfigCandidatePaths builds candidate paths for config files per format.
// If userPath is provided, it is prioritized and routed to the matching loader by extension.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(slice *[]string, p string) { *slice = append(*slice, p) }
	addDir := func(dir string) {
		for _, base := range configBases {
			add(&jsonPaths, filepath.Join(dir, base+".json"))
			add(&yamlPaths, filepath.Join(dir, base+".yaml"))
			add(&yamlPaths, filepath.Join(dir, base+".yml"))
			add(&tomlPaths, filepath.Join(dir, base+".toml"))
		}
	}

	if userPath != "" {
		switch ext := filepath.Ext(userPath); ext {
		case ".yaml", ".yml":
			add(&yamlPaths, userPath)
		case ".toml":
			add(&tomlPaths, userPath)
		default:
			add(&jsonPaths, userPath)
		}
	}

	if wd, err := os.Getwd(); err == nil {
		addDir(wd)
	}
	if dir, err := DefaultConfigDir(); err == nil {
		addDir(dir)
	}
	if runtime.GOOS != "windows" {
		addDir(filepath.Join("/etc", appName))
	}
	return
}
