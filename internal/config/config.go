package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration wraps time.Duration so it round-trips through TOML as a
// human-readable string ("24h", "90m").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds all user-tunable settings.
type Config struct {
	// SearchPaths are the roots scanned for media files.
	SearchPaths []string `toml:"search_paths"`

	// MediaExtensions restrict results when MatchExtensions is on.
	// Stored lowercase with a leading dot.
	MediaExtensions []string `toml:"media_extensions"`

	// MatchExtensions toggles the extension filter on queries.
	MatchExtensions bool `toml:"match_extensions"`

	// CacheLibrary enables the on-disk library cache.
	CacheLibrary bool `toml:"cache_library"`

	// LibraryCacheInterval is how long a cached library stays fresh.
	// Zero means it never expires.
	LibraryCacheInterval Duration `toml:"library_cache_interval"`

	// PreferFD uses the external fd binary for scans when available.
	PreferFD bool `toml:"prefer_fd"`

	// FullscreenPlayback starts the player in fullscreen.
	FullscreenPlayback bool `toml:"fullscreen_playback"`
}

// Default returns the configuration written on first run.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return &Config{
		SearchPaths: []string{
			filepath.Join(home, "Videos"),
			filepath.Join(home, "Downloads"),
		},
		MediaExtensions: []string{
			".avi", ".flv", ".m4v", ".mkv", ".mov", ".mp4",
			".mpeg", ".mpg", ".webm", ".wmv",
		},
		MatchExtensions:      true,
		CacheLibrary:         true,
		LibraryCacheInterval: Duration{24 * time.Hour},
		PreferFD:             true,
		FullscreenPlayback:   false,
	}
}

// Read decodes a configuration from r.
func Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Write encodes the configuration to w.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// GetConfigPath returns the platform config file location:
// $XDG_CONFIG_HOME/mf/config.toml, %LOCALAPPDATA%\mf\config.toml on
// Windows, ~/.config/mf/config.toml otherwise.
func GetConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(base, "mf", "config.toml"), nil
}

// Load reads the config file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	defer f.Close()

	if err := c.Write(f); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return f.Close()
}

// EnsureConfigExists loads the config at path, writing defaults first
// when no file exists yet.
func EnsureConfigExists(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	cfg = Default()
	if err := cfg.Save(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks for settings that would make every command fail.
func (c *Config) Validate() error {
	if len(c.SearchPaths) == 0 {
		return fmt.Errorf("no search paths configured; add one with 'mf config add search_paths <dir>'")
	}
	if c.LibraryCacheInterval.Duration < 0 {
		return fmt.Errorf("library_cache_interval must not be negative")
	}
	for _, ext := range c.MediaExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("media extension %q must start with a dot", ext)
		}
	}
	return nil
}

// ExtensionSet returns the media extensions as a lowercase lookup set,
// or nil when extension matching is off.
func (c *Config) ExtensionSet() map[string]bool {
	if !c.MatchExtensions || len(c.MediaExtensions) == 0 {
		return nil
	}
	set := make(map[string]bool, len(c.MediaExtensions))
	for _, ext := range c.MediaExtensions {
		set[strings.ToLower(ext)] = true
	}
	return set
}

// ValidSearchPaths splits the configured roots into those that exist
// and those that don't.
func (c *Config) ValidSearchPaths() (valid, missing []string) {
	for _, p := range c.SearchPaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			valid = append(valid, p)
		} else {
			missing = append(missing, p)
		}
	}
	return valid, missing
}

// NormalizeExtension lowercases an extension and ensures a leading dot.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ext
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// NormalizePath expands a leading ~ and makes the path absolute.
func NormalizePath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(home, p[1:])
	}
	return filepath.Abs(p)
}

// ParseBool accepts the usual spellings of a boolean setting value.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q (want true/false)", s)
}
