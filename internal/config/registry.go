package config

import (
	"fmt"
	"sort"
	"strings"
)

// Setting describes one configurable key: which actions it supports and
// how each action reads or mutates the config. List-valued settings
// implement Add/Remove/Clear; scalar settings implement Set. A nil
// handler means the action isn't supported for that key.
type Setting struct {
	Key  string
	Help string

	Show   func(c *Config) string
	Set    func(c *Config, value string) error
	Add    func(c *Config, value string) error
	Remove func(c *Config, value string) error
	Clear  func(c *Config) error
}

// Actions lists the mutation verbs this setting supports.
func (s *Setting) Actions() []string {
	var actions []string
	if s.Set != nil {
		actions = append(actions, "set")
	}
	if s.Add != nil {
		actions = append(actions, "add")
	}
	if s.Remove != nil {
		actions = append(actions, "remove")
	}
	if s.Clear != nil {
		actions = append(actions, "clear")
	}
	return actions
}

func boolSetting(key, help string, get func(c *Config) *bool) Setting {
	return Setting{
		Key:  key,
		Help: help,
		Show: func(c *Config) string {
			return fmt.Sprintf("%t", *get(c))
		},
		Set: func(c *Config, value string) error {
			v, err := ParseBool(value)
			if err != nil {
				return err
			}
			*get(c) = v
			return nil
		},
	}
}

func listSetting(key, help string, get func(c *Config) *[]string, normalize func(string) (string, error)) Setting {
	return Setting{
		Key:  key,
		Help: help,
		Show: func(c *Config) string {
			items := *get(c)
			if len(items) == 0 {
				return "(empty)"
			}
			return strings.Join(items, "\n")
		},
		Add: func(c *Config, value string) error {
			v, err := normalize(value)
			if err != nil {
				return err
			}
			list := get(c)
			for _, existing := range *list {
				if existing == v {
					return fmt.Errorf("%s already contains %q", key, v)
				}
			}
			*list = append(*list, v)
			return nil
		},
		Remove: func(c *Config, value string) error {
			v, err := normalize(value)
			if err != nil {
				return err
			}
			list := get(c)
			for i, existing := range *list {
				if existing == v {
					*list = append((*list)[:i], (*list)[i+1:]...)
					return nil
				}
			}
			return fmt.Errorf("%s does not contain %q", key, v)
		},
		Clear: func(c *Config) error {
			*get(c) = nil
			return nil
		},
	}
}

// registry is the full set of managed settings. Adding a key here is
// all that's needed to expose it through 'mf config'.
var registry = []Setting{
	listSetting("search_paths", "directories scanned for media files",
		func(c *Config) *[]string { return &c.SearchPaths },
		NormalizePath),
	listSetting("media_extensions", "file extensions considered media",
		func(c *Config) *[]string { return &c.MediaExtensions },
		func(s string) (string, error) {
			ext := NormalizeExtension(s)
			if ext == "" || ext == "." {
				return "", fmt.Errorf("invalid extension %q", s)
			}
			return ext, nil
		}),
	boolSetting("match_extensions", "restrict results to media extensions",
		func(c *Config) *bool { return &c.MatchExtensions }),
	boolSetting("cache_library", "keep an on-disk library cache",
		func(c *Config) *bool { return &c.CacheLibrary }),
	boolSetting("prefer_fd", "use the external fd binary for scans",
		func(c *Config) *bool { return &c.PreferFD }),
	boolSetting("fullscreen_playback", "start the player in fullscreen",
		func(c *Config) *bool { return &c.FullscreenPlayback }),
	{
		Key:  "library_cache_interval",
		Help: "how long the library cache stays fresh (0 = forever)",
		Show: func(c *Config) string {
			return c.LibraryCacheInterval.String()
		},
		Set: func(c *Config, value string) error {
			var d Duration
			if err := d.UnmarshalText([]byte(value)); err != nil {
				return fmt.Errorf("invalid duration %q (want e.g. 24h, 90m, 0s)", value)
			}
			if d.Duration < 0 {
				return fmt.Errorf("interval must not be negative")
			}
			c.LibraryCacheInterval = d
			return nil
		},
	},
}

// LookupSetting finds a setting by key.
func LookupSetting(key string) (*Setting, error) {
	for i := range registry {
		if registry[i].Key == key {
			return &registry[i], nil
		}
	}
	return nil, fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(SettingKeys(), ", "))
}

// SettingKeys returns all registered keys in sorted order.
func SettingKeys() []string {
	keys := make([]string, 0, len(registry))
	for i := range registry {
		keys = append(keys, registry[i].Key)
	}
	sort.Strings(keys)
	return keys
}

// Settings returns the registered settings in key order.
func Settings() []*Setting {
	out := make([]*Setting, 0, len(registry))
	for i := range registry {
		out = append(out, &registry[i])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
