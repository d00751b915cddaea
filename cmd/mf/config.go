package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/fenilsonani/mediafind/internal/config"
	"github.com/fenilsonani/mediafind/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show [key]",
	Short: "Show the current configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfigFile()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			setting, err := config.LookupSetting(args[0])
			if err != nil {
				return err
			}
			fmt.Println(setting.Show(cfg))
			return nil
		}

		for _, setting := range config.Settings() {
			value := setting.Show(cfg)
			if strings.Contains(value, "\n") {
				fmt.Printf("%s:\n", ui.IndexStyle.Render(setting.Key))
				for _, line := range strings.Split(value, "\n") {
					fmt.Printf("  %s\n", line)
				}
			} else {
				fmt.Printf("%s: %s\n", ui.IndexStyle.Render(setting.Key), value)
			}
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in your editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, path, err := loadConfigFile()
		if err != nil {
			return err
		}

		editor := os.Getenv("VISUAL")
		if editor == "" {
			editor = os.Getenv("EDITOR")
		}
		if editor == "" {
			if runtime.GOOS == "windows" {
				editor = "notepad"
			} else {
				editor = "vi"
			}
		}

		edit := exec.Command(editor, path)
		edit.Stdin = os.Stdin
		edit.Stdout = os.Stdout
		edit.Stderr = os.Stderr
		return edit.Run()
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a scalar setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateSetting(args[0], "set", func(cfg *config.Config, s *config.Setting) error {
			if s.Set == nil {
				return unsupportedAction(s, "set")
			}
			return s.Set(cfg, args[1])
		})
	},
}

var configAddCmd = &cobra.Command{
	Use:   "add <key> <value>",
	Short: "Add a value to a list setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateSetting(args[0], "add", func(cfg *config.Config, s *config.Setting) error {
			if s.Add == nil {
				return unsupportedAction(s, "add")
			}
			return s.Add(cfg, args[1])
		})
	},
}

var configRemoveCmd = &cobra.Command{
	Use:   "remove <key> <value>",
	Short: "Remove a value from a list setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateSetting(args[0], "remove", func(cfg *config.Config, s *config.Setting) error {
			if s.Remove == nil {
				return unsupportedAction(s, "remove")
			}
			return s.Remove(cfg, args[1])
		})
	},
}

var configClearCmd = &cobra.Command{
	Use:   "clear <key>",
	Short: "Clear a list setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateSetting(args[0], "clear", func(cfg *config.Config, s *config.Setting) error {
			if s.Clear == nil {
				return unsupportedAction(s, "clear")
			}
			return s.Clear(cfg)
		})
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configPathCmd, configEditCmd,
		configSetCmd, configAddCmd, configRemoveCmd, configClearCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfigFile loads the config without the full app wiring, so
// settings can be fixed even when validation would fail.
func loadConfigFile() (*config.Config, string, error) {
	path, err := config.GetConfigPath()
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.EnsureConfigExists(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func unsupportedAction(s *config.Setting, action string) error {
	return fmt.Errorf("setting %q does not support %s (supported: %s)",
		s.Key, action, strings.Join(s.Actions(), ", "))
}

func mutateSetting(key, action string, apply func(*config.Config, *config.Setting) error) error {
	cfg, path, err := loadConfigFile()
	if err != nil {
		return err
	}

	setting, err := config.LookupSetting(key)
	if err != nil {
		return err
	}
	if err := apply(cfg, setting); err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}
	ui.Okf("%s = %s", setting.Key, strings.ReplaceAll(setting.Show(cfg), "\n", ", "))
	return nil
}
