package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

/*
Config precedence (highest to lowest):

1. Environment variables (PICOMENU_*, plus a .env file for development)
2. User config ($XDG_CONFIG_HOME/picomenu/config.yaml)
3. Device config (/etc/picomenu/config.yaml)
4. Built-in defaults

Every value has a usable default so the menu boots on a factory image with no
config file at all.
*/

const envPrefix = "PICOMENU"

// New loads and validates the merged configuration.
func New() (*ConfigSchema, error) {
	v := viper.New()
	setDefaults(v)

	loadEnv()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, path := range configPaths() {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				continue
			}
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	var cfg ConfigSchema
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func configPaths() []string {
	paths := []string{"/etc/picomenu/config.yaml"}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		if home, err := os.UserHomeDir(); err == nil {
			xdgConfig = filepath.Join(home, ".config")
		}
	}
	if xdgConfig != "" {
		paths = append(paths, filepath.Join(xdgConfig, "picomenu", "config.yaml"))
	}
	return paths
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deviceName", "Luckfox Pico")
	v.SetDefault("prefsFile", "/etc/menu_prefs.conf")
	v.SetDefault("dbPath", "/etc/picomenu_history.db")
	v.SetDefault("infoFile", "/oem/pkpy/info")
	v.SetDefault("meminfoFile", "/proc/meminfo")
	v.SetDefault("recentLimit", 10)
	v.SetDefault("timezones", []string{
		"UTC", "Asia/Shanghai", "Asia/Tokyo", "Europe/London", "Europe/Berlin",
		"America/New_York", "America/Los_Angeles",
	})
	v.SetDefault("systems", []map[string]interface{}{{
		"name":          "NES Emulator",
		"id":            "nes",
		"romDir":        "/oem/nes_game",
		"launchCommand": `/root/nes_start.sh %s`,
	}})

	v.SetDefault("commands.consoleStart", "/etc/init.d/S99fbterm start_with_input")
	v.SetDefault("commands.consoleStop", "/etc/init.d/S99fbterm stop")
	v.SetDefault("commands.gameStart", "/root/term_start_all.sh < /dev/null")
	v.SetDefault("commands.reboot", "reboot")
	v.SetDefault("commands.setClock", `date -s "%02d:%02d:00"`)
	v.SetDefault("commands.saveHwClock", "hwclock -w")
	v.SetDefault("commands.setTimezone", "ln -sf /usr/share/zoneinfo/%s /etc/localtime")
	v.SetDefault("commands.otaStart", "toggle_httpd.sh restart")
	v.SetDefault("commands.otaStop", "toggle_httpd.sh stop")

	v.SetDefault("log.logLevel", "INFO")
	v.SetDefault("log.logFile", "")

	v.SetDefault("keys.up", []string{"up", "w"})
	v.SetDefault("keys.down", []string{"down", "s"})
	v.SetDefault("keys.left", []string{"left", "a"})
	v.SetDefault("keys.right", []string{"right", "d"})
	v.SetDefault("keys.select", []string{"enter", " "})
	v.SetDefault("keys.back", []string{"esc", "backspace"})
	v.SetDefault("keys.quit", []string{"ctrl+c"})
	v.SetDefault("keys.help", []string{"?"})
}

// SystemByID returns the configured system with the given identifier.
func (c *ConfigSchema) SystemByID(id string) (System, bool) {
	for _, sys := range c.Systems {
		if sys.ID == id {
			return sys, true
		}
	}
	return System{}, false
}
