package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type EditorOptions struct {
	TabWidth             int    `toml:"tab-width"`
	LineNumbers          string `toml:"line-numbers"`
	HighlightCurrentLine bool   `toml:"highlight-current-line"`
	ConfirmQuit          bool   `toml:"confirm-quit"`
}

type Theme struct {
	Theme                      string `toml:"theme"`
	Foreground                 string `toml:"foreground"`
	Background                 string `toml:"background"`
	CurrentLineBackground      string `toml:"current-line-background"`
	StatuslineForeground       string `toml:"statusline-foreground"`
	StatuslineBackground       string `toml:"statusline-background"`
	MessageForeground          string `toml:"message-foreground"`
	MessageBackground          string `toml:"message-background"`
	LineNumberForeground       string `toml:"line-number-foreground"`
	LineNumberActiveForeground string `toml:"line-number-active-foreground"`
	SearchMatchForeground      string `toml:"search-foreground"`
	SearchMatchBackground      string `toml:"search-background"`
	SearchCurrentForeground    string `toml:"search-current-foreground"`
	SearchCurrentBackground    string `toml:"search-current-background"`
}

type Config struct {
	Editor EditorOptions `toml:"editor"`
	Theme  Theme         `toml:"theme"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			TabWidth:             4,
			LineNumbers:          "absolute",
			HighlightCurrentLine: true,
			ConfirmQuit:          false,
		},
		Theme: Theme{
			Foreground:                 "#B3B1AD",
			Background:                 "#0A0E14",
			CurrentLineBackground:      "#131721",
			StatuslineForeground:       "#0A0E14",
			StatuslineBackground:       "#B3B1AD",
			MessageForeground:          "#B3B1AD",
			MessageBackground:          "#0F1419",
			LineNumberForeground:       "#3E4B59",
			LineNumberActiveForeground: "#B3B1AD",
			SearchMatchForeground:      "#B3B1AD",
			SearchMatchBackground:      "#27425A",
			SearchCurrentForeground:    "#000000",
			SearchCurrentBackground:    "#FFD700",
		},
	}
}

// Load returns the defaults merged with the user config file, if any. A
// named theme is applied before the explicit [theme] colors.
func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	md, err := toml.Decode(string(data), &userCfg)
	if err != nil {
		return cfg, &ParseError{Path: path, Err: err}
	}

	if userCfg.Editor.TabWidth > 0 {
		cfg.Editor.TabWidth = userCfg.Editor.TabWidth
	}
	if userCfg.Editor.LineNumbers != "" {
		cfg.Editor.LineNumbers = userCfg.Editor.LineNumbers
	}
	if md.IsDefined("editor", "highlight-current-line") {
		cfg.Editor.HighlightCurrentLine = userCfg.Editor.HighlightCurrentLine
	}
	if md.IsDefined("editor", "confirm-quit") {
		cfg.Editor.ConfirmQuit = userCfg.Editor.ConfirmQuit
	}
	if userCfg.Theme.Theme != "" {
		cfg.Theme.Theme = userCfg.Theme.Theme
		theme, err := LoadTheme(cfg.Theme.Theme)
		if err != nil {
			return cfg, err
		}
		mergeTheme(&cfg.Theme, theme)
	}
	mergeTheme(&cfg.Theme, userCfg.Theme)
	return cfg, nil
}

// ParseError is a config or theme file that is not valid TOML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string { return "config " + e.Path + ": " + e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// LineNumbersEnabled reports whether the gutter is shown.
func (o EditorOptions) LineNumbersEnabled() bool {
	switch o.LineNumbers {
	case "off", "none", "false":
		return false
	}
	return true
}

func mergeTheme(dst *Theme, src Theme) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&dst.Foreground, src.Foreground)
	set(&dst.Background, src.Background)
	set(&dst.CurrentLineBackground, src.CurrentLineBackground)
	set(&dst.StatuslineForeground, src.StatuslineForeground)
	set(&dst.StatuslineBackground, src.StatuslineBackground)
	set(&dst.MessageForeground, src.MessageForeground)
	set(&dst.MessageBackground, src.MessageBackground)
	set(&dst.LineNumberForeground, src.LineNumberForeground)
	set(&dst.LineNumberActiveForeground, src.LineNumberActiveForeground)
	set(&dst.SearchMatchForeground, src.SearchMatchForeground)
	set(&dst.SearchMatchBackground, src.SearchMatchBackground)
	set(&dst.SearchCurrentForeground, src.SearchCurrentForeground)
	set(&dst.SearchCurrentBackground, src.SearchCurrentBackground)
}

func ThemePath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "theme", name+".toml"), nil
}

// LoadTheme reads theme/<name>.toml from the config dir. The colors may sit
// at the top level or under a [theme] table.
func LoadTheme(name string) (Theme, error) {
	path, err := ThemePath(name)
	if err != nil {
		return Theme{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	var t Theme
	if _, err := toml.Decode(string(data), &t); err == nil {
		return t, nil
	}
	var wrap struct {
		Theme Theme `toml:"theme"`
	}
	if _, err := toml.Decode(string(data), &wrap); err != nil {
		return Theme{}, &ParseError{Path: path, Err: err}
	}
	return wrap.Theme, nil
}

// ConfigDir is $HYPERION_CONFIG_HOME, else $XDG_CONFIG_HOME/hyperion, else
// ~/.config/hyperion.
func ConfigDir() (string, error) {
	if v := os.Getenv("HYPERION_CONFIG_HOME"); v != "" {
		return filepath.Clean(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "hyperion"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "hyperion"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
