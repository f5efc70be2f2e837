package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the durable files used by the application.
type Config interface {
	// BasePath is the directory holding events, settings and rotation state.
	BasePath() string
	// ContentPath is the thematic content source. Empty selects the
	// built-in pool.
	ContentPath() string
}

// LoadConfig reads .matchday.yaml from $MATCHDAY_CONFIG_PATH, the working
// directory or the XDG config home. A missing file is not an error.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", filepath.Join(xdg.DataHome, "matchday"))
	v.SetDefault("content", "")
	v.SetConfigName(".matchday") // .yaml is implicit
	v.SetEnvPrefix("MATCHDAY")
	v.AutomaticEnv()

	if override := os.Getenv("MATCHDAY_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	v.AddConfigPath(filepath.Join(xdg.ConfigHome, "matchday"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	base, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	content, err := homedir.Expand(v.GetString("content"))
	if err != nil {
		return nil, fmt.Errorf("store: expand content path: %w", err)
	}
	return &fileConfig{Path: base, Content: content, Source: v.ConfigFileUsed()}, nil
}

// NewConfig builds a Config from explicit paths.
func NewConfig(path, content string) Config {
	return &fileConfig{Path: path, Content: content}
}

// SourceOf returns the config file cfg was read from, if any.
func SourceOf(cfg Config) string {
	if fc, ok := cfg.(*fileConfig); ok {
		return fc.Source
	}
	return ""
}

type fileConfig struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Source  string `json:"-"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) ContentPath() string {
	return f.Content
}
