package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/shu-go/slack-conv/convlist"
	"github.com/slack-go/slack"
)

type config struct {
	Slack struct {
		APIURL    string `toml:"APIURL,omitempty"`
		TokenFile string `toml:"TokenFile,omitempty"`
		Timeout   string `toml:"Timeout,omitempty"`
	}
	List struct {
		Types           []string `toml:"Types,omitempty"`
		ExcludeArchived bool     `toml:"ExcludeArchived"`
		Concurrency     int      `toml:"Concurrency,omitempty"`
		OnLookupError   string   `toml:"OnLookupError,omitempty"`
	}
}

const configFileName string = "slack-conv.conf"

func defaultConfig() *config {
	c := &config{}
	c.Slack.APIURL = slack.APIURL
	c.Slack.TokenFile = convlist.DefaultTokenFile
	c.List.Types = append([]string(nil), convlist.AllTypes...)
	c.List.Concurrency = 1
	c.List.OnLookupError = convlist.LookupAbort.String()
	return c
}

func determineConfigPath(defaultValue string) string {
	if defaultValue != "" {
		return defaultValue
	}

	// wd
	wdConfigPath := filepath.Join(".", configFileName)
	if _, err := os.Stat(wdConfigPath); err == nil {
		return wdConfigPath
	}

	// exe
	if exepath, err := os.Executable(); err == nil {
		exeConfigPath := filepath.Join(filepath.Dir(exepath), configFileName)
		if _, err := os.Stat(exeConfigPath); err == nil {
			return exeConfigPath
		}
	}

	return wdConfigPath
}

// loadConfig reads the config file, creating it with defaults when it does
// not exist yet. A file that exists but does not parse is an error.
func loadConfig(filePath string, logger *slog.Logger) (*config, error) {
	filePath = determineConfigPath(filePath)

	config := defaultConfig()
	_, err := toml.DecodeFile(filePath, config)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("missing config, creating with defaults", "path", filePath)
		if err := saveConfig(config, filePath); err != nil {
			return config, fmt.Errorf("failed to access to config: %w", err)
		}
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %v: %w", filePath, err)
	}

	return config, nil
}

func saveConfig(config *config, filePath string) error {
	filePath = determineConfigPath(filePath)

	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(config); err != nil {
		return err
	}
	return os.WriteFile(filePath, buf.Bytes(), 0600)
}

func (c *config) timeout() (time.Duration, error) {
	if c.Slack.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Slack.Timeout)
	if err != nil {
		return 0, fmt.Errorf("config Slack.Timeout: %w", err)
	}
	return d, nil
}
