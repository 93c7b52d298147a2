package controllers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/budgetanalyzer/orchestration/internal/domain/entities"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// loadSettings reads the manifest named by --config, or the first one found in
// the default locations, falling back to the built-in manifest. It also returns
// the orchestration repository directory the workspace root defaults from.
func loadSettings(cmd *cobra.Command) (*entities.Settings, string, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, err := entities.FindConfigFile()
		if errors.Is(err, entities.ErrConfigNotFound) {
			logger.Debug("No manifest found, using built-in defaults")
			return entities.DefaultSettings(), selfDir(""), nil
		}
		if err != nil {
			return nil, "", err
		}
		configPath = found
	}

	logger.Infof("Using manifest: %s", configPath)
	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load manifest: %w", err)
	}
	return settings, selfDir(configPath), nil
}

// selfDir is the orchestration repository checkout: the nearest directory
// holding .git above the manifest (or the working directory when the built-in
// manifest is used), else the manifest directory itself.
func selfDir(configPath string) string {
	start, err := os.Getwd()
	if err != nil {
		start = "."
	}
	if configPath != "" {
		if abs, absErr := filepath.Abs(configPath); absErr == nil {
			start = filepath.Dir(abs)
		} else {
			start = filepath.Dir(configPath)
		}
	}

	for dir := start; ; dir = filepath.Dir(dir) {
		if _, statErr := os.Stat(filepath.Join(dir, ".git")); statErr == nil {
			return dir
		}
		if filepath.Dir(dir) == dir {
			return start
		}
	}
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "", formatText:
		return formatText, nil
	case formatJSON:
		return formatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format %q (use %s or %s)", format, formatText, formatJSON)
	}
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "o", formatText, "Output format (text, json)")
}
