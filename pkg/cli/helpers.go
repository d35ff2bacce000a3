/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/relctl/pkg/config"
	"github.com/NVIDIA/relctl/pkg/releaser"
	"github.com/NVIDIA/relctl/pkg/serializer"
)

// Flags shared across commands.
var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: fmt.Sprintf("Config file path (default: %s in the working directory)", config.DefaultFileName),
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars("LOG_LEVEL"),
		Value:   "info",
	}

	remoteFlag = &cli.StringFlag{
		Name:  "remote",
		Usage: "Git remote the release tag is pushed to (default: origin)",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("Output format (supported values: %s)", serializer.SupportedFormats()),
		Value:   string(serializer.FormatYAML),
	}
)

// closeSerializer flushes file-backed serializers. Stdout writers have
// nothing to close.
func closeSerializer(s serializer.Serializer) {
	if c, ok := s.(serializer.Closer); ok {
		if err := c.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}
}

// parseOutputFormat validates the --format flag value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %s)",
			format, serializer.SupportedFormats())
	}
	return format, nil
}

// loadConfig resolves project configuration, letting explicit flags
// override file settings. A missing default config file is fine, but a
// file named with --config must exist.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	return config.Load(path,
		config.WithRemote(cmd.String("remote")),
	)
}

// newReleaser builds a Releaser wired to the configured tag store.
func newReleaser(cmd *cli.Command) (*releaser.Releaser, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	opts := []releaser.Option{
		releaser.WithRemote(cfg.Remote()),
	}
	if cmd.Bool("yes") {
		opts = append(opts, releaser.WithAutoConfirm(true))
	}

	return releaser.New(storeFactory(""), opts...), nil
}
