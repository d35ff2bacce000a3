/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/relctl/pkg/git"
	"github.com/NVIDIA/relctl/pkg/logging"
	"github.com/NVIDIA/relctl/pkg/version"
)

const (
	name           = "relctl"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	buildVersion = versionDefault
	commit       = "unknown"
	date         = "unknown"
)

// storeFactory creates the tag store commands operate on.
// Tests replace it with an in-memory store.
var storeFactory = func(dir string) git.TagStore {
	return git.NewCLI(dir)
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               buildVersion,
		EnableShellCompletion: true,
		Usage:                 "Tag and publish semantic version releases",
		Description: fmt.Sprintf(`Resolve the latest release tag in the current repository, bump it,
and publish the result as an immutable git tag.

Version: %s
Commit:  %s
Built:   %s

Run without arguments for a patch release, or pass the bump kind:

  relctl            # patch release
  relctl minor      # minor release
  relctl major      # major release

Only the new tag is pushed; branches and other tags are untouched.`,
			buildVersion, commit, date),
		Flags: []cli.Flag{
			configFlag,
			logLevelFlag,
			remoteFlag,
			yesFlag,
		},
		Commands: []*cli.Command{
			latestCmd(),
			nextCmd(),
			setCmd(),
			packageCmd(),
		},
		ShellComplete: commandLister,
		Before:        initLogger,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return fmt.Errorf("expected at most one bump kind argument, got %d", cmd.Args().Len())
			}

			kind, err := version.ParseBumpKind(cmd.Args().First())
			if err != nil {
				return err
			}

			rel, err := newReleaser(cmd)
			if err != nil {
				return err
			}

			_, err = rel.Release(ctx, kind)
			return err
		},
	}
}

// initLogger configures slog before any command executes so overrides
// like --log-level take effect first.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logging.SetDefaultStructuredLoggerWithLevel(name, buildVersion, cmd.String("log-level"))
	slog.Debug("starting",
		"name", name,
		"version", buildVersion,
		"commit", commit,
		"date", date,
	)
	return ctx, nil
}

// commandLister prints the visible subcommand names for shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	for _, c := range cmd.Commands {
		if c.Hidden {
			continue
		}
		fmt.Println(c.Name)
	}
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
