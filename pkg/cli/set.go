/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/relctl/pkg/version"
)

func setCmd() *cli.Command {
	return &cli.Command{
		Name:                  "set",
		EnableShellCompletion: true,
		Usage:                 "Release an explicit version",
		Description: `Tag and push an explicit version instead of bumping the latest tag.
The version must be strictly newer than the current release.

# Examples

  relctl set 1.4.0
  relctl set v2.0.0 --yes`,
		ArgsUsage: "<version>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one version argument, got %d", cmd.Args().Len())
			}

			next, err := version.ParseExplicit(cmd.Args().First())
			if err != nil {
				return err
			}

			rel, err := newReleaser(cmd)
			if err != nil {
				return err
			}

			_, err = rel.ReleaseVersion(ctx, next)
			return err
		},
	}
}
