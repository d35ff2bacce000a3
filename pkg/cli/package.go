/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/relctl/pkg/archiver"
	"github.com/NVIDIA/relctl/pkg/defaults"
	"github.com/NVIDIA/relctl/pkg/serializer"
	"github.com/NVIDIA/relctl/pkg/version"
)

func packageCmd() *cli.Command {
	return &cli.Command{
		Name:                  "package",
		EnableShellCompletion: true,
		Usage:                 "Build platform distribution archives for a release",
		Description: `Collect the configured artifacts into one archive per platform
target, named <app>-<platform>-<version>.zip for Windows targets and
.tar.gz for everything else, plus a checksums.txt with SHA256 digests.

Targets come from the config file:

  app: mygame
  output_dir: build_output
  targets:
    - platform: Linux
      artifacts:
        - dist/mygame
    - platform: Windows
      artifacts:
        - dist/mygame.exe

The version defaults to the latest release tag; pass --set-version to
package an arbitrary version.

# Examples

  relctl package
  relctl package --set-version v1.4.0 --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "set-version",
				Usage: "Version to package (default: latest release tag)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			var v version.Version
			if raw := cmd.String("set-version"); raw != "" {
				if v, err = version.ParseExplicit(raw); err != nil {
					return err
				}
			} else {
				rel, err := newReleaser(cmd)
				if err != nil {
					return err
				}
				latest, tagged, err := rel.Latest(ctx)
				if err != nil {
					return err
				}
				if !tagged {
					return fmt.Errorf("no release tag found; tag a release first or pass --set-version")
				}
				v = latest
			}

			arc, err := archiver.New(cfg)
			if err != nil {
				return err
			}

			pctx, cancel := context.WithTimeout(ctx, defaults.PackageTimeout)
			defer cancel()

			res, err := arc.Package(pctx, v)
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)
			return ser.Serialize(ctx, res)
		},
	}
}
