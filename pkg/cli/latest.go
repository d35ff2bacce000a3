/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/relctl/pkg/serializer"
)

func latestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "latest",
		EnableShellCompletion: true,
		Usage:                 "Print the latest release version",
		Description: `Resolve and print the highest release tag in the repository.

Tags that do not match the strict v<major>.<minor>.<patch> form are
ignored. When no release tag exists the sentinel v0.0.0 is printed.

# Examples

  relctl latest
  relctl latest --format json --output latest.json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			rel, err := newReleaser(cmd)
			if err != nil {
				return err
			}

			latest, tagged, err := rel.Latest(ctx)
			if err != nil {
				return err
			}

			out := struct {
				Version string `json:"version" yaml:"version"`
				Tagged  bool   `json:"tagged" yaml:"tagged"`
			}{
				Version: latest.String(),
				Tagged:  tagged,
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)
			return ser.Serialize(ctx, out)
		},
	}
}
