/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/relctl/pkg/serializer"
	"github.com/NVIDIA/relctl/pkg/version"
)

func nextCmd() *cli.Command {
	return &cli.Command{
		Name:                  "next",
		EnableShellCompletion: true,
		Usage:                 "Preview the next release version without tagging",
		Description: fmt.Sprintf(`Compute the version the next release would get, without creating
or pushing anything. The bump kind defaults to patch.

# Examples

  relctl next
  relctl next minor
  relctl next major --format json

Supported bump kinds: %s.`, version.SupportedBumpKinds()),
		ArgsUsage: "[major|minor|patch]",
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			kind, err := version.ParseBumpKind(cmd.Args().First())
			if err != nil {
				return err
			}

			rel, err := newReleaser(cmd)
			if err != nil {
				return err
			}

			res, err := rel.Next(ctx, kind)
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)
			return ser.Serialize(ctx, res)
		},
	}
}
