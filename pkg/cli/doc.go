// Package cli implements the command-line interface for the relctl release tool.
//
// # Overview
//
// The relctl CLI tags and publishes semantic version releases for the
// repository it runs in. It resolves the latest v<major>.<minor>.<patch>
// tag, bumps it, asks for confirmation, creates the tag, and pushes only
// that tag to the configured remote. It also builds platform distribution
// archives for a tagged release.
//
// # Commands
//
// Running the tool without a subcommand performs a release:
//
//	relctl [major|minor|patch] [--remote origin] [--yes]
//
// The bump kind defaults to patch. Only a case-insensitive "y" at the
// confirmation prompt proceeds; anything else cancels without touching
// the repository.
//
// latest - Print the latest release version:
//
//	relctl latest [--format yaml|json|table] [--output FILE]
//
// Prints v0.0.0 when the repository has no release tag yet.
//
// next - Preview the next version without tagging:
//
//	relctl next [major|minor|patch]
//
// set - Release an explicit version:
//
//	relctl set v1.4.0
//
// The version must be strictly newer than the current release.
//
// package - Build platform distribution archives:
//
//	relctl package [--set-version v1.4.0]
//
// Archives one file set per configured platform target and writes a
// checksums.txt next to them.
//
// # Global Flags
//
//	--config       Config file path (default: .release.yaml)
//	--remote       Git remote the release tag is pushed to (default: origin)
//	--yes, -y      Skip the confirmation prompt
//	--log-level    Log level: debug, info, warn, error (default: info)
//
// # Version Information
//
// Build-time version information is injected via ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/relctl/pkg/cli.buildVersion=1.0.0'"
package cli
