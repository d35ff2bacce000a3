// Package defaults centralizes default timeout and naming constants used
// across the relctl packages.
package defaults
