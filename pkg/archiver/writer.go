// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package archiver

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writeZip creates a zip archive at path containing the given files.
// Entries carry the file's base name so the archive extracts flat.
func writeZip(ctx context.Context, path string, files []string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			zw.Close()
			return err
		}

		info, err := os.Stat(file)
		if err != nil {
			zw.Close()
			return fmt.Errorf("failed to stat %s: %w", file, err)
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			zw.Close()
			return fmt.Errorf("failed to create zip header for %s: %w", file, err)
		}
		header.Name = filepath.Base(file)
		header.Method = zip.Deflate

		w, err := zw.CreateHeader(header)
		if err != nil {
			zw.Close()
			return fmt.Errorf("failed to create zip entry: %w", err)
		}

		if err := copyFile(w, file); err != nil {
			zw.Close()
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}

	return out.Close()
}

// writeTarGz creates a gzip-compressed tar archive at path containing
// the given files, entries named by base name.
func writeTarGz(ctx context.Context, path string, files []string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	gw := gzip.NewWriter(out)
	tw := tar.NewWriter(gw)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			tw.Close()
			gw.Close()
			return err
		}

		info, err := os.Stat(file)
		if err != nil {
			tw.Close()
			gw.Close()
			return fmt.Errorf("failed to stat %s: %w", file, err)
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			tw.Close()
			gw.Close()
			return fmt.Errorf("failed to create tar header for %s: %w", file, err)
		}
		header.Name = filepath.Base(file)

		if err := tw.WriteHeader(header); err != nil {
			tw.Close()
			gw.Close()
			return fmt.Errorf("failed to write tar header: %w", err)
		}

		if err := copyFile(tw, file); err != nil {
			tw.Close()
			gw.Close()
			return err
		}
	}

	if err := tw.Close(); err != nil {
		gw.Close()
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	if err := gw.Close(); err != nil {
		return fmt.Errorf("failed to finalize compression: %w", err)
	}

	return out.Close()
}

func copyFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to copy %s: %w", path, err)
	}

	return nil
}
