package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testRelease struct {
	Tag    string `json:"tag" yaml:"tag"`
	Pushed bool   `json:"pushed" yaml:"pushed"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testRelease{
		{Tag: "v1.2.3", Pushed: true},
		{Tag: "v1.3.0", Pushed: false},
	}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	// Verify it's valid JSON
	var result []testRelease
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}

	if result[0].Tag != "v1.2.3" || !result[0].Pushed {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := testRelease{Tag: "v1.2.3", Pushed: true}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	// Verify it's valid YAML
	var result testRelease
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	if result.Tag != "v1.2.3" || !result.Pushed {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := testRelease{Tag: "v1.2.3", Pushed: true}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "FIELD") || !strings.Contains(out, "VALUE") {
		t.Errorf("Table output missing header: %s", out)
	}
	if !strings.Contains(out, "Tag") || !strings.Contains(out, "v1.2.3") {
		t.Errorf("Table output missing data: %s", out)
	}
}

func TestWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)

	if err := writer.Serialize(context.Background(), testRelease{Tag: "v0.1.0"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testRelease
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Fallback output is not JSON: %v", err)
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "release.yaml")

	ser := NewFileWriterOrStdout(FormatYAML, path)
	if err := ser.Serialize(context.Background(), testRelease{Tag: "v2.0.0"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if closer, ok := ser.(Closer); ok {
		if err := closer.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if !strings.Contains(string(data), "v2.0.0") {
		t.Errorf("File output missing data: %s", data)
	}

	// Empty path falls back to stdout without error.
	if w := NewFileWriterOrStdout(FormatJSON, "  "); w == nil {
		t.Error("expected stdout fallback writer, got nil")
	}
}

func TestFormatIsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("xml"), true},
		{Format(""), true},
	}

	for _, tt := range tests {
		if got := tt.format.IsUnknown(); got != tt.want {
			t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.want)
		}
	}
}
