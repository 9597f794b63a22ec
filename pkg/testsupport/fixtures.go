// Package testsupport holds helpers shared by package tests: fixture and
// golden file access, and decoding of JSON API responses.
package testsupport

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// LoadFixture reads a fixture file relative to the test package directory.
func LoadFixture(t testing.TB, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture from %s: %v", path, err)
	}
	return data
}

// LoadFixtureJSON reads a JSON fixture into dest.
func LoadFixtureJSON(t testing.TB, path string, dest any) {
	t.Helper()

	if err := json.Unmarshal(LoadFixture(t, path), dest); err != nil {
		t.Fatalf("failed to unmarshal JSON fixture from %s: %v", path, err)
	}
}

// WriteFixture writes content under a fresh temp dir and returns its path.
// The directory is removed when the test ends.
func WriteFixture(t testing.TB, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

// CompareWithGolden compares actual with the golden file at path. Set
// UPDATE_GOLDEN=1 to rewrite golden files; a missing file is created.
func CompareWithGolden(t testing.TB, path string, actual []byte) {
	t.Helper()

	expected, err := os.ReadFile(path)
	if os.Getenv("UPDATE_GOLDEN") == "1" || os.IsNotExist(err) {
		writeGolden(t, path, actual)
		return
	}
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", path, err)
	}
	if !bytes.Equal(actual, expected) {
		t.Errorf("output mismatch for %s:\nexpected:\n%s\nactual:\n%s", path, expected, actual)
	}
}

func writeGolden(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write golden file %s: %v", path, err)
	}
}

// FixturePath joins filename onto the package testdata directory.
func FixturePath(filename string) string {
	return filepath.Join("testdata", filename)
}

// GoldenPath joins filename onto testdata/golden.
func GoldenPath(filename string) string {
	return filepath.Join("testdata", "golden", filename)
}

// DecodeObject decodes a JSON object body.
func DecodeObject(t testing.TB, r io.Reader) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		t.Fatalf("failed to decode JSON object: %v", err)
	}
	return out
}

// DecodeList decodes a JSON array body.
func DecodeList(t testing.TB, r io.Reader) []map[string]any {
	t.Helper()

	var out []map[string]any
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		t.Fatalf("failed to decode JSON array: %v", err)
	}
	return out
}

// ErrorBody returns the "error" member of an error envelope, failing the test
// when the body is not one.
func ErrorBody(t testing.TB, r io.Reader) map[string]any {
	t.Helper()

	body := DecodeObject(t, r)
	env, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected an error envelope, got %v", body)
	}
	return env
}

// JSONBody encodes v for use as a request body.
func JSONBody(t testing.TB, v any) io.Reader {
	t.Helper()

	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to encode request body: %v", err)
	}
	return bytes.NewReader(raw)
}
