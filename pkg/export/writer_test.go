package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHeaderBlock(t *testing.T) {
	header := HeaderBlock(testRunContext(), "SQL01")

	for _, want := range []string{
		"tester",
		"sqlscribe export",
		"Server: SQL01",
		"Date: 2026-03-14 09:26:53",
		DocumentationURL,
	} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q:\n%s", want, header)
		}
	}
	if !strings.HasPrefix(header, "/*") || !strings.Contains(header, "*/") {
		t.Errorf("header is not a comment block:\n%s", header)
	}
}

func TestWriteScripts_CreatesFileWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.sql")
	target := &Target{Type: TargetFile, Path: path}

	n, err := writeScripts(target, EncodingUTF8, "-- header\n", "SELECT 1\nGO\n", true)
	if err != nil {
		t.Fatalf("writeScripts() error = %v", err)
	}
	if n == 0 {
		t.Error("writeScripts() reported zero bytes written")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "-- header\nSELECT 1\nGO\n" {
		t.Errorf("file content = %q", data)
	}
	if int64(len(data)) != n {
		t.Errorf("bytes written = %d, file size = %d", n, len(data))
	}
}

func TestWriteScripts_AppendsWithoutHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.sql")
	target := &Target{Type: TargetFile, Path: path}

	if _, err := writeScripts(target, EncodingUTF8, "-- header\n", "first\n", true); err != nil {
		t.Fatalf("first writeScripts() error = %v", err)
	}
	if _, err := writeScripts(target, EncodingUTF8, "-- header\n", "second\n", false); err != nil {
		t.Fatalf("second writeScripts() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	content := string(data)
	if strings.Count(content, "-- header") != 1 {
		t.Errorf("header count = %d, want 1:\n%s", strings.Count(content, "-- header"), content)
	}
	if !strings.HasSuffix(content, "first\nsecond\n") {
		t.Errorf("bodies out of order or missing:\n%s", content)
	}
}

func TestWriteScripts_PreservesExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.sql")
	if err := os.WriteFile(path, []byte("-- preexisting\n"), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	target := &Target{Type: TargetFile, Path: path, Append: true}
	if _, err := writeScripts(target, EncodingUTF8, "-- header\n", "body\n", true); err != nil {
		t.Fatalf("writeScripts() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "-- preexisting\n-- header\nbody\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestWriteScripts_UnwritableDirectory(t *testing.T) {
	target := &Target{Type: TargetFile, Path: filepath.Join(t.TempDir(), "missing", "out.sql")}

	_, err := writeScripts(target, EncodingUTF8, "h", "s", true)
	if err == nil {
		t.Fatal("writeScripts() expected error for missing directory")
	}
	if _, ok := err.(*WriteError); !ok {
		t.Errorf("error type = %T, want *WriteError", err)
	}
}
