package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/video-stream/transcript/internal/auth"
	"github.com/video-stream/transcript/internal/transcript"
)

const sampleVTT = "WEBVTT\n\n1\n00:00:00.000 --> 00:00:02.000\nHello there.\n\n2\n00:00:02.000 --> 00:00:04.500\nSecond line\ncontinued.\n"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("LOG_LEVEL", "error")

	convertFormat, convertOutput = "json", ""
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.vtt")
	if err := os.WriteFile(path, []byte(sampleVTT), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "", "convert", path, "--video-id", "v1", "--title", "T", "--url", "http://example/v1")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	var doc transcript.Document
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if doc.VideoID != "v1" || len(doc.Cues) != 2 || doc.Cues[1].Text != "Second line continued." {
		t.Errorf("doc = %+v", doc)
	}
}

func TestConvertStdinYAMLToFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.yaml")

	if _, err := run(t, sampleVTT, "convert", "-", "--video-id", "v1", "--title", "T", "--url", "u", "-f", "yaml", "-o", outPath); err != nil {
		t.Fatalf("convert: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "text: Hello there.") {
		t.Errorf("yaml output = %s", data)
	}
}

func TestConvertErrors(t *testing.T) {
	if _, err := run(t, "", "convert", "missing.vtt", "--video-id", "v", "--title", "t", "--url", "u"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := run(t, sampleVTT, "convert", "-", "--video-id", "v", "--title", "t", "--url", "u", "-f", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestConvertRejectsEmptyValues(t *testing.T) {
	_, err := run(t, sampleVTT, "convert", "-", "--video-id", "", "--title", "t", "--url", "")
	if err == nil {
		t.Fatal("expected error for empty required flags")
	}
	if !strings.Contains(err.Error(), "--video-id, --url") {
		t.Errorf("error = %v", err)
	}

	if _, err := run(t, "", "convert", "-", "--video-id", "v", "--title", "t", "--url", "u"); err == nil || !strings.Contains(err.Error(), "input") {
		t.Errorf("empty input: error = %v", err)
	}
}

func TestWriteDocument(t *testing.T) {
	doc := transcript.Build(sampleVTT, "v", "t", "u")
	if err := writeDocument(doc, filepath.Join(t.TempDir(), "missing-dir", "out.json")); err == nil {
		t.Error("expected create error")
	}

	path := filepath.Join(t.TempDir(), "out.json")
	convertFormat = "json"
	if err := writeDocument(doc, path); err != nil {
		t.Fatalf("writeDocument: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"videoId": "v"`) {
		t.Errorf("output = %s", data)
	}
}

func TestToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	out, err := run(t, "", "token", "--subject", "ingest", "--role", "admin")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	claims, err := auth.NewJWTService("secret").ValidateToken(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("minted token invalid: %v", err)
	}
	if claims.Subject != "ingest" || claims.Role != auth.RoleAdmin {
		t.Errorf("claims = %+v", claims)
	}
}

func TestTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := run(t, "", "token", "--subject", "x", "--role", "client"); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}
