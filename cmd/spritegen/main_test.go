package main

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spritegen/internal/testsupport"
)

var (
	colorRed  = color.NRGBA{R: 255, A: 255}
	colorBlue = color.NRGBA{B: 255, A: 255}
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.toml")
}

func TestPresetsCommandListsAllPresets(t *testing.T) {
	out, err := runCommand(t, "presets")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	for _, name := range []string{"flying", "idle", "walking", "pecking", "eating", "surprised", "hungry", "hatching"} {
		if !strings.Contains(out, name) {
			t.Fatalf("preset %q missing from output:\n%s", name, out)
		}
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("expected target path in output, got %q", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[video]") {
		t.Fatal("sample config missing [video] section")
	}
}

func TestConfigInitRefusesExistingFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(target, []byte("# existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error for existing file without --overwrite")
	}
	if _, err := runCommand(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigShowRedactsKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-verysecretvalue")

	out, err := runCommand(t, "config", "show", "-c", missingConfig(t))
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if strings.Contains(out, "sk-verysecretvalue") {
		t.Fatalf("api key leaked into output:\n%s", out)
	}
	if !strings.Contains(out, "sk-v...alue") {
		t.Fatalf("expected redacted key in output:\n%s", out)
	}
}

func TestComposeCommandBuildsSheet(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	framesDir := t.TempDir()
	testsupport.WriteFrames(t, framesDir, "idle", 2, 16, colorRed)
	testsupport.WriteFrames(t, framesDir, "walking", 3, 16, colorBlue)
	sheetPath := filepath.Join(t.TempDir(), "sheet.png")

	out, err := runCommand(t, "compose",
		"-c", missingConfig(t),
		"--frames-dir", framesDir,
		"--out", sheetPath,
		"--cell-size", "32",
	)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if !strings.Contains(out, "96x64") {
		t.Fatalf("expected 96x64 sheet in output, got %q", out)
	}

	file, err := os.Open(sheetPath)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("decode sheet: %v", err)
	}
	if img.Bounds().Dx() != 96 || img.Bounds().Dy() != 64 {
		t.Fatalf("unexpected sheet bounds %v", img.Bounds())
	}
}

func TestComposeCommandEmptyFramesDir(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := runCommand(t, "compose",
		"-c", missingConfig(t),
		"--frames-dir", t.TempDir(),
	); err == nil {
		t.Fatal("expected error for empty frames directory")
	}
}

func TestGenerateCommandRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := runCommand(t, "generate",
		"-c", missingConfig(t),
		"--image", "bird.png",
	)
	if err == nil {
		t.Fatal("expected error without api key")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Fatalf("expected api key hint, got %v", err)
	}
}

func TestGenerateCommandMissingImage(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	_, err := runCommand(t, "generate",
		"-c", missingConfig(t),
		"-o", t.TempDir(),
		"--image", filepath.Join(t.TempDir(), "missing.png"),
	)
	if err == nil || !strings.Contains(err.Error(), "reference image not found") {
		t.Fatalf("expected reference image error, got %v", err)
	}
}

func TestGenerateCommandRejectsInvalidSize(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	_, err := runCommand(t, "generate",
		"-c", missingConfig(t),
		"--image", "bird.png",
		"--size", "100x100",
	)
	if err == nil || !strings.Contains(err.Error(), "size must be one of") {
		t.Fatalf("expected size validation error, got %v", err)
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"only"}})
	if !strings.Contains(out, "only") {
		t.Fatalf("row value missing from table:\n%s", out)
	}
}

func TestRedactKey(t *testing.T) {
	cases := map[string]string{
		"":                "(unset)",
		"short":           "****",
		"sk-abcdefgh1234": "sk-a...1234",
	}
	for input, want := range cases {
		if got := redactKey(input); got != want {
			t.Fatalf("redactKey(%q) = %q, want %q", input, got, want)
		}
	}
}
