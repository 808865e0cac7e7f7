package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Chdir(base)

	target := filepath.Join(base, "conf", "galerija.toml")
	out, _, err := runCLI(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration to "+target)
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file: %v", err)
	}

	if _, _, err := runCLI(t, "", "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config exists")
	}

	out, _, err = runCLI(t, target, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+target)
	requireContains(t, out, "Gallery root:")
	requireContains(t, out, "Configuration valid")
}

func TestInvalidConfigFails(t *testing.T) {
	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Chdir(base)

	path := filepath.Join(base, "bad.toml")
	writeTestFile(t, path, "[linking]\nauto_threshold = 5\n")
	if _, _, err := runCLI(t, path, "gallery"); err == nil {
		t.Fatal("expected validation error")
	}
	writeTestFile(t, path, "[unknown]\nkey = 1\n")
	if _, _, err := runCLI(t, path, "config", "validate"); err == nil {
		t.Fatal("expected unknown field error")
	}
}
