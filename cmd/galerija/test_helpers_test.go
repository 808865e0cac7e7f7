package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir     string
	galleryRoot string
	contentDir  string
	linksFile   string
	configPath  string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv("USER", "tester")
	t.Chdir(base)

	env := &cliTestEnv{
		baseDir:     base,
		galleryRoot: filepath.Join(base, "site", "public", "images", "Galerija"),
		contentDir:  filepath.Join(base, "site", "src", "content"),
		linksFile:   filepath.Join(base, "site", "src", "data", "contentGalleryLinks.json"),
		configPath:  filepath.Join(base, "galerija.toml"),
	}

	writeTestFile(t, filepath.Join(env.galleryRoot, "2022", "Memorijal Zlatibor 13-14.09.2022", "1.jpg"), "x")
	writeTestFile(t, filepath.Join(env.galleryRoot, "2022", "Memorijal Zlatibor 13-14.09.2022", "2.jpg"), "x")
	writeTestFile(t, filepath.Join(env.galleryRoot, "2022", "loose.jpg"), "x")
	writeTestFile(t, filepath.Join(env.galleryRoot, "2021", "Kamp Divčibare 01.07.2021", "a.png"), "x")

	writeTestFile(t, filepath.Join(env.contentDir, "vesti", "vest_001.json"),
		`{"title": "Memorijal Zlatibor", "date": "2022-09-14"}`)
	writeTestFile(t, filepath.Join(env.contentDir, "turniri", "turnir_001.json"),
		`{"title": "Kamp Divčibare", "date": "2021-07-01"}`)
	writeTestFile(t, filepath.Join(env.contentDir, "turniri", "turnir_002.json"),
		`{"title": "Nepoznato xyz qwv", "date": null}`)

	config := fmt.Sprintf(`[paths]
gallery_root = %q
content_dir = %q
links_file = %q
log_dir = %q

[logging]
level = "warn"
`, env.galleryRoot, env.contentDir, env.linksFile, filepath.Join(base, "logs"))
	writeTestFile(t, env.configPath, config)
	return env
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	return runCLIWithInput(t, configPath, "", args...)
}

func runCLIWithInput(t *testing.T, configPath, input string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var in io.Reader = strings.NewReader(input)
	cmd.SetIn(in)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q\noutput:\n%s", want, output)
	}
}
