package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/petitemaison/epouvante/internal/newsletter"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version = %q, want %q", out, version)
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	static := filepath.Join(dir, "public")
	writeFile(t, filepath.Join(static, "styles.css"), "body{}")
	writeFile(t, filepath.Join(dir, "epouvante.yaml"), "static:\n  dir: "+static+"\n")
	out := filepath.Join(dir, "dist")

	stdout, err := execute(t, "--config", dir, "export", "--out", out)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(stdout, "Exported 6 pages") {
		t.Errorf("output = %q", stdout)
	}

	for _, name := range []string{
		"index.html",
		"boutique/index.html",
		"fanzine/index.html",
		"communaute/index.html",
		"newsletter/index.html",
		"404.html",
		"static/styles.css",
	} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	page, _ := os.ReadFile(filepath.Join(out, "boutique", "index.html"))
	if !strings.Contains(string(page), `aria-current="page" class="nav-link active" data-link="" href="/boutique"`) {
		t.Error("exported boutique page should mark its nav link active")
	}
	notFound, _ := os.ReadFile(filepath.Join(out, "404.html"))
	if !strings.Contains(string(notFound), "Oops! Page not found") {
		t.Error("404.html should hold the not-found page")
	}
}

func TestExportBadConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "epouvante.yaml"), "log:\n  level: loud\n")

	_, err := execute(t, "--config", dir, "export", "--out", filepath.Join(dir, "dist"))
	if err == nil || !strings.Contains(err.Error(), "E101") {
		t.Errorf("err = %v, want E101", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "site.yaml")
	writeFile(t, file, "server:\n  port: 8081\n")

	cfg, err := loadConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 8081 {
		t.Errorf("port = %d, want 8081", cfg.Server.Port)
	}
	if cfg.Path() != file {
		t.Errorf("Path() = %q", cfg.Path())
	}
}

func TestSubscribersCommand(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "subscribers.db")
	writeFile(t, filepath.Join(dir, "epouvante.yaml"), "newsletter:\n  store: bolt\n  bolt_path: "+db+"\n")

	store, err := newsletter.OpenBolt(db)
	if err != nil {
		t.Fatal(err)
	}
	svc := newsletter.NewService(store, nil)
	if _, err := svc.Subscribe(context.Background(), "ed@example.com"); err != nil {
		t.Fatal(err)
	}
	store.Close()

	out, err := execute(t, "--config", dir, "subscribers")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "ed@example.com\t") {
		t.Errorf("output = %q", out)
	}
}

func TestPublishRequiresBucket(t *testing.T) {
	t.Setenv("AWS_REGION", "eu-west-3")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIDEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("EPOUVANTE_PUBLISH_BUCKET", "")

	_, err := execute(t, "--config", t.TempDir(), "publish")
	if err == nil || !strings.Contains(err.Error(), "E182") {
		t.Errorf("err = %v, want E182", err)
	}
}
