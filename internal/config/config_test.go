package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("os.Getwd() failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("os.Chdir() failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("POMBOM_DIR", "")

	cfg, err := LoadConfigFn()
	if err != nil {
		t.Fatalf("LoadConfigFn() failed: %v", err)
	}
	if cfg.Dir != "." {
		t.Errorf("Dir = %q, want %q", cfg.Dir, ".")
	}
	if cfg.Output != "pom_new.xml" {
		t.Errorf("Output = %q, want %q", cfg.Output, "pom_new.xml")
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	content := "dir: /srv/project\noutput: pom.bom.xml\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	chdir(t, dir)
	t.Setenv("POMBOM_DIR", "")

	cfg, err := LoadConfigFn()
	if err != nil {
		t.Fatalf("LoadConfigFn() failed: %v", err)
	}
	if cfg.Dir != "/srv/project" {
		t.Errorf("Dir = %q, want %q", cfg.Dir, "/srv/project")
	}
	if cfg.Output != "pom.bom.xml" {
		t.Errorf("Output = %q, want %q", cfg.Output, "pom.bom.xml")
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("dir: /ignored\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	chdir(t, dir)
	t.Setenv("POMBOM_DIR", "/srv/from-env")

	cfg, err := LoadConfigFn()
	if err != nil {
		t.Fatalf("LoadConfigFn() failed: %v", err)
	}
	if cfg.Dir != "/srv/from-env" {
		t.Errorf("Dir = %q, want env override %q", cfg.Dir, "/srv/from-env")
	}
}

func TestLoadConfigEnvTraversalRejected(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("POMBOM_DIR", "../../etc")

	if _, err := LoadConfigFn(); err == nil {
		t.Error("LoadConfigFn() accepted a traversal path, want error")
	}
}

func TestLoadConfigUnknownFieldRejected(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("no-such-field: 1\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	chdir(t, dir)
	t.Setenv("POMBOM_DIR", "")

	if _, err := LoadConfigFn(); err == nil {
		t.Error("LoadConfigFn() accepted an unknown field, want error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		wantErr bool
	}{
		{"default", "pom_new.xml", false},
		{"custom", "pom.bom.xml", false},
		{"would overwrite originals", "pom.xml", true},
		{"contains path separator", "out/pom.xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Dir: ".", Output: tt.output}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
