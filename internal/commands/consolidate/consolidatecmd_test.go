package consolidate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indaco/pombom/internal/config"
)

const testRootPOM = `<project xmlns="http://maven.apache.org/POM/4.0.0">
  <groupId>com.example</groupId>
  <artifactId>parent</artifactId>
  <version>1.0.0</version>
  <properties>
    <junit.version>4.13.2</junit.version>
  </properties>
  <modules>
    <module>core</module>
  </modules>
</project>`

const testModulePOM = `<project xmlns="http://maven.apache.org/POM/4.0.0">
  <artifactId>core</artifactId>
  <dependencies>
    <dependency>
      <groupId>junit</groupId>
      <artifactId>junit</artifactId>
      <version>${junit.version}</version>
    </dependency>
  </dependencies>
</project>`

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "core"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pom.xml"), []byte(testRootPOM), 0o644); err != nil {
		t.Fatalf("write root pom: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "core", "pom.xml"), []byte(testModulePOM), 0o644); err != nil {
		t.Fatalf("write module pom: %v", err)
	}
	return dir
}

func TestRun_ReturnsCommand(t *testing.T) {
	cmd := Run(&config.Config{Dir: ".", Output: "pom_new.xml"})

	if cmd.Name != "consolidate" {
		t.Errorf("Name = %q, want %q", cmd.Name, "consolidate")
	}
	if cmd.Usage == "" {
		t.Error("Usage should not be empty")
	}

	flagNames := []string{"dir", "output", "dry-run", "yes"}
	for _, name := range flagNames {
		found := false
		for _, flag := range cmd.Flags {
			if flag.Names()[0] == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected flag %q not found", name)
		}
	}
}

func TestConsolidateCommand(t *testing.T) {
	dir := writeFixture(t)
	cmd := Run(&config.Config{Dir: ".", Output: "pom_new.xml"})

	err := cmd.Run(context.Background(), []string{"consolidate", "--dir", dir, "--yes"})
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	parent, err := os.ReadFile(filepath.Join(dir, "pom_new.xml"))
	if err != nil {
		t.Fatalf("parent output missing: %v", err)
	}
	if !strings.Contains(string(parent), "<junit.version>4.13.2</junit.version>") {
		t.Errorf("parent output missing resolved junit.version property:\n%s", parent)
	}

	stripped, err := os.ReadFile(filepath.Join(dir, "core", "pom_new.xml"))
	if err != nil {
		t.Fatalf("module output missing: %v", err)
	}
	if strings.Contains(string(stripped), "${junit.version}") {
		t.Errorf("module output still pins a version:\n%s", stripped)
	}
}

func TestConsolidateCommandDryRun(t *testing.T) {
	dir := writeFixture(t)
	cmd := Run(&config.Config{Dir: ".", Output: "pom_new.xml"})

	err := cmd.Run(context.Background(), []string{"consolidate", "--dir", dir, "--dry-run"})
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "pom_new.xml")); !os.IsNotExist(err) {
		t.Error("dry run wrote the parent output file")
	}
}

func TestConsolidateCommandRejectsOverwrite(t *testing.T) {
	dir := writeFixture(t)
	cmd := Run(&config.Config{Dir: ".", Output: "pom_new.xml"})

	err := cmd.Run(context.Background(), []string{"consolidate", "--dir", dir, "--output", "pom.xml", "--yes"})
	if err == nil {
		t.Error("command accepted --output pom.xml, want validation error")
	}
}

func TestConsolidateCommandMissingParent(t *testing.T) {
	cmd := Run(&config.Config{Dir: ".", Output: "pom_new.xml"})

	err := cmd.Run(context.Background(), []string{"consolidate", "--dir", t.TempDir(), "--yes"})
	if err == nil {
		t.Error("command succeeded without a parent pom.xml, want error")
	}
}
