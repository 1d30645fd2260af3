package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDashboardsCommand(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "projects/ai.md", "daily/", "intro.md")

	stdout, _, err := execute(t, "dashboards", "--root", root)
	if err != nil {
		t.Fatalf("dashboards returned error: %v", err)
	}

	want := strings.Join([]string{
		"generated: " + filepath.Join(root, "README.md"),
		"generated: " + filepath.Join(root, "daily", "README.md"),
		"generated: " + filepath.Join(root, "projects", "README.md"),
		"",
	}, "\n")
	if stdout != want {
		t.Errorf("stdout =\n%s\nwant\n%s", stdout, want)
	}

	readme := readFile(t, filepath.Join(root, "README.md"))
	if !strings.HasPrefix(readme, "<h1>📘 My Personal Dashboard</h1>\n") {
		t.Errorf("root dashboard should use the default title, got:\n%s", readme)
	}
	if !strings.Contains(readme, `href="#/intro"`) {
		t.Error("root dashboard should link intro page")
	}

	daily := readFile(t, filepath.Join(root, "daily", "README.md"))
	if !strings.HasPrefix(daily, "<h1>📅 Daily Log</h1>\n") {
		t.Errorf("daily dashboard should use the shipped override, got:\n%s", daily)
	}
}

func TestDashboardsCommand_RerunWarnsAboutKeptIndexes(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "page.md")

	if _, _, err := execute(t, "dashboards", "--root", root); err != nil {
		t.Fatalf("first run: %v", err)
	}
	before := readFile(t, filepath.Join(root, "README.md"))

	stdout, stderr, err := execute(t, "dashboards", "--root", root)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if stdout != "" {
		t.Errorf("expected nothing generated, got %q", stdout)
	}
	if !strings.Contains(stderr, "--overwrite") || !strings.Contains(stderr, filepath.Join(root, "README.md")) {
		t.Errorf("expected skipped-index warning on stderr, got %q", stderr)
	}
	if readFile(t, filepath.Join(root, "README.md")) != before {
		t.Error("README changed without --overwrite")
	}
}

func TestDashboardsCommand_Overwrite(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "page.md")
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("# hand written\n"), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := execute(t, "dashboards", "--root", root, "--overwrite")
	if err != nil {
		t.Fatalf("dashboards returned error: %v", err)
	}
	if !strings.Contains(stdout, "generated: "+filepath.Join(root, "README.md")) {
		t.Errorf("expected root README to be regenerated, got %q", stdout)
	}
	if strings.Contains(readFile(t, filepath.Join(root, "README.md")), "hand written") {
		t.Error("--overwrite should replace the existing content")
	}
}

func TestDashboardsCommand_ConfigFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "recipes/soup.md")

	configYAML := `dashboard:
  title: "Kitchen Wiki"
  welcome: "Everything we cook."
title_overrides:
  recipes: "🍳 Recipes"
`
	if err := os.WriteFile(filepath.Join(root, ".docnav.yaml"), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := execute(t, "dashboards", "--root", root); err != nil {
		t.Fatalf("dashboards returned error: %v", err)
	}

	readme := readFile(t, filepath.Join(root, "README.md"))
	if !strings.HasPrefix(readme, "<h1>Kitchen Wiki</h1>\n\nEverything we cook.\n") {
		t.Errorf("config title/welcome not applied:\n%s", readme)
	}
	if !strings.Contains(readme, "<h2>🍳 Recipes</h2>") {
		t.Errorf("config override not applied:\n%s", readme)
	}
	if strings.Contains(readme, ".docnav") {
		t.Error("config file should never be listed")
	}
}

func TestDashboardsCommand_FlagOverridesConfig(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "page.md")
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("# keep?\n"), 0644); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(t.TempDir(), "docnav.yaml")
	if err := os.WriteFile(configPath, []byte("dashboard:\n  overwrite: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := execute(t, "dashboards", "--root", root, "--config", configPath, "--overwrite=false"); err != nil {
		t.Fatalf("dashboards returned error: %v", err)
	}
	if readFile(t, filepath.Join(root, "README.md")) != "# keep?\n" {
		t.Error("--overwrite=false should win over the config file")
	}
}

func TestDashboardsCommand_DebugLogging(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "page.md")

	_, stderr, err := execute(t, "--log-level", "debug", "dashboards", "--root", root)
	if err != nil {
		t.Fatalf("dashboards returned error: %v", err)
	}
	if !strings.Contains(stderr, "[DEBUG] visiting "+root) {
		t.Errorf("expected debug walk messages, got %q", stderr)
	}
	if !strings.Contains(stderr, "dashboards complete: 1 generated, 0 skipped") {
		t.Errorf("expected run summary, got %q", stderr)
	}
}
