package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/roamly/roamly/internal/sheet"
)

// writeConfig writes content to a config file in a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestRenderSnapTable(t *testing.T) {
	c := sheet.NewCatalog([]float64{0.25, 0.5, 0.9}, 40, 0, 1)

	out := ansi.Strip(renderSnapTable(c))

	for _, want := range []string{"INDEX", "POSITION", "30.00", "20.00", "4.00", "hidden", "39.00", "usable 40.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("table should contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "clamped") {
		t.Error("unclamped catalog should not be marked clamped")
	}
}

func TestRenderSnapTable_Clamped(t *testing.T) {
	c := sheet.NewCatalog([]float64{0.5}, 10, 12, 1)

	out := ansi.Strip(renderSnapTable(c))
	if !strings.Contains(out, "(clamped)") {
		t.Errorf("catalog with keyboard over the viewport should be marked clamped:\n%s", out)
	}
}

func TestRunSnaps(t *testing.T) {
	origPath, origViewport, origKeyboard := configPath, snapsViewport, snapsKeyboard
	defer func() { configPath, snapsViewport, snapsKeyboard = origPath, origViewport, origKeyboard }()

	configPath = writeConfig(t, "snap_points: [0.5, 1]\nhandle_height: 2\n")
	snapsViewport = 20
	snapsKeyboard = 4

	var out bytes.Buffer
	snapsCmd.SetOut(&out)
	defer snapsCmd.SetOut(nil)

	if err := runSnaps(snapsCmd, nil); err != nil {
		t.Fatalf("runSnaps() error = %v", err)
	}

	got := ansi.Strip(out.String())
	// usable 16: 0.5 -> 8, 1 -> 0, hidden 18
	for _, want := range []string{"8.00", "0.00", "18.00", "keyboard 4.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("output should contain %q:\n%s", want, got)
		}
	}
}

func TestRunSnaps_InvalidConfig(t *testing.T) {
	origPath := configPath
	defer func() { configPath = origPath }()

	configPath = writeConfig(t, "snap_points: []\n")
	if err := runSnaps(snapsCmd, nil); err == nil {
		t.Error("runSnaps() should reject an invalid config")
	}
}
