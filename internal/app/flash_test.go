package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/roamly/roamly/internal/errors"
	"github.com/roamly/roamly/internal/ui"
)

func TestSaveConfigOrFlash_Success(t *testing.T) {
	m := testModelWithSize(t, testConfig(t), 80, 24)

	cmd := m.saveConfigOrFlash()
	if cmd != nil {
		t.Error("expected nil cmd on successful save, got non-nil")
	}
}

func TestSaveConfigOrFlash_Error(t *testing.T) {
	cfg := testConfig(t)
	// A regular file where the config directory should be makes the save fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	cfg.SetPath(filepath.Join(blocker, "config.yaml"))
	m := testModelWithSize(t, cfg, 80, 24)

	cmd := m.saveConfigOrFlash()
	if cmd == nil {
		t.Error("expected non-nil cmd on failed save, got nil")
	}
	if !m.footer.HasFlash() {
		t.Error("failed save should flash an error")
	}
}

func TestFlashErr_KindSelectsType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ui.FlashType
	}{
		{"invalid request", errors.SnapIndexOutOfRange(7, 4), ui.FlashWarning},
		{"closed sheet", errors.SheetClosed("sheet.Hide"), ui.FlashError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModelWithSize(t, testConfig(t), 80, 24)
			if cmd := m.flashErr(tt.err); cmd == nil {
				t.Fatal("flashErr should return the dismiss tick")
			}
			f := m.footer.Flash()
			if f == nil {
				t.Fatal("flashErr should set a flash")
			}
			if f.Type != tt.want {
				t.Errorf("flash type = %v, want %v", f.Type, tt.want)
			}
			if f.Text != errors.Message(tt.err) {
				t.Errorf("flash text = %q, want %q", f.Text, errors.Message(tt.err))
			}
		})
	}
}
