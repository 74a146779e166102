package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallrun.toml")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.WallRun.WallRunSpeed != 800 || s.WallRun.MinWallRunSpeed != 250 {
		t.Fatalf("expected default wall run speeds, got %+v", s.WallRun)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected settings file to be created: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error reloading settings: %v", err)
	}
	if reloaded.Movement.SprintSpeed != 600 {
		t.Fatalf("expected sprint speed 600 after reload, got %v", reloaded.Movement.SprintSpeed)
	}
	if len(reloaded.WallRun.VerticalCurve) != 3 {
		t.Fatalf("expected 3 curve keys after reload, got %d", len(reloaded.WallRun.VerticalCurve))
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallrun.toml")
	data := []byte("[wallrun]\nwall_run_speed = 950.0\n\n[network]\ncombine_moves = false\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("unable to write settings: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.WallRun.WallRunSpeed != 950 {
		t.Fatalf("expected overridden wall run speed 950, got %v", s.WallRun.WallRunSpeed)
	}
	if s.Network.CombineMoves {
		t.Fatalf("expected move combining to be disabled")
	}
	if s.WallRun.MinWallRunSpeed != 250 {
		t.Fatalf("expected untouched fields to keep defaults, got %v", s.WallRun.MinWallRunSpeed)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallrun.toml")
	if err := os.WriteFile(path, []byte("[wallrun\n"), 0644); err != nil {
		t.Fatalf("unable to write settings: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected malformed settings to fail decoding")
	}
}

func TestVerticalCurveAsset(t *testing.T) {
	c, err := Default().WallRun.VerticalCurveAsset()
	if err != nil || c == nil {
		t.Fatalf("expected default curve, got %v (err=%v)", c, err)
	}
	if v := c.Value(1.5); v != -250 {
		t.Fatalf("expected -250 at t=1.5, got %v", v)
	}

	empty := WallRun{}
	if c, err := empty.VerticalCurveAsset(); c != nil || err != nil {
		t.Fatalf("expected no curve for empty keys, got %v (err=%v)", c, err)
	}
}
