package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()
	if !s.Wrap {
		t.Error("wrap should default to enabled")
	}
	if s.SteerSensitivity != DefaultSteerSensitivity {
		t.Errorf("sensitivity = %v, want %v", s.SteerSensitivity, DefaultSteerSensitivity)
	}
	if !s.Feedback {
		t.Error("feedback should default to enabled")
	}
	if s.BestScore != 0 {
		t.Errorf("best score = %d, want 0", s.BestScore)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if *s != *Default() {
		t.Errorf("missing file: got %+v, want defaults", s)
	}
}

func TestLoadGarbageYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	if err := os.WriteFile(path, []byte("{{{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	s := Load(path)
	if *s != *Default() {
		t.Errorf("garbage file: got %+v, want defaults", s)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	in := &Settings{Wrap: false, SteerSensitivity: 1.4, Feedback: false, BestScore: 42}
	if err := Save(path, in); err != nil {
		t.Fatal(err)
	}
	out := Load(path)
	if *out != *in {
		t.Errorf("round trip: got %+v, want %+v", out, in)
	}
}

func TestLoadClampsOutOfRangeValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want float64
	}{
		{"too high", "steer_sensitivity: 5.0\n", MaxSteerSensitivity},
		{"too low", "steer_sensitivity: 0.1\n", MinSteerSensitivity},
		{"in range", "steer_sensitivity: 1.3\n", 1.3},
	}
	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "settings.yml")
		if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
			t.Fatal(err)
		}
		if s := Load(path); s.SteerSensitivity != tt.want {
			t.Errorf("%s: sensitivity = %v, want %v", tt.name, s.SteerSensitivity, tt.want)
		}
	}
}

func TestLoadNegativeBestScoreClamped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	if err := os.WriteFile(path, []byte("best_score: -3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if s := Load(path); s.BestScore != 0 {
		t.Errorf("best score = %d, want 0", s.BestScore)
	}
}

func TestRecordBestMonotonic(t *testing.T) {
	s := Default()
	if !s.RecordBest(5) || s.BestScore != 5 {
		t.Errorf("first record failed: %+v", s)
	}
	if s.RecordBest(3) {
		t.Error("lower score must not overwrite best")
	}
	if s.BestScore != 5 {
		t.Errorf("best score regressed to %d", s.BestScore)
	}
	if !s.RecordBest(9) || s.BestScore != 9 {
		t.Errorf("higher score not recorded: %+v", s)
	}
}
