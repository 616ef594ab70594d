// Package settings persists the handful of user-facing scalars the game
// consumes: arena topology, steering sensitivity, feedback pulses, and the
// best score. Storage is a small yaml file; every load failure degrades to
// defaults so the game never observes persistence errors.
package settings

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSteerSensitivity = 1.0
	MinSteerSensitivity     = 0.6
	MaxSteerSensitivity     = 1.8
)

type Settings struct {
	Wrap             bool    `yaml:"wrap"`
	SteerSensitivity float64 `yaml:"steer_sensitivity"`
	Feedback         bool    `yaml:"feedback"`
	BestScore        int     `yaml:"best_score"`
}

func Default() *Settings {
	return &Settings{
		Wrap:             true,
		SteerSensitivity: DefaultSteerSensitivity,
		Feedback:         true,
		BestScore:        0,
	}
}

// DefaultPath is the per-user settings file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".torusnake.yml"
	}
	return filepath.Join(home, ".torusnake.yml")
}

// Load reads settings from path. Any failure (missing file, unreadable
// yaml, bad values) yields defaults; out-of-range values are clamped.
func Load(path string) *Settings {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return Default()
	}
	s.sanitize()
	return s
}

// Save writes settings to path. Callers are expected to ignore the error:
// a failed write costs nothing but persistence.
func Save(path string, s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RecordBest updates the best score monotonically. Returns true when the
// stored value changed and should be re-saved.
func (s *Settings) RecordBest(score int) bool {
	if score <= s.BestScore {
		return false
	}
	s.BestScore = score
	return true
}

func (s *Settings) sanitize() {
	if s.SteerSensitivity < MinSteerSensitivity {
		s.SteerSensitivity = MinSteerSensitivity
	}
	if s.SteerSensitivity > MaxSteerSensitivity {
		s.SteerSensitivity = MaxSteerSensitivity
	}
	if s.BestScore < 0 {
		s.BestScore = 0
	}
}
