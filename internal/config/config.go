// ABOUTME: Settings loading with global + project config merge for the grocery agent
// ABOUTME: JSON files, .env loading, ${VAR} expansion and GROCER_* environment overrides

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Mode values select the terminal front end.
const (
	ModeAuto = "auto"
	ModeLine = "line"
	ModeTUI  = "tui"
)

// ErrInvalidSetting is wrapped by Validate failures.
var ErrInvalidSetting = errors.New("invalid setting")

// Settings holds the merged configuration.
type Settings struct {
	DataDir        string  `json:"data_dir,omitempty"`
	Mode           string  `json:"mode,omitempty"`
	Threshold      float64 `json:"threshold,omitempty"`
	MaxAttempts    int     `json:"max_attempts,omitempty"`
	Seed           uint64  `json:"seed,omitempty"`
	Transcript     string  `json:"transcript,omitempty"`
	ResponsesFile  string  `json:"responses_file,omitempty"`
	WatchResponses bool    `json:"watch_responses,omitempty"`
	Theme          string  `json:"theme,omitempty"`
	Verbose        bool    `json:"verbose,omitempty"`
}

// Load reads .env files, then merges global and project-local settings.
// Project settings override global settings; GROCER_* variables override both.
func Load(projectRoot string) (*Settings, error) {
	LoadDotEnv(projectRoot)

	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	if err := applyEnvOverrides(merged, os.LookupEnv); err != nil {
		return nil, err
	}
	return merged, nil
}

// Validate checks value ranges after every override has been applied.
func (s *Settings) Validate() error {
	switch s.Mode {
	case "", ModeAuto, ModeLine, ModeTUI:
	default:
		return fmt.Errorf("%w: mode %q (want auto, line or tui)", ErrInvalidSetting, s.Mode)
	}
	if s.Threshold < 0 || s.Threshold >= 1 {
		return fmt.Errorf("%w: threshold %v not in [0, 1)", ErrInvalidSetting, s.Threshold)
	}
	if s.MaxAttempts < 0 {
		return fmt.Errorf("%w: max attempts %d is negative", ErrInvalidSetting, s.MaxAttempts)
	}
	return nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.DataDir != "" {
		result.DataDir = project.DataDir
	}
	if project.Mode != "" {
		result.Mode = project.Mode
	}
	if project.Threshold != 0 {
		result.Threshold = project.Threshold
	}
	if project.MaxAttempts != 0 {
		result.MaxAttempts = project.MaxAttempts
	}
	if project.Seed != 0 {
		result.Seed = project.Seed
	}
	if project.Transcript != "" {
		result.Transcript = project.Transcript
	}
	if project.ResponsesFile != "" {
		result.ResponsesFile = project.ResponsesFile
	}
	if project.WatchResponses {
		result.WatchResponses = true
	}
	if project.Theme != "" {
		result.Theme = project.Theme
	}
	if project.Verbose {
		result.Verbose = true
	}

	return &result
}
