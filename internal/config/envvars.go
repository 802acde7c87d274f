// ABOUTME: Environment handling: .env loading, ${VAR} expansion and GROCER_* overrides
// ABOUTME: Unset ${VAR} references expand to empty; malformed numeric overrides are errors

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"

	pilog "github.com/mauromedda/grocer-go/internal/log"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// LoadDotEnv loads .env from the project root, then from the global dir.
// Variables already set in the process environment are never replaced.
func LoadDotEnv(projectRoot string) {
	for _, path := range []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(GlobalDir(), ".env"),
	} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			pilog.Warn("ignoring %s: %v", path, err)
		}
	}
}

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.DataDir = expandEnv(s.DataDir)
	s.Mode = expandEnv(s.Mode)
	s.Transcript = expandEnv(s.Transcript)
	s.ResponsesFile = expandEnv(s.ResponsesFile)
	s.Theme = expandEnv(s.Theme)
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// applyEnvOverrides copies GROCER_* variables onto s.
func applyEnvOverrides(s *Settings, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("GROCER_DATA", &s.DataDir)
	str("GROCER_MODE", &s.Mode)
	str("GROCER_TRANSCRIPT", &s.Transcript)
	str("GROCER_RESPONSES", &s.ResponsesFile)
	str("GROCER_THEME", &s.Theme)

	if v, ok := lookup("GROCER_THRESHOLD"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing GROCER_THRESHOLD: %w", err)
		}
		s.Threshold = f
	}
	if v, ok := lookup("GROCER_MAX_ATTEMPTS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing GROCER_MAX_ATTEMPTS: %w", err)
		}
		s.MaxAttempts = n
	}
	if v, ok := lookup("GROCER_SEED"); ok && v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing GROCER_SEED: %w", err)
		}
		s.Seed = n
	}
	if v, ok := lookup("GROCER_VERBOSE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing GROCER_VERBOSE: %w", err)
		}
		s.Verbose = b
	}
	return nil
}
