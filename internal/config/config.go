package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"

	"github.com/Tiliavir/exercise-for-good/internal/pacing"
	"github.com/Tiliavir/exercise-for-good/internal/session"
	"github.com/Tiliavir/exercise-for-good/internal/storage"
	"github.com/Tiliavir/exercise-for-good/internal/tracker"
)

// Config is the root configuration for efg, stored in ~/.efg/config.toml.
type Config struct {
	Pacing  PacingConfig  `toml:"pacing"`
	Targets TargetsConfig `toml:"targets"`
	Session SessionConfig `toml:"session"`
	Log     LogConfig     `toml:"log"`
}

// PacingConfig sets the daily active window, [ActiveStartHour, ActiveEndHour).
type PacingConfig struct {
	ActiveStartHour int `toml:"active_start_hour"`
	ActiveEndHour   int `toml:"active_end_hour"`
}

// TargetsConfig controls how each day's target is drawn.
type TargetsConfig struct {
	Min int `toml:"min"`
	Max int `toml:"max"`
	// RestWeekday is an English weekday name, e.g. "sunday".
	RestWeekday string `toml:"rest_weekday"`
}

type SessionConfig struct {
	ResetAfter string `toml:"reset_after"`
}

type LogConfig struct {
	Level    string `toml:"level"`
	File     string `toml:"file"`
	JSON     bool   `toml:"json"`
	ToStderr bool   `toml:"to_stderr"`
}

const (
	DefaultRestWeekday = "sunday"
	DefaultLogLevel    = "warn"
)

// Default returns a Config pre-filled with the built-in defaults.
func Default() Config {
	return Config{
		Pacing: PacingConfig{
			ActiveStartHour: pacing.DefaultStartHour,
			ActiveEndHour:   pacing.DefaultEndHour,
		},
		Targets: TargetsConfig{
			Min:         tracker.DefaultMinTarget,
			Max:         tracker.DefaultMaxTarget,
			RestWeekday: DefaultRestWeekday,
		},
		Session: SessionConfig{ResetAfter: session.DefaultResetAfter.String()},
		Log:     LogConfig{Level: DefaultLogLevel},
	}
}

// configTemplate is the annotated config written on first run.
const configTemplate = `# efg configuration – ~/.efg/config.toml
#
# All settings are optional; remove a key to fall back to its default.

[pacing]
# Push-ups are spread evenly over [active_start_hour, active_end_hour).
active_start_hour = 8
active_end_hour = 21

[targets]
# Each day's target is drawn once, uniformly from [min, max].
min = 70
max = 230
# No target on this weekday.
rest_weekday = "sunday"

[session]
# How long "efg session" keeps a burst total before resetting it.
reset_after = "700ms"

[log]
# trace, debug, info, warn, error
level = "warn"
# Rotated log file; empty logs to stderr only.
file = ""
json = false
# Also copy file logs to stderr.
to_stderr = false
`

// FilePath returns the path to the config file, honouring EFG_HOME.
func FilePath() (string, error) {
	if dir := os.Getenv(storage.HomeEnv); dir != "" {
		return filepath.Join(dir, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".efg", "config.toml"), nil
}

// Load reads the config file, creating it with annotated defaults on first
// run.
func Load() (Config, error) {
	path, err := FilePath()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

// LoadFile reads and validates the config at path. A missing file is
// created from the annotated template.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, os.ErrNotExist) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			log.Warnf("could not create config file %s: %v", path, writeErr)
		}
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Warnf("unknown config key %q in %s", key.String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges that decoding cannot.
func (c Config) Validate() error {
	if _, err := pacing.New(0, c.Pacing.ActiveStartHour, c.Pacing.ActiveEndHour); err != nil {
		return err
	}
	if c.Targets.Min < 0 || c.Targets.Max < c.Targets.Min {
		return fmt.Errorf("invalid target range %d–%d", c.Targets.Min, c.Targets.Max)
	}
	if _, err := c.RestWeekday(); err != nil {
		return err
	}
	if _, err := c.ResetAfter(); err != nil {
		return err
	}
	return nil
}

// RestWeekday parses Targets.RestWeekday.
func (c Config) RestWeekday() (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(c.Targets.RestWeekday))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("invalid rest_weekday %q", c.Targets.RestWeekday)
}

// ResetAfter parses Session.ResetAfter.
func (c Config) ResetAfter() (time.Duration, error) {
	d, err := time.ParseDuration(c.Session.ResetAfter)
	if err != nil {
		return 0, fmt.Errorf("invalid reset_after %q: %w", c.Session.ResetAfter, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("reset_after must be positive, got %s", d)
	}
	return d, nil
}

// TrackerOptions converts the config into tracker options.
func (c Config) TrackerOptions() (tracker.Options, error) {
	wd, err := c.RestWeekday()
	if err != nil {
		return tracker.Options{}, err
	}
	return tracker.Options{
		MinTarget:   c.Targets.Min,
		MaxTarget:   c.Targets.Max,
		RestWeekday: wd,
		StartHour:   c.Pacing.ActiveStartHour,
		EndHour:     c.Pacing.ActiveEndHour,
	}, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
