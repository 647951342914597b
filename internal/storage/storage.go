package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/multierr"

	"github.com/Tiliavir/exercise-for-good/internal/model"
	"github.com/Tiliavir/exercise-for-good/internal/timecalc"
)

// HomeEnv overrides the data directory when set.
const HomeEnv = "EFG_HOME"

// ErrCorrupt is returned when a day file cannot be decoded.
var ErrCorrupt = errors.New("corrupt day file")

// BaseDir returns the root data directory (~/.efg or $EFG_HOME).
func BaseDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".efg"), nil
}

// Store keeps one JSON file per calendar day below its base directory.
// Records returned by Fetch or passed to Insert are tracked, and Save writes
// all of them back.
type Store struct {
	base    string
	tracked map[string]*model.DailyRecord
}

func New(base string) *Store {
	return &Store{base: base, tracked: map[string]*model.DailyRecord{}}
}

// dayFilePath returns the path for the given date's JSON file.
func dayFilePath(base string, t time.Time) string {
	return filepath.Join(base, t.Format("2006"), t.Format("01"), t.Format("02")+".json")
}

// Fetch returns the record stored for day, or nil if there is none.
func (s *Store) Fetch(day time.Time) (*model.DailyRecord, error) {
	key := day.Format(model.DayLayout)
	if r, ok := s.tracked[key]; ok {
		return r, nil
	}
	r, err := loadDay(s.base, day)
	if err != nil || r == nil {
		return nil, err
	}
	s.tracked[key] = r
	return r, nil
}

// Insert starts tracking a new record. It is written on the next Save.
func (s *Store) Insert(r *model.DailyRecord) {
	s.tracked[r.Key()] = r
}

// Save writes every tracked record.
func (s *Store) Save() error {
	keys := make([]string, 0, len(s.tracked))
	for k := range s.tracked {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := saveDay(s.base, *s.tracked[k]); err != nil {
			return err
		}
	}
	return nil
}

// LoadMonth returns all records stored for the month containing t, ordered
// by date.
func (s *Store) LoadMonth(t time.Time) ([]model.DailyRecord, error) {
	first, last := timecalc.MonthRange(t)
	var records []model.DailyRecord
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		r, err := s.Fetch(d)
		if err != nil {
			return nil, err
		}
		if r != nil {
			records = append(records, *r)
		}
	}
	return records, nil
}

func loadDay(base string, t time.Time) (*model.DailyRecord, error) {
	path := dayFilePath(base, t)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var r model.DailyRecord
	if err := json.Unmarshal(data, &r); err != nil {
		// Back up corrupt file and abort.
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return nil, fmt.Errorf("%w %s (backed up to %s): %v", ErrCorrupt, path, backupPath, err)
	}
	return &r, nil
}

func saveDay(base string, r model.DailyRecord) error {
	path := dayFilePath(base, r.Date)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		err = fmt.Errorf("storage error renaming temp file: %w", err)
		return multierr.Append(err, os.Remove(tmpPath))
	}
	return nil
}
