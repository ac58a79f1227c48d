// Package snapshot persists catalog fetches as dated CSV files and
// decides, per update policy, whether a source needs re-fetching.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"frbcat/lib/frame"
)

// Policy controls how often a source is re-fetched from the network.
type Policy string

const (
	// Always re-fetches on every run.
	Always Policy = "always"
	// Monthly re-fetches only when no snapshot exists for the
	// current month.
	Monthly Policy = "monthly"
	// Never always reads the newest local snapshot.
	Never Policy = "never"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case Always, Monthly, Never:
		return Policy(s), nil
	}
	return "", fmt.Errorf("unknown update policy %q, want always, monthly or never", s)
}

var ErrNoSnapshot = errors.New("no local snapshot available")

// Dir is a directory of `<source>_YYYY-MM-DD.csv` snapshots.
type Dir struct {
	Path string
}

func (d Dir) pattern(source, datePattern string) string {
	return filepath.Join(d.Path, fmt.Sprintf("%s_%s.csv", source, datePattern))
}

// ShouldFetch reports whether the source must be fetched from the
// network under the given policy.
func (d Dir) ShouldFetch(source string, policy Policy, now time.Time) (bool, error) {
	switch policy {
	case Always:
		return true, nil
	case Never:
		return false, nil
	}
	matches, err := filepath.Glob(d.pattern(source, now.Format("2006-01")+"-??"))
	if err != nil {
		return false, err
	}
	return len(matches) == 0, nil
}

// Save writes the frame as this run's snapshot, overwriting any
// earlier snapshot from the same day. Last write wins.
func (d Dir) Save(source string, now time.Time, f *frame.Frame) (string, error) {
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(d.Path, fmt.Sprintf("%s_%s.csv", source, now.Format("2006-01-02")))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := f.WriteCSV(file); err != nil {
		return "", err
	}
	return path, nil
}

// Latest loads the newest snapshot of the source, returning its path
// alongside the frame. ErrNoSnapshot means none has ever been saved.
func (d Dir) Latest(source string) (*frame.Frame, string, error) {
	matches, err := filepath.Glob(d.pattern(source, "*"))
	if err != nil {
		return nil, "", err
	}
	if len(matches) == 0 {
		return nil, "", ErrNoSnapshot
	}

	newest := ""
	var newestMod time.Time
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return nil, "", err
		}
		if newest == "" || info.ModTime().After(newestMod) {
			newest = m
			newestMod = info.ModTime()
		}
	}

	file, err := os.Open(newest)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	f, err := frame.ReadCSV(file)
	if err != nil {
		return nil, "", fmt.Errorf("read snapshot %s: %w", newest, err)
	}
	return f, newest, nil
}
