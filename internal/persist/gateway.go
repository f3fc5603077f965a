// Package persist reads and writes the settings file. The format is one
// `name,value` line per entry in store order; the first comma is the
// delimiter and everything after it is numeric. Parsing is deliberately
// lenient so a partially written file still yields its readable entries.
package persist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"grindpad.dev/grindpad/internal/logging/events"
	"grindpad.dev/grindpad/internal/store"
)

var (
	// ErrUnavailable is returned when the storage medium cannot be opened.
	ErrUnavailable = errors.New("persist: storage unavailable")
	// ErrWriteFailed is returned when writing the settings file fails partway.
	ErrWriteFailed = errors.New("persist: write failed")
)

// Gateway persists the entry list to a single settings file. Mutators never
// call Save directly — the device's debounce policy does, plus the remote
// gateway after each discrete mutation.
type Gateway struct {
	path    string
	archive *Archive
}

// NewGateway constructs a Gateway for the given file path. archive may be
// nil to disable snapshots.
func NewGateway(path string, archive *Archive) *Gateway {
	return &Gateway{path: path, archive: archive}
}

// Load reads the settings file. Lines without a comma are skipped,
// non-numeric values parse as 0, and reading stops at the entry cap even if
// more lines exist. A missing or unreadable file yields nil; the caller
// seeds a default.
func (g *Gateway) Load() []store.Entry {
	f, err := os.Open(g.path)
	if err != nil {
		return nil
	}
	defer f.Close()

	entries := make([]store.Entry, 0, store.MaxEntries)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if len(entries) == store.MaxEntries {
			break
		}
		name, raw, found := strings.Cut(scanner.Text(), ",")
		if !found {
			continue
		}
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			value = 0
		}
		entries = append(entries, store.Entry{Name: name, Value: value})
	}
	events.Persist.Loaded(len(entries))
	return entries
}

// Save overwrites the settings file with the given entries. The file is
// written to a temp path and renamed into place so a power loss mid-write
// leaves the previous file intact. A successful save is also archived as a
// snapshot when an archive is configured.
func (g *Gateway) Save(entries []store.Entry) error {
	tmp := g.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(f, "%s,%d\n", e.Name, e.Value); err != nil {
			f.Close()
			os.Remove(tmp)
			return fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := os.Rename(tmp, g.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	events.Persist.Saved(len(entries))
	if g.archive != nil {
		if err := g.archive.Snapshot(entries); err != nil {
			// Snapshots are best effort; the primary save already landed.
			events.Persist.SaveFailed(err)
		}
	}
	return nil
}
