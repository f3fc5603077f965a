package persist

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"grindpad.dev/grindpad/internal/logging/events"
	"grindpad.dev/grindpad/internal/store"
)

const (
	snapshotPrefix    = "settings-"
	snapshotRetention = 20
)

// Archive keeps timestamped copies of the settings file in a diskv store so
// a bulk replace gone wrong can be recovered by hand. It is not an undo
// mechanism; nothing in the device reads snapshots back.
type Archive struct {
	d   *diskv.Diskv
	now func() time.Time
}

// NewArchive creates an Archive rooted at dir.
func NewArchive(dir string) *Archive {
	return &Archive{
		d: diskv.New(diskv.Options{
			BasePath:     dir,
			CacheSizeMax: 64 * 1024,
		}),
		now: time.Now,
	}
}

// Snapshot writes the entries under a timestamped key and prunes old
// snapshots beyond the retention count.
func (a *Archive) Snapshot(entries []store.Entry) error {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s,%d\n", e.Name, e.Value)
	}
	key := fmt.Sprintf("%s%020d", snapshotPrefix, a.now().UnixNano())
	if err := a.d.Write(key, []byte(b.String())); err != nil {
		return fmt.Errorf("persist: snapshot: %w", err)
	}
	events.Persist.Snapshot(key)
	a.prune()
	return nil
}

// Keys returns the snapshot keys, oldest first.
func (a *Archive) Keys() []string {
	keys := make([]string, 0, snapshotRetention)
	for key := range a.d.Keys(nil) {
		if strings.HasPrefix(key, snapshotPrefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func (a *Archive) prune() {
	keys := a.Keys()
	for len(keys) > snapshotRetention {
		if err := a.d.Erase(keys[0]); err != nil {
			return
		}
		keys = keys[1:]
	}
}
