package device

import (
	"errors"
	"strings"

	"grindpad.dev/grindpad/internal/logging/events"
	"grindpad.dev/grindpad/internal/store"
)

// ErrEmptyName rejects remote adds without a usable name.
var ErrEmptyName = errors.New("device: name must not be empty")

// Remote mutation entry points. Each applies synchronously under the lock
// and saves immediately — remote edits are discrete, infrequent events and
// the caller expects a definitive result, so they bypass the debounce.
// Remote activity never touches the inactivity timer; the network API is
// meant for editing while physically away from the device, which should
// still sleep on its own schedule.

// RemoteAdd appends a named entry.
func (d *Device) RemoteAdd(name string, value int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	idx, err := d.store.Add(name, value)
	if err != nil {
		return err
	}
	events.Store.Add(idx, name, value)
	d.noteRedrawLocked(RedrawPartial)
	d.saveLocked(d.now())
	return nil
}

// RemoteUpdate assigns a value to the entry at index. Unlike local edits,
// which clamp, a remote value outside the band is rejected. The index check
// runs first.
func (d *Device) RemoteUpdate(index, value int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.store.At(index); !ok {
		return store.ErrOutOfRange
	}
	if value < store.MinValue || value > store.MaxValue {
		return store.ErrInvalidValue
	}
	if err := d.store.Update(index, value); err != nil {
		return err
	}
	events.Store.Update(index, value)
	d.noteRedrawLocked(RedrawPartial)
	d.saveLocked(d.now())
	return nil
}

// RemoteDelete removes the entry at index and re-clamps the cursor.
func (d *Device) RemoteDelete(index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	removed, err := d.store.Delete(index)
	if err != nil {
		return err
	}
	events.Store.Delete(index, removed.Name)
	// An Edit session is bound to the entry under the cursor. A delete at
	// or below the selection shifts a different entry into that slot, so
	// the session ends rather than re-attach to a stranger.
	if d.mode == ModeEdit && index <= int(d.cursor) {
		d.mode = ModeNavigate
		events.Input.ModeChange(d.mode.String(), int(d.cursor))
	}
	d.cursor = d.cursor.Clamp(d.store.Len())
	d.noteRedrawLocked(RedrawPartial)
	d.saveLocked(d.now())
	return nil
}

// RemoteSync replaces the whole list. Nameless entries are dropped and the
// batch is truncated to capacity. This is the one path that requests the
// slow full-quality refresh: the entire visible list may have changed
// shape, and a deliberate bulk action can afford the flash.
func (d *Device) RemoteSync(entries []store.Entry) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.store.ReplaceAll(entries)
	events.Store.Replace(d.store.Len())
	// The whole list may have changed identity under the cursor; any Edit
	// session in flight no longer addresses the entry it started on.
	if d.mode == ModeEdit {
		d.mode = ModeNavigate
		events.Input.ModeChange(d.mode.String(), int(d.cursor))
	}
	d.cursor = d.cursor.Clamp(d.store.Len())
	d.noteRedrawLocked(RedrawFull)
	d.saveLocked(d.now())
	return nil
}
