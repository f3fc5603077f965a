package device

import (
	"fmt"

	"grindpad.dev/grindpad/internal/logging/events"
	"grindpad.dev/grindpad/internal/store"
)

// Local input state machine. Three pre-debounced click edges plus one
// long-press edge. Invalid presses are silent no-ops; the only feedback
// channel is the unchanged display.

// PressUp moves the cursor up in Navigate mode and increments the selected
// value in Edit mode.
func (d *Device) PressUp() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.wakeOnButtonLocked("up") {
		return
	}
	switch d.mode {
	case ModeNavigate:
		if next := d.cursor.Up(); next != d.cursor {
			d.cursor = next
			d.noteRedrawLocked(RedrawPartial)
		}
	case ModeEdit:
		d.adjustSelectedLocked(+1)
	}
}

// PressDown moves the cursor down in Navigate mode and decrements the
// selected value in Edit mode.
func (d *Device) PressDown() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.wakeOnButtonLocked("down") {
		return
	}
	switch d.mode {
	case ModeNavigate:
		if next := d.cursor.Down(d.store.Len()); next != d.cursor {
			d.cursor = next
			d.noteRedrawLocked(RedrawPartial)
		}
	case ModeEdit:
		d.adjustSelectedLocked(-1)
	}
}

// PressSelect enters Edit mode on a valid selection and commits back to
// Navigate when already editing. Leaving Edit does not itself change a
// value or mark the list dirty.
func (d *Device) PressSelect() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.wakeOnButtonLocked("select") {
		return
	}
	switch d.mode {
	case ModeNavigate:
		if d.cursor.Valid(d.store.Len()) {
			d.mode = ModeEdit
			events.Input.ModeChange(d.mode.String(), int(d.cursor))
			d.noteRedrawLocked(RedrawPartial)
		}
	case ModeEdit:
		d.mode = ModeNavigate
		events.Input.ModeChange(d.mode.String(), int(d.cursor))
		d.noteRedrawLocked(RedrawPartial)
	}
}

// LongPressDelete removes the selected entry. Only honored in Navigate
// mode; the cursor is re-clamped and the device stays in Navigate.
func (d *Device) LongPressDelete() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.wakeOnButtonLocked("delete") {
		return
	}
	if d.mode != ModeNavigate {
		return
	}
	removed, err := d.store.Delete(int(d.cursor))
	if err != nil {
		return
	}
	events.Store.Delete(int(d.cursor), removed.Name)
	d.cursor = d.cursor.Clamp(d.store.Len())
	d.markDirtyLocked()
	d.noteRedrawLocked(RedrawPartial)
}

// AddEntry appends a new entry from the local add form, seeded with value 0
// when the caller passes none, and selects it. Returns false when the list
// is at capacity.
func (d *Device) AddEntry(name string, value int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.wakeOnButtonLocked("add") {
		return false
	}
	idx, err := d.store.Add(name, value)
	if err != nil {
		d.setStatusLocked("list is full")
		return false
	}
	events.Store.Add(idx, name, value)
	d.cursor = store.Cursor(idx)
	d.mode = ModeNavigate
	d.markDirtyLocked()
	d.noteRedrawLocked(RedrawPartial)
	return true
}

// DefaultName generates the next unused "Coffee N" label for the add form.
func (d *Device) DefaultName() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	used := make(map[string]struct{}, d.store.Len())
	for _, name := range d.store.Names() {
		used[name] = struct{}{}
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("Coffee %d", n)
		if _, taken := used[candidate]; !taken {
			return candidate
		}
	}
}

// Wake resumes from the halt state: the saved cursor is restored when it
// still addresses an entry (the list may have changed shape via a remote
// sync while asleep), otherwise the cursor defaults to the first entry.
func (d *Device) Wake() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.wakeLocked()
	d.lastInteraction = d.now()
}

func (d *Device) wakeLocked() {
	if !d.asleep {
		return
	}
	d.asleep = false
	if d.savedCursor.Valid(d.store.Len()) {
		d.cursor = d.savedCursor
	} else if d.store.Len() > 0 {
		d.cursor = 0
	} else {
		d.cursor = store.NoSelection
	}
	d.savedCursor = store.NoSelection
	d.mode = ModeNavigate
	events.Power.Wake(int(d.cursor))
	d.noteRedrawLocked(RedrawFull)
}

// wakeOnButtonLocked records the interaction edge and, when asleep, turns
// the press into a wake signal that is otherwise swallowed.
func (d *Device) wakeOnButtonLocked(button string) bool {
	d.lastInteraction = d.now()
	events.Input.Button(button, d.mode.String(), int(d.cursor))
	if d.asleep {
		d.wakeLocked()
		return true
	}
	return false
}

// adjustSelectedLocked nudges the selected entry's value by delta, clamped
// into the allowed band. Any actual change marks the list dirty and
// restarts the save-debounce window.
func (d *Device) adjustSelectedLocked(delta int) {
	entry, ok := d.store.At(int(d.cursor))
	if !ok {
		return
	}
	next := store.ClampValue(entry.Value + delta)
	if next == entry.Value {
		return
	}
	if err := d.store.Update(int(d.cursor), next); err != nil {
		return
	}
	events.Store.Update(int(d.cursor), next)
	d.markDirtyLocked()
	d.noteRedrawLocked(RedrawPartial)
}

// sleepLocked parks the device: the cursor is saved for restore, the
// visible selection is cleared, and the panel gets one final full refresh
// before the halt.
func (d *Device) sleepLocked() {
	d.savedCursor = d.cursor
	d.cursor = store.NoSelection
	d.mode = ModeNavigate
	d.asleep = true
	events.Power.Sleep(int(d.savedCursor))
	d.noteRedrawLocked(RedrawFull)
}
