// Package device owns all state shared between the two mutators: the entry
// list, the selection cursor, the interaction mode, the dirty flag, and the
// power timers. Button handling runs on the UI loop while HTTP handlers run
// on server goroutines, so every entry point takes the device mutex and
// applies its mutation to completion before releasing it — a half-applied
// list is never observable.
package device

import (
	"sync"
	"time"

	"grindpad.dev/grindpad/internal/logging/events"
	"grindpad.dev/grindpad/internal/store"
)

// Mode governs how button input is interpreted.
type Mode int

const (
	ModeNavigate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "navigate"
}

// Redraw tells the display consumer how much of the panel to repaint.
// Ordered by cost: a larger value subsumes a smaller one.
type Redraw int

const (
	// RedrawNone means nothing visible changed.
	RedrawNone Redraw = iota
	// RedrawStatus restricts the repaint to the status-message region.
	RedrawStatus
	// RedrawPartial is the fast partial-update pass over the whole panel.
	RedrawPartial
	// RedrawFull is the slow, flashing, high-quality refresh. Only bulk
	// replace and sleep/wake transitions request it.
	RedrawFull
)

const (
	defaultSaveDelay  = 3 * time.Second
	defaultSleepAfter = 5 * time.Minute
	statusLifetime    = 5 * time.Second
)

// Saver is the slice of the persistence gateway the device needs.
type Saver interface {
	Save([]store.Entry) error
}

// BatteryFunc reports the battery charge in percent.
type BatteryFunc func() int

// Options configures a Device.
type Options struct {
	Entries    []store.Entry
	Gateway    Saver
	SaveDelay  time.Duration
	SleepAfter time.Duration
	Battery    BatteryFunc
	Now        func() time.Time
}

// Device is the single owned context for the settings list and everything
// that keeps its two mutators consistent.
type Device struct {
	mu sync.Mutex

	store  *store.Store
	cursor store.Cursor
	mode   Mode

	asleep      bool
	savedCursor store.Cursor

	needsSave       bool
	lastEdit        time.Time
	lastInteraction time.Time

	status       string
	statusExpire time.Time
	redraw       Redraw

	gateway    Saver
	battery    BatteryFunc
	saveDelay  time.Duration
	sleepAfter time.Duration
	now        func() time.Time
}

// New constructs a Device. An empty entry list boots with the seed entry so
// the panel never shows an empty screen.
func New(opts Options) *Device {
	entries := opts.Entries
	if len(entries) == 0 {
		entries = []store.Entry{{Name: "Espresso", Value: 15}}
	}
	d := &Device{
		store:      store.New(entries),
		gateway:    opts.Gateway,
		battery:    opts.Battery,
		saveDelay:  opts.SaveDelay,
		sleepAfter: opts.SleepAfter,
		now:        opts.Now,
	}
	if d.saveDelay <= 0 {
		d.saveDelay = defaultSaveDelay
	}
	if d.sleepAfter <= 0 {
		d.sleepAfter = defaultSleepAfter
	}
	if d.now == nil {
		d.now = time.Now
	}
	if d.battery == nil {
		d.battery = func() int { return 100 }
	}
	if d.store.Len() > 0 {
		d.cursor = 0
	} else {
		d.cursor = store.NoSelection
	}
	d.savedCursor = store.NoSelection
	d.lastInteraction = d.now()
	d.redraw = RedrawFull
	return d
}

// Snapshot is a point-in-time copy of everything the display needs.
type Snapshot struct {
	Entries   []store.Entry
	Cursor    store.Cursor
	Mode      Mode
	Asleep    bool
	Status    string
	Battery   int
	NeedsSave bool
}

// Snapshot copies the shared state under the lock.
func (d *Device) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Snapshot{
		Entries:   d.store.Entries(),
		Cursor:    d.cursor,
		Mode:      d.mode,
		Asleep:    d.asleep,
		Status:    d.currentStatusLocked(),
		Battery:   d.battery(),
		NeedsSave: d.needsSave,
	}
}

// ConsumeRedraw returns the pending redraw hint and clears it.
func (d *Device) ConsumeRedraw() Redraw {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := d.redraw
	d.redraw = RedrawNone
	return r
}

// Tick advances the save-debounce and sleep timers. The poll loop calls it
// every cycle; it never blocks.
func (d *Device) Tick() {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()

	if d.needsSave && now.Sub(d.lastEdit) >= d.saveDelay {
		d.saveLocked(now)
	}

	if !d.asleep && now.Sub(d.lastInteraction) >= d.sleepAfter {
		d.sleepLocked()
	}

	if d.status != "" && now.After(d.statusExpire) {
		d.status = ""
		d.noteRedrawLocked(RedrawStatus)
	}
}

// saveLocked flushes the list to storage. Failures become a transient
// status message and leave the in-memory list untouched; the dirty flag
// stays set so a later pass retries.
func (d *Device) saveLocked(now time.Time) {
	err := d.gateway.Save(d.store.Entries())
	if err != nil {
		events.Persist.SaveFailed(err)
		d.needsSave = true
		d.lastEdit = now
		d.setStatusLocked("save failed: " + err.Error())
		return
	}
	d.needsSave = false
	d.setStatusLocked("saved")
}

func (d *Device) markDirtyLocked() {
	d.needsSave = true
	d.lastEdit = d.now()
}

func (d *Device) setStatusLocked(text string) {
	d.status = text
	d.statusExpire = d.now().Add(statusLifetime)
	d.noteRedrawLocked(RedrawStatus)
}

func (d *Device) currentStatusLocked() string {
	if d.status != "" && d.now().After(d.statusExpire) {
		d.status = ""
	}
	return d.status
}

func (d *Device) noteRedrawLocked(r Redraw) {
	if r > d.redraw {
		d.redraw = r
	}
}
