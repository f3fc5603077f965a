package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"grindpad.dev/grindpad/internal/device"
	"grindpad.dev/grindpad/internal/store"
)

type nopSaver struct{}

func (nopSaver) Save([]store.Entry) error { return nil }

func newTestHarness(entries []store.Entry) (*Harness, *device.Device) {
	dev := device.New(device.Options{Entries: entries, Gateway: nopSaver{}})
	return NewHarness(NewModel(dev, 40, 12)), dev
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeysDriveNavigation(t *testing.T) {
	h, dev := newTestHarness([]store.Entry{
		{Name: "Espresso", Value: 15},
		{Name: "V60", Value: 22},
	})
	h.Send(keyRune('j'))
	if got := dev.Snapshot().Cursor; got != 1 {
		t.Fatalf("expected cursor 1 after j, got %d", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyUp})
	if got := dev.Snapshot().Cursor; got != 0 {
		t.Fatalf("expected cursor 0 after up, got %d", got)
	}
}

func TestEnterTogglesEditMode(t *testing.T) {
	h, dev := newTestHarness([]store.Entry{{Name: "Espresso", Value: 15}})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if dev.Snapshot().Mode != device.ModeEdit {
		t.Fatal("expected Edit mode after enter")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyUp})
	if got := dev.Snapshot().Entries[0].Value; got != 16 {
		t.Fatalf("expected value 16, got %d", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if dev.Snapshot().Mode != device.ModeNavigate {
		t.Fatal("expected Navigate mode after commit")
	}
}

func TestDeleteKey(t *testing.T) {
	h, dev := newTestHarness([]store.Entry{
		{Name: "a", Value: 1},
		{Name: "b", Value: 2},
	})
	h.Send(keyRune('d'))
	snap := dev.Snapshot()
	if len(snap.Entries) != 1 || snap.Entries[0].Name != "b" {
		t.Fatalf("unexpected entries after delete: %v", snap.Entries)
	}
}

func TestAddFormFlow(t *testing.T) {
	h, dev := newTestHarness([]store.Entry{{Name: "Espresso", Value: 15}})
	h.Send(keyRune('a'))
	if h.Model().form == nil {
		t.Fatal("expected add form open")
	}
	if got := h.Model().form.Value(); got != "Coffee 1" {
		t.Fatalf("expected generated default name, got %q", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if h.Model().form != nil {
		t.Fatal("expected form closed after submit")
	}
	snap := dev.Snapshot()
	if len(snap.Entries) != 2 || snap.Entries[1] != (store.Entry{Name: "Coffee 1", Value: 0}) {
		t.Fatalf("unexpected entries after add: %v", snap.Entries)
	}
	if snap.Cursor != 1 {
		t.Fatalf("expected new entry selected, got cursor %d", snap.Cursor)
	}
}

func TestAddFormEscCancels(t *testing.T) {
	h, dev := newTestHarness([]store.Entry{{Name: "Espresso", Value: 15}})
	h.Send(keyRune('a'))
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if h.Model().form != nil {
		t.Fatal("expected form closed after esc")
	}
	if got := len(dev.Snapshot().Entries); got != 1 {
		t.Fatalf("expected store unchanged, got %d entries", got)
	}
}

func TestFormSwallowsNavigationKeys(t *testing.T) {
	h, dev := newTestHarness([]store.Entry{
		{Name: "a", Value: 1},
		{Name: "b", Value: 2},
	})
	h.Send(keyRune('a'))
	h.Send(keyRune('j'))
	if got := dev.Snapshot().Cursor; got != 0 {
		t.Fatalf("typing in the form must not move the cursor, got %d", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

func TestWakeKey(t *testing.T) {
	clock := time.Unix(1700000000, 0)
	dev := device.New(device.Options{
		Entries: []store.Entry{{Name: "a", Value: 1}},
		Gateway: nopSaver{},
		Now:     func() time.Time { return clock },
	})
	h := NewHarness(NewModel(dev, 40, 12))
	clock = clock.Add(6 * time.Minute)
	dev.Tick()
	if !dev.Snapshot().Asleep {
		t.Fatal("expected device asleep")
	}
	h.Send(keyRune('w'))
	if dev.Snapshot().Asleep {
		t.Fatal("expected w to wake the device")
	}
}

func TestTickConsumesRedrawHint(t *testing.T) {
	h, dev := newTestHarness([]store.Entry{{Name: "a", Value: 1}})
	// Boot leaves a full refresh pending; the tick path must claim it.
	h.Model().Update(tickMsg{})
	if got := dev.ConsumeRedraw(); got != device.RedrawNone {
		t.Fatalf("expected tick to consume the boot redraw hint, got %v", got)
	}
	if err := dev.RemoteSync([]store.Entry{{Name: "x", Value: 5}}); err != nil {
		t.Fatalf("sync: %v", err)
	}
	h.Model().Update(tickMsg{})
	if got := dev.ConsumeRedraw(); got != device.RedrawNone {
		t.Fatalf("expected tick to consume the sync redraw hint, got %v", got)
	}
}

func TestSleepWithFormOpenWakesOnKey(t *testing.T) {
	clock := time.Unix(1700000000, 0)
	dev := device.New(device.Options{
		Entries: []store.Entry{{Name: "a", Value: 1}},
		Gateway: nopSaver{},
		Now:     func() time.Time { return clock },
	})
	h := NewHarness(NewModel(dev, 40, 12))
	h.Send(keyRune('a'))
	if h.Model().form == nil {
		t.Fatal("expected add form open")
	}
	clock = clock.Add(6 * time.Minute)
	dev.Tick()
	if !dev.Snapshot().Asleep {
		t.Fatal("expected device asleep with the form open")
	}
	h.Send(keyRune('x'))
	if dev.Snapshot().Asleep {
		t.Fatal("expected any key to wake through the open form")
	}
	if h.Model().form != nil {
		t.Fatal("expected the stale form discarded on wake")
	}
	if got := len(dev.Snapshot().Entries); got != 1 {
		t.Fatalf("the waking key must not add an entry, got %d", got)
	}
}

func TestViewShowsListAndSelection(t *testing.T) {
	h, _ := newTestHarness([]store.Entry{
		{Name: "Espresso", Value: 15},
		{Name: "V60", Value: 22},
	})
	view := h.View()
	if !strings.Contains(view, "Espresso") || !strings.Contains(view, "V60") {
		t.Fatalf("expected both entries in view:\n%s", view)
	}
	if !strings.Contains(view, "> Espresso") {
		t.Fatalf("expected selection marker on first row:\n%s", view)
	}
	if !strings.Contains(view, "grindpad") {
		t.Fatalf("expected header:\n%s", view)
	}
}

func TestViewBracketsValueInEditMode(t *testing.T) {
	h, _ := newTestHarness([]store.Entry{{Name: "Espresso", Value: 15}})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if view := h.View(); !strings.Contains(view, "[15]") {
		t.Fatalf("expected bracketed value while editing:\n%s", view)
	}
}

func TestViewAsleep(t *testing.T) {
	clock := time.Unix(1700000000, 0)
	dev := device.New(device.Options{
		Entries: []store.Entry{{Name: "a", Value: 1}},
		Gateway: nopSaver{},
		Now:     func() time.Time { return clock },
	})
	h := NewHarness(NewModel(dev, 40, 12))
	clock = clock.Add(6 * time.Minute)
	dev.Tick()
	view := h.View()
	if !strings.Contains(view, "sleeping") {
		t.Fatalf("expected sleep screen:\n%s", view)
	}
	if strings.Contains(view, ">") {
		t.Fatalf("no row may be highlighted while asleep:\n%s", view)
	}
}

func TestViewTruncatesLongNames(t *testing.T) {
	long := strings.Repeat("x", 80)
	h, _ := newTestHarness([]store.Entry{{Name: long, Value: 5}})
	for _, line := range strings.Split(h.View(), "\n") {
		if len([]rune(line)) > 0 && strings.Contains(line, "x") && !strings.Contains(line, "…") {
			t.Fatalf("expected long name truncated with ellipsis: %q", line)
		}
	}
}
