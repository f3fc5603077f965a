// Package events provides typed trace emitters so call sites never build
// payload maps inline.
package events

import "grindpad.dev/grindpad/internal/logging"

type AppTracer struct{}

type InputTracer struct{}

type StoreTracer struct{}

type PersistTracer struct{}

type APITracer struct{}

type PowerTracer struct{}

var (
	App     = AppTracer{}
	Input   = InputTracer{}
	Store   = StoreTracer{}
	Persist = PersistTracer{}
	API     = APITracer{}
	Power   = PowerTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (InputTracer) Button(button string, mode string, cursor int) {
	logging.Trace("input.button", map[string]interface{}{
		"button": button,
		"mode":   mode,
		"cursor": cursor,
	})
}

func (InputTracer) ModeChange(mode string, cursor int) {
	logging.Trace("input.mode", map[string]interface{}{"mode": mode, "cursor": cursor})
}

func (StoreTracer) Add(index int, name string, value int) {
	logging.Trace("store.add", map[string]interface{}{"index": index, "name": name, "value": value})
}

func (StoreTracer) Update(index, value int) {
	logging.Trace("store.update", map[string]interface{}{"index": index, "value": value})
}

func (StoreTracer) Delete(index int, name string) {
	logging.Trace("store.delete", map[string]interface{}{"index": index, "name": name})
}

func (StoreTracer) Replace(count int) {
	logging.Trace("store.replace", map[string]interface{}{"count": count})
}

func (PersistTracer) Loaded(count int) {
	logging.Trace("persist.load", map[string]interface{}{"count": count})
}

func (PersistTracer) Saved(count int) {
	logging.Trace("persist.save", map[string]interface{}{"count": count})
}

func (PersistTracer) SaveFailed(err error) {
	if err == nil {
		return
	}
	logging.Trace("persist.save-failed", map[string]interface{}{"error": err.Error()})
}

func (PersistTracer) Snapshot(key string) {
	logging.Trace("persist.snapshot", map[string]interface{}{"key": key})
}

func (APITracer) Request(method, path string) {
	logging.Trace("api.request", map[string]interface{}{"method": method, "path": path})
}

func (APITracer) Rejected(path, msg string) {
	logging.Trace("api.rejected", map[string]interface{}{"path": path, "msg": msg})
}

func (PowerTracer) Sleep(cursor int) {
	logging.Trace("power.sleep", map[string]interface{}{"cursor": cursor})
}

func (PowerTracer) Wake(cursor int) {
	logging.Trace("power.wake", map[string]interface{}{"cursor": cursor})
}
