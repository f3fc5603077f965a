package store

// Capacity and value band for the settings list. The display and the wire
// protocol both assume these bounds.
const (
	MaxEntries = 10
	MinValue   = 0
	MaxValue   = 99
)

// Entry is one named grind setting.
type Entry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ClampValue forces v into the [MinValue, MaxValue] band.
func ClampValue(v int) int {
	if v < MinValue {
		return MinValue
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}
