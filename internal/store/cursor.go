package store

// NoSelection is the cursor sentinel meaning no entry is highlighted. The
// device parks the cursor here while asleep.
const NoSelection = -1

// Cursor addresses a position in the list, or NoSelection.
type Cursor int

// Valid reports whether the cursor addresses an entry in a list of n items.
func (c Cursor) Valid(n int) bool {
	return c >= 0 && int(c) < n
}

// Clamp re-fits the cursor to a list of n items: the sentinel is preserved,
// anything else is forced to min(cursor, n-1), or to NoSelection once the
// list is empty. After a structural mutation the cursor keeps its position
// rather than tracking a particular entry, so deleting the selected row
// lands the highlight on the row that slid into its place.
func (c Cursor) Clamp(n int) Cursor {
	if n <= 0 || c == NoSelection {
		return NoSelection
	}
	if c < 0 {
		return 0
	}
	if int(c) >= n {
		return Cursor(n - 1)
	}
	return c
}

// Up moves the cursor one row up, clamped at the first entry.
func (c Cursor) Up() Cursor {
	if c <= 0 {
		return c
	}
	return c - 1
}

// Down moves the cursor one row down in a list of n items, clamped at the
// last entry.
func (c Cursor) Down(n int) Cursor {
	if c == NoSelection || int(c) >= n-1 {
		return c
	}
	return c + 1
}
