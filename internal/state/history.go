package state

// DefaultMaxHistory is the number of snapshots kept when none is configured.
const DefaultMaxHistory = 50

// History is a bounded linear undo/redo log of snapshots, newest first.
// The cursor points at the snapshot matching the current document; undo
// moves it toward older entries. Recording after an undo drops the entries
// newer than the cursor.
type History struct {
	items  []Snapshot
	cursor int
	max    int
}

// NewHistory creates a history holding at most limit snapshots.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultMaxHistory
	}
	return &History{max: limit}
}

// Record stores s as the newest snapshot.
func (h *History) Record(s Snapshot) {
	if h.cursor > 0 {
		h.items = h.items[h.cursor:]
	}
	items := make([]Snapshot, 0, len(h.items)+1)
	items = append(items, cloneTraces(s))
	items = append(items, h.items...)
	if len(items) > h.max {
		items = items[:h.max]
	}
	h.items = items
	h.cursor = 0
}

// Undo steps to the next older snapshot and returns a copy of it.
func (h *History) Undo() (Snapshot, bool) {
	if h.cursor+1 >= len(h.items) {
		return nil, false
	}
	h.cursor++
	return cloneTraces(h.items[h.cursor]), true
}

// Redo steps to the next newer snapshot and returns a copy of it.
func (h *History) Redo() (Snapshot, bool) {
	if h.cursor == 0 {
		return nil, false
	}
	h.cursor--
	return cloneTraces(h.items[h.cursor]), true
}

// CanUndo reports whether Undo would return a snapshot.
func (h *History) CanUndo() bool { return h.cursor+1 < len(h.items) }

// CanRedo reports whether Redo would return a snapshot.
func (h *History) CanRedo() bool { return h.cursor > 0 }

// Len is the number of stored snapshots.
func (h *History) Len() int { return len(h.items) }

// Cursor is the current position, 0 being the newest snapshot.
func (h *History) Cursor() int { return h.cursor }

// Clear drops every snapshot.
func (h *History) Clear() {
	h.items = nil
	h.cursor = 0
}
