package memacs

// RingName identifies one of the five named rings the editor maintains.
type RingName string

const (
	RingKill    RingName = "kill"
	RingDelete  RingName = "delete"
	RingSearch  RingName = "search"
	RingReplace RingName = "replace"
	RingMacro   RingName = "macro"
)

// ringEntry is one datum on a Ring. Ring data is always textual at the
// editor-core level (kill/delete text, search/replace patterns). The macro
// recorder (macro.go) keeps its key sequence in its own []ExtKey, not on a
// Ring.
type ringEntry struct {
	prev, next *ringEntry
	text       string
}

// Ring is a doubly linked circular list of datum entries with a maximum
// size (0 meaning unbounded), generalizing the teacher's killRing
// (kill_ring.go) to the five named rings the editor maintains. Pushing
// onto a full ring evicts the entry just before current in cyclic order —
// the ring's least-recently-used replacement policy (Testable Property 4).
type Ring struct {
	Name RingName
	Max  int

	current *ringEntry
	size    int

	// accumulating mirrors killRing.killing: consecutive kill/delete calls
	// append/prepend into the current entry instead of starting a new one.
	accumulating bool
}

// NewRing creates a ring named name with the given maximum size (0 =
// unbounded).
func NewRing(name RingName, max int) *Ring {
	return &Ring{Name: name, Max: max}
}

// Len returns the number of entries currently on the ring.
func (r *Ring) Len() int { return r.size }

// Push inserts text as a new entry immediately before current, evicting the
// oldest entry first if the ring is already at its maximum size. The new
// entry becomes current. This also ends any in-progress accumulation.
func (r *Ring) Push(text string) {
	r.accumulating = false
	r.insertNew(text)
}

// BeginAccumulate starts (or continues) an accumulating kill/delete entry;
// Append/Prepend calls following it extend the same entry instead of
// creating a new one, matching killRing.maybeBeginKill/Append/Prepend.
func (r *Ring) BeginAccumulate() {
	if r.accumulating {
		return
	}
	r.accumulating = true
	r.insertNew("")
}

// Append appends text to the current entry, starting a new accumulating
// entry first if one is not already open.
func (r *Ring) Append(text string) {
	r.BeginAccumulate()
	r.current.text += text
}

// Prepend prepends text to the current entry, starting a new accumulating
// entry first if one is not already open.
func (r *Ring) Prepend(text string) {
	r.BeginAccumulate()
	r.current.text = text + r.current.text
}

// EndAccumulate closes out any in-progress accumulation, so the next
// Append/Prepend/Push starts a fresh entry.
func (r *Ring) EndAccumulate() { r.accumulating = false }

func (r *Ring) insertNew(text string) {
	e := &ringEntry{text: text}
	if r.current == nil {
		e.prev, e.next = e, e
		r.current = e
		r.size = 1
		return
	}
	e.next = r.current
	e.prev = r.current.prev
	r.current.prev.next = e
	r.current.prev = e
	r.current = e
	r.size++

	if r.Max > 0 && r.size > r.Max {
		oldest := r.current.prev
		r.unlink(oldest)
	}
}

func (r *Ring) unlink(e *ringEntry) {
	if e.next == e {
		r.current, r.size = nil, 0
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	if r.current == e {
		r.current = e.next
	}
	r.size--
}

// Cycle advances current by n positions around the ring (n may be
// negative), wrapping per the ring's cyclic order.
func (r *Ring) Cycle(n int) {
	if r.current == nil {
		return
	}
	for ; n > 0; n-- {
		r.current = r.current.next
	}
	for ; n < 0; n++ {
		r.current = r.current.prev
	}
}

// Fetch returns the text of the entry n positions from current: n <= 0
// indexes recent-first starting at 0 (current itself), matching the
// positional fetch convention; n > 0 is not meaningful and returns
// ("", false).
func (r *Ring) Fetch(n int) (string, bool) {
	if r.current == nil || n > 0 {
		return "", false
	}
	e := r.current
	for ; n < 0; n++ {
		e = e.next
	}
	return e.text, true
}

// Current returns the text of the current entry, or "" if the ring is
// empty.
func (r *Ring) Current() string {
	if r.current == nil {
		return ""
	}
	return r.current.text
}

// DeleteCurrent removes the current entry from the ring.
func (r *Ring) DeleteCurrent() {
	if r.current != nil {
		r.unlink(r.current)
	}
}

// Clear empties the ring entirely.
func (r *Ring) Clear() {
	r.current = nil
	r.size = 0
	r.accumulating = false
}

// List returns the ring's entries, most-recent first.
func (r *Ring) List() []string {
	if r.current == nil {
		return nil
	}
	out := make([]string, 0, r.size)
	e := r.current
	for i := 0; i < r.size; i++ {
		out = append(out, e.text)
		e = e.next
	}
	return out
}
