package urlstate

// History is an explicit navigation stack with a cursor, mirroring browser
// history semantics: Push adds an entry (dropping any forward entries),
// Replace updates the current one in place.
type History struct {
	entries []string
	pos     int
}

// NewHistory starts a history at the given URL.
func NewHistory(initial string) *History {
	return &History{entries: []string{initial}}
}

// Current returns the entry under the cursor.
func (h *History) Current() string { return h.entries[h.pos] }

// Len returns the number of entries on the stack.
func (h *History) Len() int { return len(h.entries) }

// Push appends a new entry and moves the cursor onto it. Forward entries are
// discarded, as a browser does on navigation after going back.
func (h *History) Push(u string) {
	h.entries = append(h.entries[:h.pos+1], u)
	h.pos = len(h.entries) - 1
}

// Replace swaps the current entry without growing the stack.
func (h *History) Replace(u string) { h.entries[h.pos] = u }

// Back moves the cursor one entry back; false when already at the oldest.
func (h *History) Back() bool {
	if h.pos == 0 {
		return false
	}
	h.pos--
	return true
}

// Forward moves the cursor one entry forward; false at the newest.
func (h *History) Forward() bool {
	if h.pos == len(h.entries)-1 {
		return false
	}
	h.pos++
	return true
}
