package input

// MaxLockedButtons is the capacity of a LockHandler's button set.
const MaxLockedButtons = 4

// DefaultLockedButtons are guarded when no explicit set is configured.
var DefaultLockedButtons = []Button{ButtonHome, ButtonPlus, ButtonMinus}

// LockHandler suppresses a small set of menu buttons while the lock pin
// is engaged.
type LockHandler struct {
	active     bool
	activeHigh bool
	buttons    [MaxLockedButtons]Button
	n          int
}

// NewLockHandler returns an unlocked handler guarding buttons. Buttons that
// cannot be locked are skipped; see AddButton.
func NewLockHandler(activeHigh bool, buttons ...Button) *LockHandler {
	h := &LockHandler{activeHigh: activeHigh}
	for _, b := range buttons {
		h.AddButton(b)
	}
	return h
}

// NewDefaultLockHandler returns an active-high handler guarding DefaultLockedButtons.
func NewDefaultLockHandler() *LockHandler {
	return NewLockHandler(true, DefaultLockedButtons...)
}

// AddButton adds b to the locked set. It fails for non-menu buttons and
// when the set is full. Adding a button that is already locked succeeds.
func (h *LockHandler) AddButton(b Button) bool {
	if !b.IsMenu() {
		return false
	}
	for _, lb := range h.buttons[:h.n] {
		if lb == b {
			return true
		}
	}
	if h.n == MaxLockedButtons {
		return false
	}
	h.buttons[h.n] = b
	h.n++
	return true
}

// ClearButtons empties the locked set.
func (h *LockHandler) ClearButtons() {
	h.n = 0
}

// Buttons returns the locked set in insertion order.
func (h *LockHandler) Buttons() []Button {
	out := make([]Button, h.n)
	copy(out, h.buttons[:h.n])
	return out
}

// UpdateLockState sets the lock from the guard pin's level.
func (h *LockHandler) UpdateLockState(pin bool) {
	h.active = pin == h.activeHigh
}

// Locked reports whether the lock is engaged.
func (h *LockHandler) Locked() bool { return h.active }

func (h *LockHandler) ActiveHigh() bool { return h.activeHigh }

// Process returns buttons with every locked button released while the lock
// is engaged, and buttons unchanged otherwise.
func (h *LockHandler) Process(buttons Buttons) Buttons {
	if !h.active {
		return buttons
	}
	for _, b := range h.buttons[:h.n] {
		buttons.Set(b, false)
	}
	return buttons
}

// Reset disengages the lock. The locked set and polarity are kept.
func (h *LockHandler) Reset() {
	h.active = false
}
