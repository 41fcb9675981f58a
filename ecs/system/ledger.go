package system

// Ledger counts live spawned items against a cap. It is owned by the session
// and shared by everything that creates or destroys items.
type Ledger struct {
	live int
	cap  int
}

func NewLedger(cap int) *Ledger {
	if cap < 0 {
		cap = 0
	}
	return &Ledger{cap: cap}
}

// TryReserve takes a slot if one is free.
func (l *Ledger) TryReserve() bool {
	if l == nil || l.live >= l.cap {
		return false
	}
	l.live++
	return true
}

// Release gives back n slots, never dropping below zero.
func (l *Ledger) Release(n int) {
	if l == nil || n <= 0 {
		return
	}
	l.live -= n
	if l.live < 0 {
		l.live = 0
	}
}

func (l *Ledger) Live() int {
	if l == nil {
		return 0
	}
	return l.live
}

func (l *Ledger) Cap() int {
	if l == nil {
		return 0
	}
	return l.cap
}

// SetCap changes the cap. Lowering it below Live leaves the excess to the
// owner, which must destroy and Release those items before the tick ends.
func (l *Ledger) SetCap(cap int) {
	if l == nil {
		return
	}
	if cap < 0 {
		cap = 0
	}
	l.cap = cap
}

func (l *Ledger) Full() bool {
	return l == nil || l.live >= l.cap
}
