package system

import "testing"

func TestLedger(t *testing.T) {
	cases := []struct {
		name     string
		cap      int
		reserves int
		releases int
		wantLive int
		wantFull bool
	}{
		{"empty", 2, 0, 0, 0, false},
		{"fills_to_cap", 2, 5, 0, 2, true},
		{"release_frees_slot", 2, 2, 1, 1, false},
		{"release_never_negative", 1, 1, 4, 0, false},
		{"zero_cap_always_full", 0, 3, 0, 0, true},
		{"negative_cap_is_zero", -1, 1, 0, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger(tc.cap)
			for i := 0; i < tc.reserves; i++ {
				l.TryReserve()
			}
			l.Release(tc.releases)
			if l.Live() != tc.wantLive {
				t.Fatalf("Live = %d, want %d", l.Live(), tc.wantLive)
			}
			if l.Full() != tc.wantFull {
				t.Fatalf("Full = %v, want %v", l.Full(), tc.wantFull)
			}
		})
	}
}

func TestLedgerSetCapKeepsLiveItems(t *testing.T) {
	l := NewLedger(3)
	for i := 0; i < 3; i++ {
		l.TryReserve()
	}
	l.SetCap(1)
	if l.Live() != 3 {
		t.Fatalf("lowering the cap must not drop live items, got %d", l.Live())
	}
	if l.TryReserve() {
		t.Fatalf("reserve above lowered cap should fail")
	}
	l.Release(3)
	if !l.TryReserve() || l.TryReserve() {
		t.Fatalf("expected exactly one slot under the new cap")
	}
}
