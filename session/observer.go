package session

// Observer is told about session-wide transitions. Calls happen on the tick
// goroutine.
type Observer interface {
	SessionStarted(matchID string)
	PlayerDied(id int)
	BossDefeated()
	SessionEnded(matchID string)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Started  func(matchID string)
	Died     func(id int)
	Defeated func()
	Ended    func(matchID string)
}

var _ Observer = ObserverFuncs{}

func (o ObserverFuncs) SessionStarted(matchID string) {
	if o.Started != nil {
		o.Started(matchID)
	}
}

func (o ObserverFuncs) PlayerDied(id int) {
	if o.Died != nil {
		o.Died(id)
	}
}

func (o ObserverFuncs) BossDefeated() {
	if o.Defeated != nil {
		o.Defeated()
	}
}

func (o ObserverFuncs) SessionEnded(matchID string) {
	if o.Ended != nil {
		o.Ended(matchID)
	}
}
