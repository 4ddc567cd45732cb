package buffertest

import "fmt"

// LifeLog tracks construction and disposal of Life values so tests can
// verify that a collection disposes every live element exactly once and in
// the expected order.
type LifeLog struct {
	live  int
	drops []int
}

// NewLifeLog creates an empty log.
func NewLifeLog() *LifeLog {
	return &LifeLog{}
}

// New creates a live value tagged with id.
func (l *LifeLog) New(id int) Life {
	l.live++
	return Life{ID: id, log: l}
}

// Live returns the number of values created and not yet disposed.
func (l *LifeLog) Live() int { return l.live }

// Drops returns the IDs of disposed values in disposal order.
func (l *LifeLog) Drops() []int { return l.drops }

// Life is an element type with an observable disposal. Disposing the same
// value twice panics, surfacing double-drop bugs immediately.
type Life struct {
	ID  int
	log *LifeLog
}

// Dispose records the disposal in the owning log.
func (v *Life) Dispose() {
	if v.log == nil {
		panic(fmt.Sprintf("buffertest: double dispose of Life %d", v.ID))
	}
	v.log.live--
	v.log.drops = append(v.log.drops, v.ID)
	v.log = nil
}
