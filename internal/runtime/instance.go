package runtime

import (
	"sync/atomic"

	"github.com/aretw0/minuterie/pkg/domain"
)

// Instance is a single state machine: its current state and a read-only reference to
// its transition table. The table may be shared with other instances.
//
// Only Engine.Update writes the state. Reads are atomic, so observers on other
// goroutines may call State while the control goroutine evaluates.
type Instance[C any] struct {
	table  *domain.Table[C]
	state  atomic.Int64
	cycles atomic.Uint64
}

// NewInstance creates an instance at domain.InitialState.
// It panics if table is nil.
func NewInstance[C any](table *domain.Table[C]) *Instance[C] {
	return NewInstanceAt(table, domain.InitialState)
}

// NewInstanceAt creates an instance at an explicit state.
func NewInstanceAt[C any](table *domain.Table[C], initial domain.State) *Instance[C] {
	if table == nil {
		panic("runtime: nil transition table")
	}
	inst := &Instance[C]{table: table}
	inst.state.Store(int64(initial))
	return inst
}

// State returns the current state.
func (i *Instance[C]) State() domain.State {
	return domain.State(i.state.Load())
}

// Table returns the transition table the instance evaluates.
func (i *Instance[C]) Table() *domain.Table[C] {
	return i.table
}

// Cycles returns how many times the instance has been evaluated.
func (i *Instance[C]) Cycles() uint64 {
	return i.cycles.Load()
}

func (i *Instance[C]) commit(s domain.State) {
	i.state.Store(int64(s))
}
