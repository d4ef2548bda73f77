package fsm

import (
	"time"

	"github.com/lixenwraith/super-goalie/events"
)

// BaseState provides machine back-references and no-op hooks
type BaseState[T any] struct {
	id      StateID
	machine *Machine[T]
	root    *Machine[T]
}

func (b *BaseState[T]) bind(id StateID, m, root *Machine[T]) {
	b.id = id
	b.machine = m
	b.root = root
}

// ID returns the identity this state was registered under
func (b *BaseState[T]) ID() StateID { return b.id }

// Machine returns the machine that owns this state
func (b *BaseState[T]) Machine() *Machine[T] { return b.machine }

// Root returns the top-level machine; equals Machine for non-nested states
func (b *BaseState[T]) Root() *Machine[T] { return b.root }

func (b *BaseState[T]) Initialize(T) error                   { return nil }
func (b *BaseState[T]) Enter(T)                              {}
func (b *BaseState[T]) Exit(T)                               {}
func (b *BaseState[T]) Execute(T, time.Duration)             {}
func (b *BaseState[T]) ManualExecute(T)                      {}
func (b *BaseState[T]) PhysicsExecute(T, time.Duration)      {}
func (b *BaseState[T]) PostExecute(T, time.Duration)         {}
func (b *BaseState[T]) OnCollision(T, ContactPhase, Contact) {}
func (b *BaseState[T]) OnTrigger(T, ContactPhase, Contact)   {}
func (b *BaseState[T]) OnAnimatorIK(T, int, time.Duration)   {}
func (b *BaseState[T]) OnAnimatorMove(T, time.Duration)      {}
func (b *BaseState[T]) HandleEvent(T, events.GameEvent)      {}

// Composite is a state that owns a nested machine
// Every hook is forwarded into the nested current state. Embedders that override
// a hook call the Composite version to keep forwarding
type Composite[T any] struct {
	BaseState[T]
	sub *Machine[T]
}

func (c *Composite[T]) bind(id StateID, m, root *Machine[T]) {
	c.BaseState.bind(id, m, root)
	c.sub = newMachine(m.name, m.owner, root, m.logger)
}

func (c *Composite[T]) nested() *Machine[T] { return c.sub }

// Sub returns the nested machine; valid once the state is registered
func (c *Composite[T]) Sub() *Machine[T] { return c.sub }

// Initialize initializes nested states and validates the nested initial state
// Embedders register nested states before calling it
func (c *Composite[T]) Initialize(T) error {
	return c.sub.prepare()
}

// Enter enters the nested initial state
func (c *Composite[T]) Enter(T) {
	c.sub.enterInitial()
}

// Exit exits the nested current state
func (c *Composite[T]) Exit(T) {
	c.sub.exitCurrent()
}

func (c *Composite[T]) Execute(_ T, dt time.Duration) { c.sub.Update(dt) }

func (c *Composite[T]) ManualExecute(T) {
	if s := c.sub.CurrentState(); s != nil {
		s.ManualExecute(c.sub.owner)
	}
}

func (c *Composite[T]) PhysicsExecute(_ T, dt time.Duration) { c.sub.PhysicsUpdate(dt) }
func (c *Composite[T]) PostExecute(_ T, dt time.Duration)    { c.sub.LateUpdate(dt) }

func (c *Composite[T]) OnCollision(_ T, phase ContactPhase, ct Contact) {
	c.sub.OnCollision(phase, ct)
}

func (c *Composite[T]) OnTrigger(_ T, phase ContactPhase, ct Contact) {
	c.sub.OnTrigger(phase, ct)
}

func (c *Composite[T]) OnAnimatorIK(_ T, layer int, dt time.Duration) { c.sub.OnAnimatorIK(layer, dt) }
func (c *Composite[T]) OnAnimatorMove(_ T, dt time.Duration)          { c.sub.OnAnimatorMove(dt) }
func (c *Composite[T]) HandleEvent(_ T, ev events.GameEvent)          { c.sub.HandleEvent(ev) }
