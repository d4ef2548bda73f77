package fsm

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/super-goalie/events"
)

// Machine is the generic hierarchical finite state machine runtime
// T is the owner passed to every state hook (e.g. *goalkeeper.Keeper)
// Not safe for concurrent use; driven by a single simulation loop
type Machine[T any] struct {
	name   string
	owner  T
	root   *Machine[T]
	logger *slog.Logger

	// Registry
	states map[StateID]State[T]
	order  []StateID // Registration order, used for deterministic initialization
	names  map[StateID]string

	// Runtime State
	initialID   StateID
	currentID   StateID
	previousID  StateID
	timeInState time.Duration
	initialized bool

	// Custom update clock, a second logical interval inside Update
	interval  time.Duration
	untilNext time.Duration
	customOn  bool
}

type nester[T any] interface {
	nested() *Machine[T]
}

// NewMachine creates a top-level machine; a nil logger discards output
func NewMachine[T any](name string, owner T, logger *slog.Logger) *Machine[T] {
	m := newMachine(name, owner, nil, logger)
	m.root = m
	return m
}

func newMachine[T any](name string, owner T, root *Machine[T], logger *slog.Logger) *Machine[T] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Machine[T]{
		name:   name,
		owner:  owner,
		root:   root,
		logger: logger,
		states: make(map[StateID]State[T]),
		names:  make(map[StateID]string),
	}
}

func (m *Machine[T]) Name() string        { return m.name }
func (m *Machine[T]) Owner() T            { return m.owner }
func (m *Machine[T]) Root() *Machine[T]   { return m.root }
func (m *Machine[T]) Initialized() bool   { return m.initialized }
func (m *Machine[T]) CurrentID() StateID  { return m.currentID }
func (m *Machine[T]) PreviousID() StateID { return m.previousID }

// TimeInState returns time accumulated by Update since the last transition
func (m *Machine[T]) TimeInState() time.Duration { return m.timeInState }

// === Registry ===

// AddState registers s under id; re-adding an existing id is a no-op
// Returns true if the state was added
func (m *Machine[T]) AddState(id StateID, s State[T]) bool {
	if id == StateNone || s == nil {
		return false
	}
	if _, exists := m.states[id]; exists {
		return false
	}

	s.bind(id, m, m.root)
	if n, ok := s.(nester[T]); ok {
		n.nested().name = m.name + "/" + s.Name()
	}

	m.states[id] = s
	m.order = append(m.order, id)
	m.names[id] = s.Name()
	return true
}

// SetStateNames labels identities for error messages, including ones never registered
// Names recorded by AddState take precedence
func (m *Machine[T]) SetStateNames(names map[StateID]string) {
	for id, name := range names {
		if _, registered := m.states[id]; !registered {
			m.names[id] = name
		}
	}
}

// StateName returns the label known for id, or ""
func (m *Machine[T]) StateName(id StateID) string { return m.names[id] }

func (m *Machine[T]) configError(id StateID, err error) *ConfigError {
	return &ConfigError{Machine: m.name, State: id, StateName: m.names[id], Err: err}
}

// RemoveState unregisters a state; the current state cannot be removed
func (m *Machine[T]) RemoveState(id StateID) bool {
	if id == m.currentID && m.initialized {
		return false
	}
	if _, exists := m.states[id]; !exists {
		return false
	}
	delete(m.states, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	if m.initialID == id {
		m.initialID = StateNone
	}
	if m.previousID == id {
		m.previousID = StateNone
	}
	return true
}

// RemoveAllStates tears the machine down and clears the registry
func (m *Machine[T]) RemoveAllStates() {
	m.Teardown()
	m.states = make(map[StateID]State[T])
	m.order = nil
	m.initialID = StateNone
	m.previousID = StateNone
}

func (m *Machine[T]) ContainsState(id StateID) bool {
	_, ok := m.states[id]
	return ok
}

// SetInitialState designates the entry state, validated by Initialize
func (m *Machine[T]) SetInitialState(id StateID) {
	m.initialID = id
}

// GetState returns the registered state or nil
func (m *Machine[T]) GetState(id StateID) State[T] {
	return m.states[id]
}

// CurrentState returns the active state or nil before initialization
func (m *Machine[T]) CurrentState() State[T] {
	return m.states[m.currentID]
}

// StateAs returns the state registered under id as concrete type S
func StateAs[S any, T any](m *Machine[T], id StateID) (S, bool) {
	s, ok := m.states[id].(S)
	return s, ok
}

// CurrentStateName returns the active state name, or "" before initialization
func (m *Machine[T]) CurrentStateName() string {
	if s := m.CurrentState(); s != nil {
		return s.Name()
	}
	return ""
}

func (m *Machine[T]) IsCurrentState(id StateID) bool {
	return m.currentID != StateNone && m.currentID == id
}

func (m *Machine[T]) IsPreviousState(id StateID) bool {
	return m.previousID != StateNone && m.previousID == id
}

// === Lifecycle ===

// Initialize initializes every state then enters the initial state
// Starts the custom update clock if a frequency was set
// A running machine must be torn down before it is initialized again
func (m *Machine[T]) Initialize() error {
	if m.initialized {
		return m.configError(StateNone, ErrAlreadyInitialized)
	}
	if err := m.prepare(); err != nil {
		return err
	}
	m.enterInitial()

	if m.interval > 0 {
		m.StartCustomUpdate()
	}
	return nil
}

// prepare validates the initial state and initializes every state once
func (m *Machine[T]) prepare() error {
	if m.initialID == StateNone {
		return m.configError(StateNone, ErrNoInitialState)
	}
	if _, ok := m.states[m.initialID]; !ok {
		return m.configError(m.initialID, ErrUnknownState)
	}

	for _, id := range m.order {
		if err := m.states[id].Initialize(m.owner); err != nil {
			return err
		}
	}
	m.initialized = true
	return nil
}

func (m *Machine[T]) enterInitial() {
	m.currentID = m.initialID
	m.previousID = StateNone
	m.timeInState = 0
	m.logger.Debug("fsm enter",
		slog.String("machine", m.name),
		slog.String("state", m.CurrentStateName()),
	)
	m.states[m.currentID].Enter(m.owner)
}

func (m *Machine[T]) exitCurrent() {
	if s := m.CurrentState(); s != nil {
		s.Exit(m.owner)
	}
}

// ChangeState exits the current state, swaps, and enters the target
// Panics with *ConfigError if the target is not registered
func (m *Machine[T]) ChangeState(id StateID) {
	if err := m.TryChangeState(id); err != nil {
		panic(err)
	}
}

// TryChangeState is ChangeState returning configuration errors instead of panicking
func (m *Machine[T]) TryChangeState(id StateID) error {
	if !m.initialized {
		return m.configError(id, ErrNotInitialized)
	}
	next, ok := m.states[id]
	if !ok {
		return m.configError(id, ErrUnknownState)
	}

	from := m.CurrentStateName()
	m.previousID = m.currentID

	// Exit runs before any other mutation of the current pointer
	if cur := m.states[m.currentID]; cur != nil {
		cur.Exit(m.owner)
	}
	m.currentID = id
	m.timeInState = 0

	m.logger.Debug("fsm transition",
		slog.String("machine", m.name),
		slog.String("from", from),
		slog.String("to", next.Name()),
	)
	next.Enter(m.owner)
	return nil
}

// GoToPreviousState re-enters the state that was current before the last transition
// One level of history; returns false when there is none
func (m *Machine[T]) GoToPreviousState() bool {
	if m.previousID == StateNone {
		return false
	}
	m.ChangeState(m.previousID)
	return true
}

// Teardown stops the custom clock and exits the current state
func (m *Machine[T]) Teardown() {
	m.StopCustomUpdate()
	if m.initialized {
		m.exitCurrent()
	}
	m.currentID = StateNone
	m.initialized = false
}

// === Custom Update Clock ===

// SetUpdateFrequency sets the custom update interval; 0 disables it
func (m *Machine[T]) SetUpdateFrequency(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	m.interval = interval
}

func (m *Machine[T]) UpdateFrequency() time.Duration { return m.interval }

// StartCustomUpdate arms the custom clock; the first ManualExecute fires on the next Update
func (m *Machine[T]) StartCustomUpdate() {
	if m.interval <= 0 {
		return
	}
	m.customOn = true
	m.untilNext = 0
}

// StopCustomUpdate cancels the custom clock
func (m *Machine[T]) StopCustomUpdate() {
	m.customOn = false
	m.untilNext = 0
}

func (m *Machine[T]) CustomUpdateRunning() bool { return m.customOn }

// === Hook Forwarding ===

// Update runs the frame tick on the current state, then the custom clock
func (m *Machine[T]) Update(dt time.Duration) {
	s := m.CurrentState()
	if s == nil {
		return
	}
	m.timeInState += dt
	s.Execute(m.owner, dt)

	if !m.customOn {
		return
	}
	m.untilNext -= dt
	for m.customOn && m.untilNext <= 0 {
		m.untilNext += m.interval
		if cur := m.CurrentState(); cur != nil {
			cur.ManualExecute(m.owner)
		}
	}
}

// PhysicsUpdate runs the physics tick on the current state
func (m *Machine[T]) PhysicsUpdate(dt time.Duration) {
	if s := m.CurrentState(); s != nil {
		s.PhysicsExecute(m.owner, dt)
	}
}

// LateUpdate runs the post tick on the current state
func (m *Machine[T]) LateUpdate(dt time.Duration) {
	if s := m.CurrentState(); s != nil {
		s.PostExecute(m.owner, dt)
	}
}

func (m *Machine[T]) OnCollision(phase ContactPhase, c Contact) {
	if s := m.CurrentState(); s != nil {
		s.OnCollision(m.owner, phase, c)
	}
}

func (m *Machine[T]) OnTrigger(phase ContactPhase, c Contact) {
	if s := m.CurrentState(); s != nil {
		s.OnTrigger(m.owner, phase, c)
	}
}

func (m *Machine[T]) OnAnimatorIK(layer int, dt time.Duration) {
	if s := m.CurrentState(); s != nil {
		s.OnAnimatorIK(m.owner, layer, dt)
	}
}

func (m *Machine[T]) OnAnimatorMove(dt time.Duration) {
	if s := m.CurrentState(); s != nil {
		s.OnAnimatorMove(m.owner, dt)
	}
}

// HandleEvent forwards an event to the current state
func (m *Machine[T]) HandleEvent(ev events.GameEvent) {
	if s := m.CurrentState(); s != nil {
		s.HandleEvent(m.owner, ev)
	}
}
