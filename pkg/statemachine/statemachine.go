package statemachine

import (
	"context"
	"fmt"
)

// State represents a state in the state machine.
type State interface {
	Name() string
}

// Event represents an event that can trigger a state transition.
type Event interface {
	Name() string
}

// Action executes side effects during a transition. Returning an error prevents the transition.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Guard decides at runtime whether a transition may proceed.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Transition defines a state change triggered by an event.
type Transition struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard  // all must pass
	Actions []Action // run in order before the state changes
}

// StringState is a plain string state.
type StringState string

func (s StringState) Name() string { return string(s) }

// StringEvent is a plain string event.
type StringEvent string

func (e StringEvent) Name() string { return string(e) }

// Definition is an immutable transition table. Build it once and create a
// cheap Machine per tracked object with New.
type Definition struct {
	initial     State
	transitions map[string]map[string][]Transition
}

// Define builds a Definition starting at initial.
func Define(initial State, opts ...Option) (*Definition, error) {
	if initial == nil {
		return nil, ErrNilInitialState
	}
	d := &Definition{
		initial:     initial,
		transitions: make(map[string]map[string][]Transition),
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// MustDefine is like Define but panics on error.
func MustDefine(initial State, opts ...Option) *Definition {
	d, err := Define(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to define state machine: %v", err))
	}
	return d
}

func (d *Definition) Initial() State { return d.initial }

// IsTerminal reports whether state has no outgoing transitions.
func (d *Definition) IsTerminal(state State) bool {
	return len(d.transitions[state.Name()]) == 0
}

func (d *Definition) add(t Transition) error {
	if t.From == nil || t.To == nil || t.Event == nil {
		return ErrInvalidTransition
	}
	byEvent, ok := d.transitions[t.From.Name()]
	if !ok {
		byEvent = make(map[string][]Transition)
		d.transitions[t.From.Name()] = byEvent
	}
	byEvent[t.Event.Name()] = append(byEvent[t.Event.Name()], t)
	return nil
}

// find returns the first transition from state on event whose guards pass.
func (d *Definition) find(ctx context.Context, state State, event Event, data any) (*Transition, error) {
	candidates := d.transitions[state.Name()][event.Name()]
	if len(candidates) == 0 {
		return nil, NewErrNoTransitionAvailable(state.Name(), event.Name())
	}
	for i := range candidates {
		if guardsPass(ctx, candidates[i].Guards, state, event, data) {
			return &candidates[i], nil
		}
	}
	return nil, NewErrTransitionRejected(state.Name(), event.Name())
}

func guardsPass(ctx context.Context, guards []Guard, state State, event Event, data any) bool {
	for _, g := range guards {
		if !g(ctx, state, event, data) {
			return false
		}
	}
	return true
}

// New returns a Machine in the initial state.
func (d *Definition) New() *Machine {
	return &Machine{def: d, current: d.initial}
}

// Machine tracks the state of one object. It is not safe for concurrent
// use; callers serialize access.
type Machine struct {
	def     *Definition
	current State
}

func (m *Machine) Current() State { return m.current }

// Is reports whether the machine is in state.
func (m *Machine) Is(state State) bool { return m.current.Name() == state.Name() }

// Terminal reports whether no further transition is possible.
func (m *Machine) Terminal() bool { return m.def.IsTerminal(m.current) }

// Fire applies event. Actions run before the state changes; a failing
// action leaves the state untouched.
func (m *Machine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}
	t, err := m.def.find(ctx, m.current, event, data)
	if err != nil {
		return err
	}
	for _, action := range t.Actions {
		if err := action(ctx, m.current, t.To, event, data); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}
	m.current = t.To
	return nil
}

// CanFire reports whether Fire(event) would find a transition.
func (m *Machine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}
	_, err := m.def.find(ctx, m.current, event, data)
	return err == nil
}

// Reset returns the machine to the initial state.
func (m *Machine) Reset() { m.current = m.def.initial }
