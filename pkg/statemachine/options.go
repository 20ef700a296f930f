package statemachine

import "fmt"

// Option configures a Definition.
type Option func(*Definition) error

// TransitionOption configures a single transition.
type TransitionOption func(*Transition)

// WithTransition adds a transition from -> to on event.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(d *Definition) error {
		t := Transition{From: from, To: to, Event: event}
		for _, opt := range opts {
			opt(&t)
		}
		return d.add(t)
	}
}

// WithTransitions adds several transitions at once.
func WithTransitions(transitions ...Transition) Option {
	return func(d *Definition) error {
		for i, t := range transitions {
			if err := d.add(t); err != nil {
				return fmt.Errorf("transition[%d]: %w", i, err)
			}
		}
		return nil
	}
}

func WithGuard(guard Guard) TransitionOption {
	return func(t *Transition) {
		if guard != nil {
			t.Guards = append(t.Guards, guard)
		}
	}
}

func WithAction(action Action) TransitionOption {
	return func(t *Transition) {
		if action != nil {
			t.Actions = append(t.Actions, action)
		}
	}
}
