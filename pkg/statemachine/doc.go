// Package statemachine implements small finite state machines.
//
// A Definition holds the transition table and is shared; each tracked object
// gets its own Machine from Definition.New, which stores nothing but the
// current state. Transitions may carry guards, which pick between candidate
// transitions, and actions, which run before the state changes and can veto
// it by returning an error.
//
//	var lifecycle = statemachine.MustDefine(Visible,
//		statemachine.WithTransition(Visible, Hidden, Hide),
//		statemachine.WithTransition(Hidden, Removed, Remove),
//	)
//
//	m := lifecycle.New()
//	err := m.Fire(ctx, Hide, nil)
package statemachine
