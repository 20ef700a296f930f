// Package app holds the per-request application state.
//
// Middleware resolves the browser session and its alert queue into a State
// stored in the request context. Handlers written against Context read it
// with ctx.State() and change the application only through its methods:
// SetUser, ClearUser, Enqueue, Notify, Dismiss and Remove.
package app
