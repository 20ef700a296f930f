// Package alerts pushes a session's alert queue to the browser over a
// Datastar SSE stream and handles the close button of each alert.
package alerts
