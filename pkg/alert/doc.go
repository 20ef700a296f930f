// Package alert implements the transient notification queue behind the
// site's toasts.
//
// Every record moves one way through visible, hidden and removed. Enqueue
// starts a visibility timer (5 s by default); when it fires the record is
// hidden and the queue dismisses it on the view's behalf, which schedules
// removal after a short fade delay (300 ms). The close button calls Dismiss
// and takes the same path early. A record owns at most one timer at a time.
//
// Changes are published as Events so an open page can patch its alert list
// as they happen. A Registry keeps one Queue per browser session.
package alert
