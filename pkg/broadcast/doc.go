// Package broadcast fans typed messages out to in-process subscribers.
//
// The alert queue publishes lifecycle events through a MemoryBroadcaster and
// each open alert stream subscribes to it. Broadcast never blocks: a
// subscriber that cannot keep up is dropped and its channel closed.
package broadcast
