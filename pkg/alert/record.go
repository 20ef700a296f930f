package alert

// Variant controls how an alert is presented.
type Variant string

const (
	Success   Variant = "success"
	Danger    Variant = "danger"
	Primary   Variant = "primary"
	Secondary Variant = "secondary"
)

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	switch v {
	case Success, Danger, Primary, Secondary:
		return true
	}
	return false
}

// Record is one transient notification.
type Record struct {
	ID      string
	Heading string
	Message string
	Variant Variant
	// Visible starts true and flips to false exactly once.
	Visible bool
}

// EventType names a change in the queue.
type EventType string

const (
	EventEnqueued EventType = "enqueued"
	EventHidden   EventType = "hidden"
	EventRemoved  EventType = "removed"
)

// Event is published for every change, in the order the changes happen.
type Event struct {
	Type   EventType
	Record Record
}
