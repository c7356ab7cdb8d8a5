// Package notify provides property change notification for view-state objects.
//
// A Notifier keeps a set of listeners, either for every property or for one
// named property, and delivers changes synchronously on the caller's
// goroutine. It performs no locking: it is meant to be owned by a single
// view-state object that is only touched from one UI thread.
package notify

// Change describes a property whose value may have changed. Listeners are
// expected to re-read the named property from Source.
type Change struct {
	// Source is the object that raised the change.
	Source any

	// Property is the logical property name.
	Property string
}

// Listener is called when a property changes.
type Listener func(change Change)

// Subscription represents an active listener registration.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.notifier == nil {
		return
	}
	s.notifier.unsubscribe(s.id)
	s.notifier = nil
}

type entry struct {
	id       uint64
	property string
	listener Listener
}

// Notifier manages listener subscriptions for one source object.
type Notifier struct {
	source  any
	entries []entry
	nextID  uint64
}

// New creates a Notifier that reports source as the sender of every change.
func New(source any) *Notifier {
	return &Notifier{source: source}
}

// Subscribe registers a listener for changes to any property.
func (n *Notifier) Subscribe(listener Listener) *Subscription {
	return n.add("", listener)
}

// SubscribeProperty registers a listener for changes to one property.
func (n *Notifier) SubscribeProperty(property string, listener Listener) *Subscription {
	return n.add(property, listener)
}

func (n *Notifier) add(property string, listener Listener) *Subscription {
	if listener == nil {
		return &Subscription{}
	}

	n.nextID++
	n.entries = append(n.entries, entry{id: n.nextID, property: property, listener: listener})

	return &Subscription{id: n.nextID, notifier: n}
}

// Emit notifies listeners that each named property changed, in order.
func (n *Notifier) Emit(properties ...string) {
	for _, property := range properties {
		n.emit(property)
	}
}

func (n *Notifier) emit(property string) {
	if len(n.entries) == 0 {
		return
	}

	// Listeners may subscribe or unsubscribe while being called.
	snapshot := make([]entry, len(n.entries))
	copy(snapshot, n.entries)

	change := Change{Source: n.source, Property: property}
	for _, e := range snapshot {
		if e.property == "" || e.property == property {
			e.listener(change)
		}
	}
}

// Len returns the number of active subscriptions.
func (n *Notifier) Len() int {
	return len(n.entries)
}

func (n *Notifier) unsubscribe(id uint64) {
	for i, e := range n.entries {
		if e.id == id {
			n.entries = append(n.entries[:i:i], n.entries[i+1:]...)
			return
		}
	}
}
