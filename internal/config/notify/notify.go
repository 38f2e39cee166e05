// Package notify provides change notification for configuration updates.
//
// The notify package implements an observer pattern that lets a host (for
// example a settings dialog) react when user overrides are changed, removed,
// loaded, or saved. Delivery is synchronous and in subscription order.
package notify

import "strings"

// ChangeType represents the type of configuration change.
type ChangeType int

const (
	// ChangeSet indicates a value was set or updated.
	ChangeSet ChangeType = iota

	// ChangeRemove indicates a value was removed.
	ChangeRemove

	// ChangeLoad indicates a domain was (re)loaded from disk.
	ChangeLoad

	// ChangeSave indicates a domain's user overrides were written.
	ChangeSave
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeSet:
		return "set"
	case ChangeRemove:
		return "remove"
	case ChangeLoad:
		return "load"
	case ChangeSave:
		return "save"
	default:
		return "unknown"
	}
}

// Change represents a configuration change event.
type Change struct {
	// Domain is the configuration domain ("main", "keys", ...).
	Domain string

	// Section and Option locate the value. Both are empty for load and
	// save events.
	Section string
	Option  string

	// Type is the type of change.
	Type ChangeType

	// OldValue is the previous value ("" if there was none).
	OldValue string

	// NewValue is the new value ("" for removals).
	NewValue string
}

// Path returns "domain/section/option", trimmed to the parts that are set.
func (c Change) Path() string {
	parts := []string{c.Domain}
	if c.Section != "" {
		parts = append(parts, c.Section)
		if c.Option != "" {
			parts = append(parts, c.Option)
		}
	}
	return strings.Join(parts, "/")
}

// Observer is called when configuration changes occur.
type Observer func(change Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
		s.notifier = nil
	}
}

type entry struct {
	id       uint64
	path     string // empty for global observers
	observer Observer
}

// Notifier manages configuration change subscriptions.
//
// Notifier is not safe for concurrent use; it belongs to the single caller
// that owns the registry.
type Notifier struct {
	entries []entry
	nextID  uint64
}

// New creates a new Notifier.
func New() *Notifier {
	return &Notifier{}
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	return n.add("", observer)
}

// SubscribePath registers an observer for changes under a path.
// The observer is called for exact matches and for children: subscribing
// to "keys" receives "keys/IDLE Classic Unix/copy" and "keys" load events.
func (n *Notifier) SubscribePath(path string, observer Observer) *Subscription {
	return n.add(path, observer)
}

func (n *Notifier) add(path string, observer Observer) *Subscription {
	id := n.nextID
	n.nextID++
	n.entries = append(n.entries, entry{id: id, path: path, observer: observer})
	return &Subscription{id: id, notifier: n}
}

// Len returns the number of active subscriptions.
func (n *Notifier) Len() int {
	return len(n.entries)
}

// Notify sends a change notification to all relevant observers.
func (n *Notifier) Notify(change Change) {
	path := change.Path()

	// Snapshot so observers may unsubscribe while being called.
	targets := make([]Observer, 0, len(n.entries))
	for _, e := range n.entries {
		if e.path == "" || e.path == path || isParentPath(e.path, path) {
			targets = append(targets, e.observer)
		}
	}
	for _, obs := range targets {
		obs(change)
	}
}

// NotifySet is a convenience method for set changes.
func (n *Notifier) NotifySet(domain, section, option, oldValue, newValue string) {
	n.Notify(Change{
		Domain:   domain,
		Section:  section,
		Option:   option,
		Type:     ChangeSet,
		OldValue: oldValue,
		NewValue: newValue,
	})
}

// NotifyRemove is a convenience method for removals.
func (n *Notifier) NotifyRemove(domain, section, option, oldValue string) {
	n.Notify(Change{
		Domain:   domain,
		Section:  section,
		Option:   option,
		Type:     ChangeRemove,
		OldValue: oldValue,
	})
}

// NotifyDomain is a convenience method for load and save events.
func (n *Notifier) NotifyDomain(domain string, typ ChangeType) {
	n.Notify(Change{Domain: domain, Type: typ})
}

// unsubscribe removes an observer by ID.
func (n *Notifier) unsubscribe(id uint64) {
	for i, e := range n.entries {
		if e.id == id {
			n.entries = append(n.entries[:i], n.entries[i+1:]...)
			return
		}
	}
}

// isParentPath checks if parent is a parent path of child.
// e.g., "keys" is parent of "keys/IDLE Classic Unix".
func isParentPath(parent, child string) bool {
	return len(child) > len(parent) && child[:len(parent)] == parent && child[len(parent)] == '/'
}
