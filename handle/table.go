package handle

import (
	"sync"
)

// ID is a small registry key standing for a Token. ID 0 is always invalid.
type ID uint32

// Kind names the engine resource a handle refers to.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindExport
	KindEntityList
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindExport:
		return "export"
	case KindEntityList:
		return "entity_list"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Entry is a registered handle.
type Entry struct {
	Value any
	Token Token
	Kind  Kind
}

// EventType tells observers what happened to a handle.
type EventType uint8

const (
	EventOpened EventType = iota
	EventClosed
)

// Event is a handle lifecycle notification.
type Event struct {
	Entry Entry
	ID    ID
	Type  EventType
}

// Observer receives handle lifecycle events.
type Observer interface {
	OnHandleEvent(Event)
}

// Dropper is optionally implemented by entry values that need cleanup when
// their handle is removed.
type Dropper interface {
	Drop()
}

// Table maps IDs to typed tokens for callers that cannot hold native
// pointers. It does not validate tokens against the engine.
type Table struct {
	store     *store
	observers []Observer
	obsMu     sync.RWMutex
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{store: newStore()}
}

// Insert registers t and returns its ID, or 0 when the table is closed.
func (tb *Table) Insert(kind Kind, t Token, value any) ID {
	e := Entry{Kind: kind, Token: t, Value: value}
	id, err := tb.store.create(e)
	if err != nil {
		return 0
	}

	tb.notify(Event{Type: EventOpened, ID: id, Entry: e})
	return id
}

// Get returns the entry registered under id.
func (tb *Table) Get(id ID) (Entry, bool) {
	return tb.store.get(id)
}

// GetTyped returns the entry only if it has the expected kind.
func (tb *Table) GetTyped(id ID, kind Kind) (Entry, bool) {
	e, ok := tb.store.get(id)
	if !ok || e.Kind != kind {
		return Entry{}, false
	}
	return e, true
}

// Find returns the ID a token is registered under.
func (tb *Table) Find(t Token) (ID, Entry, bool) {
	id, ok := tb.store.find(t)
	if !ok {
		return 0, Entry{}, false
	}
	e, ok := tb.store.get(id)
	return id, e, ok
}

// Remove unregisters id and returns its entry.
func (tb *Table) Remove(id ID) (Entry, bool) {
	e, ok := tb.store.drop(id)
	if !ok {
		return Entry{}, false
	}

	if d, ok := e.Value.(Dropper); ok {
		d.Drop()
	}

	tb.notify(Event{Type: EventClosed, ID: id, Entry: e})
	return e, true
}

// RemoveToken unregisters the entry holding t.
func (tb *Table) RemoveToken(t Token) (Entry, bool) {
	id, ok := tb.store.find(t)
	if !ok {
		return Entry{}, false
	}
	return tb.Remove(id)
}

// Subscribe adds an observer for lifecycle events.
func (tb *Table) Subscribe(o Observer) {
	tb.obsMu.Lock()
	defer tb.obsMu.Unlock()
	tb.observers = append(tb.observers, o)
}

// Unsubscribe removes an observer.
func (tb *Table) Unsubscribe(o Observer) {
	tb.obsMu.Lock()
	defer tb.obsMu.Unlock()
	for i, obs := range tb.observers {
		if obs == o {
			tb.observers = append(tb.observers[:i], tb.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered handles.
func (tb *Table) Len() int {
	return tb.store.len()
}

// Each calls fn for every registered handle until fn returns false.
func (tb *Table) Each(fn func(ID, Entry) bool) {
	tb.store.each(fn)
}

// Clear removes every registered handle, notifying observers.
func (tb *Table) Clear() {
	// Collect IDs first so Remove does not run under the store lock
	var ids []ID
	tb.store.each(func(id ID, _ Entry) bool {
		ids = append(ids, id)
		return true
	})
	for _, id := range ids {
		tb.Remove(id)
	}
}

// Close clears the table and rejects further inserts.
func (tb *Table) Close() error {
	tb.Clear()
	tb.store.close()
	return nil
}

func (tb *Table) notify(e Event) {
	tb.obsMu.RLock()
	defer tb.obsMu.RUnlock()
	for _, o := range tb.observers {
		o.OnHandleEvent(e)
	}
}
