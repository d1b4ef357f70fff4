package handle

import (
	"sync"

	"github.com/wippyai/g2-bridge/errors"
)

// ErrClosed is returned when registering into a closed table.
var ErrClosed = errors.Closed("handle table")

// store is the in-memory backing of a Table. IDs are 1-based slot indexes
// and released slots are reused.
type store struct {
	entries  []slot
	freeList []ID
	byToken  map[Token]ID
	mu       sync.RWMutex
	closed   bool
}

type slot struct {
	entry Entry
	valid bool
}

func newStore() *store {
	return &store{
		entries:  make([]slot, 0, 16),
		freeList: make([]ID, 0, 8),
		byToken:  make(map[Token]ID),
	}
}

func (s *store) create(e Entry) (ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrClosed
	}

	var id ID
	if len(s.freeList) > 0 {
		id = s.freeList[len(s.freeList)-1]
		s.freeList = s.freeList[:len(s.freeList)-1]
		s.entries[id-1] = slot{entry: e, valid: true}
	} else {
		s.entries = append(s.entries, slot{entry: e, valid: true})
		id = ID(len(s.entries))
	}
	if !e.Token.IsZero() {
		s.byToken[e.Token] = id
	}
	return id, nil
}

func (s *store) get(id ID) (Entry, bool) {
	if id == 0 {
		return Entry{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := id - 1
	if int(idx) >= len(s.entries) {
		return Entry{}, false
	}
	sl := s.entries[idx]
	if !sl.valid {
		return Entry{}, false
	}
	return sl.entry, true
}

func (s *store) find(t Token) (ID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byToken[t]
	return id, ok
}

func (s *store) drop(id ID) (Entry, bool) {
	if id == 0 {
		return Entry{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := id - 1
	if int(idx) >= len(s.entries) {
		return Entry{}, false
	}
	sl := &s.entries[idx]
	if !sl.valid {
		return Entry{}, false
	}

	e := sl.entry
	sl.valid = false
	sl.entry = Entry{}
	if cur, ok := s.byToken[e.Token]; ok && cur == id {
		delete(s.byToken, e.Token)
	}
	s.freeList = append(s.freeList, id)
	return e, true
}

func (s *store) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries) - len(s.freeList)
}

func (s *store) each(fn func(ID, Entry) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, sl := range s.entries {
		if sl.valid {
			if !fn(ID(i+1), sl.entry) {
				break
			}
		}
	}
}

func (s *store) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.entries = nil
	s.freeList = nil
	s.byToken = make(map[Token]ID)
}
