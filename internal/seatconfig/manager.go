package seatconfig

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"travelpartner/internal/domain/models"
)

// defaultIdleTTL is how long an untouched session survives before eviction.
const defaultIdleTTL = 30 * time.Minute

// Manager hands out edit sessions to HTTP handlers. Each session is owned by
// one logical editor; the manager only keys and evicts them.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	saver    Saver
	idleTTL  time.Duration
}

func NewManager(saver Saver) *Manager {
	return &Manager{
		sessions: map[string]*Session{},
		saver:    saver,
		idleTTL:  defaultIdleTTL,
	}
}

// Open starts an edit session over a deep copy of the ride's seat list and
// returns it under a fresh session ID.
func (m *Manager) Open(ride models.Ride) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictIdleLocked()

	id := newSessionID()
	for m.sessions[id] != nil {
		id = newSessionID()
	}
	sess := newSession(id, ride, m.saver)
	m.sessions[id] = sess
	return sess
}

// Get looks up a live session by ID.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// Close discards a session and its working copy. Teardown is refused while a
// save is outstanding so no canceled callback can land on dead state.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil
	}
	if sess.saving() {
		return ErrSaveInFlight
	}
	delete(m.sessions, id)
	return nil
}

func (m *Manager) evictIdleLocked() {
	cutoff := time.Now().Add(-m.idleTTL)
	for id, sess := range m.sessions {
		sess.mu.Lock()
		idle := sess.lastUsed.Before(cutoff) && sess.activeSaves == 0
		sess.mu.Unlock()
		if idle {
			delete(m.sessions, id)
		}
	}
}

// newSessionID builds a lightweight unique id (time + rand), same scheme the
// request-ID middleware uses.
func newSessionID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 36) + "-" + strconv.Itoa(rand.Intn(1000000))
}
