// Package sessions keeps transient chat transcripts, one per connected
// session. Transcripts live in memory only; clearing a session never touches
// the persisted memory ledger.
package sessions

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/nextlevelbuilder/westmarch/pkg/protocol"
)

// Manager holds all live session transcripts.
type Manager struct {
	mu       sync.Mutex
	sessions map[string][]protocol.TranscriptRecord
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string][]protocol.TranscriptRecord)}
}

// Ensure returns id if it names an existing session, creating it on first
// use. An empty id allocates a fresh session key.
func (m *Manager) Ensure(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id == "" {
		id = uuid.NewString()
	}
	if _, ok := m.sessions[id]; !ok {
		m.sessions[id] = nil
	}
	return id
}

// Append adds records to a session's transcript, creating the session if
// needed.
func (m *Manager) Append(id string, records ...protocol.TranscriptRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = append(m.sessions[id], records...)
}

// History returns a copy of the session's transcript in order. Unknown
// sessions yield nil.
func (m *Manager) History(id string) []protocol.TranscriptRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	records := m.sessions[id]
	if len(records) == 0 {
		return nil
	}
	out := make([]protocol.TranscriptRecord, len(records))
	copy(out, records)
	return out
}

// Clear empties a session's transcript but keeps the session alive.
func (m *Manager) Clear(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; ok {
		m.sessions[id] = nil
	}
}

// Delete removes the session entirely.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// List returns all session ids, sorted.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
