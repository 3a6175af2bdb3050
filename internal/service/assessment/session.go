package assessment

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/domain"
)

// AnswerRecord is one entry in the session's answer log.
type AnswerRecord struct {
	CardID    uuid.UUID
	Prompt    string
	Submitted string
	Expected  string
	Correct   bool
}

// Question is what the learner sees for the current step of a session.
// Options is empty in typing mode.
type Question struct {
	Index   int
	Total   int
	CardID  uuid.UUID
	Prompt  string
	Options []string
}

// Session is the in-flight state of one assessment run. The card order and
// the option sets are fixed when the session starts.
type Session struct {
	UserID    uuid.UUID
	Mode      domain.TestMode
	Direction domain.Direction
	Cards     []domain.Card
	Options   [][]string
	Index     int
	Correct   int
	Wrong     int
	Answers   []AnswerRecord
	StartedAt time.Time
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return s.Index >= len(s.Cards)
}

// question builds the view of the current step. Callers must check Done first.
func (s *Session) question() Question {
	card := s.Cards[s.Index]
	q := Question{
		Index:  s.Index,
		Total:  len(s.Cards),
		CardID: card.ID,
		Prompt: card.Prompt(s.Direction),
	}
	if s.Mode != domain.TestModeTyping {
		q.Options = s.Options[s.Index]
	}
	return q
}

// entry pairs a session with its own lock, so users never contend on each
// other's sessions. touchedAt is guarded by mu.
type entry struct {
	mu        sync.Mutex
	session   *Session
	touchedAt time.Time
}

// Store keeps at most one live session per user in process memory.
// Sessions disappear on restart; the learner just starts a new one.
// The store lock guards only the map; each entry carries its own lock.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[uuid.UUID]*entry
	now      func() time.Time
}

// NewStore creates a session store. Sessions idle longer than ttl are
// treated as gone.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[uuid.UUID]*entry),
		now:      time.Now,
	}
}

// Replace installs a new session for the user, silently dropping any
// previous one.
func (st *Store) Replace(userID uuid.UUID, s *Session) {
	e := &entry{session: s, touchedAt: st.now()}

	st.mu.Lock()
	st.sessions[userID] = e
	st.mu.Unlock()
}

// Mutate runs fn on the user's live session under that session's lock.
// A successful fn bumps the idle clock.
func (st *Store) Mutate(userID uuid.UUID, fn func(s *Session) error) error {
	return st.withSession(userID, true, fn)
}

// Get returns a snapshot of the user's live session without bumping the
// idle clock.
func (st *Store) Get(userID uuid.UUID) (Session, error) {
	var snapshot Session
	err := st.withSession(userID, false, func(s *Session) error {
		snapshot = *s
		return nil
	})
	if err != nil {
		return Session{}, err
	}
	return snapshot, nil
}

// Delete discards the user's session, if any.
func (st *Store) Delete(userID uuid.UUID) {
	st.mu.Lock()
	delete(st.sessions, userID)
	st.mu.Unlock()
}

// withSession locks the user's entry and runs fn on its session. The map
// lock is never held across fn, so one user's long submit cannot stall
// another user's. The entry is re-checked after its lock is taken; a
// concurrent Replace or Delete restarts the lookup.
func (st *Store) withSession(userID uuid.UUID, touch bool, fn func(s *Session) error) error {
	for {
		st.mu.Lock()
		e, ok := st.sessions[userID]
		st.mu.Unlock()
		if !ok {
			return domain.ErrSessionNotFound
		}

		e.mu.Lock()
		if !st.current(userID, e) {
			e.mu.Unlock()
			continue
		}
		if st.ttl > 0 && st.now().Sub(e.touchedAt) > st.ttl {
			e.mu.Unlock()
			st.drop(userID, e)
			return domain.ErrSessionNotFound
		}

		err := fn(e.session)
		if err == nil && touch {
			e.touchedAt = st.now()
		}
		e.mu.Unlock()
		return err
	}
}

// current reports whether e is still the user's installed entry.
func (st *Store) current(userID uuid.UUID, e *entry) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sessions[userID] == e
}

// drop removes e from the map unless it was already replaced.
func (st *Store) drop(userID uuid.UUID, e *entry) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.sessions[userID] == e {
		delete(st.sessions, userID)
	}
}
