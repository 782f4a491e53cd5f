package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pr-poehali-dev/java-vacancy-bot/internal/logger"
	"github.com/pr-poehali-dev/java-vacancy-bot/internal/models"
)

// DefaultTTL is how long an untouched view is kept when NewStore is given no
// positive TTL.
const DefaultTTL = 30 * time.Minute

type entry struct {
	view     *View
	lastSeen time.Time
}

// Store keeps one View per browser session in memory. Nothing is persisted;
// a view that has not been requested for longer than the TTL is dropped.
type Store struct {
	mu        sync.Mutex
	seed      []models.Job
	ttl       time.Duration
	views     map[string]*entry
	lastSweep time.Time
	now       func() time.Time
	log       zerolog.Logger
}

func NewStore(seed []models.Job, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		seed:  seed,
		ttl:   ttl,
		views: make(map[string]*entry),
		now:   time.Now,
		log:   logger.Component("session"),
	}
}

// Get returns the view for id, creating a fresh one under a new id when id
// is empty, unknown or expired. The returned id is the one the caller should
// keep.
func (s *Store) Get(id string) (string, *View) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= s.ttl {
		s.sweep(now)
	}

	if e, ok := s.views[id]; ok {
		if now.Sub(e.lastSeen) <= s.ttl {
			e.lastSeen = now
			return id, e.view
		}
		delete(s.views, id)
	}

	id = uuid.NewString()
	v := NewView(s.seed)
	s.views[id] = &entry{view: v, lastSeen: now}
	return id, v
}

func (s *Store) sweep(now time.Time) {
	evicted := 0
	for id, e := range s.views {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.views, id)
			evicted++
		}
	}
	s.lastSweep = now
	if evicted > 0 {
		s.log.Debug().Int("evicted", evicted).Int("session_count", len(s.views)).Msg("Evicted idle sessions")
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}
