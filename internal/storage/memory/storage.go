package memory

import (
	"context"
	"sync"

	"github.com/Captainbleu/Boggle/internal/model"
	"github.com/Captainbleu/Boggle/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sessions        map[model.SessionID]*model.Session
	dictionaryWords map[string][]string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions:        make(map[model.SessionID]*model.Session),
		dictionaryWords: make(map[string][]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Dictionary operations

func (s *Storage) SaveDictionaryWords(ctx context.Context, lang string, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]string, len(words))
	copy(stored, words)
	s.dictionaryWords[lang] = stored
	return nil
}

func (s *Storage) GetDictionaryWords(ctx context.Context, lang string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.dictionaryWords[lang]
	if !ok {
		return nil, model.ErrDictionaryNotLoaded
	}
	out := make([]string, len(words))
	copy(out, words)
	return out, nil
}
