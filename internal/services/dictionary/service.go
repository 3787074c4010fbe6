package dictionary

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/Captainbleu/Boggle/internal/model"
	"github.com/Captainbleu/Boggle/internal/storage"
)

// Service manages one WordIndex per language. Indices are built once
// when a language's word list is loaded and are read-only afterward;
// loading the same language again replaces the index wholesale.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu      sync.RWMutex
	indices map[string]*WordIndex
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		indices: make(map[string]*WordIndex),
	}
}

// LoadFromStorage builds the index for a language from stored words
func (s *Service) LoadFromStorage(ctx context.Context, lang string) error {
	words, err := s.storage.GetDictionaryWords(ctx, lang)
	if err != nil {
		return err
	}
	s.install(lang, words)
	return nil
}

// LoadFromFile builds the index for a language from a word file (one
// word per line), persisting the normalized list to storage for reuse
func (s *Service) LoadFromFile(ctx context.Context, lang, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := Normalize(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := s.storage.SaveDictionaryWords(ctx, lang, words); err != nil {
		return err
	}

	s.install(lang, words)
	return nil
}

// LoadWords directly builds the index for a language from a slice
// (useful for testing)
func (s *Service) LoadWords(lang string, words []string) error {
	normalized := make([]string, 0, len(words))
	for _, word := range words {
		if w := Normalize(word); w != "" {
			normalized = append(normalized, w)
		}
	}
	s.install(lang, normalized)
	return nil
}

func (s *Service) install(lang string, words []string) {
	idx := BuildIndex(words)

	s.mu.Lock()
	s.indices[lang] = idx
	s.mu.Unlock()

	s.logger.Info("dictionary loaded",
		slog.String("language", lang),
		slog.Int("words", idx.Size()),
	)
}

// Index returns the built index for a language
func (s *Service) Index(lang string) (*WordIndex, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.indices[lang]
	if !ok {
		return nil, model.ErrDictionaryNotLoaded
	}
	return idx, nil
}

// Contains reports whether the normalized word is in the language's
// dictionary
func (s *Service) Contains(lang, word string) (bool, error) {
	idx, err := s.Index(lang)
	if err != nil {
		return false, err
	}
	return idx.Contains(word), nil
}

// IsLoaded returns whether the language's dictionary has been loaded
func (s *Service) IsLoaded(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.indices[lang]
	return ok
}

// WordCount returns the number of words loaded for a language
func (s *Service) WordCount(lang string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.indices[lang]
	if !ok {
		return 0
	}
	return idx.Size()
}

// Normalize maps a raw word to dictionary form: trimmed and uppercased
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// Interface for dependency injection
type ServiceInterface interface {
	LoadFromStorage(ctx context.Context, lang string) error
	LoadFromFile(ctx context.Context, lang, path string) error
	LoadWords(lang string, words []string) error
	Index(lang string) (*WordIndex, error)
	Contains(lang, word string) (bool, error)
	IsLoaded(lang string) bool
	WordCount(lang string) int
}

var _ ServiceInterface = (*Service)(nil)
