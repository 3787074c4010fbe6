package storage

import (
	"context"

	"github.com/Captainbleu/Boggle/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error

	// Dictionary operations, keyed by language code
	SaveDictionaryWords(ctx context.Context, lang string, words []string) error
	GetDictionaryWords(ctx context.Context, lang string) ([]string, error)
}
