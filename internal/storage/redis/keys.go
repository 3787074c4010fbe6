package redis

import (
	"fmt"

	"github.com/Captainbleu/Boggle/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "boggle"

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// dictionaryKey returns the Redis key for a language's word list
func dictionaryKey(lang string) string {
	return fmt.Sprintf("%s:dictionary:%s", keyPrefix, lang)
}
