package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Board errors
	ErrInvalidBoardSize = errors.New("invalid board size")
	// ErrBoardUnsatisfiable is the single generation failure: a cell
	// exhausted its retry budget without satisfying the letter
	// occurrence quotas. Callers may retry with a fresh random source.
	ErrBoardUnsatisfiable = errors.New("board could not satisfy letter occurrence constraints")

	// Word submission errors
	ErrEmptyWord           = errors.New("word is empty")
	ErrWordTooShort        = errors.New("word is too short")
	ErrWordAlreadyFound    = errors.New("word was already found on this board")
	ErrWordNotOnBoard      = errors.New("word cannot be traced on the board")
	ErrWordNotInDictionary = errors.New("word is not in the dictionary")

	// Language errors
	ErrUnknownLanguage = errors.New("unknown language")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
