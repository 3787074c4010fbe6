package factory

import (
	"time"

	"github.com/Captainbleu/Boggle/internal/dependencies/mocks"
	"github.com/Captainbleu/Boggle/internal/dependencies/random"
	"github.com/Captainbleu/Boggle/internal/language"
	"github.com/Captainbleu/Boggle/internal/storage/memory"
	"github.com/Captainbleu/Boggle/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing: memory storage, a
// fixed clock and a seeded random source so board generation is
// reproducible across runs.
func NewTestApp(seed int64) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	rnd := random.NewSeeded(seed)

	app := newWithDependencies(store, mockClock, rnd, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}

// LoadTestDictionary loads a small English dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		// 2-letter words
		"AT", "BE", "DO", "GO", "HE", "IF", "IN", "IS", "IT", "ME",
		"NO", "OF", "ON", "OR", "SO", "TO", "UP", "US", "WE",
		// 3-letter words
		"ACE", "ACT", "AGE", "AIR", "AND", "ANT", "ARE", "ARM", "ART", "ATE",
		"BAT", "BED", "BEE", "CAB", "CAN", "CAR", "CAT", "DOG", "EAR", "EAT",
		"END", "ERA", "EYE", "FAN", "FAR", "FIT", "GAS", "GET", "HAT", "HEN",
		"ICE", "INK", "ION", "JAR", "KEY", "LAP", "LEG", "LET", "LIE", "MAN",
		"MAP", "MAT", "NET", "NOT", "NUT", "OAR", "OIL", "ONE", "ORE", "OUT",
		"PAN", "PAT", "PEA", "PEN", "PET", "PIE", "PIG", "PIN", "POT", "RAN",
		"RAT", "RED", "RIB", "ROT", "ROW", "RUN", "SAT", "SEA", "SET", "SIN",
		"SIT", "SUN", "TAN", "TAP", "TAR", "TEA", "TEN", "TIE", "TIN", "TOE",
		"TOP", "USE", "VAN", "WAR", "WAS", "WAX", "WEB", "WET", "WIN", "YES",
		// 4-letter words
		"ACRE", "AREA", "BEAR", "BEAT", "CARE", "CART", "CASE", "CAST", "CATS", "DEAR",
		"EAST", "EATS", "GEAR", "HEAR", "HEAT", "LANE", "LAST", "LATE", "MEAT", "NEAR",
		"NEAT", "NEST", "NOTE", "OATS", "RACE", "RAIN", "RATE", "RATS", "REST", "RICE",
		"RIDE", "RISE", "ROAD", "ROSE", "SEAT", "SENT", "STAR", "STIR", "TALE", "TEAR",
		"TENT", "TIDE", "TIES", "TIRE", "TONE", "TORE", "VASE", "WEAR", "WEST", "WIRE",
		// 5-letter words
		"CARTS", "CATER", "CRATE", "EARNS", "HEART", "LATER", "RATES", "STARE", "STEAM",
		"TEARS", "TRACE", "TRAIN",
	}
	return t.DictionaryService.LoadWords(language.English.Code(), words)
}
