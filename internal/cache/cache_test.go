package cache

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func newTestStore(now *time.Time) *Store {
	s := NewStore()
	s.now = func() time.Time { return *now }
	return s
}

func TestValid_NeverFetched(t *testing.T) {
	now := time.Now()
	s := newTestStore(&now)

	assert.Equal(t, false, s.Valid(Entry{}))
	assert.Equal(t, false, s.Valid(s.General()))
	assert.Equal(t, false, s.Valid(s.SymbolNews("AAPL")))
	assert.Equal(t, false, s.Valid(s.SymbolPrice("AAPL")))
}

func TestValid_ExpiresExactlyAtTTL(t *testing.T) {
	now := time.Now()
	s := newTestStore(&now)

	s.SetGeneral("payload")

	now = now.Add(TTL - time.Nanosecond)
	assert.Equal(t, true, s.Valid(s.General()))

	now = now.Add(time.Nanosecond)
	assert.Equal(t, false, s.Valid(s.General()))
}

func TestSetGeneral_ReplacesWholeEntry(t *testing.T) {
	now := time.Now()
	s := newTestStore(&now)

	s.SetGeneral("first")
	first := s.General()

	now = now.Add(10 * time.Second)
	s.SetGeneral("second")
	second := s.General()

	assert.Equal(t, "second", second.Data)
	assert.Equal(t, true, second.FetchedAt.After(first.FetchedAt))
}

func TestSymbolEntries_AgeIndependently(t *testing.T) {
	now := time.Now()
	s := newTestStore(&now)

	s.SetSymbolNews("AAPL", "news")

	now = now.Add(40 * time.Second)
	s.SetSymbolPrice("AAPL", "price")

	now = now.Add(30 * time.Second)
	assert.Equal(t, false, s.Valid(s.SymbolNews("AAPL")))
	assert.Equal(t, true, s.Valid(s.SymbolPrice("AAPL")))
}

func TestSymbolIsolation(t *testing.T) {
	now := time.Now()
	s := newTestStore(&now)

	s.SetSymbolNews("AAPL", "aapl news")

	assert.Equal(t, true, s.Valid(s.SymbolNews("AAPL")))
	assert.Equal(t, false, s.Valid(s.SymbolNews("MSFT")))
	assert.Equal(t, nil, s.SymbolNews("MSFT").Data)
}

func TestSymbolKeys_UppercasedAtStore(t *testing.T) {
	now := time.Now()
	s := newTestStore(&now)

	s.SetSymbolPrice("aapl", "price")

	assert.Equal(t, "price", s.SymbolPrice("AAPL").Data)
	assert.Equal(t, true, s.Valid(s.SymbolPrice("AAPL")))
}

func TestStaleEntry_KeptUntilOverwritten(t *testing.T) {
	now := time.Now()
	s := newTestStore(&now)

	s.SetSymbolNews("AAPL", "old")

	now = now.Add(2 * TTL)
	e := s.SymbolNews("AAPL")
	assert.Equal(t, false, s.Valid(e))
	assert.Equal(t, "old", e.Data)
}
