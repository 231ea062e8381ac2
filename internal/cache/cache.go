package cache

import (
	"strings"
	"sync"
	"time"
)

// TTL is how long a cached payload stays fresh. Fixed for the whole process.
const TTL = 60 * time.Second

// Entry holds one cached payload. A zero FetchedAt means never fetched;
// entries are always replaced wholesale, never mutated in place.
type Entry struct {
	Data      any
	FetchedAt time.Time
}

type symbolEntry struct {
	news  Entry
	price Entry
}

// Store keeps the general news entry plus per-symbol news and price entries.
// Symbol records are created lazily and never evicted, so memory grows with
// the number of distinct symbols requested over the process lifetime.
type Store struct {
	mu      sync.Mutex
	now     func() time.Time
	general Entry
	symbols map[string]*symbolEntry
}

func NewStore() *Store {
	return &Store{
		now:     time.Now,
		symbols: make(map[string]*symbolEntry),
	}
}

// Valid reports whether the entry has been fetched and is younger than TTL.
// An entry aged exactly TTL is stale.
func (s *Store) Valid(e Entry) bool {
	return !e.FetchedAt.IsZero() && s.now().Sub(e.FetchedAt) < TTL
}

func (s *Store) General() Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.general
}

func (s *Store) SetGeneral(data any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.general = Entry{Data: data, FetchedAt: s.now()}
}

func (s *Store) SymbolNews(symbol string) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.symbol(symbol).news
}

func (s *Store) SetSymbolNews(symbol string, data any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.symbol(symbol).news = Entry{Data: data, FetchedAt: s.now()}
}

func (s *Store) SymbolPrice(symbol string) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.symbol(symbol).price
}

func (s *Store) SetSymbolPrice(symbol string, data any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.symbol(symbol).price = Entry{Data: data, FetchedAt: s.now()}
}

// symbol returns the record for an uppercased ticker, creating it on first
// access. Caller must hold s.mu.
func (s *Store) symbol(symbol string) *symbolEntry {
	key := strings.ToUpper(symbol)
	rec, ok := s.symbols[key]
	if !ok {
		rec = &symbolEntry{}
		s.symbols[key] = rec
	}
	return rec
}
