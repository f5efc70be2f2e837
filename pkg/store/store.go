// Package store keeps the event collection in memory and writes the whole
// collection through to a JSON document after every mutation.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/matchday/pkg/apperr"
	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/log"
)

// EventsKey names the events document inside the base path.
const EventsKey = "events.json"

// Store is the sole owner of the events. Read methods return copies.
type Store struct {
	mu       sync.RWMutex
	d        *diskv.Diskv
	basePath string
	events   []event.Event // insertion order
	index    map[string]int
	newID    func() string
}

// Option tunes a Store.
type Option func(*Store)

// WithIDGenerator replaces the uuid generator, for tests.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// Open loads the events document under cfg.BasePath(). A missing or empty
// document yields an empty store. A document that cannot be decoded fails
// with a *apperr.CorruptStoreError and is left untouched.
func Open(cfg Config, opts ...Option) (*Store, error) {
	d, err := Disk(cfg.BasePath())
	if err != nil {
		return nil, err
	}
	s := &Store{
		d:        d,
		basePath: cfg.BasePath(),
		index:    make(map[string]int),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path is the location of the events document.
func (s *Store) Path() string {
	return DocumentPath(s.basePath, EventsKey)
}

// Reload replaces the in-memory collection with the document on disk. On
// failure the in-memory collection is kept.
func (s *Store) Reload() error {
	data, ok, err := ReadDocument(s.d, EventsKey)
	if err != nil {
		return fmt.Errorf("store: read events: %w", err)
	}
	var list []event.Event
	if ok && len(bytes.TrimSpace(data)) > 0 {
		list, err = decode(data)
		if err != nil {
			return &apperr.CorruptStoreError{Path: s.Path(), Err: err}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = list
	s.reindex()
	log.Debug("events loaded", "path", s.Path(), "count", len(list))
	return nil
}

func decode(data []byte) ([]event.Event, error) {
	var raw []event.Event
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(raw))
	list := make([]event.Event, 0, len(raw))
	for i, e := range raw {
		if e.ID == "" {
			return nil, fmt.Errorf("record %d: missing id", i)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %q", i, e.ID)
		}
		seen[e.ID] = struct{}{}
		n, err := event.Normalize(e)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		list = append(list, n)
	}
	return list, nil
}

// Add validates the draft, assigns a fresh id and persists the new event.
func (s *Store) Add(d event.Draft) (event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	for _, taken := s.index[id]; taken || id == ""; _, taken = s.index[id] {
		id = s.newID()
	}
	e, err := d.Build(id)
	if err != nil {
		return event.Event{}, err
	}

	next := s.snapshot()
	next = append(next, e)
	if err := s.commit(next); err != nil {
		return event.Event{}, err
	}
	log.Debug("event added", "id", e.ID, "date", e.Date)
	return e.Clone(), nil
}

// Update applies p to the event with the given id and persists the result.
// The id and the insertion position are preserved.
func (s *Store) Update(id string, p event.Patch) (event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return event.Event{}, notFound(id)
	}
	updated, err := p.Apply(s.events[i])
	if err != nil {
		return event.Event{}, err
	}

	next := s.snapshot()
	next[i] = updated
	if err := s.commit(next); err != nil {
		return event.Event{}, err
	}
	log.Debug("event updated", "id", id)
	return updated.Clone(), nil
}

// Remove deletes the event with the given id. Removing an id twice fails.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return notFound(id)
	}
	next := make([]event.Event, 0, len(s.events)-1)
	next = append(next, s.events[:i]...)
	next = append(next, s.events[i+1:]...)
	if err := s.commit(next); err != nil {
		return err
	}
	log.Debug("event removed", "id", id)
	return nil
}

// Get returns the event with the given id.
func (s *Store) Get(id string) (event.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return event.Event{}, notFound(id)
	}
	return s.events[i].Clone(), nil
}

// List returns the events matching f ordered by date, then by insertion
// order for events on the same day.
func (s *Store) List(f Filter) []event.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]event.Event, 0, len(s.events))
	for _, e := range s.events {
		if f.Match(e) {
			out = append(out, e.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Len is the number of stored events.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// Types returns the distinct event types in use, defaults first.
func (s *Store) Types() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := event.DefaultTypes()
	seen := make(map[string]struct{}, len(out))
	for _, t := range out {
		seen[t] = struct{}{}
	}
	var extra []string
	for _, e := range s.events {
		if _, ok := seen[e.Type]; !ok {
			seen[e.Type] = struct{}{}
			extra = append(extra, e.Type)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// Tags returns every distinct tag in use, sorted.
func (s *Store) Tags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, e := range s.events {
		for _, t := range e.Tags {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				out = append(out, t)
			}
		}
	}
	sort.Strings(out)
	return out
}

// commit writes next to disk and only then makes it the in-memory state.
// Callers hold s.mu.
func (s *Store) commit(next []event.Event) error {
	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode events: %w", err)
	}
	if err := s.d.Write(EventsKey, data); err != nil {
		return fmt.Errorf("store: persist events: %w", err)
	}
	s.events = next
	s.reindex()
	return nil
}

func (s *Store) snapshot() []event.Event {
	out := make([]event.Event, len(s.events), len(s.events)+1)
	copy(out, s.events)
	return out
}

func (s *Store) reindex() {
	s.index = make(map[string]int, len(s.events))
	for i, e := range s.events {
		s.index[e.ID] = i
	}
}

func notFound(id string) error {
	return &apperr.NotFoundError{Kind: "event", ID: id}
}

// BackupCorrupt moves an unreadable events document aside so a fresh store
// can be opened. It returns the backup location. Only call it after the user
// has confirmed; nothing is deleted.
func BackupCorrupt(cfg Config) (string, error) {
	return BackupDocument(cfg.BasePath(), EventsKey)
}

// BackupDocument renames the document key under basePath to
// "<key>.corrupt-<timestamp>" and returns the new location.
func BackupDocument(basePath, key string) (string, error) {
	src := DocumentPath(basePath, key)
	dst := fmt.Sprintf("%s.corrupt-%s", src, time.Now().Format("20060102-150405"))
	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("store: backup corrupt %s: %w", key, err)
	}
	log.Info("corrupt document moved aside", "from", src, "to", dst)
	return dst, nil
}
