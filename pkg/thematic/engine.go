// Package thematic serves "info of the day" snippets. Items rotate without
// repeating until every item of the pool has been shown, then the rotation
// starts over.
package thematic

import (
	"math/rand/v2"
	"time"

	"tableflip.dev/matchday/pkg/apperr"
	"tableflip.dev/matchday/pkg/event"
)

// Engine holds the pool and the current rotation cycle.
type Engine struct {
	pool    []Item
	byID    map[string]int
	shown   map[string]struct{}
	current *Item
	rng     *rand.Rand
}

// Option tunes an Engine.
type Option func(*Engine)

// WithSeed makes the selection sequence reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// New builds an engine over pool. It fails with apperr.ErrEmptyPool when the
// pool has no items.
func New(pool []Item, opts ...Option) (*Engine, error) {
	if len(pool) == 0 {
		return nil, apperr.ErrEmptyPool
	}
	e := &Engine{
		pool:  append([]Item{}, pool...),
		byID:  make(map[string]int, len(pool)),
		shown: make(map[string]struct{}, len(pool)),
		rng:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
	}
	for i, it := range e.pool {
		e.byID[it.ID] = i
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Len is the pool size.
func (e *Engine) Len() int {
	return len(e.pool)
}

// Current returns the item on display, selecting one on first use.
func (e *Engine) Current() Item {
	if e.current != nil {
		return *e.current
	}
	return e.RefreshRandom()
}

// RefreshRandom picks uniformly among the items not shown in this cycle,
// starting a new cycle when all have been shown, and makes it current.
func (e *Engine) RefreshRandom() Item {
	candidates := e.unshown()
	if len(candidates) == 0 {
		e.shown = make(map[string]struct{}, len(e.pool))
		candidates = e.unshown()
	}
	picked := candidates[e.rng.IntN(len(candidates))]
	e.shown[picked.ID] = struct{}{}
	e.current = &picked
	return picked
}

func (e *Engine) unshown() []Item {
	out := make([]Item, 0, len(e.pool)-len(e.shown))
	for _, it := range e.pool {
		if _, ok := e.shown[it.ID]; !ok {
			out = append(out, it)
		}
	}
	return out
}

// Daily returns the item tied to day, preferring a "YYYY-MM-DD" match over
// a yearly "MM-DD" one. Without a match it falls back to Current. Daily does
// not advance the rotation.
func (e *Engine) Daily(day event.Date) Item {
	if !day.Valid() {
		return e.Current()
	}
	exact := day.String()
	yearly := exact[len("2006-"):]
	var annual *Item
	for i := range e.pool {
		switch e.pool[i].On {
		case exact:
			return e.pool[i]
		case yearly:
			if annual == nil {
				annual = &e.pool[i]
			}
		}
	}
	if annual != nil {
		return *annual
	}
	return e.Current()
}

// RandomFromCategory picks any item of category without touching the
// rotation.
func (e *Engine) RandomFromCategory(category string) (Item, error) {
	var matches []Item
	for _, it := range e.pool {
		if it.Category == category {
			matches = append(matches, it)
		}
	}
	if len(matches) == 0 {
		return Item{}, &apperr.NotFoundError{Kind: "category", ID: category}
	}
	return matches[e.rng.IntN(len(matches))], nil
}

// Categories lists the categories present in the pool in first-seen order.
func (e *Engine) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, it := range e.pool {
		if _, ok := seen[it.Category]; !ok {
			seen[it.Category] = struct{}{}
			out = append(out, it.Category)
		}
	}
	return out
}

// State is the rotation progress, kept between runs.
type State struct {
	Shown   []string `json:"shown"`
	Current string   `json:"current,omitempty"`
}

// State snapshots the rotation in pool order.
func (e *Engine) State() State {
	st := State{Shown: []string{}}
	for _, it := range e.pool {
		if _, ok := e.shown[it.ID]; ok {
			st.Shown = append(st.Shown, it.ID)
		}
	}
	if e.current != nil {
		st.Current = e.current.ID
	}
	return st
}

// Restore resumes a saved rotation. Ids no longer in the pool are ignored.
func (e *Engine) Restore(st State) {
	e.shown = make(map[string]struct{}, len(e.pool))
	for _, id := range st.Shown {
		if _, ok := e.byID[id]; ok {
			e.shown[id] = struct{}{}
		}
	}
	e.current = nil
	if i, ok := e.byID[st.Current]; ok {
		cur := e.pool[i]
		e.current = &cur
	}
}
