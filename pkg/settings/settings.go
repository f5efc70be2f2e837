// Package settings persists the user preferences: calendar colors and the
// reminder lookahead.
package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/peterbourgon/diskv/v3"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"golang.org/x/image/colornames"

	"tableflip.dev/matchday/pkg/apperr"
	"tableflip.dev/matchday/pkg/log"
	"tableflip.dev/matchday/pkg/store"
)

// Key names the settings document inside the base path.
const Key = "settings.json"

// Document keys.
const (
	KeyEventDayBG         = "calendar_event_day_bg"
	KeySelectedDayBG      = "calendar_selected_day_bg"
	KeySelectedEventDayBG = "calendar_selected_event_day_bg"
	KeyDayFG              = "calendar_day_fg"
	KeyMainWindowBG       = "main_window_bg"
	KeyLookaheadDays      = "reminder_lookahead_days"
)

// Settings are the user preferences.
type Settings struct {
	EventDayBG         string `json:"calendar_event_day_bg"`
	SelectedDayBG      string `json:"calendar_selected_day_bg"`
	SelectedEventDayBG string `json:"calendar_selected_event_day_bg"`
	DayFG              string `json:"calendar_day_fg"`
	MainWindowBG       string `json:"main_window_bg"`
	LookaheadDays      int    `json:"reminder_lookahead_days"`
}

// Defaults are used until the user changes something.
func Defaults() Settings {
	return Settings{
		EventDayBG:         "lightblue",
		SelectedDayBG:      "yellow",
		SelectedEventDayBG: "orange",
		DayFG:              "black",
		MainWindowBG:       "#e0e0e0",
		LookaheadDays:      2,
	}
}

// Keys lists the document keys in display order.
func Keys() []string {
	return []string{KeyEventDayBG, KeySelectedDayBG, KeySelectedEventDayBG, KeyDayFG, KeyMainWindowBG, KeyLookaheadDays}
}

// Get returns the value of key as text.
func (s Settings) Get(key string) (string, error) {
	switch key {
	case KeyEventDayBG:
		return s.EventDayBG, nil
	case KeySelectedDayBG:
		return s.SelectedDayBG, nil
	case KeySelectedEventDayBG:
		return s.SelectedEventDayBG, nil
	case KeyDayFG:
		return s.DayFG, nil
	case KeyMainWindowBG:
		return s.MainWindowBG, nil
	case KeyLookaheadDays:
		return fmt.Sprint(s.LookaheadDays), nil
	}
	return "", &apperr.NotFoundError{Kind: "setting", ID: key}
}

// Partial carries the fields to change; nil fields are kept.
type Partial struct {
	EventDayBG         *string
	SelectedDayBG      *string
	SelectedEventDayBG *string
	DayFG              *string
	MainWindowBG       *string
	LookaheadDays      *int
}

// ParsePartial builds a Partial setting one key from its text form.
func ParsePartial(key, value string) (Partial, error) {
	var p Partial
	switch key {
	case KeyEventDayBG:
		p.EventDayBG = &value
	case KeySelectedDayBG:
		p.SelectedDayBG = &value
	case KeySelectedEventDayBG:
		p.SelectedEventDayBG = &value
	case KeyDayFG:
		p.DayFG = &value
	case KeyMainWindowBG:
		p.MainWindowBG = &value
	case KeyLookaheadDays:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return p, apperr.Validation(key, "%q is not a whole number", value)
		}
		p.LookaheadDays = &n
	default:
		return p, &apperr.NotFoundError{Kind: "setting", ID: key}
	}
	return p, nil
}

// Store owns the settings document.
type Store struct {
	mu       sync.Mutex
	d        *diskv.Diskv
	basePath string
	path     string
	current  Settings
	raw      []byte
	// corrupt is set while the document on disk could not be loaded. The
	// next write moves it aside first.
	corrupt bool
	backup  string
}

// Open loads the settings under cfg.BasePath(). A missing document yields
// Defaults. A document that is not a JSON object, or holds invalid values,
// fails with a *apperr.CorruptStoreError; the returned Store then serves
// Defaults. The next Update or Reset renames the unreadable document to
// "settings.json.corrupt-<timestamp>" before writing a new one.
func Open(cfg store.Config) (*Store, error) {
	d, err := store.Disk(cfg.BasePath())
	if err != nil {
		return nil, err
	}
	s := &Store{
		d:        d,
		basePath: cfg.BasePath(),
		path:     store.DocumentPath(cfg.BasePath(), Key),
		current:  Defaults(),
	}
	_, err = s.Load()
	return s, err
}

// Path is the location of the settings document.
func (s *Store) Path() string {
	return s.path
}

// Backup is where an unreadable document was moved, empty when none was.
func (s *Store) Backup() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backup
}

// Load rereads the document. Absent keys take their default.
func (s *Store) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok, err := store.ReadDocument(s.d, Key)
	if err != nil {
		return s.current, fmt.Errorf("settings: read: %w", err)
	}
	if !ok || len(bytes.TrimSpace(data)) == 0 {
		s.current, s.raw, s.corrupt = Defaults(), nil, false
		return s.current, nil
	}
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return s.fallback(fmt.Errorf("not a JSON object"))
	}
	loaded := Defaults()
	if err := json.Unmarshal(data, &loaded); err != nil {
		return s.fallback(err)
	}
	if err := validate(loaded); err != nil {
		return s.fallback(err)
	}
	s.current, s.raw, s.corrupt = loaded, data, false
	log.Debug("settings loaded", "path", s.path)
	return s.current, nil
}

func (s *Store) fallback(err error) (Settings, error) {
	s.current, s.raw, s.corrupt = Defaults(), nil, true
	return s.current, &apperr.CorruptStoreError{Path: s.path, Err: err}
}

// Current returns the settings in effect.
func (s *Store) Current() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update merges p over the current settings, validates the result and
// persists it. On failure nothing changes, in memory or on disk.
func (s *Store) Update(p Partial) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := merge(s.current, p)
	if err := validate(next); err != nil {
		return s.current, err
	}
	if err := s.persist(next); err != nil {
		return s.current, err
	}
	return s.current, nil
}

// Reset restores and persists Defaults.
func (s *Store) Reset() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(Defaults()); err != nil {
		return s.current, err
	}
	log.Info("settings reset", "path", s.path)
	return s.current, nil
}

// persist patches next into the raw document so keys written by other tools
// survive. Callers hold s.mu.
func (s *Store) persist(next Settings) error {
	if s.corrupt {
		dst, err := store.BackupDocument(s.basePath, Key)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("settings: %w", err)
		}
		s.corrupt, s.backup = false, dst
	}
	doc := "{}"
	if len(s.raw) > 0 {
		doc = string(s.raw)
	}
	fields := []struct {
		key   string
		value any
	}{
		{KeyEventDayBG, next.EventDayBG},
		{KeySelectedDayBG, next.SelectedDayBG},
		{KeySelectedEventDayBG, next.SelectedEventDayBG},
		{KeyDayFG, next.DayFG},
		{KeyMainWindowBG, next.MainWindowBG},
		{KeyLookaheadDays, next.LookaheadDays},
	}
	var err error
	for _, f := range fields {
		if doc, err = sjson.Set(doc, f.key, f.value); err != nil {
			return fmt.Errorf("settings: encode %s: %w", f.key, err)
		}
	}
	data := pretty.Pretty([]byte(doc))
	if err := s.d.Write(Key, data); err != nil {
		return fmt.Errorf("settings: persist: %w", err)
	}
	s.current, s.raw = next, data
	return nil
}

func merge(cur Settings, p Partial) Settings {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&cur.EventDayBG, p.EventDayBG)
	set(&cur.SelectedDayBG, p.SelectedDayBG)
	set(&cur.SelectedEventDayBG, p.SelectedEventDayBG)
	set(&cur.DayFG, p.DayFG)
	set(&cur.MainWindowBG, p.MainWindowBG)
	if p.LookaheadDays != nil {
		cur.LookaheadDays = *p.LookaheadDays
	}
	return cur
}

func validate(s Settings) error {
	if s.LookaheadDays < 0 {
		return apperr.Validation(KeyLookaheadDays, "must not be negative, got %d", s.LookaheadDays)
	}
	colors := []struct{ key, value string }{
		{KeyEventDayBG, s.EventDayBG},
		{KeySelectedDayBG, s.SelectedDayBG},
		{KeySelectedEventDayBG, s.SelectedEventDayBG},
		{KeyDayFG, s.DayFG},
		{KeyMainWindowBG, s.MainWindowBG},
	}
	for _, c := range colors {
		if _, err := ParseColor(c.value); err != nil {
			return apperr.Validation(c.key, "%v", err)
		}
	}
	return nil
}

// ParseColor accepts "#rgb", "#rrggbb" or a CSS/SVG color name and returns
// the color as "#rrggbb".
func ParseColor(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("empty color")
	}
	if strings.HasPrefix(v, "#") {
		c, err := colorful.Hex(v)
		if err != nil {
			return "", fmt.Errorf("%q is not a hex color", v)
		}
		return c.Hex(), nil
	}
	rgba, ok := colornames.Map[strings.ToLower(v)]
	if !ok {
		return "", fmt.Errorf("unknown color name %q", v)
	}
	c, _ := colorful.MakeColor(rgba)
	return c.Hex(), nil
}
