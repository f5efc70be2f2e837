// Package app is the application context shared by the CLI and the board.
// It is built once by Open, which loads every durable document, and torn
// down by Close, which flushes the content rotation.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/matchday/pkg/apperr"
	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/log"
	"tableflip.dev/matchday/pkg/reminder"
	"tableflip.dev/matchday/pkg/settings"
	"tableflip.dev/matchday/pkg/store"
	"tableflip.dev/matchday/pkg/thematic"
)

// App wires the stores and engines together.
type App struct {
	Config   store.Config
	Events   *store.Store
	Settings *settings.Store

	content    *thematic.Engine
	contentErr error
	// settingsErr is kept while a corrupt settings document is in place.
	settingsErr error
	disk        *diskv.Diskv
	now         func() time.Time
	backup      string
}

// Options tune Open.
type Options struct {
	// ResetCorrupt moves an unreadable events document aside and starts
	// with an empty store. Only set it after the user confirmed.
	ResetCorrupt bool
	// Seed makes the content rotation reproducible.
	Seed *uint64
	// Now replaces the clock, for tests.
	Now func() time.Time
}

// Open loads events, settings and content for cfg. A corrupt events
// document fails the load unless opts.ResetCorrupt is set. A corrupt
// settings document or an unusable content pool leaves the app running in
// degraded mode; see SettingsErr and ContentErr.
func Open(cfg store.Config, opts Options) (*App, error) {
	a := &App{Config: cfg, now: opts.Now}
	if a.now == nil {
		a.now = time.Now
	}

	events, err := store.Open(cfg)
	if errors.Is(err, apperr.ErrCorruptStore) && opts.ResetCorrupt {
		if a.backup, err = store.BackupCorrupt(cfg); err != nil {
			return nil, err
		}
		events, err = store.Open(cfg)
	}
	if err != nil {
		return nil, err
	}
	a.Events = events

	a.Settings, err = settings.Open(cfg)
	if err != nil {
		if !errors.Is(err, apperr.ErrCorruptStore) || a.Settings == nil {
			return nil, err
		}
		log.Warn("using default settings", "err", err)
		a.settingsErr = err
	}

	if a.disk, err = store.Disk(cfg.BasePath()); err != nil {
		return nil, err
	}
	a.loadContent(opts)
	return a, nil
}

func (a *App) loadContent(opts Options) {
	pool, err := thematic.LoadFile(a.Config.ContentPath())
	if err != nil {
		log.Warn("content unavailable", "path", a.Config.ContentPath(), "err", err)
		a.contentErr = err
		return
	}
	var engineOpts []thematic.Option
	if opts.Seed != nil {
		engineOpts = append(engineOpts, thematic.WithSeed(*opts.Seed))
	}
	engine, err := thematic.New(pool, engineOpts...)
	if err != nil {
		log.Warn("content unavailable", "path", a.Config.ContentPath(), "err", err)
		a.contentErr = err
		return
	}
	st, err := thematic.ReadState(a.disk)
	if err != nil {
		log.Warn("content rotation restarted", "err", err)
	}
	engine.Restore(st)
	a.content = engine
}

// Close persists the content rotation.
func (a *App) Close() error {
	if a.content == nil {
		return nil
	}
	return thematic.WriteState(a.disk, a.content.State())
}

// Now is the clock in use.
func (a *App) Now() time.Time {
	return a.now()
}

// Today is the current local date.
func (a *App) Today() event.Date {
	return event.DateOf(a.now())
}

// Backup returns where a corrupt events document was moved by Open, if it
// was.
func (a *App) Backup() string {
	return a.backup
}

// SettingsErr reports why the stored settings were ignored.
func (a *App) SettingsErr() error {
	return a.settingsErr
}

// ContentErr reports why the content feature is unavailable.
func (a *App) ContentErr() error {
	return a.contentErr
}

// UpdateSettings changes the settings. A corrupt document is moved aside
// before the first write; see Settings.Backup.
func (a *App) UpdateSettings(p settings.Partial) (settings.Settings, error) {
	s, err := a.Settings.Update(p)
	if err == nil {
		a.settingsErr = nil
	}
	return s, err
}

// ResetSettings restores the default settings.
func (a *App) ResetSettings() (settings.Settings, error) {
	s, err := a.Settings.Reset()
	if err == nil {
		a.settingsErr = nil
	}
	return s, err
}

// Upcoming lists the events within the configured lookahead.
func (a *App) Upcoming() ([]event.Event, error) {
	return reminder.Upcoming(a.Events, a.now(), a.Settings.Current().LookaheadDays)
}

// UpcomingWithin lists the events within days from today.
func (a *App) UpcomingWithin(days int) ([]event.Event, error) {
	return reminder.Upcoming(a.Events, a.now(), days)
}

func (a *App) engine() (*thematic.Engine, error) {
	if a.content == nil {
		return nil, fmt.Errorf("app: content: %w", a.contentErr)
	}
	return a.content, nil
}

// Fact returns the item of the day: one tied to today, else the current
// rotation item.
func (a *App) Fact() (thematic.Item, error) {
	return a.FactOn(a.Today())
}

// FactOn returns the item tied to day, else the current rotation item.
func (a *App) FactOn(day event.Date) (thematic.Item, error) {
	e, err := a.engine()
	if err != nil {
		return thematic.Item{}, err
	}
	return e.Daily(day), nil
}

// NextFact advances the rotation.
func (a *App) NextFact() (thematic.Item, error) {
	e, err := a.engine()
	if err != nil {
		return thematic.Item{}, err
	}
	return e.RefreshRandom(), nil
}

// FactFrom picks an item of category.
func (a *App) FactFrom(category string) (thematic.Item, error) {
	e, err := a.engine()
	if err != nil {
		return thematic.Item{}, err
	}
	return e.RandomFromCategory(category)
}

// Categories lists the content categories, empty when content is
// unavailable.
func (a *App) Categories() []string {
	if a.content == nil {
		return nil
	}
	return a.content.Categories()
}
