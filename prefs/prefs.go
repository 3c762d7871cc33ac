// Package prefs is the user preference store. Reads never fail: a missing or
// unreadable document reads as "nothing stored". Writes are fire-and-forget;
// persistence errors are logged and otherwise ignored so they never get in
// the way of showing a chord.
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/ukulala/db"
	"github.com/jsphweid/ukulala/model"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

type Backend interface {
	Load(ctx context.Context, key model.PrefKey) ([]byte, error)
	Save(ctx context.Context, key model.PrefKey, value []byte) error
}

const saveTimeout = 5 * time.Second

type Store struct {
	backend Backend
	logger  *zap.Logger
	delay   time.Duration

	mu         sync.Mutex
	cache      map[model.PrefKey][]byte // nil value: known to be absent
	dirty      map[model.PrefKey]bool
	debouncers map[model.PrefKey]func(func())

	// serializes flushes so an older value never overwrites a newer one
	flushMu sync.Mutex
	// serializes read-modify-write edits
	editMu sync.Mutex
}

// New returns a Store over backend. With a zero delay every write goes
// straight to the backend; otherwise writes to the same preference within
// delay of each other are coalesced into one.
func New(backend Backend, logger *zap.Logger, delay time.Duration) *Store {
	return &Store{
		backend:    backend,
		logger:     logger,
		delay:      delay,
		cache:      make(map[model.PrefKey][]byte),
		dirty:      make(map[model.PrefKey]bool),
		debouncers: make(map[model.PrefKey]func(func())),
	}
}

func (s *Store) load(ctx context.Context, key model.PrefKey) []byte {
	s.mu.Lock()
	doc, ok := s.cache[key]
	s.mu.Unlock()
	if ok {
		return doc
	}

	doc, err := s.backend.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			s.logger.Warn("could not load preference, using default",
				zap.String("tuning", string(key.Tuning)),
				zap.String("kind", string(key.Kind)),
				zap.Error(err))
			return nil
		}
		doc = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// a write that raced us wins
	if cur, ok := s.cache[key]; ok {
		return cur
	}
	s.cache[key] = doc
	return doc
}

func (s *Store) get(ctx context.Context, key model.PrefKey, v any) bool {
	doc := s.load(ctx, key)
	if doc == nil {
		return false
	}
	if err := json.Unmarshal(doc, v); err != nil {
		s.logger.Warn("could not parse preference, using default",
			zap.String("tuning", string(key.Tuning)),
			zap.String("kind", string(key.Kind)),
			zap.Error(err))
		return false
	}
	return true
}

func (s *Store) set(ctx context.Context, key model.PrefKey, v any) {
	doc, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("could not encode preference",
			zap.String("kind", string(key.Kind)), zap.Error(err))
		return
	}

	s.mu.Lock()
	s.cache[key] = doc
	s.dirty[key] = true
	if s.delay <= 0 {
		s.mu.Unlock()
		s.flush(ctx)
		return
	}
	d, ok := s.debouncers[key]
	if !ok {
		d = debounce.New(s.delay)
		s.debouncers[key] = d
	}
	s.mu.Unlock()

	d(func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		s.flush(ctx)
	})
}

func (s *Store) flush(ctx context.Context) {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	s.mu.Lock()
	pending := make(map[model.PrefKey][]byte, len(s.dirty))
	for key := range s.dirty {
		pending[key] = s.cache[key]
	}
	s.dirty = make(map[model.PrefKey]bool)
	s.mu.Unlock()

	for key, doc := range pending {
		if err := s.backend.Save(ctx, key, doc); err != nil {
			s.logger.Warn("could not save preference",
				zap.String("tuning", string(key.Tuning)),
				zap.String("kind", string(key.Kind)),
				zap.Error(err))
			continue
		}
		s.logger.Debug("saved preference",
			zap.String("tuning", string(key.Tuning)),
			zap.String("kind", string(key.Kind)))
	}
}

// Flush writes every pending preference now.
func (s *Store) Flush(ctx context.Context) {
	s.flush(ctx)
}

// Close flushes pending writes and closes the backend if it can be closed.
func (s *Store) Close(ctx context.Context) error {
	s.flush(ctx)
	if c, ok := s.backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// VoicingPrefs returns the voicing preferences stored for tuning, or an empty
// map. The result belongs to the caller.
func (s *Store) VoicingPrefs(ctx context.Context, t model.Tuning) model.VoicingPrefs {
	var p model.VoicingPrefs
	if !s.get(ctx, model.VoicingsKey(t), &p) || p == nil {
		return model.VoicingPrefs{}
	}
	return p
}

func (s *Store) SetVoicingPrefs(ctx context.Context, t model.Tuning, p model.VoicingPrefs) {
	s.set(ctx, model.VoicingsKey(t), p)
}

func (s *Store) editVoicings(ctx context.Context, t model.Tuning, fn func(model.VoicingPrefs)) model.VoicingPrefs {
	s.editMu.Lock()
	defer s.editMu.Unlock()
	p := s.VoicingPrefs(ctx, t)
	fn(p)
	s.SetVoicingPrefs(ctx, t, p)
	return p
}

func (s *Store) SetVoicing(ctx context.Context, t model.Tuning, name string, index int) {
	s.editVoicings(ctx, t, func(p model.VoicingPrefs) { p[name] = index })
}

func (s *Store) ClearVoicing(ctx context.Context, t model.Tuning, name string) {
	s.editVoicings(ctx, t, func(p model.VoicingPrefs) { delete(p, name) })
}

// ToggleVoicing prefers index for name, or clears the preference if index
// already is the preferred one. It reports whether a preference is set
// afterwards.
func (s *Store) ToggleVoicing(ctx context.Context, t model.Tuning, name string, index int) bool {
	var set bool
	s.editVoicings(ctx, t, func(p model.VoicingPrefs) { set = p.Toggle(name, index) })
	return set
}

// Tuning returns the chosen tuning, and whether one was ever chosen.
func (s *Store) Tuning(ctx context.Context) (model.Tuning, bool) {
	var t model.Tuning
	if !s.get(ctx, model.GlobalKey(model.TuningPref), &t) || !t.Valid() {
		return model.Standard, false
	}
	return t, true
}

func (s *Store) SetTuning(ctx context.Context, t model.Tuning) {
	s.set(ctx, model.GlobalKey(model.TuningPref), t)
}

func (s *Store) StarredProgressions(ctx context.Context) []string {
	var ids []string
	if !s.get(ctx, model.GlobalKey(model.StarredPref), &ids) {
		return []string{}
	}
	return ids
}

// ToggleStarred stars or unstars a progression and reports whether it is
// starred afterwards.
func (s *Store) ToggleStarred(ctx context.Context, id string) bool {
	s.editMu.Lock()
	defer s.editMu.Unlock()

	ids := s.StarredProgressions(ctx)
	starred := true
	if i := slices.Index(ids, id); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
		starred = false
	} else {
		ids = append(ids, id)
	}
	s.set(ctx, model.GlobalKey(model.StarredPref), ids)
	return starred
}

func (s *Store) SelectedKeys(ctx context.Context) ([]model.Key, bool) {
	var keys []model.Key
	if !s.get(ctx, model.GlobalKey(model.SelectedKeysPref), &keys) {
		return nil, false
	}
	return keys, true
}

func (s *Store) SetSelectedKeys(ctx context.Context, keys []model.Key) {
	s.set(ctx, model.GlobalKey(model.SelectedKeysPref), keys)
}
