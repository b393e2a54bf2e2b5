// Package history keeps the list of generated plans on disk, most recent
// first. The whole list lives under a single key and is rewritten on every
// change.
package history

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Makepad-fr/robo/internal/model"
)

// Key is the storage key holding the serialized list.
const Key = "robo_ai_history"

// KV is the persistence boundary. jsonstore.Store satisfies it.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Store is the single owner of the history list. It keeps an in-memory copy
// that is only replaced after the write to KV succeeded.
type Store struct {
	kv    KV
	log   *zap.Logger
	now   func() time.Time
	newID func() string

	items []model.SavedPlan
}

// Option customizes a Store.
type Option func(*Store)

// WithLogger sets the logger used for load anomalies.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs overrides the identifier generator.
func WithIDs(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New returns a Store backed by kv. Call Load before use.
func New(kv KV, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		log:   zap.NewNop(),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load reads the persisted list and replaces the cache with it. Missing or
// unreadable data yields an empty list; it is logged, never returned.
func (s *Store) Load() []model.SavedPlan {
	s.items = s.read()
	return s.List()
}

func (s *Store) read() []model.SavedPlan {
	raw, ok, err := s.kv.Get(Key)
	if err != nil {
		s.log.Warn("history corruption: read failed", zap.String("key", Key), zap.Error(err))
		return []model.SavedPlan{}
	}
	if !ok {
		return []model.SavedPlan{}
	}
	var items []model.SavedPlan
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn("history corruption: unparsable data, starting empty",
			zap.String("key", Key), zap.Int("bytes", len(raw)), zap.Error(err))
		return []model.SavedPlan{}
	}
	if items == nil {
		items = []model.SavedPlan{}
	}
	return items
}

// List returns a copy of the cached list.
func (s *Store) List() []model.SavedPlan {
	out := make([]model.SavedPlan, len(s.items))
	copy(out, s.items)
	return out
}

// Len is the number of saved plans.
func (s *Store) Len() int { return len(s.items) }

// Get finds a saved plan by id.
func (s *Store) Get(id string) (model.SavedPlan, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.SavedPlan{}, false
}

// Append records a freshly generated plan at the front of the list.
func (s *Store) Append(name string, plan model.BusinessPlan) (model.SavedPlan, error) {
	item := model.SavedPlan{
		ID:           s.uniqueID(),
		CreatedAt:    s.now().UnixMilli(),
		BusinessName: name,
		Plan:         plan,
	}
	next := make([]model.SavedPlan, 0, len(s.items)+1)
	next = append(next, item)
	next = append(next, s.items...)
	if err := s.persist(next); err != nil {
		return model.SavedPlan{}, err
	}
	s.items = next
	s.log.Info("history: plan saved", zap.String("id", item.ID), zap.String("business", name), zap.Int("sections", len(plan)))
	return item, nil
}

// Remove drops the entry with id. Other entries keep their order.
// Unknown ids are ignored.
func (s *Store) Remove(id string) error {
	next := make([]model.SavedPlan, 0, len(s.items))
	for _, it := range s.items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	if len(next) == len(s.items) {
		return nil
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.items = next
	s.log.Info("history: plan removed", zap.String("id", id))
	return nil
}

func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if _, taken := s.Get(id); !taken && id != "" {
			return id
		}
	}
}

func (s *Store) persist(items []model.SavedPlan) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := s.kv.Set(Key, string(b)); err != nil {
		return fmt.Errorf("history: persist: %w", err)
	}
	return nil
}
