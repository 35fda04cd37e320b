package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/MosaabBleik/pharmacy-service/internal/models"
)

// Keys of the four persisted entries.
const (
	KeyInventory = "jl_inventory"
	KeyRequests  = "jl_requests"
	KeyHandoffs  = "jl_handoffs"
	KeyOffline   = "jl_offline"
)

var Keys = []string{KeyInventory, KeyRequests, KeyHandoffs, KeyOffline}

// Persister is the key-value store the dashboard state lives in. Save must
// apply all entries or none.
type Persister interface {
	Load(ctx context.Context, keys []string) (map[string][]byte, error)
	Save(ctx context.Context, entries map[string][]byte) error
}

// Notifier receives notices after each action. Delivery is fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

type StoreConfig struct {
	KV           Persister
	Notifier     Notifier
	Logger       *zap.Logger
	Clock        func() time.Time
	PharmacyName string
}

// Store is the single writer of dashboard state. Each action runs to
// completion under the lock, and the changed entries are persisted before the
// new snapshot becomes visible.
type Store struct {
	mu        sync.RWMutex
	state     State
	persisted map[string][]byte

	kv       Persister
	notifier Notifier
	logger   *zap.Logger
	clock    func() time.Time
	self     string
}

// Open reads every key once, falling back to seed data for entries that are
// missing or cannot be decoded.
func Open(ctx context.Context, cfg StoreConfig) (*Store, error) {
	if cfg.KV == nil {
		return nil, errors.New("dashboard store requires a persister")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	raw, err := cfg.KV.Load(ctx, Keys)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard state: %w", err)
	}

	now := cfg.Clock()
	seed := Seed(now)
	state := State{
		Inventory: decodeOr(cfg.Logger, KeyInventory, raw[KeyInventory], seed.Inventory),
		Requests:  decodeOr(cfg.Logger, KeyRequests, raw[KeyRequests], seed.Requests),
		Handoffs:  decodeOr(cfg.Logger, KeyHandoffs, raw[KeyHandoffs], seed.Handoffs),
		Offline:   decodeOr(cfg.Logger, KeyOffline, raw[KeyOffline], seed.Offline),
	}

	persisted, err := encodeState(state)
	if err != nil {
		return nil, err
	}

	return &Store{
		state:     state,
		persisted: persisted,
		kv:        cfg.KV,
		notifier:  cfg.Notifier,
		logger:    cfg.Logger,
		clock:     cfg.Clock,
		self:      cfg.PharmacyName,
	}, nil
}

func decodeOr[T any](logger *zap.Logger, key string, raw []byte, fallback T) T {
	if len(raw) == 0 {
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Warn("unreadable entry, using seed", zap.String("key", key), zap.Error(err))
		return fallback
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return fallback
	}
	return v
}

func encodeState(s State) (map[string][]byte, error) {
	values := map[string]any{
		KeyInventory: s.Inventory,
		KeyRequests:  s.Requests,
		KeyHandoffs:  s.Handoffs,
		KeyOffline:   s.Offline,
	}
	encoded := make(map[string][]byte, len(values))
	for key, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", key, err)
		}
		encoded[key] = b
	}
	return encoded, nil
}

// PharmacyName is the name this store treats as "self" for assignment checks.
func (s *Store) PharmacyName() string {
	return s.self
}

func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *Store) Offline() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Offline
}

func (s *Store) View() View {
	return BuildView(s.Snapshot(), s.clock(), s.self)
}

func (s *Store) Now() time.Time {
	return s.clock()
}

type action func(state State, now time.Time) (State, Notice, error)

func (s *Store) apply(ctx context.Context, name string, guards []Guard, act action) (Notice, error) {
	s.mu.Lock()
	for _, guard := range guards {
		if err := guard(s.state, s.self); err != nil {
			s.mu.Unlock()
			s.logger.Info("action refused", zap.String("action", name), zap.Error(err))
			return Notice{}, err
		}
	}
	now := s.clock()
	next, n, err := act(s.state, now)
	n.At = now
	if err != nil {
		s.mu.Unlock()
		s.logger.Info("action rejected", zap.String("action", name), zap.Error(err))
		s.notify(ctx, n)
		return n, err
	}

	encoded, err := encodeState(next)
	if err != nil {
		s.mu.Unlock()
		return Notice{}, err
	}
	changed := make(map[string][]byte)
	for key, b := range encoded {
		if !bytes.Equal(s.persisted[key], b) {
			changed[key] = b
		}
	}
	if len(changed) > 0 {
		if err := s.kv.Save(ctx, changed); err != nil {
			s.mu.Unlock()
			s.logger.Error("failed to persist dashboard state", zap.String("action", name), zap.Error(err))
			return Notice{}, fmt.Errorf("failed to persist %s: %w", name, err)
		}
	}
	s.state = next
	s.persisted = encoded
	s.mu.Unlock()

	s.logger.Info("action applied", zap.String("action", name), zap.Int("entries_written", len(changed)))
	s.notify(ctx, n)
	return n, nil
}

func (s *Store) notify(ctx context.Context, n Notice) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, n)
	}
}

func (s *Store) Restock(ctx context.Context, itemID string, amount int, guards ...Guard) (Notice, error) {
	return s.apply(ctx, "restock", guards, func(st State, _ time.Time) (State, Notice, error) {
		return Restock(st, itemID, amount)
	})
}

func (s *Store) AcceptRequest(ctx context.Context, requestID string, guards ...Guard) (Notice, error) {
	return s.apply(ctx, "accept_request", guards, func(st State, now time.Time) (State, Notice, error) {
		return AcceptRequest(st, requestID, now)
	})
}

func (s *Store) RejectRequest(ctx context.Context, requestID string, guards ...Guard) (Notice, error) {
	return s.apply(ctx, "reject_request", guards, func(st State, _ time.Time) (State, Notice, error) {
		return RejectRequest(st, requestID)
	})
}

func (s *Store) CompleteHandoff(ctx context.Context, requestID string, guards ...Guard) (Notice, error) {
	return s.apply(ctx, "complete_handoff", guards, func(st State, now time.Time) (State, Notice, error) {
		return CompleteHandoff(st, requestID, now)
	})
}

func (s *Store) SetOffline(ctx context.Context, offline bool) (Notice, error) {
	return s.apply(ctx, "set_offline", nil, func(st State, _ time.Time) (State, Notice, error) {
		return SetOffline(st, offline)
	})
}

// IngestRequest appends an inbound request and returns it as stored.
func (s *Store) IngestRequest(ctx context.Context, req models.Request) (models.Request, Notice, error) {
	var stored models.Request
	n, err := s.apply(ctx, "ingest_request", nil, func(st State, now time.Time) (State, Notice, error) {
		next, n, err := IngestRequest(st, req, now)
		if err == nil {
			stored = next.Requests[len(next.Requests)-1]
		}
		return next, n, err
	})
	return stored, n, err
}
