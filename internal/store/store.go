// Package store persists the whole ERP aggregate as one JSON value in a
// single key-value slot, plus a second slot for the login flag. Loads are
// defensive; saves are full replacements with no merge.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultStateKey matches the original demo's storage slot.
	DefaultStateKey = "erp_demo_v1"
	// DefaultAuthKey holds the login flag.
	DefaultAuthKey = "erp_auth_v1"
)

// Store owns the persisted slots. A process-wide mutex serialises
// mutations; concurrent writers from other processes still race and the
// last save wins.
type Store struct {
	client   *redis.Client
	stateKey string
	authKey  string
	logger   *slog.Logger

	mu sync.Mutex
}

// New builds a Store. Empty keys fall back to the defaults.
func New(client *redis.Client, stateKey, authKey string, logger *slog.Logger) *Store {
	if stateKey == "" {
		stateKey = DefaultStateKey
	}
	if authKey == "" {
		authKey = DefaultAuthKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{client: client, stateKey: stateKey, authKey: authKey, logger: logger}
}

// Load reads the aggregate. A missing key or an unparseable blob yields the
// seed dataset; partially corrupted blobs are repaired field by field.
func (s *Store) Load(ctx context.Context) (State, error) {
	raw, err := s.client.Get(ctx, s.stateKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return Seed(), nil
	}
	if err != nil {
		return State{}, err
	}
	st, err := decodeState(raw)
	if err != nil {
		s.logger.Warn("persisted state unparseable, using seed", slog.Any("error", err))
		return Seed(), nil
	}
	return st, nil
}

// Save serialises and writes the full aggregate, replacing any prior value.
func (s *Store) Save(ctx context.Context, st State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.stateKey, raw, 0).Err()
}

// Update runs fn against the current state and saves the result. This is
// the only mutation path; fn returning an error aborts without saving.
func (s *Store) Update(ctx context.Context, fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(&st); err != nil {
		return err
	}
	return s.Save(ctx, st)
}

// Reset drops the persisted aggregate and restores the seed dataset.
func (s *Store) Reset(ctx context.Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fresh := Seed()
	if err := s.Save(ctx, fresh); err != nil {
		return State{}, err
	}
	return fresh, nil
}

// LoadAuth reads the login flag. Any failure degrades to logged out.
func (s *Store) LoadAuth(ctx context.Context) Auth {
	raw, err := s.client.Get(ctx, s.authKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("load auth", slog.Any("error", err))
		}
		return Auth{}
	}
	var a Auth
	if err := json.Unmarshal(raw, &a); err != nil {
		return Auth{}
	}
	return a
}

// SaveAuth writes the login flag. Failures are logged and swallowed, as the
// feature degrades silently.
func (s *Store) SaveAuth(ctx context.Context, a Auth) {
	raw, err := json.Marshal(a)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, s.authKey, raw, 0).Err(); err != nil {
		s.logger.Warn("save auth", slog.Any("error", err))
	}
}

// ToggleAuth flips the persisted login flag and returns the new value.
func (s *Store) ToggleAuth(ctx context.Context) Auth {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.LoadAuth(ctx)
	a.LoggedIn = !a.LoggedIn
	s.SaveAuth(ctx, a)
	return a
}
