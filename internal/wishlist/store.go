package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/techstore-mx/techstore-backend/pkg/db/models"
	pkgerrors "github.com/techstore-mx/techstore-backend/pkg/errors"
	"github.com/techstore-mx/techstore-backend/pkg/kv"
	"github.com/techstore-mx/techstore-backend/pkg/logger"
)

// Entry is one saved product. At most one entry exists per product id; the
// toggle checks presence before inserting.
type Entry struct {
	ID        int64          `json:"id"`
	Product   models.Product `json:"product"`
	DateAdded time.Time      `json:"dateAdded"`
}

// Store keeps one wishlist per session in the key-value backend.
type Store struct {
	kv  kv.Store
	log *logger.Logger
	now func() time.Time
}

// NewStore builds a wishlist store over the provided KV backend.
func NewStore(backend kv.Store, log *logger.Logger) (*Store, error) {
	if backend == nil {
		return nil, fmt.Errorf("kv store required")
	}
	return &Store{kv: backend, log: log, now: time.Now}, nil
}

// List returns the session's wishlist. Missing or corrupt saved state yields
// an empty list rather than an error.
func (s *Store) List(ctx context.Context, sessionID string) ([]Entry, error) {
	raw, err := s.kv.Get(ctx, kv.WishlistKey(sessionID))
	if errors.Is(err, kv.ErrNotFound) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading wishlist")
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		if s.log != nil {
			s.log.Warn(s.log.WithSessionID(ctx, sessionID), "discarding corrupt wishlist state")
		}
		return []Entry{}, nil
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Toggle removes the product when present, otherwise adds a fresh entry with
// a time-based id and the product snapshot. The second return value reports
// whether the product is on the list after the call.
func (s *Store) Toggle(ctx context.Context, sessionID string, product models.Product) ([]Entry, bool, error) {
	entries, err := s.List(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}

	kept := entries[:0]
	removed := false
	for _, entry := range entries {
		if entry.Product.ID == product.ID {
			removed = true
			continue
		}
		kept = append(kept, entry)
	}

	if !removed {
		now := s.now()
		kept = append(kept, Entry{
			ID:        now.UnixNano(),
			Product:   product,
			DateAdded: now,
		})
	}

	if err := s.save(ctx, sessionID, kept); err != nil {
		return nil, false, err
	}
	return kept, !removed, nil
}

// Remove drops the product unconditionally; absent products are a no-op.
func (s *Store) Remove(ctx context.Context, sessionID string, productID int) ([]Entry, error) {
	entries, err := s.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	kept := entries[:0]
	for _, entry := range entries {
		if entry.Product.ID != productID {
			kept = append(kept, entry)
		}
	}
	if err := s.save(ctx, sessionID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Contains reports whether the product is on the session's list.
func (s *Store) Contains(ctx context.Context, sessionID string, productID int) (bool, error) {
	entries, err := s.List(ctx, sessionID)
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if entry.Product.ID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) save(ctx context.Context, sessionID string, entries []Entry) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding wishlist")
	}
	if err := s.kv.Set(ctx, kv.WishlistKey(sessionID), string(payload), 0); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving wishlist")
	}
	return nil
}
