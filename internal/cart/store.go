package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/techstore-mx/techstore-backend/pkg/config"
	"github.com/techstore-mx/techstore-backend/pkg/db/models"
	"github.com/techstore-mx/techstore-backend/pkg/enums"
	pkgerrors "github.com/techstore-mx/techstore-backend/pkg/errors"
	"github.com/techstore-mx/techstore-backend/pkg/kv"
	"github.com/techstore-mx/techstore-backend/pkg/logger"
)

// Line is one cart entry. Price is a snapshot taken at add time; later
// catalog price changes do not touch stored lines.
type Line struct {
	ProductID int                   `json:"productId"`
	Name      string                `json:"name"`
	Price     decimal.Decimal       `json:"price"`
	Image     string                `json:"image,omitempty"`
	Quantity  int                   `json:"quantity"`
	Category  enums.ProductCategory `json:"category"`
	Brand     string                `json:"brand,omitempty"`
	AddedAt   time.Time             `json:"addedAt"`
}

// Summary carries the derived cart totals.
type Summary struct {
	TotalItems   int             `json:"totalItems"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
	FinalTotal   decimal.Decimal `json:"finalTotal"`
}

// AddInput snapshots the product being added.
type AddInput struct {
	Product  models.Product
	Quantity int
}

// Store keeps one cart per session in the key-value backend. Every mutation
// rewrites the session's full line list.
type Store struct {
	kv  kv.Store
	cfg config.CartConfig
	log *logger.Logger
	now func() time.Time
}

// NewStore builds a cart store over the provided KV backend.
func NewStore(backend kv.Store, cfg config.CartConfig, log *logger.Logger) (*Store, error) {
	if backend == nil {
		return nil, fmt.Errorf("kv store required")
	}
	return &Store{kv: backend, cfg: cfg, log: log, now: time.Now}, nil
}

// List returns the session's cart lines. Missing or corrupt saved state
// yields an empty cart rather than an error.
func (s *Store) List(ctx context.Context, sessionID string) ([]Line, error) {
	raw, err := s.kv.Get(ctx, kv.CartKey(sessionID))
	if errors.Is(err, kv.ErrNotFound) {
		return []Line{}, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		if s.log != nil {
			s.log.Warn(s.log.WithSessionID(ctx, sessionID), "discarding corrupt cart state")
		}
		return []Line{}, nil
	}
	if lines == nil {
		lines = []Line{}
	}
	return lines, nil
}

// Add inserts a line or increments the quantity of an existing one.
// Quantities below one default to one.
func (s *Store) Add(ctx context.Context, sessionID string, input AddInput) ([]Line, error) {
	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	lines, err := s.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range lines {
		if lines[i].ProductID == input.Product.ID {
			lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, Line{
			ProductID: input.Product.ID,
			Name:      input.Product.Name,
			Price:     input.Product.Price,
			Image:     input.Product.Image,
			Quantity:  quantity,
			Category:  input.Product.Category,
			Brand:     input.Product.Brand,
			AddedAt:   s.now(),
		})
	}

	if err := s.save(ctx, sessionID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// UpdateQuantity sets a line's exact quantity; zero or below removes it.
// Updating an absent product is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int) ([]Line, error) {
	if quantity <= 0 {
		return s.Remove(ctx, sessionID, productID)
	}

	lines, err := s.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			break
		}
	}
	if err := s.save(ctx, sessionID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Remove drops a line; removing an absent product is a no-op.
func (s *Store) Remove(ctx context.Context, sessionID string, productID int) ([]Line, error) {
	lines, err := s.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	kept := lines[:0]
	for _, line := range lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	if err := s.save(ctx, sessionID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Clear empties the session's cart.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.save(ctx, sessionID, []Line{})
}

// Summarize computes the derived totals for the session's cart.
func (s *Store) Summarize(ctx context.Context, sessionID string) (*Summary, error) {
	lines, err := s.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.summarize(lines), nil
}

// IsInCart reports whether a product already has a line.
func (s *Store) IsInCart(ctx context.Context, sessionID string, productID int) (bool, error) {
	quantity, err := s.ItemQuantity(ctx, sessionID, productID)
	return quantity > 0, err
}

// ItemQuantity returns the stored quantity for a product, zero when absent.
func (s *Store) ItemQuantity(ctx context.Context, sessionID string, productID int) (int, error) {
	lines, err := s.List(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	for _, line := range lines {
		if line.ProductID == productID {
			return line.Quantity, nil
		}
	}
	return 0, nil
}

func (s *Store) summarize(lines []Line) *Summary {
	summary := &Summary{TotalPrice: decimal.Zero}
	for _, line := range lines {
		summary.TotalItems += line.Quantity
		summary.TotalPrice = summary.TotalPrice.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	threshold := decimal.NewFromInt(int64(s.cfg.FreeShippingThreshold))
	if summary.TotalPrice.LessThan(threshold) {
		summary.ShippingCost = decimal.NewFromInt(int64(s.cfg.ShippingFee))
	} else {
		summary.ShippingCost = decimal.Zero
	}
	summary.FinalTotal = summary.TotalPrice.Add(summary.ShippingCost)
	return summary
}

func (s *Store) save(ctx context.Context, sessionID string, lines []Line) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding cart")
	}
	if err := s.kv.Set(ctx, kv.CartKey(sessionID), string(payload), 0); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return nil
}
