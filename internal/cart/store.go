package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/sweetlayers/sweetlayers-backend/pkg/errors"
	"github.com/sweetlayers/sweetlayers-backend/pkg/logger"
	"github.com/sweetlayers/sweetlayers-backend/pkg/types"
)

// Store holds the working set of line items for a single shopper session.
// It is exclusively owned by that session; nothing here is safe for use by
// concurrent actors, and nothing needs to be. Every mutation persists the
// full snapshot through the Persistence collaborator before it is considered
// applied; on a persist failure the in-memory state is rolled back so callers
// never observe partial application.
type Store struct {
	items       []types.LineItem
	persistence Persistence
	logg        *logger.Logger
}

// NewStore builds a session cart and rehydrates it from persistence exactly
// once. A corrupt persisted payload degrades to an empty cart with a logged
// warning; an unreachable persistence collaborator is surfaced as an error.
func NewStore(ctx context.Context, persistence Persistence, logg *logger.Logger) (*Store, error) {
	if persistence == nil {
		return nil, fmt.Errorf("cart persistence required")
	}

	s := &Store{persistence: persistence, logg: logg}

	payload, err := persistence.Load(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load persisted cart")
	}
	if payload == "" {
		return s, nil
	}

	var items []types.LineItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		if logg != nil {
			logg.Warn(logg.WithField(ctx, "parse_error", err.Error()), "discarding corrupt persisted cart")
		}
		return s, nil
	}
	s.items = items
	return s, nil
}

// Add appends the item, or merges it into the existing line for the same
// cake. A merge sums quantities only: the original line's size, flavor,
// message and delivery date win and the new customization is discarded. That
// collapse happens even when the customization differs; it mirrors the
// storefront's long-standing behavior and is pinned by tests rather than
// fixed here.
func (s *Store) Add(ctx context.Context, item types.LineItem) error {
	if item.Quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	prev := s.snapshot()
	if idx := s.indexOf(item.CakeID); idx >= 0 {
		merged := s.items[idx]
		merged.Quantity += item.Quantity
		s.items[idx] = merged
	} else {
		s.items = append(s.items, item)
	}

	return s.persist(ctx, prev)
}

// Update replaces the line matching cakeID with item verbatim. Unknown ids
// are a silent no-op. An update that would leave quantity below 1 is refused
// and the existing line kept; the UI pre-guards this, the store enforces it.
func (s *Store) Update(ctx context.Context, cakeID int64, item types.LineItem) error {
	idx := s.indexOf(cakeID)
	if idx < 0 {
		return nil
	}
	if item.Quantity < 1 {
		return nil
	}

	prev := s.snapshot()
	item.CakeID = cakeID
	s.items[idx] = item
	return s.persist(ctx, prev)
}

// Remove deletes the line matching cakeID; absent ids are a no-op.
func (s *Store) Remove(ctx context.Context, cakeID int64) error {
	idx := s.indexOf(cakeID)
	if idx < 0 {
		return nil
	}

	prev := s.snapshot()
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return s.persist(ctx, prev)
}

// Clear empties the cart. Called after a successful order submission or on
// explicit shopper action.
func (s *Store) Clear(ctx context.Context) error {
	prev := s.snapshot()
	s.items = nil
	return s.persist(ctx, prev)
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []types.LineItem {
	return s.snapshot()
}

// Total returns the cart subtotal (unit price times quantity, summed). Tax is
// not included; order creation applies it exactly once.
func (s *Store) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Count returns the summed quantity across all lines.
func (s *Store) Count() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *Store) indexOf(cakeID int64) int {
	for i, item := range s.items {
		if item.CakeID == cakeID {
			return i
		}
	}
	return -1
}

func (s *Store) snapshot() []types.LineItem {
	if len(s.items) == 0 {
		return nil
	}
	copied := make([]types.LineItem, len(s.items))
	copy(copied, s.items)
	return copied
}

func (s *Store) persist(ctx context.Context, prev []types.LineItem) error {
	payload, err := json.Marshal(s.itemsOrEmpty())
	if err != nil {
		s.items = prev
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "serialize cart")
	}
	if err := s.persistence.Save(ctx, string(payload)); err != nil {
		s.items = prev
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart")
	}
	return nil
}

func (s *Store) itemsOrEmpty() []types.LineItem {
	if s.items == nil {
		return []types.LineItem{}
	}
	return s.items
}
