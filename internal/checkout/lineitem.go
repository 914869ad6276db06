package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/sweetlayers/sweetlayers-backend/internal/catalog"
	pkgerrors "github.com/sweetlayers/sweetlayers-backend/pkg/errors"
	"github.com/sweetlayers/sweetlayers-backend/pkg/types"
)

const dateLayout = "2006-01-02"

// AddItemInput is a customization form submission: one cake, one option set.
type AddItemInput struct {
	CakeID       int64
	Quantity     int
	Size         string
	Flavor       string
	Message      string
	DeliveryDate string
}

// BuildLineItem validates the customization against the cake's option sets
// and resolves the unit price snapshot. The returned line carries everything
// the cart needs; the catalog is not consulted for it again.
func (s *service) BuildLineItem(ctx context.Context, input AddItemInput) (types.LineItem, error) {
	if input.Quantity < 1 {
		return types.LineItem{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	if max := s.cfg.MessageMaxLength; max > 0 && len([]rune(input.Message)) > max {
		return types.LineItem{}, pkgerrors.New(
			pkgerrors.CodeValidation,
			fmt.Sprintf("message must be at most %d characters", max),
		)
	}

	if err := s.validateDeliveryDate(input.DeliveryDate); err != nil {
		return types.LineItem{}, err
	}

	cake, err := s.catalog.GetCake(ctx, input.CakeID)
	if err != nil {
		return types.LineItem{}, err
	}

	if !containsFlavor(cake.Flavors, input.Flavor) {
		return types.LineItem{}, pkgerrors.New(
			pkgerrors.CodeValidation,
			fmt.Sprintf("flavor %q is not offered for this cake", input.Flavor),
		)
	}

	unitPrice, err := catalog.UnitPrice(cake, input.Size)
	if err != nil {
		return types.LineItem{}, err
	}

	return types.LineItem{
		CakeID:       cake.ID,
		Quantity:     input.Quantity,
		Size:         input.Size,
		Flavor:       input.Flavor,
		Message:      input.Message,
		DeliveryDate: input.DeliveryDate,
		UnitPrice:    unitPrice,
	}, nil
}

func (s *service) validateDeliveryDate(value string) error {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "delivery date must be YYYY-MM-DD")
	}

	today := s.now().Truncate(24 * time.Hour)
	min := today.AddDate(0, 0, s.cfg.DeliveryMinDays)
	max := today.AddDate(0, 0, s.cfg.DeliveryMaxDays)
	if date.Before(min) || date.After(max) {
		return pkgerrors.New(
			pkgerrors.CodeValidation,
			fmt.Sprintf("delivery date must be between %d and %d days from today",
				s.cfg.DeliveryMinDays, s.cfg.DeliveryMaxDays),
		)
	}
	return nil
}

func containsFlavor(flavors []string, flavor string) bool {
	for _, candidate := range flavors {
		if candidate == flavor {
			return true
		}
	}
	return false
}
