package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sweetlayers/sweetlayers-backend/pkg/db/models"
	"github.com/sweetlayers/sweetlayers-backend/pkg/enums"
	pkgerrors "github.com/sweetlayers/sweetlayers-backend/pkg/errors"
	"github.com/sweetlayers/sweetlayers-backend/pkg/metrics"
	"github.com/sweetlayers/sweetlayers-backend/pkg/types"
)

// Service owns order creation and the status state machine. The UI is
// expected not to offer illegal transitions, but this service is the
// enforcement point of record.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*models.Order, error)
	Get(ctx context.Context, orderID int64) (*models.Order, error)
	Transition(ctx context.Context, orderID int64, target enums.OrderStatus) (*models.Order, error)
	List(ctx context.Context, filter Filter, sortBy enums.OrderSort) ([]models.Order, error)
}

type service struct {
	repo    Repository
	taxRate decimal.Decimal
	metrics *metrics.OrderMetrics
}

// NewService builds an orders service. taxRate is the fractional rate (0.08
// for 8%) applied exactly once at creation.
func NewService(repo Repository, taxRate float64, orderMetrics *metrics.OrderMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if taxRate < 0 {
		return nil, fmt.Errorf("tax rate must not be negative")
	}
	return &service{
		repo:    repo,
		taxRate: decimal.NewFromFloat(taxRate),
		metrics: orderMetrics,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	subtotal := decimal.Zero
	for _, item := range input.Items {
		subtotal = subtotal.Add(item.Subtotal())
	}
	// Total is subtotal plus tax, computed once here and frozen for the life
	// of the order. Transitions never recompute it.
	total := subtotal.Mul(decimal.NewFromInt(1).Add(s.taxRate)).Round(2)

	// Freeze the snapshot: later cart mutations must not leak into the order.
	items := make([]types.LineItem, len(input.Items))
	copy(items, input.Items)

	order := &models.Order{
		Items:    items,
		Customer: input.Customer,
		Delivery: input.Delivery,
		Total:    total,
		Status:   enums.OrderStatusPending,
	}

	stored, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order")
	}

	s.metrics.IncCreated(string(stored.Delivery.Type))
	return stored, nil
}

func (s *service) Get(ctx context.Context, orderID int64) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func (s *service) Transition(ctx context.Context, orderID int64, target enums.OrderStatus) (*models.Order, error) {
	if !target.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid order status %q", target))
	}

	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(target) {
		s.metrics.IncRejected(string(order.Status), string(target))
		return nil, pkgerrors.New(
			pkgerrors.CodeStateConflict,
			fmt.Sprintf("order cannot move from %s to %s", order.Status, target),
		)
	}

	if err := s.repo.UpdateStatus(ctx, order.ID, target); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}

	s.metrics.IncTransition(string(order.Status), string(target))
	order.Status = target
	return order, nil
}

func (s *service) List(ctx context.Context, filter Filter, sortBy enums.OrderSort) ([]models.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return Project(orders, filter, sortBy), nil
}
