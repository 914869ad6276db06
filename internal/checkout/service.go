package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/sweetlayers/sweetlayers-backend/internal/cart"
	"github.com/sweetlayers/sweetlayers-backend/internal/catalog"
	"github.com/sweetlayers/sweetlayers-backend/internal/orders"
	"github.com/sweetlayers/sweetlayers-backend/pkg/config"
	"github.com/sweetlayers/sweetlayers-backend/pkg/db/models"
	"github.com/sweetlayers/sweetlayers-backend/pkg/enums"
	pkgerrors "github.com/sweetlayers/sweetlayers-backend/pkg/errors"
	"github.com/sweetlayers/sweetlayers-backend/pkg/logger"
	"github.com/sweetlayers/sweetlayers-backend/pkg/metrics"
	"github.com/sweetlayers/sweetlayers-backend/pkg/notify"
	"github.com/sweetlayers/sweetlayers-backend/pkg/types"
)

// SubmitInput carries the checkout form fields the core accepts. Card fields
// never reach this service; payment capture is not part of this system.
type SubmitInput struct {
	Customer types.Customer
	Delivery types.Delivery
}

// Service turns a session cart into an order and keeps the two in step: the
// cart is cleared only after the order persist has been confirmed.
type Service interface {
	BuildLineItem(ctx context.Context, input AddItemInput) (types.LineItem, error)
	Submit(ctx context.Context, cartStore *cart.Store, input SubmitInput) (*models.Order, error)
}

type service struct {
	catalog  catalog.Service
	orders   orders.Service
	cfg      config.CheckoutConfig
	notifier notify.Notifier
	metrics  *metrics.OrderMetrics
	logg     *logger.Logger
	now      func() time.Time
}

// NewService builds a checkout service with the required dependencies.
func NewService(
	catalogService catalog.Service,
	ordersService orders.Service,
	cfg config.CheckoutConfig,
	notifier notify.Notifier,
	orderMetrics *metrics.OrderMetrics,
	logg *logger.Logger,
) (Service, error) {
	if catalogService == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	if ordersService == nil {
		return nil, fmt.Errorf("orders service required")
	}
	if notifier == nil {
		notifier = notify.Noop()
	}
	return &service{
		catalog:  catalogService,
		orders:   ordersService,
		cfg:      cfg,
		notifier: notifier,
		metrics:  orderMetrics,
		logg:     logg,
		now:      time.Now,
	}, nil
}

func (s *service) Submit(ctx context.Context, cartStore *cart.Store, input SubmitInput) (*models.Order, error) {
	start := s.now()

	if cartStore == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart store required")
	}
	if err := validateDelivery(&input.Delivery); err != nil {
		return nil, err
	}

	order, err := s.orders.Create(ctx, orders.CreateOrderInput{
		Items:    cartStore.Items(),
		Customer: input.Customer,
		Delivery: input.Delivery,
	})
	if err != nil {
		// The cart is left intact so the shopper can retry the whole action.
		s.notifier.Notify(ctx, notify.KindError, "order submission failed")
		return nil, err
	}

	if err := cartStore.Clear(ctx); err != nil {
		// The order exists; a stale persisted cart is recoverable and must
		// not fail the submission.
		if s.logg != nil {
			s.logg.Warn(s.logg.WithOrderID(ctx, order.ID), "order created but cart clear failed")
		}
	}

	s.metrics.ObserveCheckout(s.now().Sub(start))
	s.notifier.Notify(ctx, notify.KindSuccess, "order placed")
	return order, nil
}

func validateDelivery(delivery *types.Delivery) error {
	if !delivery.Type.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "delivery type must be delivery or pickup")
	}
	switch delivery.Type {
	case enums.DeliveryTypeDelivery:
		if delivery.Address == nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "delivery address required")
		}
		if delivery.Address.Street == "" || delivery.Address.City == "" ||
			delivery.Address.State == "" || delivery.Address.Zip == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "delivery address is incomplete")
		}
	case enums.DeliveryTypePickup:
		// Pickup orders carry no address.
		delivery.Address = nil
	}
	return nil
}
