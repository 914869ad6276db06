package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sweetlayers/sweetlayers-backend/internal/cart"
	"github.com/sweetlayers/sweetlayers-backend/internal/catalog"
	"github.com/sweetlayers/sweetlayers-backend/internal/orders"
	"github.com/sweetlayers/sweetlayers-backend/pkg/config"
	"github.com/sweetlayers/sweetlayers-backend/pkg/db/models"
	"github.com/sweetlayers/sweetlayers-backend/pkg/enums"
	pkgerrors "github.com/sweetlayers/sweetlayers-backend/pkg/errors"
	"github.com/sweetlayers/sweetlayers-backend/pkg/notify"
	"github.com/sweetlayers/sweetlayers-backend/pkg/types"
)

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

type stubCatalog struct {
	cake *models.Cake
	err  error
}

func (s *stubCatalog) GetCake(ctx context.Context, id int64) (*models.Cake, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.cake, nil
}

func (s *stubCatalog) ListCakes(ctx context.Context, category *enums.CakeCategory) ([]models.Cake, error) {
	return nil, nil
}

func (s *stubCatalog) FeaturedCakes(ctx context.Context) ([]models.Cake, error) {
	return nil, nil
}

type stubOrders struct {
	created   *models.Order
	createErr error
	lastInput orders.CreateOrderInput
}

func (s *stubOrders) Create(ctx context.Context, input orders.CreateOrderInput) (*models.Order, error) {
	s.lastInput = input
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	return &models.Order{ID: 1, Items: input.Items, Customer: input.Customer, Delivery: input.Delivery, Status: enums.OrderStatusPending}, nil
}

func (s *stubOrders) Get(ctx context.Context, orderID int64) (*models.Order, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

func (s *stubOrders) Transition(ctx context.Context, orderID int64, target enums.OrderStatus) (*models.Order, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

func (s *stubOrders) List(ctx context.Context, filter orders.Filter, sortBy enums.OrderSort) ([]models.Order, error) {
	return nil, nil
}

type recordingNotifier struct {
	kinds []notify.Kind
}

func (r *recordingNotifier) Notify(ctx context.Context, kind notify.Kind, message string) {
	r.kinds = append(r.kinds, kind)
}

type memPersistence struct {
	payload string
	saveErr error
}

func (m *memPersistence) Load(ctx context.Context) (string, error) { return m.payload, nil }

func (m *memPersistence) Save(ctx context.Context, payload string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.payload = payload
	return nil
}

func testConfig() config.CheckoutConfig {
	return config.CheckoutConfig{
		TaxRate:          0.08,
		DeliveryMinDays:  2,
		DeliveryMaxDays:  30,
		MessageMaxLength: 50,
	}
}

func fixtureCake() *models.Cake {
	return &models.Cake{
		ID:        1,
		Name:      "Classic Vanilla",
		BasePrice: decimal.NewFromFloat(45.00),
		Flavors:   []string{"vanilla", "chocolate"},
		Sizes: types.SizeOptions{
			{Name: "small", Multiplier: 1.0},
			{Name: "medium", Multiplier: 1.5},
		},
		IsActive: true,
	}
}

func newTestCheckout(t *testing.T, cat catalog.Service, ord orders.Service, notifier notify.Notifier) *service {
	t.Helper()
	svc, err := NewService(cat, ord, testConfig(), notifier, nil, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	impl := svc.(*service)
	impl.now = func() time.Time { return testNow }
	return impl
}

func newCartWithItems(t *testing.T, persistence cart.Persistence, items ...types.LineItem) *cart.Store {
	t.Helper()
	store, err := cart.NewStore(context.Background(), persistence, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	for _, item := range items {
		if err := store.Add(context.Background(), item); err != nil {
			t.Fatalf("seed cart: %v", err)
		}
	}
	return store
}

func validAddInput() AddItemInput {
	return AddItemInput{
		CakeID:       1,
		Quantity:     2,
		Size:         "medium",
		Flavor:       "vanilla",
		Message:      "Happy Birthday",
		DeliveryDate: "2026-09-10",
	}
}

func TestBuildLineItemResolvesPriceSnapshot(t *testing.T) {
	t.Parallel()

	svc := newTestCheckout(t, &stubCatalog{cake: fixtureCake()}, &stubOrders{}, nil)

	item, err := svc.BuildLineItem(context.Background(), validAddInput())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := decimal.NewFromFloat(67.50) // 45.00 * 1.5
	if !item.UnitPrice.Equal(want) {
		t.Fatalf("expected unit price %s, got %s", want, item.UnitPrice)
	}
	if item.CakeID != 1 || item.Quantity != 2 {
		t.Fatalf("unexpected line: %+v", item)
	}
}

func TestBuildLineItemRejectsBadQuantity(t *testing.T) {
	t.Parallel()

	svc := newTestCheckout(t, &stubCatalog{cake: fixtureCake()}, &stubOrders{}, nil)

	input := validAddInput()
	input.Quantity = 0
	_, err := svc.BuildLineItem(context.Background(), input)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBuildLineItemRejectsLongMessage(t *testing.T) {
	t.Parallel()

	svc := newTestCheckout(t, &stubCatalog{cake: fixtureCake()}, &stubOrders{}, nil)

	input := validAddInput()
	for len([]rune(input.Message)) <= 50 {
		input.Message += "!"
	}
	_, err := svc.BuildLineItem(context.Background(), input)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBuildLineItemDeliveryDateWindow(t *testing.T) {
	t.Parallel()

	svc := newTestCheckout(t, &stubCatalog{cake: fixtureCake()}, &stubOrders{}, nil)

	cases := []struct {
		name string
		date string
		ok   bool
	}{
		{"too soon", "2026-09-02", false},
		{"window opens", "2026-09-03", true},
		{"window closes", "2026-10-01", true},
		{"too late", "2026-10-02", false},
		{"garbage", "next tuesday", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validAddInput()
			input.DeliveryDate = tc.date
			_, err := svc.BuildLineItem(context.Background(), input)
			if tc.ok && err != nil {
				t.Fatalf("expected %s to be accepted: %v", tc.date, err)
			}
			if !tc.ok {
				if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
					t.Fatalf("expected validation error for %s, got %v", tc.date, err)
				}
			}
		})
	}
}

func TestBuildLineItemRejectsUnknownFlavor(t *testing.T) {
	t.Parallel()

	svc := newTestCheckout(t, &stubCatalog{cake: fixtureCake()}, &stubOrders{}, nil)

	input := validAddInput()
	input.Flavor = "pistachio"
	_, err := svc.BuildLineItem(context.Background(), input)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBuildLineItemPropagatesMissingCake(t *testing.T) {
	t.Parallel()

	svc := newTestCheckout(t, &stubCatalog{err: pkgerrors.New(pkgerrors.CodeNotFound, "cake not found")}, &stubOrders{}, nil)

	_, err := svc.BuildLineItem(context.Background(), validAddInput())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
}

func sampleLine() types.LineItem {
	return types.LineItem{
		CakeID:       1,
		Quantity:     2,
		Size:         "medium",
		Flavor:       "vanilla",
		DeliveryDate: "2026-09-10",
		UnitPrice:    decimal.NewFromFloat(67.50),
	}
}

func pickupSubmit() SubmitInput {
	return SubmitInput{
		Customer: types.Customer{Name: "Dana", Email: "dana@example.com", Phone: "555-0101"},
		Delivery: types.Delivery{Type: enums.DeliveryTypePickup},
	}
}

func TestSubmitClearsCartAfterSuccess(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	ordersStub := &stubOrders{}
	svc := newTestCheckout(t, &stubCatalog{cake: fixtureCake()}, ordersStub, notifier)

	persistence := &memPersistence{}
	store := newCartWithItems(t, persistence, sampleLine())

	order, err := svc.Submit(context.Background(), store, pickupSubmit())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if order.ID == 0 {
		t.Fatal("expected created order")
	}
	if len(store.Items()) != 0 {
		t.Fatalf("cart must be cleared after success, got %+v", store.Items())
	}
	if persistence.payload != "[]" {
		t.Fatalf("cleared cart must be persisted, got %q", persistence.payload)
	}
	if len(notifier.kinds) != 1 || notifier.kinds[0] != notify.KindSuccess {
		t.Fatalf("expected one success notification, got %v", notifier.kinds)
	}
	if len(ordersStub.lastInput.Items) != 1 {
		t.Fatalf("order input must carry the cart snapshot, got %+v", ordersStub.lastInput.Items)
	}
}

func TestSubmitKeepsCartOnOrderFailure(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	ordersStub := &stubOrders{createErr: pkgerrors.New(pkgerrors.CodeDependency, "persist order")}
	svc := newTestCheckout(t, &stubCatalog{cake: fixtureCake()}, ordersStub, notifier)

	store := newCartWithItems(t, &memPersistence{}, sampleLine())

	_, err := svc.Submit(context.Background(), store, pickupSubmit())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.Items()) != 1 {
		t.Fatal("cart must stay intact when order creation fails")
	}
	if len(notifier.kinds) != 1 || notifier.kinds[0] != notify.KindError {
		t.Fatalf("expected one error notification, got %v", notifier.kinds)
	}
}

func TestSubmitSucceedsEvenWhenClearFails(t *testing.T) {
	t.Parallel()

	svc := newTestCheckout(t, &stubCatalog{cake: fixtureCake()}, &stubOrders{}, nil)

	persistence := &memPersistence{}
	store := newCartWithItems(t, persistence, sampleLine())
	persistence.saveErr = errors.New("redis down")

	order, err := svc.Submit(context.Background(), store, pickupSubmit())
	if err != nil {
		t.Fatalf("clear failure must not fail submission: %v", err)
	}
	if order == nil {
		t.Fatal("expected order")
	}
}

func TestSubmitValidatesDelivery(t *testing.T) {
	t.Parallel()

	svc := newTestCheckout(t, &stubCatalog{cake: fixtureCake()}, &stubOrders{}, nil)
	store := newCartWithItems(t, &memPersistence{}, sampleLine())

	cases := []struct {
		name  string
		input SubmitInput
	}{
		{
			"unknown type",
			SubmitInput{Delivery: types.Delivery{Type: enums.DeliveryType("drone")}},
		},
		{
			"delivery without address",
			SubmitInput{Delivery: types.Delivery{Type: enums.DeliveryTypeDelivery}},
		},
		{
			"delivery with incomplete address",
			SubmitInput{Delivery: types.Delivery{
				Type:    enums.DeliveryTypeDelivery,
				Address: &types.Address{Street: "1 Main St", City: "Springfield"},
			}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), store, tc.input)
			if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestSubmitDropsAddressForPickup(t *testing.T) {
	t.Parallel()

	ordersStub := &stubOrders{}
	svc := newTestCheckout(t, &stubCatalog{cake: fixtureCake()}, ordersStub, nil)
	store := newCartWithItems(t, &memPersistence{}, sampleLine())

	input := pickupSubmit()
	input.Delivery.Address = &types.Address{Street: "1 Main St", City: "Springfield", State: "IL", Zip: "62704"}

	if _, err := svc.Submit(context.Background(), store, input); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if ordersStub.lastInput.Delivery.Address != nil {
		t.Fatal("pickup orders must not carry an address")
	}
}
