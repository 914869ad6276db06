package orders

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sweetlayers/sweetlayers-backend/pkg/db/models"
	"github.com/sweetlayers/sweetlayers-backend/pkg/enums"
	"github.com/sweetlayers/sweetlayers-backend/pkg/types"
)

func fixtureOrders() []models.Order {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return []models.Order{
		{
			ID:        1,
			Customer:  types.Customer{Name: "Alice Baker", Email: "alice@example.com"},
			Total:     decimal.NewFromInt(20),
			Status:    enums.OrderStatusPending,
			CreatedAt: base,
		},
		{
			ID:        2,
			Customer:  types.Customer{Name: "Bob Frost", Email: "bob@example.com"},
			Total:     decimal.NewFromInt(35),
			Status:    enums.OrderStatusConfirmed,
			CreatedAt: base.Add(time.Hour),
		},
		{
			ID:        3,
			Customer:  types.Customer{Name: "Carol Sugar", Email: "carol@example.com"},
			Total:     decimal.NewFromInt(10),
			Status:    enums.OrderStatusPending,
			CreatedAt: base.Add(2 * time.Hour),
		},
	}
}

func projectedIDs(orders []models.Order) []int64 {
	ids := make([]int64, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
	}
	return ids
}

func TestProjectFilterThenSortComposition(t *testing.T) {
	t.Parallel()

	got := Project(fixtureOrders(), Filter{Status: "pending"}, enums.OrderSortAmountHigh)
	ids := projectedIDs(got)
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Fatalf("expected [1 3], got %v", ids)
	}
}

func TestProjectSearchMatchesIDNameAndEmail(t *testing.T) {
	t.Parallel()

	orders := fixtureOrders()

	cases := []struct {
		name   string
		search string
		want   []int64
	}{
		{"by id text", "2", []int64{2}},
		{"by name fragment", "frost", []int64{2}},
		{"by email fragment", "CAROL@", []int64{3}},
		{"no hit", "zebra", []int64{}},
		{"blank matches all", "   ", []int64{3, 2, 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := projectedIDs(Project(orders, Filter{Search: tc.search}, enums.OrderSortNewest))
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestProjectStatusAllDisablesFiltering(t *testing.T) {
	t.Parallel()

	for _, status := range []string{"", StatusFilterAll} {
		got := Project(fixtureOrders(), Filter{Status: status}, enums.OrderSortOldest)
		if len(got) != 3 {
			t.Fatalf("status %q must match everything, got %d", status, len(got))
		}
	}
}

func TestProjectSortOrders(t *testing.T) {
	t.Parallel()

	orders := fixtureOrders()

	cases := []struct {
		sort enums.OrderSort
		want []int64
	}{
		{enums.OrderSortNewest, []int64{3, 2, 1}},
		{enums.OrderSortOldest, []int64{1, 2, 3}},
		{enums.OrderSortAmountHigh, []int64{2, 1, 3}},
		{enums.OrderSortAmountLow, []int64{3, 1, 2}},
	}

	for _, tc := range cases {
		got := projectedIDs(Project(orders, Filter{}, tc.sort))
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Fatalf("sort %s: expected %v, got %v", tc.sort, tc.want, got)
			}
		}
	}
}

func TestProjectStableOnTies(t *testing.T) {
	t.Parallel()

	when := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{ID: 1, Total: decimal.NewFromInt(15), CreatedAt: when, Status: enums.OrderStatusPending},
		{ID: 2, Total: decimal.NewFromInt(15), CreatedAt: when, Status: enums.OrderStatusPending},
		{ID: 3, Total: decimal.NewFromInt(15), CreatedAt: when, Status: enums.OrderStatusPending},
	}

	for _, sortBy := range []enums.OrderSort{
		enums.OrderSortNewest,
		enums.OrderSortOldest,
		enums.OrderSortAmountHigh,
		enums.OrderSortAmountLow,
	} {
		got := projectedIDs(Project(orders, Filter{}, sortBy))
		if got[0] != 1 || got[1] != 2 || got[2] != 3 {
			t.Fatalf("sort %s must keep input order on ties, got %v", sortBy, got)
		}
	}
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	orders := fixtureOrders()
	Project(orders, Filter{}, enums.OrderSortAmountLow)
	if orders[0].ID != 1 || orders[1].ID != 2 || orders[2].ID != 3 {
		t.Fatalf("input collection reordered: %v", projectedIDs(orders))
	}
}
