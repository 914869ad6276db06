package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sweetlayers/sweetlayers-backend/pkg/db/models"
	"github.com/sweetlayers/sweetlayers-backend/pkg/enums"
	pkgerrors "github.com/sweetlayers/sweetlayers-backend/pkg/errors"
)

// Service exposes catalog reads. Prices resolved here are snapshots: once an
// item is in a cart the catalog is never consulted for it again.
type Service interface {
	GetCake(ctx context.Context, id int64) (*models.Cake, error)
	ListCakes(ctx context.Context, category *enums.CakeCategory) ([]models.Cake, error)
	FeaturedCakes(ctx context.Context) ([]models.Cake, error)
}

type service struct {
	repo Repository
}

// NewService builds a catalog service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) GetCake(ctx context.Context, id int64) (*models.Cake, error) {
	cake, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cake not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cake")
	}
	return cake, nil
}

func (s *service) ListCakes(ctx context.Context, category *enums.CakeCategory) ([]models.Cake, error) {
	var (
		cakes []models.Cake
		err   error
	)
	if category != nil {
		cakes, err = s.repo.ListByCategory(ctx, *category)
	} else {
		cakes, err = s.repo.ListActive(ctx)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cakes")
	}
	return cakes, nil
}

func (s *service) FeaturedCakes(ctx context.Context) ([]models.Cake, error) {
	cakes, err := s.repo.ListByCategory(ctx, enums.CakeCategoryFeatured)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list featured cakes")
	}
	return cakes, nil
}

// UnitPrice resolves the per-unit price for a cake in the given size: base
// price times the size multiplier, rounded to cents.
func UnitPrice(cake *models.Cake, size string) (decimal.Decimal, error) {
	if cake == nil {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "cake required")
	}
	opt, ok := cake.Sizes.Find(size)
	if !ok {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("size %q is not offered for this cake", size))
	}
	return cake.BasePrice.Mul(decimal.NewFromFloat(opt.Multiplier)).Round(2), nil
}
